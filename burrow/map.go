// SPDX-License-Identifier: MIT
// Package: amphipod/burrow
//
// map.go: immutable geometry of a burrow.
//
// Contract:
//   • A Map is built once by Parse and never mutated afterwards.
//   • Coordinates are (row, col), 0-based, row 0 being the first diagram line.
//   • Room slot at depth d (1-based) sits at row HallwayRow()+d.

package burrow

// Map is the static layout: open cells, the hallway, the room columns and depth.
type Map struct {
	open    [][]bool
	hallRow int
	hallMin int // leftmost open hallway column
	hallMax int // rightmost open hallway column
	rooms   [NumColours]int
	roomAt  []int8 // column → room index, -1 when the column holds no room
	depth   int
}

// Height returns the number of diagram rows.
func (m *Map) Height() int { return len(m.open) }

// Width returns the length of the longest diagram row.
func (m *Map) Width() int { return len(m.roomAt) }

// Depth returns the number of slots in every room.
func (m *Map) Depth() int { return m.depth }

// HallwayRow returns the diagram row of the hallway.
func (m *Map) HallwayRow() int { return m.hallRow }

// HallwayRange returns the leftmost and rightmost open hallway columns.
func (m *Map) HallwayRange() (lo, hi int) { return m.hallMin, m.hallMax }

// IsOpen reports whether (row, col) is a non-wall cell.
// Coordinates outside the diagram are walls.
func (m *Map) IsOpen(row, col int) bool {
	if row < 0 || row >= len(m.open) || col < 0 || col >= len(m.open[row]) {
		return false
	}
	return m.open[row][col]
}

// RoomColumn returns the map column of the destination room of c.
func (m *Map) RoomColumn(c Colour) int { return m.rooms[c] }

// InHallway reports whether col lies within the open hallway range.
func (m *Map) InHallway(col int) bool { return col >= m.hallMin && col <= m.hallMax }

// IsRoomEntry reports whether col is a hallway cell directly above a room.
// Entities may cross such cells but never stop on them.
func (m *Map) IsRoomEntry(col int) bool {
	return col >= 0 && col < len(m.roomAt) && m.roomAt[col] >= 0
}

// roomIndex returns the room at col, or -1.
func (m *Map) roomIndex(col int) int {
	if col < 0 || col >= len(m.roomAt) {
		return -1
	}
	return int(m.roomAt[col])
}
