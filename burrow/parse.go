// SPDX-License-Identifier: MIT
// Package: amphipod/burrow
//
// parse.go: diagram → Burrow.
//
// Accepted characters: '#' and ' ' (wall), '.' (open), 'A'..'D' (entity on an
// open cell). The first row with an open cell is the hallway; the four open
// columns of the next row are the rooms, A to D from left to right.
// Parsing is strict: the first problem found is returned as a *ParseError and
// nothing is partially built.

package burrow

import "strings"

// located is an entity found while scanning the diagram.
type located struct {
	colour   Colour
	row, col int
}

// Parse builds a Burrow from an ASCII diagram.
//
// Validation (in order):
//  1. every character is a wall, an open cell or an entity letter, and no
//     row is wider than MaxWidth;
//  2. a hallway row exists and its open cells form one corridor;
//  3. the row below the hallway opens exactly four rooms onto the hallway;
//  4. every room has the same depth, at most MaxDepth, and no other cell is open;
//  5. no entity stops on a room entry or floats above an empty slot;
//  6. every colour appears exactly Depth times.
//
// Entities already stacked at the bottom of their own room, with only their
// own colour beneath, start settled (DestRoom).
func Parse(input string) (*Burrow, error) {
	rows := splitLines(input)
	if len(rows) == 0 {
		return nil, parseErrorf(-1, -1, 0, "empty diagram")
	}

	// 1) Classify every cell.
	m := Map{open: make([][]bool, len(rows)), hallRow: -1}
	width := 0
	var found []located
	for r, line := range rows {
		if len(line) > width {
			width = len(line)
		}
		m.open[r] = make([]bool, len(line))
		for c, ch := range line {
			switch ch {
			case '#', ' ':
				continue
			case '.':
			default:
				colour, ok := ParseColour(ch)
				if !ok {
					return nil, parseErrorf(r, c, ch, "unexpected character")
				}
				found = append(found, located{colour: colour, row: r, col: c})
			}
			m.open[r][c] = true
			if m.hallRow < 0 {
				m.hallRow = r
			}
		}
	}

	if width > MaxWidth {
		return nil, parseErrorf(-1, -1, 0, "diagram width %d exceeds %d", width, MaxWidth)
	}

	// 2) Hallway.
	if m.hallRow < 0 {
		return nil, parseErrorf(-1, -1, 0, "no hallway: diagram has no open cell")
	}
	if err := m.scanHallway(); err != nil {
		return nil, err
	}

	// 3) Rooms and 4) depth.
	m.roomAt = make([]int8, width)
	for c := range m.roomAt {
		m.roomAt[c] = -1
	}
	if err := m.scanRooms(); err != nil {
		return nil, err
	}

	// 5) and 6) Entities.
	b := &Burrow{Map: m, template: blankTemplate(rows, width)}
	if err := b.placeEntities(rows, found); err != nil {
		return nil, err
	}

	return b, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures and examples.
func MustParse(input string) *Burrow {
	b, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return b
}

func (m *Map) scanHallway() error {
	hall := m.open[m.hallRow]
	m.hallMin, m.hallMax = -1, -1
	for c, ok := range hall {
		if !ok {
			continue
		}
		if m.hallMin < 0 {
			m.hallMin = c
		}
		m.hallMax = c
	}
	for c := m.hallMin; c <= m.hallMax; c++ {
		if !hall[c] {
			return parseErrorf(m.hallRow, c, 0, "hallway is not one contiguous corridor")
		}
	}
	return nil
}

func (m *Map) scanRooms() error {
	top := m.hallRow + 1
	if top >= len(m.open) {
		return parseErrorf(m.hallRow, -1, 0, "no rooms below the hallway")
	}

	var cols []int
	for c, ok := range m.open[top] {
		if ok {
			cols = append(cols, c)
		}
	}
	if len(cols) != NumColours {
		return parseErrorf(top, -1, 0, "found %d rooms, want %d", len(cols), NumColours)
	}
	for i, c := range cols {
		if !m.InHallway(c) {
			return parseErrorf(top, c, 0, "room does not open onto the hallway")
		}
		m.rooms[i] = c
		m.roomAt[c] = int8(i)
	}

	depth := 0
	for r := top; r < len(m.open); r++ {
		n := 0
		for c, ok := range m.open[r] {
			if !ok {
				continue
			}
			if m.roomIndex(c) < 0 {
				return parseErrorf(r, c, 0, "open cell outside the rooms")
			}
			n++
		}
		if n == 0 {
			break
		}
		if n != NumColours {
			return parseErrorf(r, -1, 0, "rooms have different depths")
		}
		depth++
	}
	for r := top + depth; r < len(m.open); r++ {
		for c, ok := range m.open[r] {
			if ok {
				return parseErrorf(r, c, 0, "open cell below the rooms")
			}
		}
	}
	if depth > MaxDepth {
		return parseErrorf(-1, -1, 0, "room depth %d exceeds %d", depth, MaxDepth)
	}
	m.depth = depth

	return nil
}

func (b *Burrow) placeEntities(rows [][]rune, found []located) error {
	var groups [NumColours][]Position
	for _, e := range found {
		if e.row == b.hallRow {
			if b.IsRoomEntry(e.col) {
				return parseErrorf(e.row, e.col, e.colour.Rune(), "entity stops on a room entry")
			}
			groups[e.colour] = append(groups[e.colour], Hallway(e.col))
			continue
		}
		d := e.row - b.hallRow
		if d < b.depth && cellAt(rows, e.row+1, e.col) == '.' {
			return parseErrorf(e.row, e.col, e.colour.Rune(), "entity above an empty slot")
		}
		groups[e.colour] = append(groups[e.colour], StartRoom(d, e.col))
	}

	for c := Colour(0); c < NumColours; c++ {
		if got := len(groups[c]); got != b.depth {
			return parseErrorf(-1, -1, 0, "found %d %s entities, want %d", got, c, b.depth)
		}
	}

	// Settle entities already home: walk each room bottom-up while the colour matches.
	for c := Colour(0); c < NumColours; c++ {
		col := b.rooms[c]
		for d := b.depth; d >= 1; d-- {
			if cellAt(rows, b.hallRow+d, col) != c.Rune() {
				break
			}
			g := groups[c]
			for i := range g {
				if g[i] == StartRoom(d, col) {
					g[i] = DestRoom(d)
				}
			}
		}
	}

	b.start.n = uint8(NumColours * b.depth)
	for c := Colour(0); c < NumColours; c++ {
		sortGroup(groups[c])
		copy(b.start.pos[int(c)*b.depth:], groups[c])
	}

	return nil
}

// splitLines splits input into rune rows, dropping carriage returns and
// trailing blank lines.
func splitLines(input string) [][]rune {
	lines := strings.Split(strings.ReplaceAll(input, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}
	return rows
}

// cellAt returns the rune at (r, c), or '#' outside the diagram.
func cellAt(rows [][]rune, r, c int) rune {
	if r < 0 || r >= len(rows) || c < 0 || c >= len(rows[r]) {
		return '#'
	}
	return rows[r][c]
}

// blankTemplate copies rows with every entity letter replaced by '.'.
func blankTemplate(rows [][]rune, width int) [][]rune {
	out := make([][]rune, len(rows))
	for r, line := range rows {
		out[r] = make([]rune, len(line), width)
		for c, ch := range line {
			if _, ok := ParseColour(ch); ok {
				ch = '.'
			}
			out[r][c] = ch
		}
	}
	return out
}
