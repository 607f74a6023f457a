// SPDX-License-Identifier: MIT
// Package: amphipod/burrow
//
// moves.go: the move generator.
//
// Contract:
//   • Neighbours is a pure function of (Burrow, State); it never mutates s.
//   • Every emitted step cost is unitCost × cells traversed, hence ≥ 0.
//   • A StartRoom entity that can reach its destination directly emits only
//     that move; otherwise it emits one move per reachable parking cell.
//   • A Hallway entity only ever moves into its own room.
//   • DestRoom entities emit nothing.

package burrow

import "github.com/katalvlaran/amphipod/ucs"

// noColour marks an empty room slot in occupancy.
const noColour = -1

// occupancy is a per-State snapshot answering "who is where" in O(1).
type occupancy struct {
	hall  []bool                         // by map column
	room  [NumColours][MaxDepth + 1]int8 // by room index and depth (1-based): occupant colour or noColour
	fill  [NumColours]int                // settled entities per room
	bad   [NumColours]bool               // room still holds an unsettled entity
	depth int
}

func (b *Burrow) occupancy(s State) *occupancy {
	occ := &occupancy{hall: make([]bool, b.Width()), depth: b.depth}
	for r := range occ.room {
		for d := range occ.room[r] {
			occ.room[r][d] = noColour
		}
	}
	for i := 0; i < s.Len(); i++ {
		p := s.At(i)
		c := b.Colour(i)
		switch p.Kind {
		case InHallway:
			occ.hall[p.Col] = true
		case InStartRoom:
			r := b.roomIndex(int(p.Col))
			occ.room[r][p.Depth] = int8(c)
			// Any entity still in a start room blocks that room as a destination:
			// either it has the wrong colour, or a wrong colour lies beneath it.
			occ.bad[r] = true
		case InDestRoom:
			occ.room[c][p.Depth] = int8(c)
			occ.fill[c]++
		}
	}
	return occ
}

// accepts returns the slot an entity of colour c would drop into.
func (o *occupancy) accepts(c Colour) (int, bool) {
	if o.bad[c] {
		return 0, false
	}
	for d := 1; d <= o.depth; d++ {
		if occ := o.room[c][d]; occ != noColour && Colour(occ) != c {
			return 0, false
		}
	}
	slot := o.depth - o.fill[c]
	if slot < 1 {
		return 0, false
	}
	return slot, true
}

// clear reports whether every hallway cell strictly after from and up to and
// including to is free. from itself is where the mover stands.
func (o *occupancy) clear(from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for x := from + step; x != to+step; x += step {
		if o.hall[x] {
			return false
		}
	}
	return true
}

// blockedAbove reports whether any slot shallower than depth in room r is taken.
func (o *occupancy) blockedAbove(r, depth int) bool {
	for d := 1; d < depth; d++ {
		if o.room[r][d] != noColour {
			return true
		}
	}
	return false
}

// Neighbours lists every legal next configuration of s with its step cost.
func (b *Burrow) Neighbours(s State) []ucs.Edge[State] {
	occ := b.occupancy(s)
	var out []ucs.Edge[State]

	for i := 0; i < s.Len(); i++ {
		switch p := s.At(i); p.Kind {
		case InStartRoom:
			out = b.leaveRoom(s, occ, i, p, out)
		case InHallway:
			out = b.enterRoom(s, occ, i, p, out)
		}
	}

	return out
}

// leaveRoom emits the moves of a StartRoom entity: straight home if the path
// and the room allow it, otherwise every reachable parking cell.
func (b *Burrow) leaveRoom(s State, occ *occupancy, i int, p Position, out []ucs.Edge[State]) []ucs.Edge[State] {
	col, depth := int(p.Col), int(p.Depth)
	if occ.blockedAbove(b.roomIndex(col), depth) {
		return out
	}

	c := b.Colour(i)
	unit := c.UnitCost()
	lo, hi := b.group(c)

	// 1) Direct to destination.
	if home := b.rooms[c]; home != col && occ.clear(col, home) {
		if slot, ok := occ.accepts(c); ok {
			steps := depth + abs(home-col) + slot
			return append(out, ucs.Edge[State]{
				To:   s.moved(i, DestRoom(slot), lo, hi),
				Cost: unit * int64(steps),
			})
		}
	}

	// 2) Park: walk each way until blocked, stopping anywhere but a room entry.
	for _, dir := range [2]int{-1, 1} {
		for x := col + dir; b.InHallway(x) && !occ.hall[x]; x += dir {
			if b.IsRoomEntry(x) {
				continue
			}
			steps := depth + abs(x-col)
			out = append(out, ucs.Edge[State]{
				To:   s.moved(i, Hallway(x), lo, hi),
				Cost: unit * int64(steps),
			})
		}
	}

	return out
}

// enterRoom emits the single move of a Hallway entity into its own room, if legal.
func (b *Burrow) enterRoom(s State, occ *occupancy, i int, p Position, out []ucs.Edge[State]) []ucs.Edge[State] {
	c := b.Colour(i)
	from, home := int(p.Col), b.rooms[c]
	if !occ.clear(from, home) {
		return out
	}
	slot, ok := occ.accepts(c)
	if !ok {
		return out
	}

	lo, hi := b.group(c)
	steps := abs(home-from) + slot
	return append(out, ucs.Edge[State]{
		To:   s.moved(i, DestRoom(slot), lo, hi),
		Cost: c.UnitCost() * int64(steps),
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
