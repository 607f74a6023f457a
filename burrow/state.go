package burrow

import (
	"math"
	"strings"
)

// MaxDepth is the deepest room a Burrow supports.
const MaxDepth = 8

// MaxWidth is the widest diagram a Burrow supports; columns must fit Position.Col.
const MaxWidth = math.MaxInt16

// MaxEntities bounds the number of entities a State can hold.
const MaxEntities = NumColours * MaxDepth

// State is one configuration of the puzzle: the Position of every entity,
// ordered by entity index. Entities are grouped by colour (all Amber first,
// then Bronze, ...), and each group holds exactly Depth entities.
//
// State is a comparable value type. Two states are equal iff every entity
// occupies the same Position, so State is used as a map key as-is.
//
// Entities of one colour are interchangeable, so the positions inside each
// colour group are kept sorted. Two arrangements that differ only by swapping
// same-coloured entities are therefore one State.
//
// As a consequence the index i passed to At names a slot in the colour group,
// not a physical entity: after a move the entity that was at At(i) may be
// reported under another index of the same colour. Colour(i) is stable.
type State struct {
	pos [MaxEntities]Position
	n   uint8
}

// Len returns the number of entities.
func (s State) Len() int { return int(s.n) }

// At returns the Position of entity i.
func (s State) At(i int) Position { return s.pos[i] }

// Positions returns a copy of the entity positions.
func (s State) Positions() []Position {
	out := make([]Position, s.n)
	copy(out, s.pos[:s.n])
	return out
}

// String lists the positions, e.g. "[StartRoom(1,3) Hallway(1) ...]".
func (s State) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < int(s.n); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.pos[i].String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// moved returns a copy of s with entity i at p, re-sorting the colour group
// [lo, hi) that i belongs to. s itself is left untouched.
func (s State) moved(i int, p Position, lo, hi int) State {
	s.pos[i] = p
	sortGroup(s.pos[lo:hi])
	return s
}

// sortGroup is an insertion sort; groups hold at most MaxDepth positions.
func sortGroup(g []Position) {
	for i := 1; i < len(g); i++ {
		for j := i; j > 0 && g[j].less(g[j-1]); j-- {
			g[j], g[j-1] = g[j-1], g[j]
		}
	}
}
