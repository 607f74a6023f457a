package burrow

import "fmt"

// Kind tags which variant of Position is populated.
type Kind uint8

const (
	// Unused marks the zero Position: a State slot beyond the entity count.
	Unused Kind = iota
	// InStartRoom is an entity that has not left its initial room yet.
	InStartRoom
	// InHallway is an entity parked in the hallway.
	InHallway
	// InDestRoom is a settled entity; it never moves again.
	InDestRoom
)

// Position is a tagged union over the three location kinds.
//
//	StartRoom: Depth and Col set (Col is the map column of the room).
//	Hallway:   Col set (the hallway offset, a map column).
//	DestRoom:  Depth set; the column is the entity's own room.
//
// Positions are small comparable values so a State can be a map key.
type Position struct {
	Kind  Kind
	Depth int8
	Col   int16
}

// StartRoom returns the position of an entity still in its initial room.
func StartRoom(depth, col int) Position {
	return Position{Kind: InStartRoom, Depth: int8(depth), Col: int16(col)}
}

// Hallway returns the position of an entity parked at hallway column col.
func Hallway(col int) Position {
	return Position{Kind: InHallway, Col: int16(col)}
}

// DestRoom returns the position of a settled entity at the given depth of its own room.
func DestRoom(depth int) Position {
	return Position{Kind: InDestRoom, Depth: int8(depth)}
}

// Settled reports whether p is a DestRoom position.
func (p Position) Settled() bool { return p.Kind == InDestRoom }

// String implements fmt.Stringer.
func (p Position) String() string {
	switch p.Kind {
	case InStartRoom:
		return fmt.Sprintf("StartRoom(%d,%d)", p.Depth, p.Col)
	case InHallway:
		return fmt.Sprintf("Hallway(%d)", p.Col)
	case InDestRoom:
		return fmt.Sprintf("DestRoom(%d)", p.Depth)
	default:
		return "Unused"
	}
}

// less is the canonical order used to sort same-coloured entities.
func (p Position) less(q Position) bool {
	if p.Kind != q.Kind {
		return p.Kind < q.Kind
	}
	if p.Depth != q.Depth {
		return p.Depth < q.Depth
	}
	return p.Col < q.Col
}
