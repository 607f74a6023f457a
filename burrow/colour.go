package burrow

// Colour is the type of an entity. Each colour owns exactly one destination room.
type Colour uint8

// The four colours, in room order from left to right.
const (
	Amber Colour = iota
	Bronze
	Copper
	Desert
)

// NumColours is the number of colours and therefore of rooms.
const NumColours = 4

// unitCost is the energy spent per cell moved, indexed by Colour.
var unitCost = [NumColours]int64{1, 10, 100, 1000}

// ParseColour maps a diagram letter ('A'..'D') to its Colour.
func ParseColour(r rune) (Colour, bool) {
	if r < 'A' || r >= 'A'+NumColours {
		return 0, false
	}
	return Colour(r - 'A'), true
}

// UnitCost returns the cost of moving one cell.
func (c Colour) UnitCost() int64 { return unitCost[c] }

// Rune returns the diagram letter of c.
func (c Colour) Rune() rune { return 'A' + rune(c) }

// String implements fmt.Stringer.
func (c Colour) String() string { return string(c.Rune()) }
