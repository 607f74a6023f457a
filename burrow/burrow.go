package burrow

import (
	"strings"

	"github.com/katalvlaran/amphipod/ucs"
)

// Burrow couples a Map with its entities and their initial configuration.
// It is immutable after Parse and safe for concurrent use.
type Burrow struct {
	Map
	start    State
	template [][]rune // diagram with entity letters blanked, for Render
}

// Start returns the initial configuration.
func (b *Burrow) Start() State { return b.start }

// Entities returns the number of entities (NumColours × Depth).
func (b *Burrow) Entities() int { return b.start.Len() }

// Colour returns the colour of entity i. Entities are grouped by colour.
func (b *Burrow) Colour(i int) Colour { return Colour(i / b.depth) }

// group returns the index range [lo, hi) of the entities of colour c.
func (b *Burrow) group(c Colour) (lo, hi int) {
	lo = int(c) * b.depth
	return lo, lo + b.depth
}

// Cell returns the diagram coordinates of entity i in s.
func (b *Burrow) Cell(s State, i int) (row, col int) {
	p := s.At(i)
	switch p.Kind {
	case InHallway:
		return b.hallRow, int(p.Col)
	case InStartRoom:
		return b.hallRow + int(p.Depth), int(p.Col)
	case InDestRoom:
		return b.hallRow + int(p.Depth), b.rooms[b.Colour(i)]
	default:
		return -1, -1
	}
}

// IsGoal reports whether every entity of s is settled in its destination room.
func (b *Burrow) IsGoal(s State) bool {
	for i := 0; i < s.Len(); i++ {
		if !s.At(i).Settled() {
			return false
		}
	}
	return true
}

// Accepts reports whether the room of colour c currently admits an entity,
// and if so the depth of the slot it would drop into.
// A room admits only when every occupant has colour c; the slot is the
// deepest free one.
func (b *Burrow) Accepts(s State, c Colour) (depth int, ok bool) {
	occ := b.occupancy(s)
	return occ.accepts(c)
}

// Solve returns the minimum total cost of moving every entity home.
// It fails with ucs.ErrUnsolvable if no goal configuration is reachable.
func (b *Burrow) Solve(opts ...ucs.Option) (int64, error) {
	return ucs.Search(b.start, b.Neighbours, b.IsGoal, opts...)
}

// NewEngine returns a search engine bound to this burrow's move generator and
// goal test, for callers that want to inspect costs or counters after a run.
func (b *Burrow) NewEngine(opts ...ucs.Option) (*ucs.Engine[State], error) {
	return ucs.New(b.Neighbours, b.IsGoal, opts...)
}

// Render draws s in the input diagram format, one line per row, each
// terminated by a newline.
func (b *Burrow) Render(s State) string {
	grid := make([][]rune, len(b.template))
	for r, line := range b.template {
		grid[r] = append([]rune(nil), line...)
	}
	for i := 0; i < s.Len(); i++ {
		r, c := b.Cell(s, i)
		if r >= 0 && r < len(grid) && c >= 0 && c < len(grid[r]) {
			grid[r][c] = b.Colour(i).Rune()
		}
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.WriteString(string(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}
