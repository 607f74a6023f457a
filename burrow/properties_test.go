package burrow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
)

type cell struct{ row, col int }

// cells maps every occupied diagram cell of s to the colour standing there.
func cells(t *testing.T, b *burrow.Burrow, s burrow.State) map[cell]burrow.Colour {
	t.Helper()
	out := make(map[cell]burrow.Colour, s.Len())
	for i := 0; i < s.Len(); i++ {
		r, c := b.Cell(s, i)
		require.True(t, b.IsOpen(r, c), "entity %d of %s on a wall", i, s)
		_, dup := out[cell{r, c}]
		require.False(t, dup, "two entities share (%d,%d) in %s", r, c, s)
		out[cell{r, c}] = b.Colour(i)
	}
	return out
}

// checkMove validates one transition: exactly one entity moved, along a free
// path, at the advertised cost, never onto a room entry, and into a room only
// when that room holds nothing but its own colour beneath the new slot.
func checkMove(t *testing.T, b *burrow.Burrow, from, to burrow.State, cost int64) {
	t.Helper()
	require.GreaterOrEqual(t, cost, int64(0))

	before, after := cells(t, b, from), cells(t, b, to)
	var src, dst []cell
	for k := range before {
		if _, ok := after[k]; !ok {
			src = append(src, k)
		}
	}
	for k := range after {
		if _, ok := before[k]; !ok {
			dst = append(dst, k)
		}
	}
	require.Len(t, src, 1, "%s -> %s", from, to)
	require.Len(t, dst, 1, "%s -> %s", from, to)
	a, z := src[0], dst[0]
	colour := before[a]
	require.Equal(t, colour, after[z])

	// Settled entities stay put.
	for i := 0; i < from.Len(); i++ {
		if from.At(i).Settled() {
			r, c := b.Cell(from, i)
			require.NotEqual(t, a, cell{r, c}, "settled entity moved in %s", from)
		}
	}

	hall := b.HallwayRow()
	// Climb out, cross, drop in: every intermediate cell must be free.
	for r := a.row - 1; r > hall; r-- {
		require.NotContains(t, before, cell{r, a.col})
	}
	step := 1
	if z.col < a.col {
		step = -1
	}
	for c := a.col; c != z.col+step; c += step {
		if (cell{hall, c}) != a {
			require.NotContains(t, before, cell{hall, c})
		}
	}
	for r := hall + 1; r < z.row; r++ {
		require.NotContains(t, before, cell{r, z.col})
	}

	steps := (a.row - hall) + abs(z.col-a.col) + (z.row - hall)
	require.Equal(t, colour.UnitCost()*int64(steps), cost)

	if z.row == hall {
		require.False(t, b.IsRoomEntry(z.col), "stopped on room entry")
		return
	}

	// Entered a room: it is the mover's own, every occupant matches, slot is deepest free.
	require.Equal(t, b.RoomColumn(colour), z.col)
	for d := 1; d <= b.Depth(); d++ {
		occupant, ok := before[cell{hall + d, z.col}]
		if ok {
			require.Equal(t, colour, occupant, "room accepted over a foreign colour")
		}
		if hall+d > z.row {
			require.True(t, ok, "entity left a gap beneath it")
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// explore walks the reachable state space breadth-first, validating every
// transition, up to limit states.
func explore(t *testing.T, b *burrow.Burrow, limit int) {
	t.Helper()
	seen := map[burrow.State]bool{b.Start(): true}
	queue := []burrow.State{b.Start()}
	for len(queue) > 0 && len(seen) < limit {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range b.Neighbours(cur) {
			checkMove(t, b, cur, e.To, e.Cost)
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	require.Greater(t, len(seen), 1)
}

func TestMovesAreSafe(t *testing.T) {
	explore(t, burrow.MustParse(canonical), 2000)
}

func TestMovesAreSafeUnfolded(t *testing.T) {
	in, err := burrow.Unfold(canonical)
	require.NoError(t, err)
	explore(t, burrow.MustParse(in), 2000)
}

func TestNeighboursDoNotMutate(t *testing.T) {
	b := burrow.MustParse(canonical)
	st := b.Start()
	snapshot := st.Positions()
	_ = b.Neighbours(st)
	require.Equal(t, snapshot, st.Positions())
	require.Equal(t, b.Start(), st)
}
