// Package ucs implements uniform-cost search over implicit graphs.
//
// The engine keeps a best-cost map and a min-heap frontier per Run. It pops
// the cheapest entry, discards it if stale, returns on goal, and otherwise
// relaxes every edge produced by the Expander.
package ucs

import (
	"container/heap"
	"fmt"
	"log/slog"
)

// Engine runs uniform-cost searches for one Expander/GoalFunc pair.
// The best-cost map of the most recent Run stays readable until the next Run.
type Engine[S comparable] struct {
	expand  Expander[S]
	goal    GoalFunc[S]
	options Options

	best  map[S]int64 // state → cheapest cumulative cost discovered so far
	pq    entryPQ[S]  // lazy frontier; may hold stale duplicates
	phase Phase
	stats Stats
}

// New builds an engine. expand and goal must be non-nil.
//
// Preconditions and validation (in order):
//  1. expand must be non-nil (ErrNilExpander).
//  2. goal must be non-nil (ErrNilGoal).
func New[S comparable](expand Expander[S], goal GoalFunc[S], opts ...Option) (*Engine[S], error) {
	if expand == nil {
		return nil, ErrNilExpander
	}
	if goal == nil {
		return nil, ErrNilGoal
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine[S]{
		expand:  expand,
		goal:    goal,
		options: cfg,
		phase:   Initialized,
	}, nil
}

// Search is a one-shot helper: New followed by Run.
func Search[S comparable](start S, expand Expander[S], goal GoalFunc[S], opts ...Option) (int64, error) {
	e, err := New(expand, goal, opts...)
	if err != nil {
		return 0, err
	}

	return e.Run(start)
}

// Run searches from start and returns the minimum cost of reaching a goal.
//
// Every call starts from a fresh best-cost map and frontier, so repeated runs
// on the same engine are independent.
//
// Returns:
//
//   - the optimal cost when a goal is popped (phase Solved);
//   - ErrUnsolvable when the frontier empties first (phase Exhausted);
//   - ErrNegativeCost, wrapped with context, when an edge cost is negative.
func (e *Engine[S]) Run(start S) (int64, error) {
	e.reset(start)
	log := e.options.Logger
	log.Debug("ucs: search started")

	e.phase = Running
	cost, err := e.process()
	switch {
	case err == nil:
		e.phase = Solved
		log.Debug("ucs: search solved", slog.Int64("cost", cost), slog.Int("states", len(e.best)),
			slog.Int("expanded", e.stats.Expanded))
	case err == ErrUnsolvable:
		e.phase = Exhausted
		log.Warn("ucs: frontier exhausted", slog.Int("states", len(e.best)),
			slog.Int("expanded", e.stats.Expanded))
	default:
		// A negative edge aborts the loop; the phase stays Running.
		log.Error("ucs: search aborted", slog.Any("err", err))
	}

	return cost, err
}

// BestCost returns the cheapest cost known for s after the last Run.
// ok is false if s was never reached.
func (e *Engine[S]) BestCost(s S) (cost int64, ok bool) {
	cost, ok = e.best[s]
	return cost, ok
}

// Reached returns the number of distinct states in the best-cost map.
func (e *Engine[S]) Reached() int { return len(e.best) }

// Phase reports where the last Run ended (or Initialized before any Run).
func (e *Engine[S]) Phase() Phase { return e.phase }

// Stats returns the counters of the last Run.
func (e *Engine[S]) Stats() Stats { return e.stats }

// reset seeds BestCost = {start: 0} and Frontier = {(0, start)}.
func (e *Engine[S]) reset(start S) {
	e.best = map[S]int64{start: 0}
	e.pq = make(entryPQ[S], 0, 64)
	e.stats = Stats{}
	e.phase = Initialized

	heap.Init(&e.pq)
	e.push(start, 0)
}

// process is the main loop. It returns the cost of the first goal popped.
func (e *Engine[S]) process() (int64, error) {
	for e.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&e.pq).(*entry[S])
		e.stats.Popped++

		// 2) Skip stale duplicates superseded by a cheaper push.
		if item.cost > e.best[item.state] {
			e.stats.Stale++
			continue
		}
		if e.options.OnPop != nil {
			e.options.OnPop(item.cost)
		}

		// 3) Goal on pop is optimal; nothing left to relax.
		if e.goal(item.state) {
			return item.cost, nil
		}

		// 4) Expand and relax.
		if err := e.relax(item.state, item.cost); err != nil {
			return 0, err
		}
	}

	return 0, ErrUnsolvable
}

// relax pushes every successor of s whose candidate cost strictly improves on
// its best known cost.
func (e *Engine[S]) relax(s S, cost int64) error {
	e.stats.Expanded++
	if n := e.options.LogEvery; n > 0 && e.stats.Expanded%n == 0 {
		e.options.Logger.Debug("ucs: progress",
			slog.Int("expanded", e.stats.Expanded),
			slog.Int64("cost", cost),
			slog.Int("frontier", e.pq.Len()),
			slog.Int("states", len(e.best)))
	}

	for _, edge := range e.expand(s) {
		if edge.Cost < 0 {
			return fmt.Errorf("%w: step cost=%d at cumulative cost=%d", ErrNegativeCost, edge.Cost, cost)
		}

		candidate := cost + edge.Cost
		if candidate > e.options.MaxCost {
			continue
		}

		known, seen := e.best[edge.To]
		if seen && candidate >= known {
			continue
		}
		if seen {
			e.stats.Improved++
		}
		e.best[edge.To] = candidate
		e.push(edge.To, candidate)
	}

	return nil
}

func (e *Engine[S]) push(s S, cost int64) {
	heap.Push(&e.pq, &entry[S]{state: s, cost: cost})
	e.stats.Pushed++
	if n := e.pq.Len(); n > e.stats.MaxFrontier {
		e.stats.MaxFrontier = n
	}
}

// entry is one frontier element: a state and the cumulative cost it was pushed with.
type entry[S comparable] struct {
	state S
	cost  int64
}

// entryPQ is a min-heap of *entry ordered by cost ascending.
type entryPQ[S comparable] []*entry[S]

// Len returns the number of items in the heap.
func (pq entryPQ[S]) Len() int { return len(pq) }

// Less orders by cumulative cost; ties are left to the heap.
func (pq entryPQ[S]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq entryPQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be an *entry[S]. Called by heap.Push.
func (pq *entryPQ[S]) Push(x any) { *pq = append(*pq, x.(*entry[S])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *entryPQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
