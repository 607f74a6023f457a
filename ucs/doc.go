// Package ucs provides uniform-cost search (Dijkstra's algorithm) over implicit
// graphs whose vertices are generated on demand.
//
// Overview:
//
//   - The graph is never materialized. A caller supplies an Expander that lists
//     the outgoing edges of a state, and a GoalFunc that recognizes targets.
//   - States are any comparable Go value. They key the best-cost map directly,
//     so two states are the same vertex iff they compare equal with ==.
//   - The search returns the minimum total cost from the start state to the
//     first goal state popped from the frontier.
//
// Search lifecycle:
//
//	Initialized ──Run──▶ Running ──goal popped──▶ Solved
//	                        │
//	                        └──frontier empty───▶ Exhausted (ErrUnsolvable)
//
// Implementation choices:
//
//   - “Lazy decrease-key”: improved states are pushed again and stale heap
//     entries are skipped when popped (cost > best[state]).
//   - Relaxation is strict (candidate < best), so equal-cost duplicates are
//     never pushed.
//   - The goal test runs on pop, not on push; with non-negative edges this is
//     what makes the first popped goal optimal.
//
// Complexity:
//
//   - Time:  O((V + E) log E) for V reached states and E generated edges.
//   - Space: O(V + E) for the best-cost map and the frontier.
//
// Errors (sentinel):
//
//   - ErrNilExpander   if New is called with a nil Expander.
//   - ErrNilGoal       if New is called with a nil GoalFunc.
//   - ErrNegativeCost  if the Expander yields an edge with negative cost.
//   - ErrUnsolvable    if the frontier empties before any goal is popped.
//
// Thread safety:
//
//   - An Engine owns its best-cost map and frontier exclusively; it must not be
//     shared by concurrent Run calls. Independent engines may run in parallel.
package ucs
