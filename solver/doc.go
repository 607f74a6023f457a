// Package solver wires diagram parsing, optional unfolding and the
// uniform-cost search into one call, and solves batches of independent
// puzzles concurrently.
//
// Configuration comes from Config, usually loaded from YAML:
//
//	unfold: true          # insert the two folded rows before parsing
//	unfold_rows: []       # custom rows; empty means burrow.FoldedRows
//	max_cost: 0           # 0 means no cap
//	log_every: 50000      # progress record every N expansions, 0 disables
//	workers: 4            # puzzles solved in parallel by SolveAll
//
// Each puzzle gets its own search engine, so concurrent solves share nothing.
package solver
