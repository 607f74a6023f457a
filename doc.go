// Package amphipod finds the minimum-energy way to sort amphipods into their
// side rooms.
//
// The module is organized in layers:
//
//	ucs/           generic uniform-cost search over implicit graphs
//	burrow/        the puzzle: map, positions, configurations, move legality
//	solver/        parse, unfold and search; YAML config; concurrent batches
//	cmd/amphipod/  command-line front end
//
// Quick example:
//
//	#############
//	#...........#
//	###B#C#B#D###      burrow.MustParse(diagram).Solve() → 12521
//	  #A#D#C#A#
//	  #########
//
// Configurations are plain comparable values and the search keeps its
// best-cost map per run, so independent puzzles can be solved in parallel.
package amphipod
