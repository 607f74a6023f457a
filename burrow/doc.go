// SPDX-License-Identifier: MIT
// Package: amphipod/burrow
//
// Package burrow models the amphipod organizer puzzle: a hallway with four
// side rooms, one destination room per colour, and typed entities that must be
// moved home at minimum total cost.
//
// Model:
//
//	#############
//	#...........#   ← hallway row (offsets are map columns)
//	###B#C#B#D###   ← depth 1 of each room
//	  #A#D#C#A#     ← depth 2
//	  #########
//
//   - Map holds the static geometry: open cells, hallway range, room columns
//     (A, B, C, D from left to right) and the room depth.
//   - Position is a tagged union over three kinds: StartRoom(depth, col),
//     Hallway(col), DestRoom(depth). A DestRoom position always lies in the
//     entity's own room.
//   - State is an immutable, comparable configuration of every entity. It is
//     used directly as the key of the search engine's best-cost map.
//
// Movement rules enforced by Neighbours:
//
//   - an entity never passes through or stops on an occupied cell;
//   - an entity never stops on a hallway cell directly above a room;
//   - a room accepts an entity only when every occupant has the same colour,
//     and the entity drops to the deepest free slot;
//   - a settled (DestRoom) entity never moves again;
//   - a hallway entity only moves into its own room.
//
// Step cost is unit cost (A=1, B=10, C=100, D=1000) times cells traversed.
//
// Errors:
//
//   - ErrParse wraps every *ParseError returned by Parse and Unfold.
package burrow
