// Command amphipod solves amphipod organizer diagrams and prints the minimum
// total energy for each.
//
// Usage:
//
//	amphipod solve input.txt
//	amphipod solve --unfold input.txt other.txt
//	amphipod solve --config amphipod.yaml --verbose input.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "amphipod:", err)
		os.Exit(1)
	}
}
