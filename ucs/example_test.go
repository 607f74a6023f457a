// Package ucs_test provides runnable examples of the search engine.
package ucs_test

import (
	"fmt"

	"github.com/katalvlaran/amphipod/ucs"
)

// ExampleSearch finds the cheapest way to reach 10 from 1 when doubling costs 3
// and incrementing costs 1. States are generated on demand; the graph is never built.
func ExampleSearch() {
	expand := func(n int) []ucs.Edge[int] {
		if n > 10 {
			return nil
		}
		return []ucs.Edge[int]{
			{To: n + 1, Cost: 1},
			{To: n * 2, Cost: 3},
		}
	}
	cost, err := ucs.Search(1, expand, func(n int) bool { return n == 10 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", cost)
	// Output: cost: 7
}
