// Package dijkstra_test provides examples demonstrating the constrained search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
)

// ExampleSolve demonstrates the two classic configurations on the 13×13 block map:
// short hops with at most 3 moves per run, and long runs of 4 to 10 moves.
// Complexity: O(S log S), S ≤ 4·MaxRun·W·H states.
func ExampleSolve() {
	// 1) Parse the grid; each digit is the cost of entering that block.
	g, err := gridgraph.ParseString(cityGrid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 2) Cross from the top-left to the bottom-right corner.
	start, goal := g.Corners()

	// 3) Solve once per configuration over the same grid.
	short, _ := dijkstra.Solve(g, start, goal, 1, 3)
	long, _ := dijkstra.Solve(g, start, goal, 4, 10)
	fmt.Println(short)
	fmt.Println(long)
	// Output:
	// 102
	// 94
}

// ExampleSearch_path demonstrates path reconstruction with WithReturnPath.
//
//	1 9 9
//	1 9 9
//	1 1 1
//
// The only cheap route runs down the left column and along the bottom row.
func ExampleSearch_path() {
	g, _ := gridgraph.NewCostGrid([][]int{
		{1, 9, 9},
		{1, 9, 9},
		{1, 1, 1},
	})
	start, goal := g.Corners()
	res, err := dijkstra.Search(g, start, goal, dijkstra.Constraint{MinRun: 1, MaxRun: 3}, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("cost=%d moves=%s end=%v\n", res.Cost, res.Arrows(), res.Terminal)
	// Output: cost=4 moves=vv>> end=(2,2) Right×2
}

// ExampleSearch_unreachable shows the failure when no run fits: a 2×4 grid
// cannot hold a straight run of 5 in either axis.
func ExampleSearch_unreachable() {
	g, _ := gridgraph.ParseString("1111\n1111\n")
	start, goal := g.Corners()
	_, err := dijkstra.Search(g, start, goal, dijkstra.Constraint{MinRun: 5, MaxRun: 10})
	fmt.Println(err)
	// Output: dijkstra: goal unreachable under run constraints: (1,3) not reached with run >= 5 after 5 states
}

// ExampleSolveAll runs both configurations concurrently over one shared grid.
func ExampleSolveAll() {
	g, _ := gridgraph.ParseString(cityGrid)
	start, goal := g.Corners()
	cs := []dijkstra.Constraint{{MinRun: 1, MaxRun: 3}, {MinRun: 4, MaxRun: 10}}
	results, err := dijkstra.SolveAll(context.Background(), g, start, goal, cs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, r := range results {
		fmt.Printf("%v -> %d\n", cs[i], r.Cost)
	}
	// Output:
	// 1:3 -> 102
	// 4:10 -> 94
}

// ExampleSolve_longRuns shows a map where long runs are forced to detour:
// with 4 to 10 moves per run the route cannot turn down early.
func ExampleSolve_longRuns() {
	g, _ := gridgraph.ParseString(longRunGrid)
	start, goal := g.Corners()
	cost, err := dijkstra.Solve(g, start, goal, 4, 10)
	fmt.Println(cost, err)
	// Output: 71 <nil>
}
