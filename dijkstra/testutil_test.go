package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/gridgraph"
)

// cityGrid is the 13×13 reference block map.
const cityGrid = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// longRunGrid punishes short runs near the goal.
const longRunGrid = `111111111111
999999999991
999999999991
999999999991
999999999991
`

// mustParse parses text or fails the test.
func mustParse(tb testing.TB, text string) *gridgraph.CostGrid {
	tb.Helper()
	g, err := gridgraph.ParseString(text)
	require.NoError(tb, err)

	return g
}

// uniform returns an h×w grid where every cell costs v.
func uniform(tb testing.TB, h, w, v int) *gridgraph.CostGrid {
	tb.Helper()
	rows := make([][]int, h)
	for r := range rows {
		rows[r] = make([]int, w)
		for c := range rows[r] {
			rows[r][c] = v
		}
	}
	g, err := gridgraph.NewCostGrid(rows)
	require.NoError(tb, err)

	return g
}

// randomGrid returns an h×w grid of costs 1..9 from seed.
func randomGrid(tb testing.TB, h, w int, seed int64) *gridgraph.CostGrid {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, h)
	for r := range rows {
		rows[r] = make([]int, w)
		for c := range rows[r] {
			rows[r][c] = 1 + rng.Intn(9)
		}
	}
	g, err := gridgraph.NewCostGrid(rows)
	require.NoError(tb, err)

	return g
}

// runLengths splits dirs into maximal runs of one heading and returns their lengths.
func runLengths(dirs []dijkstra.Direction) []int {
	var runs []int
	for i, d := range dirs {
		if i == 0 || d != dirs[i-1] {
			runs = append(runs, 0)
		}
		runs[len(runs)-1]++
	}

	return runs
}

// checkPath asserts every structural property of a reconstructed path.
func checkPath(t *testing.T, g *gridgraph.CostGrid, start, goal gridgraph.Cell, c dijkstra.Constraint, res *dijkstra.Result) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	require.Equal(t, dijkstra.StartState(start), res.Path[0], "path must begin at the start state")
	require.Equal(t, goal, res.Path[len(res.Path)-1].Pos, "path must end at the goal")
	require.Equal(t, res.Terminal, res.Path[len(res.Path)-1])

	for _, s := range res.Path {
		require.True(t, g.Contains(s.Pos), "cell %v outside grid", s.Pos)
	}

	dirs := res.Directions()
	for i := 1; i < len(dirs); i++ {
		require.NotEqual(t, dirs[i-1].Reverse(), dirs[i], "reversal at move %d", i)
	}
	for i, n := range runLengths(dirs) {
		require.GreaterOrEqual(t, n, c.MinRun, "run %d too short", i)
		require.LessOrEqual(t, n, c.MaxRun, "run %d too long", i)
	}

	cost, err := dijkstra.PathCost(g, res.Path)
	require.NoError(t, err)
	require.Equal(t, res.Cost, cost, "path cost must equal reported cost")
}
