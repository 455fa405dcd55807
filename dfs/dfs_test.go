package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toposort/dfs"
	"github.com/katalvlaran/toposort/matrix"
	"github.com/katalvlaran/toposort/order"
)

// diamondDAG is the six-vertex DAG with edges
// 0→1, 0→2, 1→3, 1→4, 2→4, 2→5, 3→5, 4→5.
func diamondDAG() matrix.Adjacency[int] {
	return matrix.Adjacency[int]{
		{0, 1, 1, 0, 0, 0}, // 0 → 1,2
		{0, 0, 0, 1, 1, 0}, // 1 → 3,4
		{0, 0, 0, 0, 1, 1}, // 2 → 4,5
		{0, 0, 0, 0, 0, 1}, // 3 → 5
		{0, 0, 0, 0, 0, 1}, // 4 → 5
		{0, 0, 0, 0, 0, 0}, // 5
	}
}

// TestSort_InvalidGraph verifies the matrix sentinels propagate unchanged.
func TestSort_InvalidGraph(t *testing.T) {
	_, err := dfs.Sort[int](nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = dfs.Sort(matrix.Adjacency[int]{})
	assert.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	_, err = dfs.SortWithTimes(matrix.Adjacency[int]{{0, 1}, nil})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestSortWithTimes_SingleVertex pins the smallest traversal: one push, one
// pop, clock values 1 and 2.
func TestSortWithTimes_SingleVertex(t *testing.T) {
	res, err := dfs.SortWithTimes(matrix.Adjacency[int]{{0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, []int{1}, res.Enter)
	assert.Equal(t, []int{2}, res.Exit)
	assert.Equal(t, []int{1}, res.Duration)
}

// TestSortWithTimes_DiamondDAG pins the full timestamping of the shared
// six-vertex DAG. Discovery runs 0,1,3,5 then backtracks to pick up 4 and 2,
// yielding exit times 12,9,11,6,8,5 and the order 0,2,1,4,3,5.
func TestSortWithTimes_DiamondDAG(t *testing.T) {
	res, err := dfs.SortWithTimes(diamondDAG())
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 10, 3, 7, 4}, res.Enter)
	assert.Equal(t, []int{12, 9, 11, 6, 8, 5}, res.Exit)
	assert.Equal(t, []int{11, 7, 1, 3, 1, 1}, res.Duration)
	assert.Equal(t, []int{0, 2, 1, 4, 3, 5}, res.Order)

	ok, err := order.Valid(diamondDAG(), res.Order)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestSort_MatchesSortWithTimes confirms the plain variant is exactly the
// Order field of the detailed one.
func TestSort_MatchesSortWithTimes(t *testing.T) {
	plain, err := dfs.Sort(diamondDAG())
	require.NoError(t, err)
	detailed, err := dfs.SortWithTimes(diamondDAG())
	require.NoError(t, err)
	assert.Equal(t, detailed.Order, plain)
}

// TestSort_CrossTreeEdge covers a later DFS tree pointing into an earlier
// one (edges 0→2 and 1→0): vertex 1 is discovered last but must be ordered
// first, which exit times guarantee even though durations tie at 1.
func TestSort_CrossTreeEdge(t *testing.T) {
	g := matrix.Adjacency[int]{
		{0, 0, 1}, // 0 → 2
		{1, 0, 0}, // 1 → 0
		{0, 0, 0}, // 2
	}
	res, err := dfs.SortWithTimes(g)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 6, 3}, res.Exit)
	assert.Equal(t, []int{3, 1, 1}, res.Duration)
	assert.Equal(t, []int{1, 0, 2}, res.Order)

	ok, err := order.Valid(g, res.Order)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestSort_DisconnectedChains verifies a single call covers the whole forest
// with one running clock: chains 0→1 and 2→3 merge into one valid order.
func TestSort_DisconnectedChains(t *testing.T) {
	g := matrix.Adjacency[int]{
		{0, 1, 0, 0}, // 0 → 1
		{0, 0, 0, 0}, // 1
		{0, 0, 0, 1}, // 2 → 3
		{0, 0, 0, 0}, // 3
	}
	res, err := dfs.SortWithTimes(g)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 5, 6}, res.Enter)
	assert.Equal(t, []int{4, 3, 8, 7}, res.Exit)
	assert.Equal(t, []int{2, 3, 0, 1}, res.Order)

	ok, err := order.Valid(g, res.Order)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestSort_Cycle ensures a 3-cycle fails with ErrCycleDetected instead of
// recursing forever, and that the back-edge is named in the error.
func TestSort_Cycle(t *testing.T) {
	g := matrix.Adjacency[int]{
		{0, 1, 0}, // 0 → 1
		{0, 0, 1}, // 1 → 2
		{1, 0, 0}, // 2 → 0
	}
	res, err := dfs.SortWithTimes(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "2→0")
	assert.Nil(t, res)
}

// TestSort_SelfLoop treats a self-loop as a back-edge into the current frame.
func TestSort_SelfLoop(t *testing.T) {
	g := matrix.Adjacency[int]{
		{0, 1},
		{0, 1}, // 1 → 1
	}
	_, err := dfs.Sort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestSort_DeepChain sorts a long linear chain; the explicit frame stack
// keeps depth off the call stack.
func TestSort_DeepChain(t *testing.T) {
	const n = 4096
	g := make(matrix.Adjacency[bool], n)
	for i := range g {
		g[i] = make([]bool, n)
	}
	for i := 0; i < n-1; i++ {
		g[i][i+1] = true
	}

	res, err := dfs.SortWithTimes(g)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.Equal(t, i, res.Order[i])
	}
	// The head of the chain stays on the stack for the entire traversal.
	assert.Equal(t, 2*n-1, res.Duration[0])
	assert.Equal(t, 1, res.Duration[n-1])
}

// TestSort_Hooks checks pre-order and post-order hook sequences on the
// shared DAG.
func TestSort_Hooks(t *testing.T) {
	var visits, exits []int
	_, err := dfs.Sort(diamondDAG(),
		dfs.WithOnVisit(func(v int) error {
			visits = append(visits, v)
			return nil
		}),
		dfs.WithOnExit(func(v int) error {
			exits = append(exits, v)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 5, 4, 2}, visits)
	assert.Equal(t, []int{5, 3, 4, 1, 2, 0}, exits)
}

// TestSort_HookAbort propagates a hook error and aborts the traversal.
func TestSort_HookAbort(t *testing.T) {
	boom := errors.New("boom")
	_, err := dfs.Sort(diamondDAG(), dfs.WithOnVisit(func(v int) error {
		if v == 3 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "OnVisit")
}

// TestSort_Canceled aborts with the context error on the first discovery.
func TestSort_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Sort(diamondDAG(), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSort_Deterministic re-runs the sorter on an unchanged graph.
func TestSort_Deterministic(t *testing.T) {
	g := diamondDAG()
	first, err := dfs.SortWithTimes(g)
	require.NoError(t, err)
	second, err := dfs.SortWithTimes(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
