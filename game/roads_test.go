package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func roadsOf(owner int, edges ...int) []int {
	roads := make([]int, NumEdges)
	for _, e := range edges {
		roads[e] = owner
	}
	return roads
}

func TestLongestRoad(t *testing.T) {
	g, err := NewGraph(StandardTopology())
	require.NoError(t, err)

	t.Run("no roads", func(t *testing.T) {
		require.Equal(t, 0, LongestRoad(g, make([]int, NumEdges), 1))
	})

	t.Run("chain along the coast", func(t *testing.T) {
		for k := 1; k <= 8; k++ {
			edges := make([]int, k)
			for i := range edges {
				edges[i] = i
			}
			require.Equal(t, k, LongestRoad(g, roadsOf(1, edges...), 1), "chain of %d", k)
		}
	})

	t.Run("fork counts its two longest arms", func(t *testing.T) {
		// Arms out of vertex 30: 30-1-0-29, 30-32-35 and 30-33.
		roads := roadsOf(1, 30, 0, 29, 42, 46, 43)
		require.Equal(t, 5, LongestRoad(g, roads, 1))
	})

	t.Run("loop around a tile", func(t *testing.T) {
		roads := roadsOf(1, 0, 30, 42, 41, 28, 29)
		require.Equal(t, 6, LongestRoad(g, roads, 1))
	})

	t.Run("loop with a tail", func(t *testing.T) {
		roads := roadsOf(1, 0, 30, 42, 41, 28, 29, 1, 2)
		require.Equal(t, 8, LongestRoad(g, roads, 1))
	})

	t.Run("other players' roads are ignored", func(t *testing.T) {
		roads := roadsOf(1, 0, 1, 2)
		roads[3] = 2
		roads[4] = 2
		require.Equal(t, 3, LongestRoad(g, roads, 1))
		require.Equal(t, 2, LongestRoad(g, roads, 2))
	})

	t.Run("disjoint segments report the longer", func(t *testing.T) {
		roads := roadsOf(1, 0, 1, 10, 11, 12)
		require.Equal(t, 3, LongestRoad(g, roads, 1))
	})

	t.Run("disjoint loop and segment", func(t *testing.T) {
		roads := roadsOf(1, 0, 30, 42, 41, 28, 29, 10)
		require.Equal(t, 6, LongestRoad(g, roads, 1))
	})

	t.Run("repeatable", func(t *testing.T) {
		roads := roadsOf(1, 30, 0, 29, 42, 46, 43)
		first := LongestRoad(g, roads, 1)
		require.Equal(t, first, LongestRoad(g, roads, 1))
		require.Equal(t, 0, LongestRoad(g, roads, 0))
	})
}
