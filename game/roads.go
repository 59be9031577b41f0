package game

import "github.com/emirpasic/gods/stacks/arraystack"

// edgeSet is a bitset over road ids, copied by value into each search frame.
type edgeSet [2]uint64

func (s edgeSet) has(e int) bool { return s[e>>6]&(1<<(uint(e)&63)) != 0 }

func (s edgeSet) with(e int) edgeSet {
	s[e>>6] |= 1 << (uint(e) & 63)
	return s
}

// frame is one pending step of the depth-first crawl: standing on vertex
// having walked depth roads, none of which may be walked again.
type frame struct {
	vertex int
	depth  int
	used   edgeSet
}

// LongestRoad returns the length, in roads, of the longest trail in the
// player's road network. A trail never reuses a road but may pass a vertex
// twice, so a fork counts only its two longest arms.
//
// Every vertex touched by the player's roads is a search root, so separate
// networks and closed loops are all covered. The result is the maximum over
// all roots.
func LongestRoad(g *Graph, roads []int, player int) int {
	if player <= 0 {
		return 0
	}
	owned := func(e int) bool { return roads[e] == player }

	touched := make(map[int]bool)
	for e, owner := range roads {
		if owner != player {
			continue
		}
		for _, v := range g.EdgeVertices(e) {
			touched[v] = true
		}
	}
	if len(touched) == 0 {
		return 0
	}

	longest := 0
	stack := arraystack.New()
	for root := range touched {
		stack.Push(frame{vertex: root})
		for !stack.Empty() {
			top, _ := stack.Pop()
			f := top.(frame)
			longest = max(longest, f.depth)
			for _, e := range g.VertexEdges(f.vertex) {
				if !owned(e) || f.used.has(e) {
					continue
				}
				stack.Push(frame{
					vertex: g.Other(e, f.vertex),
					depth:  f.depth + 1,
					used:   f.used.with(e),
				})
			}
		}
	}
	return longest
}
