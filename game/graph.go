package game

import (
	"sort"

	"catan/utils"

	"github.com/pkg/errors"
)

// Graph is the static adjacency model between tiles, edges and vertices.
// It is built once and never mutated; every query returns a shared slice
// that callers must not modify.
type Graph struct {
	edgeVertices [][2]int
	vertexEdges  [][]int
	edgeEdges    [][]int
	vertexAdj    [][]int
	tileVertices [][]int
	vertexTiles  [][]int
}

// NewGraph derives every relation from the raw incidence data. It fails if
// any edge does not have exactly two distinct endpoints or an index is out
// of range; such a map cannot be played on.
func NewGraph(topo Topology) (*Graph, error) {
	numVertices := 0
	for _, vs := range topo.EdgeVertices {
		for _, v := range vs {
			numVertices = max(numVertices, v+1)
		}
	}
	for _, vs := range topo.TileVertices {
		for _, v := range vs {
			numVertices = max(numVertices, v+1)
		}
	}

	g := &Graph{
		edgeVertices: make([][2]int, len(topo.EdgeVertices)),
		vertexEdges:  make([][]int, numVertices),
		edgeEdges:    make([][]int, len(topo.EdgeVertices)),
		vertexAdj:    make([][]int, numVertices),
		tileVertices: make([][]int, len(topo.TileVertices)),
		vertexTiles:  make([][]int, numVertices),
	}

	for e, vs := range topo.EdgeVertices {
		if len(vs) != 2 {
			return nil, errors.Wrapf(ErrMalformedTopology, "road %d has %d endpoints", e, len(vs))
		}
		if vs[0] < 0 || vs[1] < 0 {
			return nil, errors.Wrapf(ErrMalformedTopology, "road %d has a negative endpoint", e)
		}
		if vs[0] == vs[1] {
			return nil, errors.Wrapf(ErrMalformedTopology, "road %d is a loop on vertex %d", e, vs[0])
		}
		g.edgeVertices[e] = [2]int{vs[0], vs[1]}
		g.vertexEdges[vs[0]] = append(g.vertexEdges[vs[0]], e)
		g.vertexEdges[vs[1]] = append(g.vertexEdges[vs[1]], e)
	}

	for t, vs := range topo.TileVertices {
		for _, v := range vs {
			if v < 0 {
				return nil, errors.Wrapf(ErrMalformedTopology, "tile %d covers a negative vertex", t)
			}
			g.tileVertices[t] = utils.AppendUnique(g.tileVertices[t], v)
			g.vertexTiles[v] = utils.AppendUnique(g.vertexTiles[v], t)
		}
	}

	for e, ends := range g.edgeVertices {
		for _, v := range ends {
			for _, other := range g.vertexEdges[v] {
				if other != e {
					g.edgeEdges[e] = utils.AppendUnique(g.edgeEdges[e], other)
				}
			}
			g.vertexAdj[v] = utils.AppendUnique(g.vertexAdj[v], g.Other(e, v))
		}
	}

	for _, rel := range [][][]int{g.vertexEdges, g.edgeEdges, g.vertexAdj, g.tileVertices, g.vertexTiles} {
		for _, s := range rel {
			sort.Ints(s)
		}
	}
	return g, nil
}

// NumVertices returns the number of settlement slots.
func (g *Graph) NumVertices() int { return len(g.vertexEdges) }

// NumEdges returns the number of road slots.
func (g *Graph) NumEdges() int { return len(g.edgeVertices) }

// NumTiles returns the number of hexes.
func (g *Graph) NumTiles() int { return len(g.tileVertices) }

// EdgeVertices returns the two endpoints of edge e.
func (g *Graph) EdgeVertices(e int) [2]int { return g.edgeVertices[e] }

// VertexEdges returns the roads touching vertex v.
func (g *Graph) VertexEdges(v int) []int { return g.vertexEdges[v] }

// EdgeEdges returns the roads sharing an endpoint with edge e.
func (g *Graph) EdgeEdges(e int) []int { return g.edgeEdges[e] }

// VertexNeighbors returns the vertices one road away from v.
func (g *Graph) VertexNeighbors(v int) []int { return g.vertexAdj[v] }

// TileVertices returns the vertices on the corners of tile t.
func (g *Graph) TileVertices(t int) []int { return g.tileVertices[t] }

// VertexTiles returns the tiles touching vertex v.
func (g *Graph) VertexTiles(v int) []int { return g.vertexTiles[v] }

// Other returns the endpoint of e opposite v.
func (g *Graph) Other(e, v int) int {
	ends := g.edgeVertices[e]
	if ends[0] == v {
		return ends[1]
	}
	return ends[0]
}

// EdgeBetween returns the road joining u and v, if any.
func (g *Graph) EdgeBetween(u, v int) (int, bool) {
	for _, e := range g.vertexEdges[u] {
		if g.Other(e, u) == v {
			return e, true
		}
	}
	return -1, false
}

func (g *Graph) validVertex(v int) bool { return v >= 0 && v < len(g.vertexEdges) }
func (g *Graph) validEdge(e int) bool   { return e >= 0 && e < len(g.edgeVertices) }
func (g *Graph) validTile(t int) bool   { return t >= 0 && t < len(g.tileVertices) }
