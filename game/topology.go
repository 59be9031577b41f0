package game

import "sort"

// Dimensions of the standard board.
const (
	NumTiles    = 19
	NumVertices = 54
	NumEdges    = 72
	// CoastLength is the number of coastal vertices, and of coastal edges.
	// Vertices 0..CoastLength-1 run around the coast in ring order, and edge
	// k (k < CoastLength) joins vertex k and vertex k+1 (mod CoastLength).
	CoastLength = 30
)

// Topology holds the two raw incidence relations the graph is derived from.
type Topology struct {
	EdgeVertices [][]int // Endpoint vertices per edge
	TileVertices [][]int // Covered vertices per tile
}

type axial struct{ q, r int }

// Axial neighbor offsets, counterclockwise from east.
var hexDirections = [6]axial{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}}

// corner is a hex corner on an integer lattice: x counts half hex-widths and
// y counts quarter hex-heights, so every corner has integer coordinates.
type corner struct{ x, y int }

// Corner offsets of a pointy-top hex, clockwise from the top.
var cornerOffsets = [6]corner{{0, -2}, {1, -1}, {1, 1}, {0, 2}, {-1, 1}, {-1, -1}}

func (a axial) center() corner {
	return corner{x: 2*a.q + a.r, y: 3 * a.r}
}

// ring lists the hexes at distance radius from the origin, starting at the
// top-left and walking counterclockwise.
func ring(radius int) []axial {
	if radius == 0 {
		return []axial{{0, 0}}
	}
	const start = 2
	cur := axial{hexDirections[start].q * radius, hexDirections[start].r * radius}
	hexes := make([]axial, 0, 6*radius)
	for i := 0; i < 6; i++ {
		dir := hexDirections[(start+2+i)%6]
		for j := 0; j < radius; j++ {
			hexes = append(hexes, cur)
			cur = axial{cur.q + dir.q, cur.r + dir.r}
		}
	}
	return hexes
}

// StandardTopology generates the incidence relations of the 19-hex board.
// Tiles are numbered in the spiral order numbers are dealt in: the outer
// ring from the top-left tile, the inner ring, then the center.
func StandardTopology() Topology {
	var hexes []axial
	for radius := 2; radius >= 0; radius-- {
		hexes = append(hexes, ring(radius)...)
	}

	type span struct{ a, b corner }
	mkSpan := func(a, b corner) span {
		if b.y < a.y || (b.y == a.y && b.x < a.x) {
			a, b = b, a
		}
		return span{a, b}
	}

	tileCorners := make([][6]corner, len(hexes))
	cornerTiles := make(map[corner]int)
	spanTiles := make(map[span]int)
	var spans []span
	for t, h := range hexes {
		c := h.center()
		for k, off := range cornerOffsets {
			tileCorners[t][k] = corner{c.x + off.x, c.y + off.y}
			cornerTiles[tileCorners[t][k]]++
		}
		for k := range cornerOffsets {
			s := mkSpan(tileCorners[t][k], tileCorners[t][(k+1)%6])
			if spanTiles[s] == 0 {
				spans = append(spans, s)
			}
			spanTiles[s]++
		}
	}

	// Walk the coast: coastal spans border exactly one tile.
	coastNeighbors := make(map[corner][]corner)
	for _, s := range spans {
		if spanTiles[s] == 1 {
			coastNeighbors[s.a] = append(coastNeighbors[s.a], s.b)
			coastNeighbors[s.b] = append(coastNeighbors[s.b], s.a)
		}
	}
	var start corner
	first := true
	for c := range coastNeighbors {
		if first || c.y < start.y || (c.y == start.y && c.x < start.x) {
			start, first = c, false
		}
	}
	next := coastNeighbors[start][0]
	if alt := coastNeighbors[start][1]; alt.x > next.x {
		next = alt
	}
	coast := []corner{start}
	prev, cur := start, next
	for cur != start {
		coast = append(coast, cur)
		n := coastNeighbors[cur]
		step := n[0]
		if step == prev {
			step = n[1]
		}
		prev, cur = cur, step
	}

	vertexID := make(map[corner]int, len(cornerTiles))
	for i, c := range coast {
		vertexID[c] = i
	}
	var inland []corner
	for c := range cornerTiles {
		if _, ok := vertexID[c]; !ok {
			inland = append(inland, c)
		}
	}
	sort.Slice(inland, func(i, j int) bool {
		if inland[i].y != inland[j].y {
			return inland[i].y < inland[j].y
		}
		return inland[i].x < inland[j].x
	})
	for _, c := range inland {
		vertexID[c] = len(vertexID)
	}

	var topo Topology
	for i := range coast {
		topo.EdgeVertices = append(topo.EdgeVertices, []int{i, (i + 1) % len(coast)})
	}
	var inner [][]int
	for _, s := range spans {
		if spanTiles[s] == 1 {
			continue
		}
		a, b := vertexID[s.a], vertexID[s.b]
		if a > b {
			a, b = b, a
		}
		inner = append(inner, []int{a, b})
	}
	sort.Slice(inner, func(i, j int) bool {
		if inner[i][0] != inner[j][0] {
			return inner[i][0] < inner[j][0]
		}
		return inner[i][1] < inner[j][1]
	})
	topo.EdgeVertices = append(topo.EdgeVertices, inner...)

	for t := range hexes {
		vs := make([]int, 0, 6)
		for _, c := range tileCorners[t] {
			vs = append(vs, vertexID[c])
		}
		topo.TileVertices = append(topo.TileVertices, vs)
	}
	return topo
}
