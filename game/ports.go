package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Port is a harbor kind on the coast. A resource port trades that resource
// 2:1; the wildcard port trades anything 3:1.
type Port int

const (
	NoPort Port = iota
	WildPort
	WoodPort
	BrickPort
	WheatPort
	RockPort
	SheepPort
)

func (p Port) String() string {
	switch p {
	case NoPort:
		return "None"
	case WildPort:
		return "Wild"
	}
	if r, ok := p.Resource(); ok {
		return r.String()
	}
	return fmt.Sprintf("Port(%d)", int(p))
}

// Resource returns the resource a specific port trades.
func (p Port) Resource() (Resource, bool) {
	if p >= WoodPort && p <= SheepPort {
		return Resource(p - WoodPort), true
	}
	return 0, false
}

// PortFor returns the 2:1 port for r.
func PortFor(r Resource) Port {
	return WoodPort + Port(r)
}

// PortLayout selects how harbors are laid along the coast.
type PortLayout string

const (
	StandardPorts  PortLayout = "standard"  // Fixed printed layout
	RotatedPorts   PortLayout = "rotated"   // Printed layout rotated by a random number of sides
	ScrambledPorts PortLayout = "scrambled" // Printed slots with shuffled kinds
)

// The coast is cut into six sides of five coastal edges each. A harbor on
// coastal edge k serves both of its endpoints.
const sideLength = CoastLength / 6

var standardSides = [6][sideLength]Port{
	{NoPort, NoPort, WildPort, NoPort, NoPort},
	{WildPort, NoPort, NoPort, BrickPort, NoPort},
	{NoPort, NoPort, WoodPort, NoPort, NoPort},
	{WildPort, NoPort, NoPort, WheatPort, NoPort},
	{NoPort, NoPort, RockPort, NoPort, NoPort},
	{WildPort, NoPort, NoPort, SheepPort, NoPort},
}

// Ports maps each vertex to the harbor it may use.
type Ports struct {
	byVertex []Port
	byEdge   [CoastLength]Port
}

// NewPorts lays out harbors on a graph built from StandardTopology.
func NewPorts(g *Graph, layout PortLayout, rng *rand.Rand) (*Ports, error) {
	sides := standardSides
	switch layout {
	case StandardPorts, "":
	case RotatedPorts:
		shift := rng.Intn(len(sides))
		for i := range sides {
			sides[i] = standardSides[(i+shift)%len(sides)]
		}
	case ScrambledPorts:
		var kinds []Port
		for _, side := range sides {
			for _, p := range side {
				if p != NoPort {
					kinds = append(kinds, p)
				}
			}
		}
		rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })
		for i := range sides {
			for j := range sides[i] {
				if sides[i][j] != NoPort {
					sides[i][j], kinds = kinds[0], kinds[1:]
				}
			}
		}
	default:
		return nil, fmt.Errorf("unknown port layout %q", layout)
	}
	if g.NumEdges() < CoastLength {
		return nil, fmt.Errorf("graph has %d roads, need a %d-edge coast", g.NumEdges(), CoastLength)
	}

	ports := &Ports{byVertex: make([]Port, g.NumVertices())}
	for i, side := range sides {
		for j, p := range side {
			e := i*sideLength + j
			ports.byEdge[e] = p
			if p == NoPort {
				continue
			}
			for _, v := range g.EdgeVertices(e) {
				ports.byVertex[v] = p
			}
		}
	}
	return ports, nil
}

// At returns the harbor at vertex v, or NoPort.
func (p *Ports) At(v int) Port {
	if v < 0 || v >= len(p.byVertex) {
		return NoPort
	}
	return p.byVertex[v]
}

// Harbors returns the port on each coastal edge, in coast order.
func (p *Ports) Harbors() []Port {
	out := make([]Port, CoastLength)
	copy(out, p.byEdge[:])
	return out
}
