package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Tile is one hex of the board.
type Tile struct {
	Resource Resource // Desert for the desert hex
	Number   int      // Trigger number 2..12, 0 for the desert
	Robber   bool
}

// Produces reports whether the tile yields on roll.
func (t Tile) Produces(roll int) bool {
	return t.Resource != Desert && !t.Robber && t.Number == roll
}

// Pips returns the number of dot marks under the tile's number, i.e. the
// number of two-dice combinations out of 36 that trigger it.
func (t Tile) Pips() int {
	if t.Resource == Desert || t.Number < 2 || t.Number > 12 {
		return 0
	}
	return 6 - abs(7-t.Number)
}

// TileLayout selects how resources are dealt onto the hexes.
type TileLayout string

const (
	BasicTiles  TileLayout = "basic"  // Fixed beginner layout
	RandomTiles TileLayout = "random" // Shuffled resources, numbers dealt in spiral order
)

// Resources in spiral tile order for the basic layout.
var basicResources = [NumTiles]Resource{
	Brick, Wheat, Sheep, Sheep, Rock, Brick, Wood, Sheep, Rock, Wheat,
	Wheat, Wood, Rock, Wheat, Wood, Sheep, Brick, Wood, Desert,
}

// Trigger numbers, dealt in spiral order skipping the desert.
var numberOrder = [NumTiles - 1]int{5, 6, 11, 5, 8, 10, 9, 2, 10, 12, 9, 8, 3, 4, 3, 4, 6, 11}

// TileDeck holds the hexes and the robber position.
type TileDeck struct {
	tiles  []Tile
	robber int
}

// NewTileDeck deals resources and numbers onto the hexes. The robber starts
// on the desert.
func NewTileDeck(layout TileLayout, rng *rand.Rand) (*TileDeck, error) {
	resources := basicResources
	switch layout {
	case BasicTiles, "":
	case RandomTiles:
		rng.Shuffle(len(resources), func(i, j int) { resources[i], resources[j] = resources[j], resources[i] })
	default:
		return nil, fmt.Errorf("unknown tile layout %q", layout)
	}

	d := &TileDeck{tiles: make([]Tile, 0, NumTiles), robber: -1}
	numbers := numberOrder[:]
	for i, r := range resources {
		if r == Desert {
			d.tiles = append(d.tiles, Tile{Resource: Desert, Robber: true})
			d.robber = i
			continue
		}
		d.tiles = append(d.tiles, Tile{Resource: r, Number: numbers[0]})
		numbers = numbers[1:]
	}
	return d, nil
}

// Len returns the number of tiles.
func (d *TileDeck) Len() int { return len(d.tiles) }

// Tile returns a copy of tile t.
func (d *TileDeck) Tile(t int) Tile { return d.tiles[t] }

// Robber returns the tile currently holding the robber.
func (d *TileDeck) Robber() int { return d.robber }

// MoveRobber clears the robber from its tile and places it on t.
func (d *TileDeck) MoveRobber(t int) {
	if d.robber >= 0 {
		d.tiles[d.robber].Robber = false
	}
	d.tiles[t].Robber = true
	d.robber = t
}

// Desert returns the index of the desert tile, or -1.
func (d *TileDeck) Desert() int {
	for i, t := range d.tiles {
		if t.Resource == Desert {
			return i
		}
	}
	return -1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
