package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTileDeck(t *testing.T) {
	t.Run("basic layout", func(t *testing.T) {
		deck, err := NewTileDeck(BasicTiles, nil)
		require.NoError(t, err)
		require.Equal(t, NumTiles, deck.Len())
		require.Equal(t, Tile{Resource: Brick, Number: 5}, deck.Tile(0))
		require.Equal(t, 18, deck.Desert())
		require.Equal(t, 18, deck.Robber(), "robber should start on the desert")
		require.True(t, deck.Tile(18).Robber)
	})

	t.Run("random layout keeps the resource mix", func(t *testing.T) {
		deck, err := NewTileDeck(RandomTiles, rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		counts := make(map[Resource]int)
		numbers := make(map[int]int)
		for i := 0; i < deck.Len(); i++ {
			tile := deck.Tile(i)
			counts[tile.Resource]++
			numbers[tile.Number]++
			if tile.Resource == Desert {
				require.Equal(t, 0, tile.Number)
				require.Equal(t, i, deck.Robber())
			}
		}
		require.Equal(t, map[Resource]int{Desert: 1, Wood: 4, Sheep: 4, Wheat: 4, Brick: 3, Rock: 3}, counts)
		require.Equal(t, 1, numbers[2])
		require.Equal(t, 2, numbers[8])
		require.Equal(t, 0, numbers[7])
	})

	t.Run("unknown layout", func(t *testing.T) {
		_, err := NewTileDeck("hexagonal", nil)
		require.Error(t, err)
	})

	t.Run("robber blocks production", func(t *testing.T) {
		deck, _ := NewTileDeck(BasicTiles, nil)
		require.True(t, deck.Tile(0).Produces(5))
		deck.MoveRobber(0)
		require.False(t, deck.Tile(0).Produces(5))
		require.False(t, deck.Tile(18).Robber, "robber should leave the desert")
		require.Equal(t, 0, deck.Robber())
	})

	t.Run("pips", func(t *testing.T) {
		require.Equal(t, 5, Tile{Resource: Wood, Number: 6}.Pips())
		require.Equal(t, 1, Tile{Resource: Wood, Number: 12}.Pips())
		require.Equal(t, 0, Tile{Resource: Desert}.Pips())
	})
}

func TestPorts(t *testing.T) {
	g, err := NewGraph(StandardTopology())
	require.NoError(t, err)

	t.Run("standard layout", func(t *testing.T) {
		ports, err := NewPorts(g, StandardPorts, nil)
		require.NoError(t, err)
		require.Equal(t, NoPort, ports.At(0))
		require.Equal(t, WildPort, ports.At(2))
		require.Equal(t, WildPort, ports.At(3))
		require.Equal(t, BrickPort, ports.At(8))
		require.Equal(t, SheepPort, ports.At(29))
		require.Equal(t, NoPort, ports.At(40), "inland vertices have no harbor")
		require.Equal(t, NoPort, ports.At(-1))
	})

	t.Run("every layout deals nine harbors", func(t *testing.T) {
		for _, layout := range []PortLayout{StandardPorts, RotatedPorts, ScrambledPorts} {
			ports, err := NewPorts(g, layout, rand.New(rand.NewSource(3)))
			require.NoError(t, err)

			kinds := make(map[Port]int)
			for _, p := range ports.Harbors() {
				kinds[p]++
			}
			require.Equal(t, 4, kinds[WildPort], "layout %s", layout)
			for r := Wood; r <= Sheep; r++ {
				require.Equal(t, 1, kinds[PortFor(r)], "layout %s port %s", layout, r)
			}
		}
	})

	t.Run("port resources", func(t *testing.T) {
		r, ok := RockPort.Resource()
		require.True(t, ok)
		require.Equal(t, Rock, r)
		_, ok = WildPort.Resource()
		require.False(t, ok)
	})
}
