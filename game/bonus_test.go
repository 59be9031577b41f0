package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBonusTrackerLongestRoad(t *testing.T) {
	t.Run("first award needs five roads", func(t *testing.T) {
		b := NewBonusTracker(3)
		_, ok := b.UpdateRoad(1, 4)
		require.False(t, ok)

		got, ok := b.UpdateRoad(1, 5)
		require.True(t, ok)
		require.Equal(t, Transfer{Bonus: LongestRoadBonus, From: NoHolder, To: 1}, got)
		require.Equal(t, 1, b.LongestRoad())
	})

	t.Run("a tie keeps the holder", func(t *testing.T) {
		b := NewBonusTracker(3)
		b.UpdateRoad(1, 5)
		_, ok := b.UpdateRoad(2, 5)
		require.False(t, ok)
		require.Equal(t, 1, b.LongestRoad())
	})

	t.Run("strictly longer takes it", func(t *testing.T) {
		b := NewBonusTracker(3)
		b.UpdateRoad(1, 5)
		got, ok := b.UpdateRoad(2, 6)
		require.True(t, ok)
		require.Equal(t, Transfer{Bonus: LongestRoadBonus, From: 1, To: 2}, got)
	})

	t.Run("holder growing is not a transfer", func(t *testing.T) {
		b := NewBonusTracker(2)
		b.UpdateRoad(1, 5)
		_, ok := b.UpdateRoad(1, 7)
		require.False(t, ok)
		require.Equal(t, 7, b.RoadLength(1))
	})

	t.Run("lengths never drop", func(t *testing.T) {
		b := NewBonusTracker(2)
		b.UpdateRoad(1, 6)
		b.UpdateRoad(1, 3)
		require.Equal(t, 6, b.RoadLength(1))
	})
}

func TestBonusTrackerLargestArmy(t *testing.T) {
	t.Run("first award needs three knights", func(t *testing.T) {
		b := NewBonusTracker(2)
		_, ok := b.AddKnight(1)
		require.False(t, ok)
		_, ok = b.AddKnight(1)
		require.False(t, ok)

		got, ok := b.AddKnight(1)
		require.True(t, ok)
		require.Equal(t, Transfer{Bonus: LargestArmyBonus, From: NoHolder, To: 1}, got)
	})

	t.Run("catching up is not enough", func(t *testing.T) {
		b := NewBonusTracker(2)
		for i := 0; i < 3; i++ {
			b.AddKnight(1)
		}
		for i := 0; i < 3; i++ {
			_, ok := b.AddKnight(2)
			require.False(t, ok)
		}
		got, ok := b.AddKnight(2)
		require.True(t, ok)
		require.Equal(t, Transfer{Bonus: LargestArmyBonus, From: 1, To: 2}, got)
		require.Equal(t, 4, b.Knights(2))
	})

	t.Run("first strict maximum takes it from no holder", func(t *testing.T) {
		b := NewBonusTracker(3)
		for i := 0; i < 2; i++ {
			for p := 1; p <= 3; p++ {
				_, ok := b.AddKnight(p)
				require.False(t, ok)
			}
		}
		require.Equal(t, NoHolder, b.LargestArmy())

		got, ok := b.AddKnight(3)
		require.True(t, ok)
		require.Equal(t, Transfer{Bonus: LargestArmyBonus, From: NoHolder, To: 3}, got)
		require.Equal(t, 3, b.LargestArmy())

		_, ok = b.AddKnight(1)
		require.False(t, ok, "a tie leaves the holder in place")
		require.Equal(t, 3, b.LargestArmy())
	})
}
