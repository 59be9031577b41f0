package game

import "golang.org/x/exp/rand"

// Dice yields two six-sided die values per roll.
type Dice interface {
	Roll() (int, int)
}

type RandomDice struct {
	rng *rand.Rand
}

func NewRandomDice(rng *rand.Rand) *RandomDice {
	return &RandomDice{rng: rng}
}

func (d *RandomDice) Roll() (int, int) {
	return d.rng.Intn(6) + 1, d.rng.Intn(6) + 1
}

// FixedDice replays forced totals in order, cycling when exhausted. Used to
// make games deterministic in tests.
type FixedDice struct {
	totals []int
	next   int
}

func NewFixedDice(totals ...int) *FixedDice {
	return &FixedDice{totals: totals}
}

func (d *FixedDice) Roll() (int, int) {
	if len(d.totals) == 0 {
		return 3, 4
	}
	total := d.totals[d.next%len(d.totals)]
	d.next++
	first := min(6, total-1)
	return first, total - first
}
