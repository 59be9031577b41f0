package game

import "golang.org/x/exp/rand"

// Ledger is the per-player resource account the board charges and credits.
// The board never does hand arithmetic itself.
type Ledger interface {
	Has(cost Amounts) bool
	// Spend deducts cost atomically; it fails without partial deduction.
	Spend(cost Amounts) bool
	Credit(amounts Amounts)
	Count(r Resource) int
	Total() int
	// TakeRandom removes one uniformly random unit, reporting false on an empty hand.
	TakeRandom(rng *rand.Rand) (Resource, bool)
}

// Hand is the in-memory Ledger. Each player owns an independent Hand.
type Hand struct {
	held Amounts
}

func NewHand() *Hand {
	return &Hand{}
}

func (h *Hand) Has(cost Amounts) bool {
	return h.held.Covers(cost)
}

func (h *Hand) Spend(cost Amounts) bool {
	if !cost.NonNegative() || !h.held.Covers(cost) {
		return false
	}
	for i := range h.held {
		h.held[i] -= cost[i]
	}
	return true
}

func (h *Hand) Credit(amounts Amounts) {
	for i, n := range amounts {
		if n > 0 {
			h.held[i] += n
		}
	}
}

func (h *Hand) Count(r Resource) int {
	if !r.Valid() {
		return 0
	}
	return h.held[r]
}

func (h *Hand) Total() int {
	return h.held.Total()
}

// Snapshot returns a copy of the held amounts.
func (h *Hand) Snapshot() Amounts {
	return h.held
}

func (h *Hand) TakeRandom(rng *rand.Rand) (Resource, bool) {
	total := h.held.Total()
	if total == 0 {
		return 0, false
	}
	chosen := rng.Intn(total)
	for i, n := range h.held {
		if chosen < n {
			h.held[i]--
			return Resource(i), true
		}
		chosen -= n
	}
	return 0, false
}
