package game

// Rules are the tunable numbers of a game.
type Rules struct {
	WinningPoints int // Points that end the game
	Roads         int // Pool sizes per player
	Settlements   int
	Cities        int
	DiscardLimit  int // A hand above this size discards half on a seven
	Costs         map[Purchase]Amounts
}

func NewStandardRules() Rules {
	return Rules{
		WinningPoints: 10,
		Roads:         15,
		Settlements:   5,
		Cities:        4,
		DiscardLimit:  7,
		Costs:         StandardCosts,
	}
}

// Cost returns the price of p.
func (r Rules) Cost(p Purchase) Amounts {
	return r.Costs[p]
}
