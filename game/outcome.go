package game

// Outcome is the state delta of a successful command, handed back to the
// caller so it can mirror resource and point changes.
type Outcome struct {
	Roll           int             // Dice total, for rolls
	Produced       map[int]Amounts // Resources credited per player by production
	Gained         Amounts         // Resources credited to the acting player
	Points         map[int]int     // Victory point change per player
	Transfers      []Transfer      // Bonuses that changed hands
	RoadLength     int             // Acting player's longest road after a road build
	Card           CardKind        // Card bought or played
	RobberRequired bool            // A seven was rolled
	Winner         int             // Set when this command ended the game
	Skipped        error           // Second road of a road building card that could not be built
}

// NewOutcome returns an empty delta.
func NewOutcome() Outcome {
	return Outcome{
		Produced: make(map[int]Amounts),
		Points:   make(map[int]int),
		Card:     NoCard,
	}
}

// merge folds a later outcome of the same command into o.
func (o *Outcome) merge(later Outcome) {
	for p, a := range later.Produced {
		o.Produced[p] = o.Produced[p].Add(a)
	}
	for p, n := range later.Points {
		o.Points[p] += n
	}
	o.Gained = o.Gained.Add(later.Gained)
	o.Transfers = append(o.Transfers, later.Transfers...)
	o.RoadLength = max(o.RoadLength, later.RoadLength)
	if later.Winner != NoHolder {
		o.Winner = later.Winner
	}
}
