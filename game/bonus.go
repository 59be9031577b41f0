package game

// Bonus identifies one of the two transferable two-point awards.
type Bonus int

const (
	LongestRoadBonus Bonus = iota
	LargestArmyBonus
)

func (b Bonus) String() string {
	if b == LargestArmyBonus {
		return "LargestArmy"
	}
	return "LongestRoad"
}

const (
	BonusPoints    = 2
	MinLongestRoad = 5 // Shortest road that can hold the bonus
	MinLargestArmy = 3 // Fewest knights that can hold the bonus
	NoHolder       = 0
)

// Transfer records a bonus changing hands. From is NoHolder on first award.
type Transfer struct {
	Bonus Bonus
	From  int
	To    int
}

// BonusTracker holds per-player road lengths and knight counts and decides
// who holds each bonus. It only reports transfers; points are applied by the
// board.
type BonusTracker struct {
	roadLength  []int // Best road length per player, only ever raised
	knights     []int // Knights played per player
	longestRoad int   // Holder, or NoHolder
	largestArmy int   // Holder, or NoHolder
}

// NewBonusTracker tracks players 1..numPlayers; index 0 is unused.
func NewBonusTracker(numPlayers int) *BonusTracker {
	return &BonusTracker{
		roadLength:  make([]int, numPlayers+1),
		knights:     make([]int, numPlayers+1),
		longestRoad: NoHolder,
		largestArmy: NoHolder,
	}
}

func (b *BonusTracker) RoadLength(player int) int { return b.roadLength[player] }
func (b *BonusTracker) Knights(player int) int    { return b.knights[player] }
func (b *BonusTracker) LongestRoad() int          { return b.longestRoad }
func (b *BonusTracker) LargestArmy() int          { return b.largestArmy }

// UpdateRoad records a freshly searched road length for player and returns
// a transfer if the player now holds the longest road.
func (b *BonusTracker) UpdateRoad(player, length int) (Transfer, bool) {
	if length <= b.roadLength[player] {
		return Transfer{}, false
	}
	b.roadLength[player] = length
	if length < MinLongestRoad || b.longestRoad == player {
		return Transfer{}, false
	}
	if length <= bestOfOthers(b.roadLength, player) {
		return Transfer{}, false
	}
	t := Transfer{Bonus: LongestRoadBonus, From: b.longestRoad, To: player}
	b.longestRoad = player
	return t, true
}

// AddKnight counts one more knight for player and returns a transfer if the
// player now holds the largest army.
func (b *BonusTracker) AddKnight(player int) (Transfer, bool) {
	b.knights[player]++
	count := b.knights[player]
	if count < MinLargestArmy || b.largestArmy == player {
		return Transfer{}, false
	}
	if count <= bestOfOthers(b.knights, player) {
		return Transfer{}, false
	}
	t := Transfer{Bonus: LargestArmyBonus, From: b.largestArmy, To: player}
	b.largestArmy = player
	return t, true
}

// bestOfOthers reduces counts over every player except the given one.
func bestOfOthers(counts []int, player int) int {
	best := 0
	for p := 1; p < len(counts); p++ {
		if p != player {
			best = max(best, counts[p])
		}
	}
	return best
}
