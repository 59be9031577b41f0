package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// CardKind is a development card type.
type CardKind int

const (
	Knight CardKind = iota
	VictoryPoint
	Monopoly
	RoadBuilding
	YearOfPlenty

	NoCard CardKind = -1
)

func (k CardKind) String() string {
	switch k {
	case Knight:
		return "Knight"
	case VictoryPoint:
		return "Victory"
	case Monopoly:
		return "Monopoly"
	case RoadBuilding:
		return "Road Building"
	case YearOfPlenty:
		return "Year of Plenty"
	case NoCard:
		return "None"
	}
	return fmt.Sprintf("CardKind(%d)", int(k))
}

// Deck composition of the base game.
var deckCounts = map[CardKind]int{
	Knight:       14,
	VictoryPoint: 5,
	Monopoly:     2,
	RoadBuilding: 2,
	YearOfPlenty: 2,
}

func newDeck(rng *rand.Rand) []CardKind {
	var deck []CardKind
	for kind := Knight; kind <= YearOfPlenty; kind++ {
		for i := 0; i < deckCounts[kind]; i++ {
			deck = append(deck, kind)
		}
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// CardPlay is the payload of a card activation. The set of implementations
// is closed: one per CardKind.
type CardPlay interface {
	Kind() CardKind
	validate(g *Graph) error
}

// KnightPlay moves the robber to Tile and robs Target.
type KnightPlay struct {
	Target int
	Tile   int
}

// VictoryPlay reveals a victory point.
type VictoryPlay struct{}

// MonopolyPlay takes every unit of Resource from every opponent.
type MonopolyPlay struct {
	Resource Resource
}

// RoadBuildingPlay builds two free roads, in order.
type RoadBuildingPlay struct {
	Edges [2]int
}

// YearOfPlentyPlay takes exactly two units of any resources from the bank.
type YearOfPlentyPlay struct {
	Take Amounts
}

func (KnightPlay) Kind() CardKind       { return Knight }
func (VictoryPlay) Kind() CardKind      { return VictoryPoint }
func (MonopolyPlay) Kind() CardKind     { return Monopoly }
func (RoadBuildingPlay) Kind() CardKind { return RoadBuilding }
func (YearOfPlentyPlay) Kind() CardKind { return YearOfPlenty }

func (k KnightPlay) validate(g *Graph) error {
	if !g.validTile(k.Tile) {
		return fmt.Errorf("knight tile %d out of range", k.Tile)
	}
	return nil
}

func (VictoryPlay) validate(*Graph) error { return nil }

func (m MonopolyPlay) validate(*Graph) error {
	if !m.Resource.Valid() {
		return fmt.Errorf("monopoly on %s", m.Resource)
	}
	return nil
}

func (r RoadBuildingPlay) validate(g *Graph) error {
	if !g.validEdge(r.Edges[0]) || !g.validEdge(r.Edges[1]) {
		return fmt.Errorf("road building on roads %v", r.Edges)
	}
	if r.Edges[0] == r.Edges[1] {
		return fmt.Errorf("road building twice on road %d", r.Edges[0])
	}
	return nil
}

func (y YearOfPlentyPlay) validate(*Graph) error {
	if !y.Take.NonNegative() || y.Take.Total() != 2 {
		return fmt.Errorf("year of plenty takes two resources, got %s", y.Take)
	}
	return nil
}

// ActivateCard plays one of player's development cards. The card must have
// been bought before the current turn and the player must not have played a
// card this turn. The card is used up only if its effect took place.
func (b *Board) ActivateCard(player int, play CardPlay) (Outcome, error) {
	if err := b.check(player); err != nil {
		return Outcome{}, err
	}
	if play == nil {
		return Outcome{}, b.reject(ErrInvalidCardPayload, player, "no card")
	}
	p := b.seats[player]
	if p.playedDuring(b.turn) {
		return Outcome{}, b.reject(ErrAlreadyUsedThisTurn, player, "play %s", play.Kind())
	}
	index := p.playableCard(play.Kind(), b.turn)
	if index < 0 {
		return Outcome{}, b.reject(ErrCardNotEligible, player, "play %s", play.Kind())
	}
	if err := play.validate(b.Graph); err != nil {
		return Outcome{}, b.reject(ErrInvalidCardPayload, player, "%v", err)
	}

	var out Outcome
	switch card := play.(type) {
	case KnightPlay:
		robbed, err := b.Rob(player, card.Target, card.Tile)
		if err != nil {
			return Outcome{}, err
		}
		out = robbed
		if t, ok := b.Bonus.AddKnight(player); ok {
			b.transfer(t, &out)
		}
	case VictoryPlay:
		out = NewOutcome()
		b.award(player, 1, &out)
	case MonopolyPlay:
		out = NewOutcome()
		for id := 1; id < len(b.seats); id++ {
			if id == player {
				continue
			}
			victim := b.seats[id].Ledger
			if n := victim.Count(card.Resource); n > 0 && victim.Spend(Of(card.Resource, n)) {
				out.Gained[card.Resource] += n
			}
		}
		p.Ledger.Credit(out.Gained)
	case RoadBuildingPlay:
		first, err := b.BuildRoad(player, card.Edges[0], true)
		if err != nil {
			return Outcome{}, err
		}
		out = first
		if second, err := b.BuildRoad(player, card.Edges[1], true); err != nil {
			out.Skipped = err
		} else {
			out.merge(second)
		}
	case YearOfPlentyPlay:
		out = NewOutcome()
		p.Ledger.Credit(card.Take)
		out.Gained = card.Take
	default:
		return Outcome{}, b.reject(ErrInvalidCardPayload, player, "unknown card %T", play)
	}

	p.flip(index, b.turn)
	out.Card = play.Kind()
	return out, nil
}
