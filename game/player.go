package game

import (
	"catan/utils"

	"github.com/emirpasic/gods/sets/treeset"
)

// Player is the board-side record of one seat: piece pools, points, ports
// and development cards. Resources live in the player's Ledger.
type Player struct {
	ID            int
	Ledger        Ledger
	VictoryPoints int
	Roads         int // Road pieces left in the pool
	Settlements   int
	Cities        int
	ports         *treeset.Set
	cards         []OwnedCard // Face-down cards
	played        []OwnedCard // Face-up cards, Turn is the turn played
}

// OwnedCard is a development card and the turn it changed state.
type OwnedCard struct {
	Kind CardKind
	Turn int
}

func newPlayer(id int, ledger Ledger, rules Rules) *Player {
	return &Player{
		ID:          id,
		Ledger:      ledger,
		Roads:       rules.Roads,
		Settlements: rules.Settlements,
		Cities:      rules.Cities,
		ports: treeset.NewWith(func(a, b interface{}) int {
			return int(a.(Port)) - int(b.(Port))
		}),
	}
}

func (p *Player) addPort(port Port) {
	if port != NoPort {
		p.ports.Add(port)
	}
}

// HasPort reports whether one of the player's buildings sits on port.
func (p *Player) HasPort(port Port) bool {
	return p.ports.Contains(port)
}

// Ports lists the player's harbors in ascending order.
func (p *Player) Ports() []Port {
	values := p.ports.Values()
	out := make([]Port, len(values))
	for i, v := range values {
		out[i] = v.(Port)
	}
	return out
}

// TradeRatio returns how many units of r the player pays the bank per unit.
func (p *Player) TradeRatio(r Resource) int {
	switch {
	case p.HasPort(PortFor(r)):
		return 2
	case p.HasPort(WildPort):
		return 3
	default:
		return 4
	}
}

// Cards returns the player's unplayed cards.
func (p *Player) Cards() []OwnedCard {
	out := make([]OwnedCard, len(p.cards))
	copy(out, p.cards)
	return out
}

// Played returns the player's face-up cards.
func (p *Player) Played() []OwnedCard {
	out := make([]OwnedCard, len(p.played))
	copy(out, p.played)
	return out
}

// playableCard returns the index of a card of kind bought before turn.
func (p *Player) playableCard(kind CardKind, turn int) int {
	kinds := make([]CardKind, 0, len(p.cards))
	for _, c := range p.cards {
		if c.Turn < turn {
			kinds = append(kinds, c.Kind)
		} else {
			kinds = append(kinds, NoCard)
		}
	}
	return utils.FindIndex(kinds, kind)
}

// playedDuring reports whether a card was flipped on turn.
func (p *Player) playedDuring(turn int) bool {
	for _, c := range p.played {
		if c.Turn >= turn {
			return true
		}
	}
	return false
}

func (p *Player) flip(index, turn int) {
	card := p.cards[index]
	p.cards = append(p.cards[:index], p.cards[index+1:]...)
	p.played = append(p.played, OwnedCard{Kind: card.Kind, Turn: turn})
}
