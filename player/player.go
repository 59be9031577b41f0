package player

import (
	"catan/engine"
	"catan/game"
	"catan/utils"

	"golang.org/x/exp/rand"
)

// Move weights by kind. Points first, then growth.
const (
	victoryWeight    = 10.0
	cityWeight       = 8.0
	settlementWeight = 6.0
	cardWeight       = 3.0
	roadWeight       = 2.0
	tradeWeight      = 1.0
	endTurnWeight    = 1.0
)

// Bot is an engine.Agent that samples among the moves it believes legal,
// weighted by kind. It reads the board directly and never mutates it.
type Bot struct {
	rng         *rand.Rand
	temperature float64
}

type Option func(*Bot)

// WithTemperature sharpens (below 1) or flattens (above 1) the move weights.
func WithTemperature(temperature float64) Option {
	return func(b *Bot) {
		if temperature > 0 {
			b.temperature = temperature
		}
	}
}

func NewBot(rng *rand.Rand, options ...Option) *Bot {
	b := &Bot{rng: rng, temperature: 1.0}
	for _, option := range options {
		option(b)
	}
	return b
}

// FindMove decides on the next move for player.
func (b *Bot) FindMove(e *engine.Engine, player int) engine.Move {
	var move engine.Move
	switch e.Phase() {
	case engine.SetupPhase:
		if v := e.Pending(); v >= 0 {
			move = b.placeRoad(e.Board, player, v)
		} else {
			move = b.placeSettlement(e.Board)
		}
	case engine.RollPhase:
		move = engine.Move{Action: engine.RollAction}
	case engine.DiscardPhase:
		move = b.discard(e.Board, player, e.Owed(player))
	case engine.RobberPhase:
		tile, target := b.chooseRobbery(e.Board, player)
		move = engine.Move{Action: engine.RobAction, Tile: tile, Target: target}
	default:
		move = b.mainMove(e.Board, player)
	}
	move.Player = player
	return move
}

func (b *Bot) placeSettlement(board *game.Board) engine.Move {
	var p policy
	for v := range board.Sites {
		if !free(board, v) {
			continue
		}
		pips := 0
		for _, t := range board.Graph.VertexTiles(v) {
			pips += board.Tiles.Tile(t).Pips()
		}
		p.add(engine.Move{Action: engine.PlaceSettlementAction, Vertex: v}, float64(pips+1))
	}
	return p.sample(b.rng, b.temperature)
}

func (b *Bot) placeRoad(board *game.Board, player, vertex int) engine.Move {
	var p policy
	for _, e := range board.Graph.VertexEdges(vertex) {
		if board.Roads[e] == game.NoHolder {
			p.add(engine.Move{Action: engine.PlaceRoadAction, Edge: e}, 1)
		}
	}
	if p.empty() {
		return engine.Move{Action: engine.PlaceRoadAction, Edge: -1}
	}
	return p.sample(b.rng, b.temperature)
}

// discard gives up owed units picked at random from the hand.
func (b *Bot) discard(board *game.Board, player, owed int) engine.Move {
	ledger := board.Player(player).Ledger
	var units []game.Resource
	for r := game.Wood; r <= game.Sheep; r++ {
		for i := 0; i < ledger.Count(r); i++ {
			units = append(units, r)
		}
	}
	b.rng.Shuffle(len(units), func(i, j int) { units[i], units[j] = units[j], units[i] })
	var amounts game.Amounts
	for _, r := range units[:min(owed, len(units))] {
		amounts[r]++
	}
	return engine.Move{Action: engine.DiscardAction, Amounts: amounts}
}

// chooseRobbery picks a tile other than the robber's, preferring tiles next
// to opponents holding cards, and a victim on it.
func (b *Bot) chooseRobbery(board *game.Board, player int) (int, int) {
	var p policy
	for t := 0; t < board.Tiles.Len(); t++ {
		if t == board.Tiles.Robber() {
			continue
		}
		victims := opponentsOn(board, player, t)
		weight := 1.0
		for _, v := range victims {
			if board.Player(v).Ledger.Total() > 0 {
				weight += 4
			}
		}
		p.add(engine.Move{Tile: t}, weight)
	}
	tile := p.sample(b.rng, b.temperature).Tile
	victims := opponentsOn(board, player, tile)
	if len(victims) == 0 {
		return tile, game.NoTarget
	}
	return tile, victims[b.rng.Intn(len(victims))]
}

func (b *Bot) mainMove(board *game.Board, player int) engine.Move {
	me := board.Player(player)
	var p policy
	p.add(engine.Move{Action: engine.EndTurnAction}, endTurnWeight)

	if me.Cities > 0 && me.Ledger.Has(board.Rules.Cost(game.CityPurchase)) {
		for v, site := range board.Sites {
			if site.Owner == player && site.Level == game.Settlement {
				p.add(engine.Move{Action: engine.BuildCityAction, Vertex: v}, cityWeight)
			}
		}
	}
	if me.Settlements > 0 && me.Ledger.Has(board.Rules.Cost(game.SettlementPurchase)) {
		for v := range board.Sites {
			if free(board, v) && touchesOwnRoad(board, player, v) {
				p.add(engine.Move{Action: engine.BuildSettlementAction, Vertex: v}, settlementWeight)
			}
		}
	}
	if me.Roads > 0 && me.Ledger.Has(board.Rules.Cost(game.RoadPurchase)) {
		for _, e := range roadSpots(board, player) {
			p.add(engine.Move{Action: engine.BuildRoadAction, Edge: e}, roadWeight)
		}
	}
	if board.DeckSize() > 0 && me.Ledger.Has(board.Rules.Cost(game.CardPurchase)) {
		p.add(engine.Move{Action: engine.BuyCardAction}, cardWeight)
	}
	b.addCardPlays(&p, board, player)
	if give, get, ok := tradeFor(me); ok {
		p.add(engine.Move{Action: engine.TradeAction, Give: give, Get: get}, tradeWeight)
	}
	return p.sample(b.rng, b.temperature)
}

func (b *Bot) addCardPlays(p *policy, board *game.Board, player int) {
	me := board.Player(player)
	for _, c := range me.Played() {
		if c.Turn == board.Turn() {
			return
		}
	}
	seen := make(map[game.CardKind]bool)
	for _, c := range me.Cards() {
		if c.Turn >= board.Turn() || seen[c.Kind] {
			continue
		}
		seen[c.Kind] = true

		switch c.Kind {
		case game.VictoryPoint:
			p.add(playCard(game.VictoryPlay{}), victoryWeight)
		case game.Knight:
			tile, target := b.chooseRobbery(board, player)
			p.add(playCard(game.KnightPlay{Target: target, Tile: tile}), cardWeight)
		case game.Monopoly:
			p.add(playCard(game.MonopolyPlay{Resource: mostHeld(board, player)}), cardWeight)
		case game.YearOfPlenty:
			var take game.Amounts
			take[b.rng.Intn(game.NumResources)]++
			take[b.rng.Intn(game.NumResources)]++
			p.add(playCard(game.YearOfPlentyPlay{Take: take}), cardWeight)
		case game.RoadBuilding:
			spots := roadSpots(board, player)
			if me.Roads < 2 || len(spots) == 0 {
				continue
			}
			first := spots[b.rng.Intn(len(spots))]
			second := -1
			for _, e := range board.Graph.EdgeEdges(first) {
				if board.Roads[e] == game.NoHolder {
					second = e
					break
				}
			}
			for _, e := range spots {
				if second < 0 && e != first {
					second = e
				}
			}
			if second >= 0 {
				p.add(playCard(game.RoadBuildingPlay{Edges: [2]int{first, second}}), roadWeight)
			}
		}
	}
}

func playCard(play game.CardPlay) engine.Move {
	return engine.Move{Action: engine.PlayCardAction, Card: play}
}

// free reports whether a settlement may go on v under the distance rule.
func free(board *game.Board, v int) bool {
	if board.Sites[v].Level != game.Empty {
		return false
	}
	for _, w := range board.Graph.VertexNeighbors(v) {
		if board.Sites[w].Level != game.Empty {
			return false
		}
	}
	return true
}

func touchesOwnRoad(board *game.Board, player, v int) bool {
	for _, e := range board.Graph.VertexEdges(v) {
		if board.Roads[e] == player {
			return true
		}
	}
	return false
}

// roadSpots lists the empty edges a road of player could go on.
func roadSpots(board *game.Board, player int) []int {
	var spots []int
	for e, owner := range board.Roads {
		if owner != game.NoHolder {
			continue
		}
		connected := false
		for _, v := range board.Graph.EdgeVertices(e) {
			if board.Sites[v].Owner == player {
				connected = true
			}
		}
		for _, other := range board.Graph.EdgeEdges(e) {
			if board.Roads[other] == player {
				connected = true
			}
		}
		if connected {
			spots = append(spots, e)
		}
	}
	return spots
}

func opponentsOn(board *game.Board, player, tile int) []int {
	var out []int
	for _, v := range board.Graph.TileVertices(tile) {
		owner := board.Sites[v].Owner
		if owner != game.NoHolder && owner != player {
			out = utils.AppendUnique(out, owner)
		}
	}
	return out
}

// mostHeld returns the resource opponents hold the most of.
func mostHeld(board *game.Board, player int) game.Resource {
	best, bestCount := game.Wood, -1
	for r := game.Wood; r <= game.Sheep; r++ {
		count := 0
		for id := 1; id <= board.NumPlayers(); id++ {
			if id != player {
				count += board.Player(id).Ledger.Count(r)
			}
		}
		if count > bestCount {
			best, bestCount = r, count
		}
	}
	return best
}

// tradeFor swaps the most plentiful resource, if the bank accepts it, for
// one the player has none of.
func tradeFor(me *game.Player) (game.Resource, game.Resource, bool) {
	give, get := game.Wood, game.Wood
	most, least := -1, -1
	for r := game.Wood; r <= game.Sheep; r++ {
		n := me.Ledger.Count(r)
		if n > most {
			give, most = r, n
		}
		if least < 0 || n < least {
			get, least = r, n
		}
	}
	if least != 0 || give == get || most < me.TradeRatio(give) {
		return 0, 0, false
	}
	return give, get, true
}
