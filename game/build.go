package game

// BuildRoad places a road for player on edge. The road must touch one of the
// player's buildings or roads; unless free, the player pays for it. A
// successful build refreshes the player's longest road and may move the
// longest-road bonus.
func (b *Board) BuildRoad(player, edge int, free bool) (Outcome, error) {
	if err := b.check(player); err != nil {
		return Outcome{}, err
	}
	if !b.Graph.validEdge(edge) {
		return Outcome{}, b.reject(ErrInvalidLocation, player, "road %d", edge)
	}
	if b.Roads[edge] != NoHolder {
		return Outcome{}, b.reject(ErrAlreadyOccupied, player, "road %d", edge)
	}
	p := b.seats[player]
	if p.Roads == 0 {
		return Outcome{}, b.reject(ErrNoPieceRemaining, player, "road %d", edge)
	}
	if !b.roadConnects(player, edge) {
		return Outcome{}, b.reject(ErrNotConnected, player, "road %d", edge)
	}
	if !free && !p.Ledger.Spend(b.Rules.Cost(RoadPurchase)) {
		return Outcome{}, b.reject(ErrInsufficientResources, player, "road %d", edge)
	}

	b.Roads[edge] = player
	p.Roads--

	out := NewOutcome()
	out.RoadLength = LongestRoad(b.Graph, b.Roads, player)
	if t, ok := b.Bonus.UpdateRoad(player, out.RoadLength); ok {
		b.transfer(t, &out)
	}
	return out, nil
}

func (b *Board) roadConnects(player, edge int) bool {
	for _, v := range b.Graph.EdgeVertices(edge) {
		if b.Sites[v].Owner == player {
			return true
		}
	}
	for _, e := range b.Graph.EdgeEdges(edge) {
		if b.Roads[e] == player {
			return true
		}
	}
	return false
}

// BuildSettlement places a settlement for player on vertex. No neighboring
// vertex may be built on. Outside initial placement the player needs a road
// touching the vertex and pays for it; an initial settlement is free and,
// with collect set, earns one unit from every producing tile around it.
func (b *Board) BuildSettlement(player, vertex int, initial, collect bool) (Outcome, error) {
	if err := b.check(player); err != nil {
		return Outcome{}, err
	}
	if !b.Graph.validVertex(vertex) {
		return Outcome{}, b.reject(ErrInvalidLocation, player, "settlement %d", vertex)
	}
	if b.Sites[vertex].Level != Empty {
		return Outcome{}, b.reject(ErrAlreadyOccupied, player, "settlement %d", vertex)
	}
	for _, w := range b.Graph.VertexNeighbors(vertex) {
		if b.Sites[w].Level != Empty {
			return Outcome{}, b.reject(ErrBlocked, player, "settlement %d next to %d", vertex, w)
		}
	}
	p := b.seats[player]
	if p.Settlements == 0 {
		return Outcome{}, b.reject(ErrNoPieceRemaining, player, "settlement %d", vertex)
	}
	if !initial {
		if !b.touchesRoad(player, vertex) {
			return Outcome{}, b.reject(ErrNoRoadConnection, player, "settlement %d", vertex)
		}
		if !p.Ledger.Spend(b.Rules.Cost(SettlementPurchase)) {
			return Outcome{}, b.reject(ErrInsufficientResources, player, "settlement %d", vertex)
		}
	}

	b.Sites[vertex] = Site{Owner: player, Level: Settlement}
	p.Settlements--
	p.addPort(b.Ports.At(vertex))

	out := NewOutcome()
	if initial && collect {
		var near Amounts
		for _, t := range b.Graph.VertexTiles(vertex) {
			if tile := b.Tiles.Tile(t); tile.Resource != Desert {
				near[tile.Resource]++
			}
		}
		p.Ledger.Credit(near)
		out.Produced[player] = near
	}
	b.award(player, 1, &out)
	return out, nil
}

func (b *Board) touchesRoad(player, vertex int) bool {
	for _, e := range b.Graph.VertexEdges(vertex) {
		if b.Roads[e] == player {
			return true
		}
	}
	return false
}

// BuildCity upgrades one of player's settlements. The settlement piece goes
// back to the pool.
func (b *Board) BuildCity(player, vertex int) (Outcome, error) {
	if err := b.check(player); err != nil {
		return Outcome{}, err
	}
	if !b.Graph.validVertex(vertex) {
		return Outcome{}, b.reject(ErrInvalidLocation, player, "city %d", vertex)
	}
	if site := b.Sites[vertex]; site.Owner != player || site.Level != Settlement {
		return Outcome{}, b.reject(ErrNoSettlementThere, player, "city %d", vertex)
	}
	p := b.seats[player]
	if p.Cities == 0 {
		return Outcome{}, b.reject(ErrNoPieceRemaining, player, "city %d", vertex)
	}
	if !p.Ledger.Spend(b.Rules.Cost(CityPurchase)) {
		return Outcome{}, b.reject(ErrInsufficientResources, player, "city %d", vertex)
	}

	b.Sites[vertex].Level = City
	p.Cities--
	p.Settlements++

	out := NewOutcome()
	b.award(player, 1, &out)
	return out, nil
}

// BuyCard draws a development card for player. It becomes playable next turn.
func (b *Board) BuyCard(player int) (Outcome, error) {
	if err := b.check(player); err != nil {
		return Outcome{}, err
	}
	if len(b.deck) == 0 {
		return Outcome{}, b.reject(ErrDeckEmpty, player, "buy card")
	}
	p := b.seats[player]
	if !p.Ledger.Spend(b.Rules.Cost(CardPurchase)) {
		return Outcome{}, b.reject(ErrInsufficientResources, player, "buy card")
	}
	last := len(b.deck) - 1
	card := b.deck[last]
	b.deck = b.deck[:last]
	p.cards = append(p.cards, OwnedCard{Kind: card, Turn: b.turn})

	out := NewOutcome()
	out.Card = card
	return out, nil
}

// TradeWithBank swaps the player's best ratio of give for one get.
func (b *Board) TradeWithBank(player int, give, get Resource) (Outcome, error) {
	if err := b.check(player); err != nil {
		return Outcome{}, err
	}
	if !give.Valid() || !get.Valid() || give == get {
		return Outcome{}, b.reject(ErrInvalidTrade, player, "trade %s for %s", give, get)
	}
	p := b.seats[player]
	ratio := p.TradeRatio(give)
	if !p.Ledger.Spend(Of(give, ratio)) {
		return Outcome{}, b.reject(ErrInsufficientResources, player, "trade %d %s", ratio, give)
	}
	p.Ledger.Credit(Of(get, 1))

	out := NewOutcome()
	out.Gained = Of(get, 1)
	return out, nil
}
