package game

// NoTarget is passed to Rob when the robber moves to a tile with no opponent on it.
const NoTarget = 0

// Roll pays out production for a dice total. Every settlement on a matching,
// unrobbed tile earns one unit and every city two. A seven produces nothing
// and asks the caller to run discards and move the robber.
func (b *Board) Roll(result int) (Outcome, error) {
	if b.win != NoHolder {
		return Outcome{}, ErrGameOver
	}
	if result < 2 || result > 12 {
		return Outcome{}, b.reject(ErrInvalidRoll, NoHolder, "roll %d", result)
	}

	out := NewOutcome()
	out.Roll = result
	if result == 7 {
		out.RobberRequired = true
		return out, nil
	}

	produced := make(map[int]Amounts)
	for t := 0; t < b.Tiles.Len(); t++ {
		tile := b.Tiles.Tile(t)
		if !tile.Produces(result) {
			continue
		}
		for _, v := range b.Graph.TileVertices(t) {
			site := b.Sites[v]
			a := produced[site.Owner]
			switch site.Level {
			case Settlement:
				a[tile.Resource]++
			case City:
				a[tile.Resource] += 2
			default:
				continue
			}
			produced[site.Owner] = a
		}
	}
	for player, a := range produced {
		b.seats[player].Ledger.Credit(a)
		out.Produced[player] = a
	}
	return out, nil
}

// Rob moves the robber to tile and steals one random unit from target for
// actor. The robber must change tiles and the target must have a building on
// the new tile. With NoTarget, no opponent may touch the tile.
func (b *Board) Rob(actor, target, tile int) (Outcome, error) {
	if err := b.check(actor); err != nil {
		return Outcome{}, err
	}
	if target != NoTarget && b.Player(target) == nil {
		return Outcome{}, b.reject(ErrInvalidPlayer, actor, "rob player %d", target)
	}
	if target == actor {
		return Outcome{}, b.reject(ErrSelfTarget, actor, "rob tile %d", tile)
	}
	if !b.Graph.validTile(tile) {
		return Outcome{}, b.reject(ErrInvalidLocation, actor, "rob tile %d", tile)
	}
	if b.Tiles.Robber() == tile {
		return Outcome{}, b.reject(ErrRobberAlreadyThere, actor, "rob tile %d", tile)
	}
	if target == NoTarget {
		for _, v := range b.Graph.TileVertices(tile) {
			if owner := b.Sites[v].Owner; owner != NoHolder && owner != actor {
				return Outcome{}, b.reject(ErrTargetNotAdjacent, actor, "tile %d borders player %d, a target is required", tile, owner)
			}
		}
	} else if !b.touchesTile(target, tile) {
		return Outcome{}, b.reject(ErrTargetNotAdjacent, actor, "rob player %d at tile %d", target, tile)
	}

	b.Tiles.MoveRobber(tile)
	out := NewOutcome()
	if target == NoTarget {
		return out, nil
	}
	if r, ok := b.seats[target].Ledger.TakeRandom(b.rng); ok {
		stolen := Of(r, 1)
		b.seats[actor].Ledger.Credit(stolen)
		out.Gained = stolen
	}
	return out, nil
}

func (b *Board) touchesTile(player, tile int) bool {
	for _, v := range b.Graph.TileVertices(tile) {
		if b.Sites[v].Owner == player {
			return true
		}
	}
	return false
}

// MustDiscard returns how many cards player has to give up after a seven.
func (b *Board) MustDiscard(player int) int {
	p := b.Player(player)
	if p == nil {
		return 0
	}
	total := p.Ledger.Total()
	if total <= b.Rules.DiscardLimit {
		return 0
	}
	return total / 2
}

// Discard gives up exactly half of an oversized hand, rounded down.
func (b *Board) Discard(player int, amounts Amounts) (Outcome, error) {
	if err := b.check(player); err != nil {
		return Outcome{}, err
	}
	need := b.MustDiscard(player)
	if need == 0 {
		return Outcome{}, b.reject(ErrNoDiscardRequired, player, "discard %s", amounts)
	}
	if !amounts.NonNegative() || amounts.Total() != need {
		return Outcome{}, b.reject(ErrWrongDiscardCount, player, "discard %d of %d", amounts.Total(), need)
	}
	if !b.seats[player].Ledger.Spend(amounts) {
		return Outcome{}, b.reject(ErrInsufficientResources, player, "discard %s", amounts)
	}
	return NewOutcome(), nil
}
