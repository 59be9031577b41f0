package engine

import (
	"fmt"

	"catan/game"
)

// Agent chooses moves for the seats it plays.
type Agent interface {
	FindMove(e *Engine, player int) Move
}

// Run executes the entire game loop until a winner is found or the turn
// limit ends the game. Agents are indexed by seat, agents[0] playing seat 1.
// A rejected move during the main phase ends the agent's turn; anywhere else
// it stops the run.
func (e *Engine) Run(agents []Agent) (int, error) {
	if len(agents) != e.Board.NumPlayers() {
		return 0, fmt.Errorf("%d agents for %d players", len(agents), e.Board.NumPlayers())
	}
	e.log.Info().Msgf("player %d is placing first", e.Current())

	for moves := 0; moves < MaxMoves; moves++ {
		if e.Phase() == OverPhase {
			return e.Winner(), nil
		}
		actor := e.Actor()
		move := agents[actor-1].FindMove(e, actor)
		move.Player = actor

		if _, err := e.Play(move); err != nil {
			e.log.Debug().Err(err).Stringer("move", move).Msg("move rejected")
			if e.Phase() != MainPhase {
				return e.Winner(), err
			}
			if _, err := e.Play(Move{Player: actor, Action: EndTurnAction}); err != nil {
				return e.Winner(), err
			}
		}
	}
	return e.Winner(), ErrMoveLimit
}

// Standing is one seat's line in a Summary.
type Standing struct {
	Player      int  `json:"player"`
	Points      int  `json:"points"`
	Settlements int  `json:"settlements"`
	Cities      int  `json:"cities"`
	Roads       int  `json:"roads"`
	RoadLength  int  `json:"road_length"`
	Knights     int  `json:"knights"`
	Cards       int  `json:"cards"`
	Hand        int  `json:"hand"`
	LongestRoad bool `json:"longest_road"`
	LargestArmy bool `json:"largest_army"`
}

// Summary is the final state of a game in reportable form.
type Summary struct {
	Game      string     `json:"game"`
	Winner    int        `json:"winner"`
	Turns     int        `json:"turns"`
	Moves     int        `json:"moves"`
	Standings []Standing `json:"standings"`
}

func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := e.Board
	s := Summary{
		Game:   e.ID.String(),
		Winner: b.Winner(),
		Turns:  e.turns,
		Moves:  len(e.updates),
	}
	for id := 1; id <= b.NumPlayers(); id++ {
		p := b.Player(id)
		st := Standing{
			Player:      id,
			Points:      p.VictoryPoints,
			Roads:       b.Rules.Roads - p.Roads,
			RoadLength:  b.Bonus.RoadLength(id),
			Knights:     b.Bonus.Knights(id),
			Cards:       len(p.Cards()),
			Hand:        p.Ledger.Total(),
			LongestRoad: b.Bonus.LongestRoad() == id,
			LargestArmy: b.Bonus.LargestArmy() == id,
		}
		for _, site := range b.Sites {
			if site.Owner != id {
				continue
			}
			switch site.Level {
			case game.Settlement:
				st.Settlements++
			case game.City:
				st.Cities++
			}
		}
		s.Standings = append(s.Standings, st)
	}
	return s
}
