package metrics

import (
	"time"

	"catan/engine"
)

// AgentConfig identifies a bot setup within an experiment.
type AgentConfig struct {
	ID          int
	Temperature float64
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 when the turn limit ended the game
	Turns          int
	TotalMoves     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// StandingMetric is one seat's final position in a game.
type StandingMetric struct {
	Seat  int
	Agent int // AgentConfig.ID
	engine.Standing
}

// Collect reads the final metrics of a finished game. seats maps seat
// index (0 for player 1) to the agent config that played it.
func Collect(e *engine.Engine, seats []AgentConfig, start time.Time) (GameMetric, []StandingMetric) {
	end := time.Now()
	summary := e.Summary()
	game := GameMetric{
		StartingPlayer: 1,
		Winner:         summary.Winner,
		Turns:          summary.Turns,
		TotalMoves:     summary.Moves,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
	}
	standings := make([]StandingMetric, 0, len(summary.Standings))
	for i, st := range summary.Standings {
		standings = append(standings, StandingMetric{Seat: i + 1, Agent: seats[i].ID, Standing: st})
	}
	return game, standings
}
