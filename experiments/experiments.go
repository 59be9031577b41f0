package experiments

import (
	"fmt"
	"time"

	"catan/engine"
	"catan/experiments/metrics"
	"catan/meta"
	"catan/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// NumGames is the default number of games per match up.
const NumGames = 30

// Baseline samples moves by their plain weights.
var Baseline = metrics.AgentConfig{ID: 0, Temperature: 1.0}

var temperatureConfigs = []metrics.AgentConfig{
	{ID: 1, Temperature: 0.25}, // Greedy
	{ID: 2, Temperature: 0.5},
	{ID: 3, Temperature: 2.0},
	{ID: 4, Temperature: 4.0}, // Close to uniform
}

// RunTemperatureExperiment pairs each temperature config against the
// baseline bot for games games each and stores the records under root.
// The candidate takes seat 1 in even games and seat 2 in odd ones.
func RunTemperatureExperiment(cfg meta.Config, games int, root string) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range temperatureConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, Baseline})
	}
	return runExperiment("temperature", cfg, games, root, append(temperatureConfigs, Baseline), matchUps)
}

func runExperiment(name string, cfg meta.Config, games int, root string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	standingRecords := []metrics.StandingRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			seats := seating(matchUp, cfg.Players, i%2 == 1)
			gameCfg := cfg
			if cfg.Seed != 0 {
				gameCfg.Seed = cfg.Seed + uint64(count)
			}

			gameMetric, standings, err := runGame(gameCfg, seats)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++

			agents := make([]int, len(seats))
			for s, config := range seats {
				agents[s] = config.ID
			}
			gameRecords = append(gameRecords, metrics.GameRecord{ID: count, Agents: agents, GameMetric: gameMetric})
			for _, st := range standings {
				standingRecords = append(standingRecords, metrics.StandingRecord{Game: count, StandingMetric: st})
			}
			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	if err := writer.WriteStandingRecords(standingRecords); err != nil {
		return "", err
	}
	log.Info().Msgf("stored %d game records in %s", len(gameRecords), writer.Dir())
	return writer.Dir(), nil
}

// seating fills players seats: the candidate, then the baseline, then more
// baselines. swap puts the baseline first.
func seating(matchUp []metrics.AgentConfig, players int, swap bool) []metrics.AgentConfig {
	seats := make([]metrics.AgentConfig, players)
	for i := range seats {
		seats[i] = matchUp[1]
	}
	if swap {
		seats[1] = matchUp[0]
	} else {
		seats[0] = matchUp[0]
	}
	return seats
}

// runGame plays one bot game and collects its metrics.
func runGame(cfg meta.Config, seats []metrics.AgentConfig) (metrics.GameMetric, []metrics.StandingMetric, error) {
	e, err := engine.New(cfg)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agents := make([]engine.Agent, len(seats))
	for i, config := range seats {
		rng := rand.New(rand.NewSource(cfg.Seed*31 + uint64(i) + 1))
		if cfg.Seed == 0 {
			rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano()) + uint64(i)))
		}
		agents[i] = player.NewBot(rng, player.WithTemperature(config.Temperature))
	}

	start := time.Now()
	if _, err := e.Run(agents); err != nil {
		return metrics.GameMetric{}, nil, err
	}
	gameMetric, standings := metrics.Collect(e, seats, start)
	return gameMetric, standings, nil
}
