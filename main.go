package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"catan/engine"
	"catan/experiments"
	"catan/meta"
	"catan/player"

	"github.com/bytedance/sonic"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	configPath := flag.String("config", "", "YAML game config, CATAN_* variables override it")
	numGames := flag.Int("games", 1, "Number of self-play games")
	experiment := flag.String("experiment", "", "Experiment to run instead of self-play: temperature or throughput")
	goroutines := flag.Int("goroutines", 4, "Workers for the throughput experiment")
	outDir := flag.String("out", "experiments", "Directory for experiment records")
	asJSON := flag.Bool("json", false, "Print each game summary as JSON")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	cfg, err := meta.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)

	switch *experiment {
	case "":
		runSelfPlay(cfg, *numGames, *asJSON)
	case "temperature":
		dir, err := experiments.RunTemperatureExperiment(cfg, *numGames, *outDir)
		if err != nil {
			log.Fatal().Err(err).Msg("temperature experiment failed")
		}
		fmt.Printf("Records stored in %s\n", dir)
	case "throughput":
		result := experiments.RunThroughputExperiment(cfg, *numGames, *goroutines)
		fmt.Printf("%d games, %d moves in %s (%.0f moves/s, %d failed)\n",
			result.Games, result.Moves, result.Duration, result.MovesPerSecond(), result.Failed)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

func runSelfPlay(cfg meta.Config, numGames int, asJSON bool) {
	for i := 0; i < numGames; i++ {
		gameCfg := cfg
		if cfg.Seed != 0 {
			gameCfg.Seed = cfg.Seed + uint64(i)
		}
		e, err := engine.New(gameCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create game")
		}

		agents := make([]engine.Agent, cfg.Players)
		for j := range agents {
			agents[j] = player.NewBot(rand.New(rand.NewSource(gameCfg.Seed*31 + uint64(j) + 1)))
		}
		fmt.Printf("Game %d started...\n", i+1)
		if _, err := e.Run(agents); err != nil {
			log.Error().Err(err).Msgf("game %d aborted", i+1)
		}

		summary := e.Summary()
		if asJSON {
			out, err := sonic.MarshalString(summary)
			if err != nil {
				log.Error().Err(err).Msg("failed to encode summary")
				continue
			}
			fmt.Println(out)
			continue
		}
		printStandings(summary)
	}
}

func printStandings(s engine.Summary) {
	if s.Winner == 0 {
		fmt.Printf("Game %s stopped after %d turns without a winner\n", s.Game, s.Turns)
	} else {
		fmt.Printf("Game %s over after %d turns! Winner: %s\n", s.Game, s.Turns, aurora.Green(fmt.Sprintf("player %d", s.Winner)).Bold())
	}
	fmt.Printf("%-8s %6s %6s %6s %6s %7s\n", "player", "points", "sett.", "cities", "road", "knights")
	for _, st := range s.Standings {
		name := fmt.Sprintf("%-8s", fmt.Sprintf("p%d", st.Player))
		line := fmt.Sprintf("%6d %6d %6d %6d %7d", st.Points, st.Settlements, st.Cities, st.RoadLength, st.Knights)
		switch {
		case st.Player == s.Winner:
			fmt.Println(aurora.Green(name).Bold(), aurora.Green(line))
		case st.LongestRoad || st.LargestArmy:
			fmt.Println(aurora.Yellow(name), line)
		default:
			fmt.Println(aurora.Cyan(name), line)
		}
	}
}
