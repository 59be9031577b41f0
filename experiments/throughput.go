package experiments

import (
	"sync"
	"time"

	"catan/experiments/metrics"
	"catan/meta"

	"github.com/rs/zerolog/log"
)

// Throughput is the result of playing games concurrently.
type Throughput struct {
	Goroutines int
	Games      int
	Moves      int
	Failed     int
	Duration   time.Duration
}

// MovesPerSecond returns the accepted moves per wall-clock second.
func (t Throughput) MovesPerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Moves) / t.Duration.Seconds()
}

// RunThroughputExperiment plays games baseline games spread over
// goroutines workers, each game on its own engine. At least one worker runs.
func RunThroughputExperiment(cfg meta.Config, games, goroutines int) Throughput {
	goroutines = max(1, goroutines)
	seats := make([]metrics.AgentConfig, cfg.Players)
	for i := range seats {
		seats[i] = Baseline
	}

	jobs := make(chan int)
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = Throughput{Goroutines: goroutines, Games: games}
	)
	start := time.Now()
	for w := 0; w < goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				gameCfg := cfg
				if cfg.Seed != 0 {
					gameCfg.Seed = cfg.Seed + uint64(i)
				}
				gameMetric, _, err := runGame(gameCfg, seats)

				mu.Lock()
				if err != nil {
					result.Failed++
					log.Warn().Err(err).Msgf("game %d failed", i)
				} else {
					result.Moves += gameMetric.TotalMoves
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < games; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	result.Duration = time.Since(start)

	log.Info().Msgf("played %d games on %d goroutines: %.0f moves/s", games, goroutines, result.MovesPerSecond())
	return result
}
