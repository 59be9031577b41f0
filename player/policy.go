package player

import (
	"math"

	"catan/engine"

	"golang.org/x/exp/rand"
)

// policy is a set of candidate moves with unnormalized weights.
type policy struct {
	moves   []engine.Move
	weights []float64
}

func (p *policy) add(move engine.Move, weight float64) {
	if weight <= 0 {
		return
	}
	p.moves = append(p.moves, move)
	p.weights = append(p.weights, weight)
}

func (p *policy) empty() bool {
	return len(p.moves) == 0
}

// adjustTemperature turns weights into probabilities. A low temperature
// sharpens the distribution towards the heaviest moves.
func adjustTemperature(weights []float64, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	probs := make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = math.Pow(w, exponent)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

func (p *policy) sample(rng *rand.Rand, temperature float64) engine.Move {
	probs := adjustTemperature(p.weights, temperature)
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if sampled < cumulative {
			return p.moves[i]
		}
	}
	return p.moves[len(p.moves)-1] // Fallback in case of rounding errors
}
