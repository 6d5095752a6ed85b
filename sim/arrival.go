package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ArrivalSampler yields the number of passengers joining the queue in a minute.
type ArrivalSampler interface {
	// Arrivals returns the passenger count for the given 1-based minute.
	// Always returns a value >= 0.
	Arrivals(minute int) int
}

// SamplerFactory builds the ArrivalSampler for one run from that run's
// private random source.
type SamplerFactory func(run int, src rand.Source) ArrivalSampler

// PoissonArrivals draws per-minute counts from Poisson(rate).
type PoissonArrivals struct {
	dist distuv.Poisson
}

// NewPoissonArrivals creates a Poisson sampler drawing from src.
func NewPoissonArrivals(rate float64, src rand.Source) *PoissonArrivals {
	return &PoissonArrivals{dist: distuv.Poisson{Lambda: rate, Src: src}}
}

func (p *PoissonArrivals) Arrivals(int) int {
	// A zero rate never draws, so an empty stop consumes no randomness.
	if p.dist.Lambda <= 0 {
		return 0
	}
	return int(p.dist.Rand())
}

// PoissonFactory returns the default SamplerFactory for a fixed rate.
func PoissonFactory(rate float64) SamplerFactory {
	return func(_ int, src rand.Source) ArrivalSampler {
		if src == nil {
			return nil
		}
		return NewPoissonArrivals(rate, src)
	}
}
