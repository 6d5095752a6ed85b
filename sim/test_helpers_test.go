package sim

import (
	"math/rand/v2"
)

// scriptedArrivals replays a fixed minute → count schedule.
type scriptedArrivals map[int]int

func (s scriptedArrivals) Arrivals(minute int) int { return s[minute] }

// scriptedFactory hands every run the same schedule.
func scriptedFactory(s scriptedArrivals) SamplerFactory {
	return func(int, rand.Source) ArrivalSampler { return s }
}

// newTestConfig returns a small valid configuration; callers override fields.
func newTestConfig() SimulationConfig {
	return SimulationConfig{
		DurationMinutes:    60,
		NumRuns:            20,
		ArrivalRate:        2.0,
		BusIntervalMinutes: 10,
		BusCapacity:        15,
		StartTimeOfDay:     TimeOfDay{Hour: 17},
		Seed:               42,
		Workers:            1,
	}
}
