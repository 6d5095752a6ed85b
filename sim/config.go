package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every SimulationConfig validation failure.
var ErrInvalidConfig = errors.New("invalid simulation config")

// SimulationConfig groups the parameters of one Monte Carlo run-set.
// It is read-only once handed to RunMonteCarlo.
type SimulationConfig struct {
	DurationMinutes    int       // simulated minutes per run (must be > 0)
	NumRuns            int       // independent runs (must be > 0)
	ArrivalRate        float64   // mean passengers per minute (Poisson)
	BusIntervalMinutes int       // a bus arrives every N minutes (must be > 0)
	BusCapacity        int       // seats offered per bus (must be > 0)
	StartTimeOfDay     TimeOfDay // wall-clock time of minute 0
	Seed               int64     // base seed; run i draws from a source derived from (Seed, i)
	Workers            int       // concurrent runs; 0 = GOMAXPROCS
}

// Validate checks the structural constraints the simulator relies on.
// ArrivalRate may be zero (an empty stop is a valid degenerate scenario);
// negative or non-finite rates are rejected. Input ranges presented to end
// users are enforced by the CLI, not here.
func (c SimulationConfig) Validate() error {
	if c.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration_minutes must be positive, got %d", ErrInvalidConfig, c.DurationMinutes)
	}
	if c.NumRuns <= 0 {
		return fmt.Errorf("%w: num_runs must be positive, got %d", ErrInvalidConfig, c.NumRuns)
	}
	if math.IsNaN(c.ArrivalRate) || math.IsInf(c.ArrivalRate, 0) {
		return fmt.Errorf("%w: arrival_rate must be a finite number, got %f", ErrInvalidConfig, c.ArrivalRate)
	}
	if c.ArrivalRate < 0 {
		return fmt.Errorf("%w: arrival_rate must be non-negative, got %f", ErrInvalidConfig, c.ArrivalRate)
	}
	if c.BusIntervalMinutes <= 0 {
		return fmt.Errorf("%w: bus_interval_minutes must be positive, got %d", ErrInvalidConfig, c.BusIntervalMinutes)
	}
	if c.BusCapacity <= 0 {
		return fmt.Errorf("%w: bus_capacity must be positive, got %d", ErrInvalidConfig, c.BusCapacity)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", ErrInvalidConfig, c.Workers)
	}
	return c.StartTimeOfDay.validate()
}
