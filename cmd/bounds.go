package cmd

import (
	"fmt"

	"github.com/busstop-sim/busstop-sim/sim"
)

// Input ranges accepted from users.
const (
	MinDurationMinutes = 60
	MaxDurationMinutes = 1440
	MinRuns            = 10
	MaxRuns            = 500
)

// ValidateInputBounds enforces the user-facing input ranges on top of
// sim.SimulationConfig.Validate. The core accepts a zero arrival rate; the
// CLI does not.
func ValidateInputBounds(cfg sim.SimulationConfig) error {
	if cfg.DurationMinutes < MinDurationMinutes || cfg.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("%w: --duration must be in [%d, %d], got %d",
			sim.ErrInvalidConfig, MinDurationMinutes, MaxDurationMinutes, cfg.DurationMinutes)
	}
	if cfg.NumRuns < MinRuns || cfg.NumRuns > MaxRuns {
		return fmt.Errorf("%w: --runs must be in [%d, %d], got %d",
			sim.ErrInvalidConfig, MinRuns, MaxRuns, cfg.NumRuns)
	}
	if !(cfg.ArrivalRate > 0) {
		return fmt.Errorf("%w: --rate must be positive, got %f", sim.ErrInvalidConfig, cfg.ArrivalRate)
	}
	return cfg.Validate()
}
