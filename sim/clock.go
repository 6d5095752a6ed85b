package sim

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock start time with minute resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an "HH:MM" (24h) string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parsing time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) validate() error {
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("%w: start time of day out of range: %d:%d", ErrInvalidConfig, t.Hour, t.Minute)
	}
	return nil
}

// MinuteToWallclock maps a simulation minute offset to an "HH:MM" string.
// Offsets past midnight wrap around through date arithmetic.
func MinuteToWallclock(start TimeOfDay, offset int) string {
	base := time.Date(2000, time.January, 1, start.Hour, start.Minute, 0, 0, time.UTC)
	return base.Add(time.Duration(offset) * time.Minute).Format("15:04")
}
