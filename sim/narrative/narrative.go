// Package narrative produces free-form commentary on a completed run-set
// from an external text-generation provider.
//
// The provider is strictly optional: Advise always returns text, falling
// back to an advisory message when the narrator is missing, times out or
// fails. Nothing here can alter simulation results.
package narrative

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNoCredential is returned when no API key could be resolved.
var ErrNoCredential = errors.New("narrative API key not set")

// DefaultTimeout bounds a single narrative call.
const DefaultTimeout = 30 * time.Second

// Input is what a narrator sees: four aggregate scalars and three inputs.
type Input struct {
	AvgWaitTime    float64
	AvgQueueLength float64
	Utilization    float64
	ProbBusFull    float64

	ArrivalRate        float64
	BusIntervalMinutes int
	BusCapacity        int
}

// Narrator generates commentary for a run-set.
type Narrator interface {
	Narrate(ctx context.Context, in Input) (string, error)
}

// Advise calls n with a timeout and always returns displayable text.
// A nil narrator yields a notice that commentary is disabled.
func Advise(ctx context.Context, n Narrator, in Input, timeout time.Duration) string {
	if n == nil {
		return "Narrative commentary disabled."
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)
	go func() {
		text, err := n.Narrate(ctx, in)
		done <- reply{text, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			logrus.Warnf("narrative generation failed: %v", r.err)
			return fmt.Sprintf("Narrative unavailable: %v", r.err)
		}
		return r.text
	case <-ctx.Done():
		logrus.Warnf("narrative generation aborted: %v", ctx.Err())
		return fmt.Sprintf("Narrative unavailable: %v", ctx.Err())
	}
}
