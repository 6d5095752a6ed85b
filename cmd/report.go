package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/busstop-sim/busstop-sim/sim"
	"github.com/busstop-sim/busstop-sim/sim/assess"
	"github.com/busstop-sim/busstop-sim/sim/stats"
)

// Sprint color functions for building styled strings.
var (
	bold       = color.New(color.Bold).SprintFunc()
	dim        = color.New(color.Faint).SprintFunc()
	boldCyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
	boldGreen  = color.New(color.Bold, color.FgGreen).SprintFunc()
	boldYellow = color.New(color.Bold, color.FgYellow).SprintFunc()
	boldRed    = color.New(color.Bold, color.FgRed).SprintFunc()
	boldBlue   = color.New(color.Bold, color.FgBlue).SprintFunc()
)

func riskColor(r assess.RiskLevel) func(a ...interface{}) string {
	switch r {
	case assess.RiskSafe:
		return boldGreen
	case assess.RiskWarning:
		return boldYellow
	default:
		return boldRed
	}
}

func conditionColor(c assess.Condition) func(a ...interface{}) string {
	switch c {
	case assess.Oversaturated:
		return boldRed
	case assess.ScheduleMismatch, assess.HighLoad:
		return boldYellow
	case assess.Oversupply:
		return boldBlue
	default:
		return boldGreen
	}
}

// PrintReport renders the headline metrics, the queue band checkpoints and
// the rule-based assessment.
func PrintReport(w io.Writer, cfg sim.SimulationConfig, agg *stats.Aggregate, band *stats.Band, a assess.Assessment) {
	fmt.Fprintln(w, boldCyan("=== Bus Stop Simulation ==="))
	fmt.Fprintf(w, "%s %d runs × %d min from %s, λ=%g/min, bus every %d min, %d seats\n",
		dim("config:"), cfg.NumRuns, cfg.DurationMinutes, cfg.StartTimeOfDay, cfg.ArrivalRate,
		cfg.BusIntervalMinutes, cfg.BusCapacity)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s : %.2f min\n", bold("Average wait time   "), agg.AvgWaitTime)
	fmt.Fprintf(w, "%s : %.1f passengers\n", bold("Average queue length"), agg.AvgQueueLength)
	fmt.Fprintf(w, "%s : %.1f %%\n", bold("Bus utilization     "), agg.Utilization*100)
	fmt.Fprintf(w, "%s : %.1f %%\n", bold("Buses leaving full  "), agg.ProbBusFull*100)
	fmt.Fprintf(w, "%s : %.1f per run\n", bold("Left waiting at end "), agg.MeanUnserved)
	fmt.Fprintln(w)

	if len(band.Mean) > 0 {
		peak := 0
		for i, m := range band.Mean {
			if m > band.Mean[peak] {
				peak = i
			}
		}
		last := len(band.Mean) - 1
		fmt.Fprintln(w, boldCyan("Queue length (95% CI)"))
		fmt.Fprintf(w, "  peak  %s (min %d): %.1f [%.1f, %.1f]\n",
			sim.MinuteToWallclock(cfg.StartTimeOfDay, peak+1), peak+1, band.Mean[peak], band.Lower[peak], band.Upper[peak])
		fmt.Fprintf(w, "  final %s (min %d): %.1f [%.1f, %.1f]\n",
			sim.MinuteToWallclock(cfg.StartTimeOfDay, last+1), last+1, band.Mean[last], band.Lower[last], band.Upper[last])
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, boldCyan("Assessment"))
	fmt.Fprintf(w, "  capacity risk: %s  %s\n", riskColor(a.Risk)(a.Risk), a.RiskNote)
	fmt.Fprintf(w, "  diagnosis:     %s  %s\n", conditionColor(a.Condition)(a.Condition), a.Diagnosis)
	fmt.Fprintf(w, "  recommended:   %s\n", a.Recommendation)
}

// PrintNarrative renders the narrative commentary block.
func PrintNarrative(w io.Writer, text string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, boldCyan("Commentary"))
	fmt.Fprintln(w, text)
}

// progressLogger logs run completion roughly every tenth of the run-set.
type progressLogger struct {
	lastDecile int
}

func newProgressLogger() *progressLogger {
	return &progressLogger{}
}

func (p *progressLogger) RunCompleted(done, total int) {
	decile := done * 10 / total
	if decile > p.lastDecile {
		p.lastDecile = decile
		logrus.Infof("Completed run %d of %d (%d%%)", done, total, done*100/total)
	}
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
