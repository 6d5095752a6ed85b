package cmd

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/busstop-sim/busstop-sim/sim"
	"github.com/busstop-sim/busstop-sim/sim/assess"
	"github.com/busstop-sim/busstop-sim/sim/stats"
)

func TestPrintReport_ContainsHeadlineMetrics(t *testing.T) {
	color.NoColor = true
	cfg := validCLIConfig()
	agg := &stats.Aggregate{Runs: 50, AvgWaitTime: 6.5, AvgQueueLength: 12.3, Utilization: 0.8, ProbBusFull: 0.1}
	band := &stats.Band{
		Mean:  []float64{1, 9, 4},
		Upper: []float64{2, 10, 5},
		Lower: []float64{0, 8, 3},
	}

	var buf bytes.Buffer
	PrintReport(&buf, cfg, agg, band, assess.Assess(agg, cfg.BusIntervalMinutes))
	out := buf.String()

	assert.Contains(t, out, "6.50 min")
	assert.Contains(t, out, "12.3 passengers")
	assert.Contains(t, out, "80.0 %")
	assert.Contains(t, out, "peak  17:02 (min 2): 9.0 [8.0, 10.0]")
	assert.Contains(t, out, "final 17:03 (min 3)")
	assert.Contains(t, out, string(assess.RiskWarning))
	assert.Contains(t, out, string(assess.Optimal))
}

func TestProgressLogger_Deciles(t *testing.T) {
	p := newProgressLogger()
	for done := 1; done <= 20; done++ {
		p.RunCompleted(done, 20)
	}
	assert.Equal(t, 10, p.lastDecile)
}

var _ sim.ProgressObserver = (*progressLogger)(nil)
