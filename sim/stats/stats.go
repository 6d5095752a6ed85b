// Package stats computes cross-run statistics from a Monte Carlo run-set:
// the per-minute 95% confidence band of queue length and the global means of
// the per-run summary metrics.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/busstop-sim/busstop-sim/sim"
)

// Z95 is the two-sided 95% normal quantile used for the band.
const Z95 = 1.96

// Band is the per-minute queue length band. Index m-1 holds minute m.
type Band struct {
	Mean   []float64
	StdDev []float64 // sample standard deviation across runs
	Upper  []float64 // Mean + Z95·StdDev/√runs
	Lower  []float64 // max(0, Mean − Z95·StdDev/√runs)
}

// QueueBand computes the cross-run mean and confidence band for every minute.
// With a single run the standard deviation is taken as 0 and the band
// collapses onto the mean.
func QueueBand(m *sim.QueueLengthMatrix) *Band {
	runs, minutes := m.Dims()
	b := &Band{
		Mean:   make([]float64, minutes),
		StdDev: make([]float64, minutes),
		Upper:  make([]float64, minutes),
		Lower:  make([]float64, minutes),
	}
	sqrtRuns := math.Sqrt(float64(runs))
	for col := 0; col < minutes; col++ {
		xs := m.Column(col)
		var mean, std float64
		if runs < 2 {
			mean = stat.Mean(xs, nil)
		} else {
			mean, std = stat.MeanStdDev(xs, nil)
		}
		half := Z95 * std / sqrtRuns
		b.Mean[col] = mean
		b.StdDev[col] = std
		b.Upper[col] = mean + half
		b.Lower[col] = math.Max(0, mean-half)
	}
	return b
}

// Aggregate holds the global means across runs.
type Aggregate struct {
	Runs           int     `json:"runs"`
	AvgWaitTime    float64 `json:"avg_wait_time"`
	AvgQueueLength float64 `json:"avg_queue_length"`
	Utilization    float64 `json:"utilization"`
	ProbBusFull    float64 `json:"prob_bus_full"`

	MeanArrivals float64 `json:"mean_arrivals"`
	MeanServed   float64 `json:"mean_served"`
	MeanUnserved float64 `json:"mean_unserved"`
}

// Summarize averages each RunSummary scalar across runs.
// Safe for an empty slice (returns zero-value fields).
func Summarize(summaries []sim.RunSummary) *Aggregate {
	agg := &Aggregate{Runs: len(summaries)}
	if len(summaries) == 0 {
		return agg
	}
	n := len(summaries)
	wait := make([]float64, n)
	queue := make([]float64, n)
	util := make([]float64, n)
	full := make([]float64, n)
	arrivals := make([]float64, n)
	served := make([]float64, n)
	unserved := make([]float64, n)
	for i, s := range summaries {
		wait[i] = s.AvgWaitTime
		queue[i] = s.AvgQueueLength
		util[i] = s.Utilization
		full[i] = s.ProbBusFull
		arrivals[i] = float64(s.TotalArrivals)
		served[i] = float64(s.ServedPassengers)
		unserved[i] = float64(s.Unserved)
	}
	agg.AvgWaitTime = stat.Mean(wait, nil)
	agg.AvgQueueLength = stat.Mean(queue, nil)
	agg.Utilization = stat.Mean(util, nil)
	agg.ProbBusFull = stat.Mean(full, nil)
	agg.MeanArrivals = stat.Mean(arrivals, nil)
	agg.MeanServed = stat.Mean(served, nil)
	agg.MeanUnserved = stat.Mean(unserved, nil)
	return agg
}
