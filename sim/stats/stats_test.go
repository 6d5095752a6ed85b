package stats

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/busstop-sim/busstop-sim/sim"
	"github.com/busstop-sim/busstop-sim/sim/internal/testutil"
)

func TestQueueBand_KnownValues(t *testing.T) {
	// GIVEN 4 runs × 2 minutes with known column statistics
	m := sim.NewQueueLengthMatrix(4, 2)
	m.SetRow(0, []int{2, 5})
	m.SetRow(1, []int{4, 5})
	m.SetRow(2, []int{6, 5})
	m.SetRow(3, []int{8, 5})

	b := QueueBand(m)

	// THEN column 0: mean 5, sample std sqrt(20/3); column 1 has zero spread
	std0 := math.Sqrt(20.0 / 3.0)
	half := Z95 * std0 / 2
	testutil.AssertFloat64Equal(t, "mean[0]", 5, b.Mean[0], 1e-12)
	testutil.AssertFloat64Equal(t, "std[0]", std0, b.StdDev[0], 1e-12)
	testutil.AssertFloat64Equal(t, "upper[0]", 5+half, b.Upper[0], 1e-12)
	testutil.AssertFloat64Equal(t, "lower[0]", 5-half, b.Lower[0], 1e-12)
	assert.Equal(t, 5.0, b.Mean[1])
	assert.Equal(t, 5.0, b.Upper[1])
	assert.Equal(t, 5.0, b.Lower[1])
}

func TestQueueBand_LowerClampedAtZero(t *testing.T) {
	m := sim.NewQueueLengthMatrix(2, 1)
	m.SetRow(0, []int{0})
	m.SetRow(1, []int{10})

	b := QueueBand(m)

	assert.Equal(t, 0.0, b.Lower[0])
	assert.Greater(t, b.Upper[0], b.Mean[0])
}

func TestQueueBand_SingleRun_CollapsesToMean(t *testing.T) {
	m := sim.NewQueueLengthMatrix(1, 3)
	m.SetRow(0, []int{1, 2, 3})

	b := QueueBand(m)

	assert.Equal(t, []float64{1, 2, 3}, b.Mean)
	assert.Equal(t, b.Mean, b.Upper)
	assert.Equal(t, b.Mean, b.Lower)
	for _, s := range b.StdDev {
		assert.False(t, math.IsNaN(s))
	}
}

func TestQueueBand_BracketsMean_OnSimulatedRuns(t *testing.T) {
	cfg := sim.SimulationConfig{
		DurationMinutes: 90, NumRuns: 30, ArrivalRate: 2.5,
		BusIntervalMinutes: 10, BusCapacity: 20, Seed: 11,
	}
	res, err := sim.RunMonteCarlo(context.Background(), cfg)
	require.NoError(t, err)

	b := QueueBand(res.QueueLengths)

	require.Len(t, b.Mean, cfg.DurationMinutes)
	for m := range b.Mean {
		assert.GreaterOrEqual(t, b.Lower[m], 0.0, "minute %d", m+1)
		assert.LessOrEqual(t, b.Lower[m], b.Mean[m], "minute %d", m+1)
		assert.LessOrEqual(t, b.Mean[m], b.Upper[m], "minute %d", m+1)
	}
}

func TestSummarize_MeansAcrossRuns(t *testing.T) {
	summaries := []sim.RunSummary{
		{Run: 1, AvgWaitTime: 2, AvgQueueLength: 4, Utilization: 0.5, ProbBusFull: 0, TotalArrivals: 10, ServedPassengers: 8, Unserved: 2},
		{Run: 2, AvgWaitTime: 4, AvgQueueLength: 6, Utilization: 1.0, ProbBusFull: 1, TotalArrivals: 20, ServedPassengers: 16, Unserved: 4},
	}

	agg := Summarize(summaries)

	assert.Equal(t, 2, agg.Runs)
	assert.Equal(t, 3.0, agg.AvgWaitTime)
	assert.Equal(t, 5.0, agg.AvgQueueLength)
	assert.Equal(t, 0.75, agg.Utilization)
	assert.Equal(t, 0.5, agg.ProbBusFull)
	assert.Equal(t, 15.0, agg.MeanArrivals)
	assert.Equal(t, 12.0, agg.MeanServed)
	assert.Equal(t, 3.0, agg.MeanUnserved)
}

func TestSummarize_Empty_ReturnsZeroValues(t *testing.T) {
	agg := Summarize(nil)
	assert.Equal(t, &Aggregate{}, agg)
}
