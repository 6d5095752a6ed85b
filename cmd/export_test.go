package cmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/busstop-sim/busstop-sim/sim"
	"github.com/busstop-sim/busstop-sim/sim/assess"
	"github.com/busstop-sim/busstop-sim/sim/stats"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteOutputs_WritesAllTables(t *testing.T) {
	// GIVEN a small completed run-set
	cfg := sim.SimulationConfig{
		DurationMinutes: 30, NumRuns: 4, ArrivalRate: 1.5,
		BusIntervalMinutes: 10, BusCapacity: 12,
		StartTimeOfDay: sim.TimeOfDay{Hour: 8}, Seed: 3, Workers: 2,
	}
	res, err := sim.RunMonteCarlo(context.Background(), cfg)
	require.NoError(t, err)
	band := stats.QueueBand(res.QueueLengths)
	agg := stats.Summarize(res.Summaries)
	a := assess.Assess(agg, cfg.BusIntervalMinutes)

	// WHEN exported
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteOutputs(dir, res, band, agg, a))

	// THEN each table has a header plus one row per entity
	summary := readCSV(t, filepath.Join(dir, "summary.csv"))
	assert.Len(t, summary, cfg.NumRuns+1)
	assert.Equal(t, "run", summary[0][0])

	events := readCSV(t, filepath.Join(dir, "events.csv"))
	assert.Len(t, events, len(res.Events)+1)

	matrix := readCSV(t, filepath.Join(dir, "queue_matrix.csv"))
	require.Len(t, matrix, cfg.NumRuns+1)
	assert.Len(t, matrix[0], cfg.DurationMinutes+1)

	bandRows := readCSV(t, filepath.Join(dir, "queue_band.csv"))
	require.Len(t, bandRows, cfg.DurationMinutes+1)
	assert.Equal(t, []string{"1", "08:01"}, bandRows[1][:2])

	data, err := os.ReadFile(filepath.Join(dir, "report.json"))
	require.NoError(t, err)
	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "08:00", report.StartTime)
	assert.Equal(t, cfg.NumRuns, report.Aggregate.Runs)
	assert.Equal(t, a.Condition, report.Assessment.Condition)
}
