// Package testutil provides shared test infrastructure for the bus stop simulator.
// It holds the golden scenario types and assertion helpers used across
// sim/ and sim/stats/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is a single-run scenario with a scripted arrival schedule.
type GoldenTestCase struct {
	Name               string        `json:"name"`
	DurationMinutes    int           `json:"duration_minutes"`
	BusIntervalMinutes int           `json:"bus_interval_minutes"`
	BusCapacity        int           `json:"bus_capacity"`
	Arrivals           map[int]int   `json:"arrivals"` // minute → passengers arriving
	Metrics            GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected RunSummary of a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	TotalArrivals    int `json:"total_arrivals"`
	ServedPassengers int `json:"served_passengers"`
	Unserved         int `json:"unserved"`
	BusCount         int `json:"bus_count"`
	FullBusCount     int `json:"full_bus_count"`

	// Derived ratios
	AvgWaitTime    float64 `json:"avg_wait_time"`
	AvgQueueLength float64 `json:"avg_queue_length"`
	Utilization    float64 `json:"utilization"`
	ProbBusFull    float64 `json:"prob_bus_full"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
