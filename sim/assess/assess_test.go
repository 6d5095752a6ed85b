package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/busstop-sim/busstop-sim/sim/stats"
)

func TestCapacityRisk_Thresholds(t *testing.T) {
	tests := []struct {
		probFull float64
		want     RiskLevel
	}{
		{0, RiskSafe},
		{0.05, RiskSafe},
		{0.051, RiskWarning},
		{0.20, RiskWarning},
		{0.21, RiskCritical},
		{1, RiskCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CapacityRisk(tt.probFull), "probFull=%v", tt.probFull)
	}
}

func TestDiagnose_Matrix(t *testing.T) {
	tests := []struct {
		name     string
		wait     float64
		util     float64
		interval int
		want     Condition
	}{
		{"long wait, crowded", 15, 0.95, 10, Oversaturated},
		{"long wait, empty buses", 15, 0.20, 10, ScheduleMismatch},
		{"short wait, crowded", 4, 0.90, 10, HighLoad},
		{"short wait, empty buses", 4, 0.10, 10, Oversupply},
		{"balanced", 4, 0.60, 10, Optimal},
		{"long wait, balanced utilization", 15, 0.60, 10, Optimal},
		{"wait equal to interval is not long", 10, 0.95, 10, HighLoad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diagnose(tt.wait, tt.util, tt.interval))
		})
	}
}

func TestAssess_PopulatesAllFields(t *testing.T) {
	agg := &stats.Aggregate{AvgWaitTime: 12, Utilization: 0.97, ProbBusFull: 0.6}

	a := Assess(agg, 10)

	assert.Equal(t, RiskCritical, a.Risk)
	assert.InDelta(t, 60.0, a.FullPct, 1e-9)
	assert.Equal(t, Oversaturated, a.Condition)
	assert.NotEmpty(t, a.RiskNote)
	assert.NotEmpty(t, a.Diagnosis)
	assert.NotEmpty(t, a.Recommendation)
}
