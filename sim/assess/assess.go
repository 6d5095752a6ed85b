// Package assess turns aggregate metrics into rule-based operational guidance.
// It reads stats.Aggregate and never influences a simulation.
package assess

import (
	"fmt"

	"github.com/busstop-sim/busstop-sim/sim/stats"
)

// RiskLevel grades how often buses leave the stop full.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskWarning  RiskLevel = "warning"
	RiskCritical RiskLevel = "critical"
)

// Thresholds on the full-bus percentage.
const (
	SafeFullPct = 5.0
	MaxFullPct  = 20.0
)

// Utilization band considered healthy.
const (
	HighUtilization = 0.85
	LowUtilization  = 0.40
)

// Condition names a cell of the diagnosis matrix.
type Condition string

const (
	Oversaturated    Condition = "oversaturated"
	ScheduleMismatch Condition = "schedule-mismatch"
	HighLoad         Condition = "high-load"
	Oversupply       Condition = "oversupply"
	Optimal          Condition = "optimal"
)

// Assessment is the full rule-based readout.
type Assessment struct {
	Risk           RiskLevel `json:"risk"`
	FullPct        float64   `json:"full_pct"`
	RiskNote       string    `json:"risk_note"`
	Condition      Condition `json:"condition"`
	Diagnosis      string    `json:"diagnosis"`
	Recommendation string    `json:"recommendation"`
}

// CapacityRisk grades the share of buses that left at capacity.
func CapacityRisk(probBusFull float64) RiskLevel {
	pct := probBusFull * 100
	switch {
	case pct <= SafeFullPct:
		return RiskSafe
	case pct <= MaxFullPct:
		return RiskWarning
	default:
		return RiskCritical
	}
}

// Diagnose classifies the stop from the average wait relative to the bus
// interval and the seat utilization.
func Diagnose(avgWait, utilization float64, busInterval int) Condition {
	waitLong := avgWait > float64(busInterval)
	high := utilization > HighUtilization
	low := utilization < LowUtilization
	switch {
	case waitLong && high:
		return Oversaturated
	case waitLong && low:
		return ScheduleMismatch
	case high:
		return HighLoad
	case low:
		return Oversupply
	default:
		return Optimal
	}
}

// Assess produces the risk grade, diagnosis and recommendation for agg.
func Assess(agg *stats.Aggregate, busInterval int) Assessment {
	a := Assessment{
		Risk:    CapacityRisk(agg.ProbBusFull),
		FullPct: agg.ProbBusFull * 100,
	}
	switch a.Risk {
	case RiskSafe:
		a.RiskNote = fmt.Sprintf("%.1f%% of buses left full, within tolerance.", a.FullPct)
	case RiskWarning:
		a.RiskNote = fmt.Sprintf("%.1f%% of buses left full; the stop is starting to saturate.", a.FullPct)
	default:
		a.RiskNote = fmt.Sprintf("%.1f%% of buses left full; passengers are left behind and the queue grows.", a.FullPct)
	}

	a.Condition = Diagnose(agg.AvgWaitTime, agg.Utilization, busInterval)
	switch a.Condition {
	case Oversaturated:
		a.Diagnosis = "Bus supply is far below demand."
		a.Recommendation = "Add vehicles to the route or run articulated buses."
	case ScheduleMismatch:
		a.Diagnosis = "Waits are long while buses run mostly empty: service is too infrequent."
		a.Recommendation = "Switch to smaller vehicles and shorten the interval between arrivals."
	case HighLoad:
		a.Diagnosis = fmt.Sprintf("Waits are acceptable but buses are crowded (utilization %.1f%%).", agg.Utilization*100)
		a.Recommendation = "Shorten the interval slightly to reduce crowding on board."
	case Oversupply:
		a.Diagnosis = "Too much capacity for the demand at this stop."
		a.Recommendation = "Reduce service frequency to cut operating cost."
	default:
		a.Diagnosis = "Service is balanced between efficiency and passenger comfort."
		a.Recommendation = "Keep the current configuration."
	}
	return a
}
