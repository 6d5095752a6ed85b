// sim/simulator.go
package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// RunResult is everything one run produces. It is not modified after Run returns.
type RunResult struct {
	Summary      RunSummary
	QueueLengths []int           // index m-1 holds the snapshot for minute m
	Events       []BoardingEvent // boarding order
	Remaining    []Passenger     // still queued at the end, front to back
}

// runCounters accumulates the scalar statistics of a run.
type runCounters struct {
	nextID          int
	totalArrivals   int
	served          int
	totalWait       int
	queueSum        int
	busCount        int
	fullBuses       int
	capacityOffered int
}

// RunSimulator executes one independent trajectory of the stop.
// All of its state (queue, counters, sampler) belongs to this run alone.
type RunSimulator struct {
	cfg     SimulationConfig
	run     int
	sampler ArrivalSampler

	queue    PassengerQueue
	counters runCounters
	series   []int
	events   []BoardingEvent
}

// NewRunSimulator prepares run number run (1-based) using sampler for arrivals.
// cfg is assumed valid; RunMonteCarlo validates before constructing runs.
func NewRunSimulator(cfg SimulationConfig, run int, sampler ArrivalSampler) *RunSimulator {
	if sampler == nil {
		panic("NewRunSimulator: sampler must not be nil")
	}
	return &RunSimulator{
		cfg:     cfg,
		run:     run,
		sampler: sampler,
		series:  make([]int, cfg.DurationMinutes),
	}
}

// Run steps every minute from 1 to DurationMinutes and returns the result.
// ctx is consulted only between minutes.
func (s *RunSimulator) Run(ctx context.Context) (*RunResult, error) {
	for minute := 1; minute <= s.cfg.DurationMinutes; minute++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run %d stopped at minute %d: %w", s.run, minute, err)
		}
		s.Step(minute)
	}
	res := s.result()
	logrus.Debugf("run %d: arrivals=%d served=%d unserved=%d buses=%d full=%d",
		s.run, res.Summary.TotalArrivals, res.Summary.ServedPassengers, res.Summary.Unserved,
		res.Summary.BusCount, res.Summary.FullBusCount)
	return res, nil
}

// Step advances the run by one minute: arrivals, snapshot, then boarding if a bus is due.
func (s *RunSimulator) Step(minute int) {
	s.arrive(minute)

	qlen := s.queue.Len()
	s.series[minute-1] = qlen
	s.counters.queueSum += qlen

	if minute%s.cfg.BusIntervalMinutes == 0 {
		s.board(minute)
	}
}

func (s *RunSimulator) arrive(minute int) {
	n := s.sampler.Arrivals(minute)
	if n < 0 {
		panic(fmt.Sprintf("ArrivalSampler returned negative count %d at minute %d", n, minute))
	}
	for i := 0; i < n; i++ {
		s.counters.nextID++
		s.queue.Enqueue(Passenger{ID: s.counters.nextID, ArrivalMinute: minute})
	}
	s.counters.totalArrivals += n
}

func (s *RunSimulator) board(minute int) {
	s.counters.busCount++
	s.counters.capacityOffered += s.cfg.BusCapacity
	busID := s.counters.busCount

	boarding := min(s.queue.Len(), s.cfg.BusCapacity)
	if boarding == s.cfg.BusCapacity {
		s.counters.fullBuses++
	}

	boardingTime := MinuteToWallclock(s.cfg.StartTimeOfDay, minute)
	for i := 0; i < boarding; i++ {
		p, _ := s.queue.Dequeue()
		wait := minute - p.ArrivalMinute
		s.counters.totalWait += wait
		s.counters.served++
		s.events = append(s.events, BoardingEvent{
			Run:            s.run,
			PassengerID:    p.ID,
			ArrivalMinute:  p.ArrivalMinute,
			BoardingMinute: minute,
			WaitMinutes:    wait,
			BusID:          busID,
			ArrivalTime:    MinuteToWallclock(s.cfg.StartTimeOfDay, p.ArrivalMinute),
			BoardingTime:   boardingTime,
		})
	}
	logrus.Tracef("run %d minute %d: bus %d boarded %d/%d, %d left waiting",
		s.run, minute, busID, boarding, s.cfg.BusCapacity, s.queue.Len())
}

func (s *RunSimulator) result() *RunResult {
	c := s.counters
	summary := RunSummary{
		Run:              s.run,
		AvgQueueLength:   float64(c.queueSum) / float64(s.cfg.DurationMinutes),
		TotalArrivals:    c.totalArrivals,
		ServedPassengers: c.served,
		Unserved:         s.queue.Len(),
		BusCount:         c.busCount,
		FullBusCount:     c.fullBuses,
	}
	if c.served > 0 {
		summary.AvgWaitTime = float64(c.totalWait) / float64(c.served)
	}
	if c.capacityOffered > 0 {
		summary.Utilization = float64(c.served) / float64(c.capacityOffered)
	}
	if c.busCount > 0 {
		summary.ProbBusFull = float64(c.fullBuses) / float64(c.busCount)
	}

	remaining := make([]Passenger, s.queue.Len())
	copy(remaining, s.queue.Items())

	return &RunResult{
		Summary:      summary,
		QueueLengths: s.series,
		Events:       s.events,
		Remaining:    remaining,
	}
}
