// Package sim provides the discrete-time Monte Carlo engine for the bus stop queue.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - config.go: SimulationConfig and its validation
//   - simulator.go: one run of the per-minute arrival → snapshot → boarding loop
//   - montecarlo.go: the driver that repeats runs and assembles the output tables
//
// # Architecture
//
// The sim package owns the core; consumers live in sub-packages:
//   - sim/stats/: cross-run confidence band and global means
//   - sim/assess/: rule-based capacity risk and operational diagnosis
//   - sim/narrative/: optional text commentary from an external model provider
//
// None of the sub-packages feed back into a run. Everything a run mutates
// (queue, counters, random source) is owned by that run alone, so the driver
// can execute runs on a bounded worker pool without locking.
//
// # Key Interfaces
//   - ArrivalSampler: number of passengers arriving in a given minute
//   - ProgressObserver: advisory notification as runs complete
package sim
