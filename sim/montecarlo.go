package sim

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ErrNoSampler is returned when a SamplerFactory cannot produce a sampler for a run.
var ErrNoSampler = errors.New("arrival sampler unavailable")

// Results holds the aggregate output tables of a run-set.
type Results struct {
	Config       SimulationConfig
	Summaries    []RunSummary       // one per run, in run order
	Events       []BoardingEvent    // all runs concatenated in run order
	QueueLengths *QueueLengthMatrix // NumRuns × DurationMinutes
}

// ProgressObserver is notified as runs complete. Advisory only.
// With Workers > 1 it is still called from one goroutine at a time.
type ProgressObserver interface {
	RunCompleted(done, total int)
}

// ProgressFunc adapts a function to ProgressObserver.
type ProgressFunc func(done, total int)

func (f ProgressFunc) RunCompleted(done, total int) { f(done, total) }

type driverOptions struct {
	sampler  SamplerFactory
	progress ProgressObserver
}

// Option customizes RunMonteCarlo.
type Option func(*driverOptions)

// WithSamplerFactory replaces the default Poisson sampler.
func WithSamplerFactory(f SamplerFactory) Option {
	return func(o *driverOptions) { o.sampler = f }
}

// WithProgress registers a progress observer.
func WithProgress(p ProgressObserver) Option {
	return func(o *driverOptions) { o.progress = p }
}

// RunMonteCarlo executes cfg.NumRuns independent runs and assembles the
// summary table, the boarding log and the queue-length matrix.
//
// The configuration is validated before any run starts. Runs execute on at
// most cfg.Workers goroutines; each run draws from its own source derived
// from (cfg.Seed, run), so results are identical for any worker count.
// Cancelling ctx stops the run-set between minutes and returns ctx's error.
func RunMonteCarlo(ctx context.Context, cfg SimulationConfig, opts ...Option) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := driverOptions{sampler: PoissonFactory(cfg.ArrivalRate)}
	for _, opt := range opts {
		opt(&o)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	key := NewSimulationKey(cfg.Seed)

	logrus.Infof("Starting %d runs of %d minutes: rate=%.2f/min, bus every %d min, capacity=%d, seed=%d, workers=%d",
		cfg.NumRuns, cfg.DurationMinutes, cfg.ArrivalRate, cfg.BusIntervalMinutes, cfg.BusCapacity, cfg.Seed, workers)
	started := time.Now()

	// Each slot has exactly one writer: the goroutine of that run.
	results := make([]*RunResult, cfg.NumRuns)
	tracker := &progressTracker{observer: o.progress, total: cfg.NumRuns}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.NumRuns; i++ {
		if gctx.Err() != nil {
			break
		}
		run := i + 1
		g.Go(func() error {
			sampler := o.sampler(run, key.RunSource(run))
			if sampler == nil {
				return fmt.Errorf("run %d: %w", run, ErrNoSampler)
			}
			res, err := NewRunSimulator(cfg, run, sampler).Run(gctx)
			if err != nil {
				return err
			}
			results[i] = res
			tracker.completed()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := assemble(cfg, results)
	logrus.Infof("Completed %d runs in %v", cfg.NumRuns, time.Since(started))
	return out, nil
}

func assemble(cfg SimulationConfig, results []*RunResult) *Results {
	out := &Results{
		Config:       cfg,
		Summaries:    make([]RunSummary, 0, len(results)),
		QueueLengths: NewQueueLengthMatrix(cfg.NumRuns, cfg.DurationMinutes),
	}
	n := 0
	for _, r := range results {
		n += len(r.Events)
	}
	out.Events = make([]BoardingEvent, 0, n)
	for i, r := range results {
		out.Summaries = append(out.Summaries, r.Summary)
		out.Events = append(out.Events, r.Events...)
		out.QueueLengths.SetRow(i, r.QueueLengths)
	}
	return out
}

type progressTracker struct {
	mu       sync.Mutex
	observer ProgressObserver
	total    int
	done     int
}

func (p *progressTracker) completed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.observer != nil {
		p.observer.RunCompleted(p.done, p.total)
	}
}
