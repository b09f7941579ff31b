// Package agentsim provides a small façade over the schedule, model and
// collect packages for building discrete-tick agent-based simulations. Most
// applications interact with this package by:
//  1. Embedding model.Model in a concrete model and creating its agents
//  2. Registering the agents with one of the schedule policies
//  3. Wrapping the scheduler in a Simulation via New() and calling Run()
//
// The façade only drives the per-tick loop (step, collect, log); all
// ordering semantics live in the schedule package and all behavior lives in
// the agents themselves.
package agentsim

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentsim/collect"
	"github.com/hupe1980/agentsim/logging"
	"github.com/hupe1980/agentsim/schedule"
)

// Options configures a Simulation.
type Options struct {
	// Collector, when set, samples its reporters after every completed
	// tick.
	Collector *collect.Collector
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// WithCollector attaches a data collector to the per-tick loop.
func WithCollector(c *collect.Collector) func(o *Options) {
	return func(o *Options) { o.Collector = c }
}

// WithLogger sets the simulation's logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Simulation drives a scheduler for a fixed number of ticks.
type Simulation struct {
	opts  Options
	sched schedule.Scheduler
}

// New wraps a scheduler in a simulation runner.
func New(sched schedule.Scheduler, optFns ...func(o *Options)) *Simulation {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Simulation{opts: opts, sched: sched}
}

// Scheduler returns the wrapped scheduler.
func (s *Simulation) Scheduler() schedule.Scheduler { return s.sched }

// Run executes up to ticks scheduler steps, collecting after each one. A
// tick is atomic: cancellation is only observed between ticks, and the first
// behavior error aborts the run with the failing tick's counters untouched.
func (s *Simulation) Run(ctx context.Context, ticks int) error {
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.sched.Step(); err != nil {
			return fmt.Errorf("tick %d: %w", s.sched.Steps()+1, err)
		}
		if s.opts.Collector != nil {
			s.opts.Collector.Collect(s.sched.Agents())
		}
	}
	s.opts.Logger.Info("run complete", "steps", s.sched.Steps(), "time", s.sched.Time(), "agents", len(s.sched.Agents()))
	return nil
}
