package schedule

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
)

// Scheduler is the surface every activation policy exposes to the model and
// to external drivers.
type Scheduler interface {
	// Add registers an agent; fails with core.ErrDuplicateAgent on
	// re-registration.
	Add(a core.Agent) error
	// Remove deregisters an agent; fails with core.ErrAgentNotFound for an
	// unknown id. Safe to call from agent behavior while a tick is running.
	Remove(a core.Agent) error
	// Step executes one tick. Behavior errors propagate uncaught and leave
	// the counters untouched.
	Step() error
	// Agents returns the currently registered agents in canonical order.
	Agents() []core.Agent
	// Steps returns the number of completed ticks.
	Steps() int64
	// Time returns the logical clock value.
	Time() float64
}

// Options configures a scheduler.
type Options struct {
	// Logger receives per-tick debug output. Defaults to NoOpLogger.
	Logger logging.Logger
}

// WithLogger sets the scheduler's logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// BaseScheduler activates every agent once per tick in insertion order. It is
// the sequential policy and the shared bookkeeping (registry, clock, logging)
// that every other policy embeds.
type BaseScheduler struct {
	registry *Registry
	clock    TickCounter
	logger   logging.Logger
}

// NewBaseScheduler creates a sequential scheduler drawing randomness from the
// model's rng. The rng is unused by the sequential policy itself but feeds
// the registry so that Keys(true) and Shuffle stay reproducible for seeded
// models.
func NewBaseScheduler(rng *rand.Rand, optFns ...func(o *Options)) *BaseScheduler {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &BaseScheduler{
		registry: NewRegistry(rng),
		logger:   opts.Logger,
	}
}

// Add registers an agent at the end of the current order.
func (s *BaseScheduler) Add(a core.Agent) error {
	return s.registry.Add(a)
}

// AddAll registers agents in the given order, stopping at the first failure.
func (s *BaseScheduler) AddAll(agents ...core.Agent) error {
	for _, a := range agents {
		if err := s.registry.Add(a); err != nil {
			return err
		}
	}
	return nil
}

// Remove deregisters an agent. It is safe to call while a tick is in
// progress; the removed agent's remaining turns this tick are skipped.
func (s *BaseScheduler) Remove(a core.Agent) error {
	return s.registry.Remove(a)
}

// Contains reports whether the agent is currently registered.
func (s *BaseScheduler) Contains(a core.Agent) bool {
	return s.registry.Contains(a)
}

// Agents returns the registered agents in canonical order.
func (s *BaseScheduler) Agents() []core.Agent {
	return s.registry.Agents()
}

// Len returns the number of registered agents.
func (s *BaseScheduler) Len() int { return s.registry.Len() }

// Steps returns the number of completed ticks.
func (s *BaseScheduler) Steps() int64 { return s.clock.Steps() }

// Time returns the logical clock value.
func (s *BaseScheduler) Time() float64 { return s.clock.Time() }

// Step activates all agents once in insertion order, then advances the clock.
func (s *BaseScheduler) Step() error {
	if err := s.stepAgents(); err != nil {
		return err
	}
	s.advance()
	return nil
}

// stepAgents snapshots the current order and invokes each agent's primary
// behavior, skipping any agent removed after the snapshot was taken but
// before its turn.
func (s *BaseScheduler) stepAgents() error {
	for _, id := range s.registry.Keys(false) {
		agent, ok := s.registry.Get(id)
		if !ok {
			continue // removed mid-tick
		}
		if err := agent.Step(); err != nil {
			return fmt.Errorf("agent %d: step failed: %w", id, err)
		}
	}
	return nil
}

// advance completes the tick.
func (s *BaseScheduler) advance() {
	s.clock.Advance(1)
	s.logger.Debug("tick complete", "steps", s.clock.Steps(), "time", s.clock.Time(), "agents", s.registry.Len())
}
