package model

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
)

// Options configures a Model.
type Options struct {
	// Seed initializes the model's random source. Zero means "derive from
	// wall clock", which disables replayability.
	Seed int64
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// WithSeed fixes the model's random seed for reproducible runs.
func WithSeed(seed int64) func(o *Options) {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger sets the model's logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// Model is the base every concrete simulation model embeds. It owns the one
// random-number generator shared by scheduler and agents, and it is the only
// place agent identifiers are minted.
type Model struct {
	runID  string
	seed   int64
	rng    *rand.Rand
	lastID core.AgentID
	logger logging.Logger
}

// New creates a base model. Every instance is stamped with a fresh run id so
// log output from concurrent runs stays attributable.
func New(optFns ...func(o *Options)) *Model {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := &Model{
		runID:  uuid.NewString(),
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		logger: opts.Logger,
	}
	m.logger.Debug("model created", "run_id", m.runID, "seed", seed)
	return m
}

// RunID returns the unique identifier of this model instance.
func (m *Model) RunID() string { return m.runID }

// Seed returns the seed the random source was initialized with.
func (m *Model) Seed() int64 { return m.seed }

// Rand returns the model's random source. Schedulers receive it at
// construction and never construct their own.
func (m *Model) Rand() *rand.Rand { return m.rng }

// Logger returns the model's logger.
func (m *Model) Logger() logging.Logger { return m.logger }

// NextID mints the next agent identifier. IDs start at 1 and are unique
// within the model for its lifetime; the scheduler never creates agents and
// never reuses ids.
func (m *Model) NextID() core.AgentID {
	m.lastID++
	return m.lastID
}
