package schedule

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/logging"
)

// ModelStagePrefix marks a stage entry that targets the model instead of the
// agents. The remainder of the entry names a hook registered with
// RegisterModelStage, invoked once per tick at that point in the sequence.
const ModelStagePrefix = "model."

// StagedOptions configures a StagedActivation.
type StagedOptions struct {
	// Logger receives per-tick debug output. Defaults to NoOpLogger.
	Logger logging.Logger
	// Shuffle reorders the registry once per tick, before the first stage.
	// Relative agent order is identical across all stages within one tick,
	// so pairwise interactions staged across two phases see consistent
	// partner ordering.
	Shuffle bool
}

// WithShuffle enables the once-per-tick shuffle.
func WithShuffle() func(o *StagedOptions) {
	return func(o *StagedOptions) { o.Shuffle = true }
}

// WithStagedLogger sets the scheduler's logger.
func WithStagedLogger(l logging.Logger) func(o *StagedOptions) {
	return func(o *StagedOptions) { o.Logger = l }
}

// StagedActivation splits a tick into an ordered list of named stages. Each
// stage runs across all agents before the next stage starts; entries with the
// ModelStagePrefix run once on the model instead.
//
// Agents take part by implementing core.Staged; the scheduler invokes the
// single RunStage entry point with the stage name and never reflects over
// agent methods. Agents that do not implement core.Staged are skipped.
//
// Membership is snapshotted per stage with a live check at every position:
// an agent removed mid-stage by a peer's action is not invoked for the
// remainder of that stage or any later stage this tick, while an agent added
// mid-tick is not retroactively inserted into the running stage's snapshot.
type StagedActivation struct {
	BaseScheduler
	stages  []string
	shuffle bool
	hooks   map[string]func() error
}

// NewStagedActivation creates a staged scheduler running the given stage
// entries in order every tick.
func NewStagedActivation(rng *rand.Rand, stages []string, optFns ...func(o *StagedOptions)) *StagedActivation {
	opts := StagedOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &StagedActivation{
		BaseScheduler: *NewBaseScheduler(rng, WithLogger(opts.Logger)),
		stages:        append([]string(nil), stages...),
		shuffle:       opts.Shuffle,
		hooks:         make(map[string]func() error),
	}
}

// RegisterModelStage binds a model-level hook to the name used after the
// ModelStagePrefix in the stage list. Stepping with an unbound model stage
// fails with core.ErrUnknownStage.
func (s *StagedActivation) RegisterModelStage(name string, fn func() error) {
	s.hooks[name] = fn
}

// Stages returns the configured stage entries in execution order.
func (s *StagedActivation) Stages() []string {
	return append([]string(nil), s.stages...)
}

// Step runs all configured stages in order, then advances the clock. The
// optional shuffle is applied exactly once, before the first stage.
func (s *StagedActivation) Step() error {
	if s.shuffle {
		s.registry.Shuffle()
	}
	for _, stage := range s.stages {
		if name, ok := strings.CutPrefix(stage, ModelStagePrefix); ok {
			if err := s.runModelStage(name); err != nil {
				return err
			}
			continue
		}
		if err := s.runAgentStage(stage); err != nil {
			return err
		}
	}
	s.advance()
	return nil
}

// runModelStage invokes the named hook once.
func (s *StagedActivation) runModelStage(name string) error {
	hook, ok := s.hooks[name]
	if !ok {
		return fmt.Errorf("%w: %q", core.ErrUnknownStage, name)
	}
	if err := hook(); err != nil {
		return fmt.Errorf("model stage %q failed: %w", name, err)
	}
	return nil
}

// runAgentStage snapshots current membership order and invokes the named
// stage on every agent still registered at its turn.
func (s *StagedActivation) runAgentStage(stage string) error {
	for _, id := range s.registry.Keys(false) {
		agent, ok := s.registry.Get(id)
		if !ok {
			continue // removed earlier this stage or tick
		}
		staged, ok := agent.(core.Staged)
		if !ok {
			continue
		}
		if err := staged.RunStage(stage); err != nil {
			return fmt.Errorf("agent %d: stage %q failed: %w", id, stage, err)
		}
	}
	return nil
}
