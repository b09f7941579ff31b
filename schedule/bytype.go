package schedule

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/agentsim/core"
)

// RandomActivationByType partitions the registry by agent kind and runs one
// shuffle-and-activate round per kind every tick. Kinds are visited in the
// insertion order of their first-seen agent; within a kind, activation order
// is reshuffled each round.
//
// Every registered agent appears in exactly one partition, kept consistent
// with the top-level registry on Add and Remove, so TypeCount always equals
// the live count of that kind's agents.
type RandomActivationByType struct {
	BaseScheduler
	rng    *rand.Rand
	kinds  []core.Kind
	byKind map[core.Kind]*Registry
}

// NewRandomActivationByType creates a by-type scheduler drawing shuffles from
// the model's rng.
func NewRandomActivationByType(rng *rand.Rand, optFns ...func(o *Options)) *RandomActivationByType {
	return &RandomActivationByType{
		BaseScheduler: *NewBaseScheduler(rng, optFns...),
		rng:           rng,
		byKind:        make(map[core.Kind]*Registry),
	}
}

// Add registers the agent in both the top-level registry and its kind's
// partition, creating the partition on first sight of the kind.
func (s *RandomActivationByType) Add(a core.Agent) error {
	if err := s.BaseScheduler.Add(a); err != nil {
		return err
	}
	kind := core.KindOf(a)
	part, ok := s.byKind[kind]
	if !ok {
		part = NewRegistry(s.rng)
		s.byKind[kind] = part
		s.kinds = append(s.kinds, kind)
	}
	// Cannot collide: the top-level add above already enforces uniqueness.
	return part.Add(a)
}

// AddAll registers agents in the given order, stopping at the first failure.
func (s *RandomActivationByType) AddAll(agents ...core.Agent) error {
	for _, a := range agents {
		if err := s.Add(a); err != nil {
			return err
		}
	}
	return nil
}

// Remove deregisters the agent from the top-level registry and its kind's
// partition.
func (s *RandomActivationByType) Remove(a core.Agent) error {
	if err := s.BaseScheduler.Remove(a); err != nil {
		return err
	}
	if part, ok := s.byKind[core.KindOf(a)]; ok {
		return part.Remove(a)
	}
	return nil
}

// Kinds returns the registered kinds in first-seen order. Empty partitions
// left behind by removals are retained.
func (s *RandomActivationByType) Kinds() []core.Kind {
	return append([]core.Kind(nil), s.kinds...)
}

// TypeCount returns the current membership size of the kind's partition;
// zero for kinds never seen.
func (s *RandomActivationByType) TypeCount(kind core.Kind) int {
	part, ok := s.byKind[kind]
	if !ok {
		return 0
	}
	return part.Len()
}

// Step runs one shuffle-and-activate round per kind, all kinds every tick,
// then advances the clock once.
func (s *RandomActivationByType) Step() error {
	for _, kind := range s.kinds {
		if err := s.stepKind(kind, true); err != nil {
			return err
		}
	}
	s.advance()
	return nil
}

// StepType activates only the named kind's members on demand, for model
// logic driving phases outside the scheduler's own tick loop. It is a
// standalone, re-entrant operation: it never advances the clock and is not
// composed into Step. Unknown kinds fail with core.ErrUnknownKind.
func (s *RandomActivationByType) StepType(kind core.Kind, shuffle bool) error {
	if _, ok := s.byKind[kind]; !ok {
		return fmt.Errorf("%w: %q", core.ErrUnknownKind, kind)
	}
	return s.stepKind(kind, shuffle)
}

// stepKind shuffles the kind's partition and activates its members with a
// live membership check against the partition, which Remove keeps current.
func (s *RandomActivationByType) stepKind(kind core.Kind, shuffle bool) error {
	part := s.byKind[kind]
	if shuffle {
		part.Shuffle()
	}
	for _, id := range part.Keys(false) {
		agent, ok := part.Get(id)
		if !ok {
			continue // removed mid-round
		}
		if err := agent.Step(); err != nil {
			return fmt.Errorf("agent %d (%s): step failed: %w", id, kind, err)
		}
	}
	return nil
}
