package schedule

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/agentsim/core"
)

// SimultaneousActivation separates "compute next state" from "commit state"
// into two passes over one membership snapshot, in the same order both times.
// Pass one invokes every agent's Step (state reads only, by convention — not
// enforced); pass two invokes Advance on agents implementing core.Advancer.
//
// Because no agent commits before pass two begins, every agent's computation
// observes the pre-tick state of all peers. Agents removed between the passes
// are skipped in pass two.
type SimultaneousActivation struct {
	BaseScheduler
}

// NewSimultaneousActivation creates a two-pass scheduler.
func NewSimultaneousActivation(rng *rand.Rand, optFns ...func(o *Options)) *SimultaneousActivation {
	return &SimultaneousActivation{BaseScheduler: *NewBaseScheduler(rng, optFns...)}
}

// Step runs the compute pass, then the commit pass, then advances the clock.
func (s *SimultaneousActivation) Step() error {
	snapshot := s.registry.Keys(false)
	for _, id := range snapshot {
		agent, ok := s.registry.Get(id)
		if !ok {
			continue
		}
		if err := agent.Step(); err != nil {
			return fmt.Errorf("agent %d: step failed: %w", id, err)
		}
	}
	for _, id := range snapshot {
		agent, ok := s.registry.Get(id)
		if !ok {
			continue // removed between passes
		}
		adv, ok := agent.(core.Advancer)
		if !ok {
			continue
		}
		if err := adv.Advance(); err != nil {
			return fmt.Errorf("agent %d: advance failed: %w", id, err)
		}
	}
	s.advance()
	return nil
}
