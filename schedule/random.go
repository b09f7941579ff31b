package schedule

import "math/rand"

// RandomActivation reshuffles the registry every tick before activating all
// agents, removing the systematic bias an insertion-order traversal would
// impose on Monte-Carlo style simulations. The reshuffle happens every tick,
// not once at setup, so positional correlation cannot persist across ticks.
//
// The shuffle is destructive: the registry's canonical order itself changes,
// and Agents reflects the latest order. Agents added during the current
// tick's traversal are not visited until the next tick; agents removed during
// traversal are skipped at their would-be turn.
type RandomActivation struct {
	BaseScheduler
}

// NewRandomActivation creates a randomized scheduler drawing shuffles from
// the model's rng.
func NewRandomActivation(rng *rand.Rand, optFns ...func(o *Options)) *RandomActivation {
	return &RandomActivation{BaseScheduler: *NewBaseScheduler(rng, optFns...)}
}

// Step shuffles the registry in place, activates all agents in the new
// order, then advances the clock.
func (s *RandomActivation) Step() error {
	s.registry.Shuffle()
	if err := s.stepAgents(); err != nil {
		return err
	}
	s.advance()
	return nil
}
