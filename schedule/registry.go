package schedule

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/agentsim/core"
)

// Registry is an ordered, duplicate-free collection of agent handles keyed by
// AgentID. Insertion order is preserved until Shuffle explicitly reorders it;
// Keys(true) hands out an ephemeral shuffled order without touching canonical
// storage.
//
// Registry is safe to mutate while a traversal over a Keys snapshot is in
// progress: schedulers index by stable identifier per position and re-check
// membership with Get, never by raw position into live storage.
type Registry struct {
	rng   *rand.Rand
	order []core.AgentID
	byID  map[core.AgentID]core.Agent
}

// NewRegistry creates an empty registry drawing randomness from the model's
// rng. The registry never constructs its own random source, preserving
// single-source reproducibility for seeded runs.
func NewRegistry(rng *rand.Rand) *Registry {
	return &Registry{
		rng:  rng,
		byID: make(map[core.AgentID]core.Agent),
	}
}

// Add inserts the agent at the end of the current order. Re-registering an id
// already present fails with core.ErrDuplicateAgent and leaves the registry
// unchanged.
func (r *Registry) Add(a core.Agent) error {
	id := a.ID()
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("%w: id %d", core.ErrDuplicateAgent, id)
	}
	r.byID[id] = a
	r.order = append(r.order, id)
	return nil
}

// Remove deletes the agent's id from the registry. Removing an agent that is
// not registered fails with core.ErrAgentNotFound.
func (r *Registry) Remove(a core.Agent) error {
	id := a.ID()
	if _, exists := r.byID[id]; !exists {
		return fmt.Errorf("%w: id %d", core.ErrAgentNotFound, id)
	}
	delete(r.byID, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Contains reports whether the agent's id is currently registered.
func (r *Registry) Contains(a core.Agent) bool {
	_, exists := r.byID[a.ID()]
	return exists
}

// Get returns the agent registered under id, if any. Schedulers use it as the
// live membership check at each visited snapshot position.
func (r *Registry) Get(id core.AgentID) (core.Agent, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// Len returns the number of registered agents.
func (r *Registry) Len() int { return len(r.order) }

// Keys returns a copy of the current identifiers in canonical order, or in a
// freshly shuffled order when shuffle is true. The shuffled variant never
// mutates canonical order.
func (r *Registry) Keys(shuffle bool) []core.AgentID {
	keys := make([]core.AgentID, len(r.order))
	copy(keys, r.order)
	if shuffle {
		r.rng.Shuffle(len(keys), func(i, j int) {
			keys[i], keys[j] = keys[j], keys[i]
		})
	}
	return keys
}

// Agents returns the current agent handles in canonical order. The slice is a
// copy; mutating it does not affect the registry.
func (r *Registry) Agents() []core.Agent {
	agents := make([]core.Agent, 0, len(r.order))
	for _, id := range r.order {
		agents = append(agents, r.byID[id])
	}
	return agents
}

// Shuffle destructively reorders canonical storage using the model's rng.
// Subsequent Agents and Keys(false) calls reflect the new order.
func (r *Registry) Shuffle() {
	r.rng.Shuffle(len(r.order), func(i, j int) {
		r.order[i], r.order[j] = r.order[j], r.order[i]
	})
}
