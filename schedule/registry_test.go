package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentsim/core"
)

func TestRegistry_AddDuplicateFails(t *testing.T) {
	reg := NewRegistry(newTestRNG())
	rec := &recorder{}
	agent := &mockAgent{id: 1, rec: rec}

	require.NoError(t, reg.Add(agent))
	err := reg.Add(agent)

	assert.ErrorIs(t, err, core.ErrDuplicateAgent)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_RemoveUnknownFails(t *testing.T) {
	reg := NewRegistry(newTestRNG())
	err := reg.Remove(&mockAgent{id: 99, rec: &recorder{}})

	assert.ErrorIs(t, err, core.ErrAgentNotFound)
}

func TestRegistry_RemovePreservesOrder(t *testing.T) {
	reg := NewRegistry(newTestRNG())
	rec := &recorder{}
	agents := newMockAgents(4, rec, nil)
	for _, a := range agents {
		require.NoError(t, reg.Add(a))
	}

	require.NoError(t, reg.Remove(agents[1]))

	assert.Equal(t, []core.AgentID{1, 3, 4}, reg.Keys(false))
	assert.False(t, reg.Contains(agents[1]))
	assert.True(t, reg.Contains(agents[0]))
}

func TestRegistry_ShuffledKeysDoNotMutateCanonicalOrder(t *testing.T) {
	reg := NewRegistry(newTestRNG())
	rec := &recorder{}
	for _, a := range newMockAgents(10, rec, nil) {
		require.NoError(t, reg.Add(a))
	}
	canonical := reg.Keys(false)

	shuffled := reg.Keys(true)

	assert.ElementsMatch(t, canonical, shuffled)
	assert.Equal(t, canonical, reg.Keys(false))
}

func TestRegistry_ShuffleIsDestructive(t *testing.T) {
	reg := NewRegistry(newTestRNG())
	rec := &recorder{}
	for _, a := range newMockAgents(10, rec, nil) {
		require.NoError(t, reg.Add(a))
	}
	before := reg.Keys(false)

	// A seeded shuffle of ten elements may in principle return the identity
	// once, so retry a few times before asserting the order moved.
	moved := false
	for i := 0; i < 10; i++ {
		reg.Shuffle()
		if !assert.ObjectsAreEqual(before, reg.Keys(false)) {
			moved = true
			break
		}
	}

	assert.True(t, moved, "canonical order never changed across shuffles")
	assert.ElementsMatch(t, before, reg.Keys(false))

	// Agents view follows the shuffled canonical order.
	agents := reg.Agents()
	keys := reg.Keys(false)
	require.Len(t, agents, len(keys))
	for i, a := range agents {
		assert.Equal(t, keys[i], a.ID())
	}
}
