package civilviolence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentsim/model"
)

func newTestModel(t *testing.T, legitimacy float64) *Model {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Citizens = 50
	cfg.Cops = 5
	cfg.Legitimacy = legitimacy
	m, err := NewModel(cfg, model.WithSeed(42))
	require.NoError(t, err)
	return m
}

func TestModel_PopulationAndPartitions(t *testing.T) {
	m := newTestModel(t, 0.82)

	assert.Equal(t, 50, m.Schedule.TypeCount(KindCitizen))
	assert.Equal(t, 5, m.Schedule.TypeCount(KindCop))
	assert.Len(t, m.Schedule.Agents(), 55)

	quiet, active, jailed := m.Counts()
	assert.Equal(t, 50, quiet+active+jailed)
	assert.Equal(t, 50, quiet, "everyone starts quiet")
}

func TestModel_LowLegitimacyProducesRebellion(t *testing.T) {
	m := newTestModel(t, 0.2)

	sawUnrest := false
	for i := 0; i < 30; i++ {
		require.NoError(t, m.Step())
		_, active, jailed := m.Counts()
		if active+jailed > 0 {
			sawUnrest = true
		}
	}

	assert.True(t, sawUnrest, "no citizen ever rebelled under near-zero legitimacy")
	assert.Equal(t, int64(30), m.Schedule.Steps())
}

func TestModel_CountsStayConsistentWithScheduler(t *testing.T) {
	m := newTestModel(t, 0.5)

	for i := 0; i < 10; i++ {
		require.NoError(t, m.Step())
		quiet, active, jailed := m.Counts()
		assert.Equal(t, 50, quiet+active+jailed)
		assert.Equal(t, 50, m.Schedule.TypeCount(KindCitizen))
		assert.Equal(t, 5, m.Schedule.TypeCount(KindCop))
	}
}

func TestCitizen_JailTermRunsDown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Citizens = 1
	cfg.Cops = 0
	cfg.MaxJailTerm = 3
	// Make the lone citizen inert so only the jail mechanics move.
	cfg.ActiveThreshold = 10
	m, err := NewModel(cfg, model.WithSeed(7))
	require.NoError(t, err)

	citizen := m.Citizens()[0]
	citizen.arrest()
	require.Equal(t, Jailed, citizen.State())

	for i := 0; i < cfg.MaxJailTerm+1; i++ {
		require.NoError(t, m.Step())
	}

	assert.Equal(t, Quiet, citizen.State())
}

func TestModel_SeededRunsAreReproducible(t *testing.T) {
	a := newTestModel(t, 0.4)
	b := newTestModel(t, 0.4)

	for i := 0; i < 15; i++ {
		require.NoError(t, a.Step())
		require.NoError(t, b.Step())
	}

	aq, aa, aj := a.Counts()
	bq, ba, bj := b.Counts()
	assert.Equal(t, []int{aq, aa, aj}, []int{bq, ba, bj})
}
