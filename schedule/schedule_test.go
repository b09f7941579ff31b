package schedule

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/agentsim/core"
)

// peerControl is the slice of scheduler surface mock agents need to mutate
// the registry from inside their own behavior.
type peerControl interface {
	Agents() []core.Agent
	Remove(a core.Agent) error
}

// recorder collects activation entries so tests can assert exact ordering.
type recorder struct {
	log []string
}

// mockAgent is a minimal agent for exercising the schedulers. It records
// every activation into the shared recorder and can be configured to remove
// its peers or fail, mimicking the mutation-during-iteration hazards real
// models produce.
type mockAgent struct {
	id        core.AgentID
	kind      core.Kind
	rec       *recorder
	sched     peerControl
	steps     int
	advances  int
	killOther bool
	stepErr   error
	onStage   func(stage string)
}

func (a *mockAgent) ID() core.AgentID { return a.id }

func (a *mockAgent) AgentKind() core.Kind {
	if a.kind == "" {
		return core.DefaultKind
	}
	return a.kind
}

// killPeers removes every other registered agent, the classic intra-tick
// mutation scenario.
func (a *mockAgent) killPeers() {
	for _, other := range a.sched.Agents() {
		if other.ID() != a.id {
			_ = a.sched.Remove(other)
		}
	}
}

func (a *mockAgent) Step() error {
	if a.stepErr != nil {
		return a.stepErr
	}
	if a.killOther {
		a.killPeers()
	}
	a.steps++
	a.rec.log = append(a.rec.log, fmt.Sprintf("%d", a.id))
	return nil
}

func (a *mockAgent) Advance() error {
	a.advances++
	a.rec.log = append(a.rec.log, fmt.Sprintf("adv_%d", a.id))
	return nil
}

func (a *mockAgent) RunStage(stage string) error {
	if a.onStage != nil {
		a.onStage(stage)
	}
	switch stage {
	case "stage_one":
		if a.killOther {
			a.killPeers()
		}
		a.rec.log = append(a.rec.log, fmt.Sprintf("%d_1", a.id))
	case "stage_two":
		a.rec.log = append(a.rec.log, fmt.Sprintf("%d_2", a.id))
	}
	return nil
}

// newTestRNG returns a deterministic rng so shuffle-sensitive assertions stay
// reproducible.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// newMockAgents builds n agents with ids 1..n wired to the recorder.
func newMockAgents(n int, rec *recorder, sched peerControl) []*mockAgent {
	agents := make([]*mockAgent, 0, n)
	for i := 1; i <= n; i++ {
		agents = append(agents, &mockAgent{id: core.AgentID(i), rec: rec, sched: sched})
	}
	return agents
}
