package core

// AgentID uniquely identifies an agent within its owning model for the
// agent's lifetime. IDs are allocated by the model at agent creation and are
// never reused or reassigned.
type AgentID int64

// Kind is a type tag used by by-type activation policies to partition a
// registry. It is never consulted for behavior dispatch; behavior always goes
// through the Agent capability interfaces.
type Kind string

// DefaultKind is assigned to agents that do not implement Typed.
const DefaultKind Kind = "agent"

// Agent is the capability every schedulable agent must provide.
//
// Schedulers decide when and in what order Step is invoked; they never decide
// what it does. A returned error aborts the current tick and propagates out of
// the scheduler's Step uncaught.
type Agent interface {
	// ID returns the agent's unique, immutable identifier.
	ID() AgentID
	// Step executes the agent's primary behavior for the current tick.
	Step() error
}

// Advancer is implemented by agents participating in simultaneous activation.
// Step is treated as the "compute next state" pass and Advance as the
// "commit" pass; no agent's Advance runs before every agent's Step has run.
type Advancer interface {
	// Advance commits the state computed by the preceding Step pass.
	Advance() error
}

// Staged is implemented by agents driven by a staged activation policy. All
// stage behavior flows through this single entry point; implementations
// dispatch on the stage name and should return nil for stages they do not
// take part in.
type Staged interface {
	// RunStage executes the agent's behavior for the named stage.
	RunStage(stage string) error
}

// Typed is implemented by agents that declare a kind for partitioned
// activation. Agents without it fall into DefaultKind.
type Typed interface {
	// AgentKind returns the agent's partition tag.
	AgentKind() Kind
}

// KindOf resolves an agent's partition tag, falling back to DefaultKind for
// agents that do not implement Typed.
func KindOf(a Agent) Kind {
	if t, ok := a.(Typed); ok {
		return t.AgentKind()
	}
	return DefaultKind
}
