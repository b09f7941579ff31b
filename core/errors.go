package core

import "errors"

var (
	// ErrDuplicateAgent is returned when an agent id is registered twice.
	// Silent deduplication would hide a caller bug and corrupt ordering
	// invariants, so re-registration always fails loudly.
	ErrDuplicateAgent = errors.New("agent already registered")
	// ErrAgentNotFound is returned when removing an agent that is not
	// registered.
	ErrAgentNotFound = errors.New("agent not registered")
	// ErrUnknownStage is returned by staged activation when a model-level
	// stage names a hook that was never registered.
	ErrUnknownStage = errors.New("unknown model stage")
	// ErrUnknownKind is returned by by-type activation when a kind has no
	// partition.
	ErrUnknownKind = errors.New("unknown agent kind")
)
