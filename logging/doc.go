// Package logging provides a minimal logging interface and adapters for
// agentsim.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that schedulers, models and the simulation runner use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewLogger(&logging.Config{Level: logging.LevelDebug, Format: "text"})
//	sched := schedule.NewRandomActivation(rng, schedule.WithLogger(logger))
//
// The design intentionally keeps the interface minimal so users can plug any
// structured logger while the library defaults to silence.
package logging
