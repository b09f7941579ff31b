// Package core provides the foundational domain types and interfaces shared
// across the agentsim scheduling packages. It defines the core abstractions
// for:
//
//   - Agents (units of schedulable behavior, identified by AgentID)
//   - Capability interfaces layered on Agent (Advancer, Staged, Typed)
//   - Kinds (type tags used only for partitioning in by-type activation)
//   - Sentinel errors shared by all registries and schedulers
//
// The package intentionally keeps implementation concerns (registries,
// activation policies, concrete models) out of scope, exposing small
// interfaces so that any model can plug its agents into any scheduler.
package core
