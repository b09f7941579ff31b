// Package schedule contains the activation policies that decide, on every
// discrete simulation tick, which agents execute their behavior and in what
// order. The package provides:
//
//  1. Registry — an ordered, duplicate-free store of agent handles
//  2. TickCounter — elapsed ticks plus a separate logical clock
//  3. Concrete policies layered on BaseScheduler:
//     - BaseScheduler: insertion order, no shuffling
//     - RandomActivation: registry reshuffled every tick
//     - StagedActivation: a tick split into ordered named stages
//     - SimultaneousActivation: compute pass then commit pass
//     - RandomActivationByType: one shuffle-and-activate round per kind
//
// Execution model:
//   - A scheduler never decides what an agent's Step does, only when and
//     whether it runs relative to its peers
//   - Traversal order for a stage or pass is snapshotted at its start;
//     membership is re-checked live at every visited position, so agents
//     removed mid-tick are skipped and agents added mid-tick wait
//   - An error returned by agent behavior propagates out of Step uncaught,
//     aborting the remainder of the tick and leaving the counters untouched
//
// Everything runs on a single logical thread of control; the package performs
// no locking and no concurrent activation.
package schedule
