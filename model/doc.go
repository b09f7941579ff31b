// Package model provides the base simulation model: the single owner of the
// seeded random source every scheduler and agent draws from, the allocator of
// unique agent identifiers, and the carrier of the run id and logger.
//
// Concrete models embed *Model and wire its Rand into whichever schedule
// policy they use, preserving single-source reproducibility: two runs with
// the same seed replay the same shuffles and the same stochastic agent
// decisions.
package model
