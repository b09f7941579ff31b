package schedule

// TickCounter tracks elapsed ticks and a monotonically increasing logical
// clock. Steps counts completed ticks; Time is kept separate because a policy
// may advance the clock by a non-unit amount, even though every policy in
// this package advances it by exactly one.
type TickCounter struct {
	steps int64
	time  float64
}

// Advance records one completed tick, moving the logical clock forward by dt.
// Schedulers call it only after an error-free pass over the tick's loop body,
// so both counters stay at their pre-tick values when behavior fails.
func (c *TickCounter) Advance(dt float64) {
	c.steps++
	c.time += dt
}

// Steps returns the number of completed ticks.
func (c *TickCounter) Steps() int64 { return c.steps }

// Time returns the current logical clock value.
func (c *TickCounter) Time() float64 { return c.time }
