package collect

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one series.
type Stats struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// String renders the summary in a compact single line.
func (s Stats) String() string {
	return fmt.Sprintf("n=%d mean=%.4f std=%.4f min=%.4f max=%.4f", s.N, s.Mean, s.StdDev, s.Min, s.Max)
}

// Summary computes descriptive statistics over the model series recorded
// under name.
func (c *Collector) Summary(name string) (Stats, error) {
	series, err := c.Series(name)
	if err != nil {
		return Stats{}, err
	}
	return summarize(series), nil
}

// AgentSummary computes descriptive statistics over the flattened agent
// series recorded under name, pooling all ticks.
func (c *Collector) AgentSummary(name string) (Stats, error) {
	series, err := c.AgentSeries(name)
	if err != nil {
		return Stats{}, err
	}
	var pooled []float64
	for _, tick := range series {
		pooled = append(pooled, tick...)
	}
	return summarize(pooled), nil
}

func summarize(vals []float64) Stats {
	if len(vals) == 0 {
		return Stats{}
	}
	return Stats{
		N:      len(vals),
		Mean:   stat.Mean(vals, nil),
		StdDev: stat.StdDev(vals, nil),
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
	}
}
