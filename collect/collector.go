package collect

import (
	"fmt"

	"github.com/hupe1980/agentsim/core"
)

// ModelReporter samples one model-level value per tick.
type ModelReporter func() float64

// AgentReporter samples one value for an agent. Returning false skips the
// agent for this tick, so reporters can target a subset (one kind, one
// state) without reporting placeholder values.
type AgentReporter func(a core.Agent) (float64, bool)

// Collector accumulates named model and agent series, one sample set per
// tick.
type Collector struct {
	modelNames     []string
	modelReporters map[string]ModelReporter
	agentNames     []string
	agentReporters map[string]AgentReporter

	model  map[string][]float64
	agents map[string][][]float64
	ticks  int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		modelReporters: make(map[string]ModelReporter),
		agentReporters: make(map[string]AgentReporter),
		model:          make(map[string][]float64),
		agents:         make(map[string][][]float64),
	}
}

// AddModelReporter registers a model-level reporter under name, replacing
// any previous reporter with the same name.
func (c *Collector) AddModelReporter(name string, fn ModelReporter) {
	if _, exists := c.modelReporters[name]; !exists {
		c.modelNames = append(c.modelNames, name)
	}
	c.modelReporters[name] = fn
}

// AddAgentReporter registers an agent-level reporter under name, replacing
// any previous reporter with the same name.
func (c *Collector) AddAgentReporter(name string, fn AgentReporter) {
	if _, exists := c.agentReporters[name]; !exists {
		c.agentNames = append(c.agentNames, name)
	}
	c.agentReporters[name] = fn
}

// Collect samples every registered reporter once, appending to the series.
// Callers pass the scheduler's current agent view; reporters observe
// post-tick state.
func (c *Collector) Collect(agents []core.Agent) {
	for _, name := range c.modelNames {
		c.model[name] = append(c.model[name], c.modelReporters[name]())
	}
	for _, name := range c.agentNames {
		report := c.agentReporters[name]
		var vals []float64
		for _, a := range agents {
			if v, ok := report(a); ok {
				vals = append(vals, v)
			}
		}
		c.agents[name] = append(c.agents[name], vals)
	}
	c.ticks++
}

// SeriesNames returns the registered model reporter names in registration
// order.
func (c *Collector) SeriesNames() []string {
	return append([]string(nil), c.modelNames...)
}

// Ticks returns the number of Collect calls so far.
func (c *Collector) Ticks() int { return c.ticks }

// Series returns the model-level series recorded under name, one value per
// tick, in collection order.
func (c *Collector) Series(name string) ([]float64, error) {
	s, ok := c.model[name]
	if !ok {
		return nil, fmt.Errorf("no model series %q", name)
	}
	return append([]float64(nil), s...), nil
}

// AgentSeries returns the agent-level series recorded under name: one slice
// of sampled values per tick.
func (c *Collector) AgentSeries(name string) ([][]float64, error) {
	s, ok := c.agents[name]
	if !ok {
		return nil, fmt.Errorf("no agent series %q", name)
	}
	out := make([][]float64, len(s))
	for i, tick := range s {
		out[i] = append([]float64(nil), tick...)
	}
	return out, nil
}
