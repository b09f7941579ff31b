package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentsim/models/civilviolence"
	"github.com/hupe1980/agentsim/models/flocking"
)

// Scenario is the YAML description of a run: which bundled model, how long,
// which seed, and per-model parameter overrides.
type Scenario struct {
	Model string `yaml:"model"`
	Steps int    `yaml:"steps"`
	Seed  int64  `yaml:"seed"`

	Flocking      flocking.Config      `yaml:"flocking"`
	CivilViolence civilviolence.Config `yaml:"civil_violence"`
}

// defaultScenario seeds the per-model sections with their defaults so a
// scenario file only has to override what it changes.
func defaultScenario() Scenario {
	return Scenario{
		Model:         "flocking",
		Steps:         100,
		Flocking:      flocking.DefaultConfig(),
		CivilViolence: civilviolence.DefaultConfig(),
	}
}

// loadScenario parses a scenario file over the defaults.
func loadScenario(path string) (Scenario, error) {
	sc := defaultScenario()
	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return sc, nil
}
