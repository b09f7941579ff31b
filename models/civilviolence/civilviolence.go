// Package civilviolence implements the Epstein civil violence model: citizens
// weigh grievance against arrest risk and turn openly rebellious, while cops
// patrol and jail active citizens. The two kinds run under randomized by-type
// activation — all citizens in one shuffled round, then all cops.
//
// Agents observe a random sample of the population ("vision") instead of a
// spatial neighborhood; the grid of the original formulation is presentation
// geometry this package deliberately leaves out.
package civilviolence

import (
	"math"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/model"
	"github.com/hupe1980/agentsim/schedule"
)

// Agent kinds used for by-type partitioning.
const (
	KindCitizen core.Kind = "citizen"
	KindCop     core.Kind = "cop"
)

// CitizenState is a citizen's rebellion state.
type CitizenState int

const (
	// Quiet citizens keep their grievance private.
	Quiet CitizenState = iota
	// Active citizens are in open rebellion and can be arrested.
	Active
	// Jailed citizens sit out their term and cannot act.
	Jailed
)

// String returns the lowercase state name.
func (s CitizenState) String() string {
	switch s {
	case Quiet:
		return "quiet"
	case Active:
		return "active"
	case Jailed:
		return "jailed"
	default:
		return "unknown"
	}
}

// Config holds the model parameters.
type Config struct {
	Citizens int `yaml:"citizens"`
	Cops     int `yaml:"cops"`
	// Legitimacy is the perceived legitimacy of the regime, in [0, 1].
	Legitimacy float64 `yaml:"legitimacy"`
	// Vision is how many randomly sampled peers an agent observes per tick.
	Vision int `yaml:"vision"`
	// MaxJailTerm bounds the uniformly drawn jail sentence.
	MaxJailTerm int `yaml:"max_jail_term"`
	// ActiveThreshold is how much net grievance a citizen needs before
	// rebelling.
	ActiveThreshold float64 `yaml:"active_threshold"`
	// ArrestProbConstant calibrates the estimated arrest probability so a
	// 1:1 cop-to-active ratio yields roughly a 0.9 estimate.
	ArrestProbConstant float64 `yaml:"arrest_prob_constant"`
}

// DefaultConfig returns the parameterization of the original civil violence
// demo.
func DefaultConfig() Config {
	return Config{
		Citizens:           700,
		Cops:               40,
		Legitimacy:         0.82,
		Vision:             7,
		MaxJailTerm:        30,
		ActiveThreshold:    0.1,
		ArrestProbConstant: 2.3,
	}
}

// Model is an Epstein civil violence simulation.
type Model struct {
	*model.Model
	cfg      Config
	Schedule *schedule.RandomActivationByType
	citizens []*Citizen
	cops     []*Cop
}

// NewModel creates a population of citizens and cops with randomized
// hardship and risk aversion.
func NewModel(cfg Config, optFns ...func(o *model.Options)) (*Model, error) {
	base := model.New(optFns...)
	m := &Model{
		Model:    base,
		cfg:      cfg,
		Schedule: schedule.NewRandomActivationByType(base.Rand()),
	}
	for i := 0; i < cfg.Citizens; i++ {
		c := &Citizen{
			id:           base.NextID(),
			m:            m,
			hardship:     base.Rand().Float64(),
			riskAversion: base.Rand().Float64(),
		}
		c.grievance = c.hardship * (1 - cfg.Legitimacy)
		if err := m.Schedule.Add(c); err != nil {
			return nil, err
		}
		m.citizens = append(m.citizens, c)
	}
	for i := 0; i < cfg.Cops; i++ {
		cop := &Cop{id: base.NextID(), m: m}
		if err := m.Schedule.Add(cop); err != nil {
			return nil, err
		}
		m.cops = append(m.cops, cop)
	}
	return m, nil
}

// Step advances the simulation by one tick.
func (m *Model) Step() error { return m.Schedule.Step() }

// Citizens returns all citizens.
func (m *Model) Citizens() []*Citizen { return m.citizens }

// Counts returns the number of citizens per state.
func (m *Model) Counts() (quiet, active, jailed int) {
	for _, c := range m.citizens {
		switch c.state {
		case Active:
			active++
		case Jailed:
			jailed++
		default:
			quiet++
		}
	}
	return quiet, active, jailed
}

// sampleCitizens draws up to n citizens uniformly at random, the agent's
// "vision" for this tick.
func (m *Model) sampleCitizens(n int) []*Citizen {
	if n >= len(m.citizens) {
		return m.citizens
	}
	sample := make([]*Citizen, n)
	for i, idx := range m.Rand().Perm(len(m.citizens))[:n] {
		sample[i] = m.citizens[idx]
	}
	return sample
}

// Citizen weighs grievance against estimated arrest risk every tick.
type Citizen struct {
	id core.AgentID
	m  *Model

	hardship     float64
	riskAversion float64
	grievance    float64

	state    CitizenState
	jailTerm int
}

// ID returns the citizen's unique identifier.
func (c *Citizen) ID() core.AgentID { return c.id }

// AgentKind partitions citizens for by-type activation.
func (c *Citizen) AgentKind() core.Kind { return KindCitizen }

// State returns the citizen's rebellion state.
func (c *Citizen) State() CitizenState { return c.state }

// Grievance returns the citizen's fixed grievance level.
func (c *Citizen) Grievance() float64 { return c.grievance }

// arrest jails the citizen for a uniformly drawn term.
func (c *Citizen) arrest() {
	c.state = Jailed
	c.jailTerm = c.m.Rand().Intn(c.m.cfg.MaxJailTerm + 1)
	if c.jailTerm == 0 {
		c.jailTerm = 1
	}
}

// Step sits out a jail term, or re-decides between quiet and active based on
// grievance net of the estimated arrest probability in the current vision.
func (c *Citizen) Step() error {
	if c.state == Jailed {
		c.jailTerm--
		if c.jailTerm <= 0 {
			c.state = Quiet
		}
		return nil
	}

	// Each cop falls inside this citizen's vision with the same probability
	// a sampled peer would.
	cops := 0
	visible := float64(c.m.cfg.Vision) / float64(len(c.m.citizens)+len(c.m.cops))
	for range c.m.cops {
		if c.m.Rand().Float64() < visible {
			cops++
		}
	}
	actives := 1 // the citizen counts itself as active when estimating
	for _, peer := range c.m.sampleCitizens(c.m.cfg.Vision) {
		if peer != c && peer.state == Active {
			actives++
		}
	}

	arrestProb := 1 - math.Exp(-c.m.cfg.ArrestProbConstant*float64(cops)/float64(actives))
	if c.grievance-c.riskAversion*arrestProb > c.m.cfg.ActiveThreshold {
		c.state = Active
	} else {
		c.state = Quiet
	}
	return nil
}

// Cop arrests one active citizen from its vision per tick.
type Cop struct {
	id core.AgentID
	m  *Model
}

// ID returns the cop's unique identifier.
func (c *Cop) ID() core.AgentID { return c.id }

// AgentKind partitions cops for by-type activation.
func (c *Cop) AgentKind() core.Kind { return KindCop }

// Step samples the cop's vision and jails one randomly chosen active citizen,
// if any is in sight.
func (c *Cop) Step() error {
	var actives []*Citizen
	for _, peer := range c.m.sampleCitizens(c.m.cfg.Vision) {
		if peer.state == Active {
			actives = append(actives, peer)
		}
	}
	if len(actives) == 0 {
		return nil
	}
	actives[c.m.Rand().Intn(len(actives))].arrest()
	return nil
}
