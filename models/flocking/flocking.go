// Package flocking implements a boid flocking model on a toroidal plane,
// driven by simultaneous activation: every boid computes its next velocity
// from the pre-tick state of its neighbors, then all boids commit and move.
package flocking

import (
	"math"

	"github.com/hupe1980/agentsim/core"
	"github.com/hupe1980/agentsim/model"
	"github.com/hupe1980/agentsim/schedule"
)

// Config holds the model parameters.
type Config struct {
	Population int     `yaml:"population"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	Vision     float64 `yaml:"vision"`
	Separation float64 `yaml:"separation"`
	// Weights of the three steering contributions.
	Cohere   float64 `yaml:"cohere"`
	Separate float64 `yaml:"separate"`
	Match    float64 `yaml:"match"`
}

// DefaultConfig returns the parameterization of the original flocking demo.
func DefaultConfig() Config {
	return Config{
		Population: 100,
		Width:      100,
		Height:     100,
		Speed:      5,
		Vision:     10,
		Separation: 2,
		Cohere:     0.03,
		Separate:   0.015,
		Match:      0.05,
	}
}

// Model is a flock of boids under simultaneous activation.
type Model struct {
	*model.Model
	cfg      Config
	Schedule *schedule.SimultaneousActivation
	boids    []*Boid
}

// NewModel creates a flock with randomized positions and headings.
func NewModel(cfg Config, optFns ...func(o *model.Options)) (*Model, error) {
	base := model.New(optFns...)
	m := &Model{
		Model:    base,
		cfg:      cfg,
		Schedule: schedule.NewSimultaneousActivation(base.Rand()),
	}
	for i := 0; i < cfg.Population; i++ {
		angle := base.Rand().Float64() * 2 * math.Pi
		b := &Boid{
			id: base.NextID(),
			m:  m,
			x:  base.Rand().Float64() * cfg.Width,
			y:  base.Rand().Float64() * cfg.Height,
			vx: math.Cos(angle) * cfg.Speed,
			vy: math.Sin(angle) * cfg.Speed,
		}
		if err := m.Schedule.Add(b); err != nil {
			return nil, err
		}
		m.boids = append(m.boids, b)
	}
	return m, nil
}

// Step advances the flock by one tick.
func (m *Model) Step() error { return m.Schedule.Step() }

// Boids returns the flock members.
func (m *Model) Boids() []*Boid { return m.boids }

// Polarization returns the magnitude of the mean normalized velocity, the
// standard flocking order parameter: 0 for random headings, 1 for a fully
// aligned flock.
func (m *Model) Polarization() float64 {
	if len(m.boids) == 0 {
		return 0
	}
	var sx, sy float64
	for _, b := range m.boids {
		speed := math.Hypot(b.vx, b.vy)
		if speed == 0 {
			continue
		}
		sx += b.vx / speed
		sy += b.vy / speed
	}
	return math.Hypot(sx, sy) / float64(len(m.boids))
}

// torusDelta returns the signed shortest displacement from a to b on an axis
// of the given span.
func torusDelta(a, b, span float64) float64 {
	d := b - a
	if d > span/2 {
		d -= span
	} else if d < -span/2 {
		d += span
	}
	return d
}

// Boid is a single flock member. Step computes the next velocity from the
// current neighborhood; Advance commits it and moves.
type Boid struct {
	id core.AgentID
	m  *Model

	x, y   float64
	vx, vy float64

	nextVX, nextVY float64
}

// ID returns the boid's unique identifier.
func (b *Boid) ID() core.AgentID { return b.id }

// Pos returns the boid's current position.
func (b *Boid) Pos() (x, y float64) { return b.x, b.y }

// Velocity returns the boid's current velocity.
func (b *Boid) Velocity() (vx, vy float64) { return b.vx, b.vy }

// NeighborCount returns the number of boids currently within vision.
func (b *Boid) NeighborCount() int {
	count := 0
	for _, other := range b.m.boids {
		if other == b {
			continue
		}
		if b.distanceTo(other) <= b.m.cfg.Vision {
			count++
		}
	}
	return count
}

func (b *Boid) distanceTo(other *Boid) float64 {
	dx := torusDelta(b.x, other.x, b.m.cfg.Width)
	dy := torusDelta(b.y, other.y, b.m.cfg.Height)
	return math.Hypot(dx, dy)
}

// Step computes the next velocity from cohesion, separation and velocity
// matching over neighbors within vision. It reads peer state only; because
// the flock runs under simultaneous activation, every boid sees the same
// pre-tick picture.
func (b *Boid) Step() error {
	cfg := b.m.cfg
	var cohereX, cohereY float64
	var sepX, sepY float64
	var matchX, matchY float64
	neighbors := 0

	for _, other := range b.m.boids {
		if other == b {
			continue
		}
		dx := torusDelta(b.x, other.x, cfg.Width)
		dy := torusDelta(b.y, other.y, cfg.Height)
		dist := math.Hypot(dx, dy)
		if dist > cfg.Vision {
			continue
		}
		neighbors++
		cohereX += dx
		cohereY += dy
		if dist < cfg.Separation {
			sepX -= dx
			sepY -= dy
		}
		matchX += other.vx
		matchY += other.vy
	}

	vx, vy := b.vx, b.vy
	if neighbors > 0 {
		n := float64(neighbors)
		vx += cohereX/n*cfg.Cohere + sepX*cfg.Separate + (matchX/n-b.vx)*cfg.Match
		vy += cohereY/n*cfg.Cohere + sepY*cfg.Separate + (matchY/n-b.vy)*cfg.Match
	}

	// Renormalize so the flock keeps a constant cruising speed.
	speed := math.Hypot(vx, vy)
	if speed > 0 {
		vx = vx / speed * cfg.Speed
		vy = vy / speed * cfg.Speed
	}
	b.nextVX, b.nextVY = vx, vy
	return nil
}

// Advance commits the velocity computed by Step and moves the boid, wrapping
// around the torus edges.
func (b *Boid) Advance() error {
	b.vx, b.vy = b.nextVX, b.nextVY
	b.x = wrap(b.x+b.vx, b.m.cfg.Width)
	b.y = wrap(b.y+b.vy, b.m.cfg.Height)
	return nil
}

func wrap(v, span float64) float64 {
	v = math.Mod(v, span)
	if v < 0 {
		v += span
	}
	return v
}
