package systems

import (
	"math"

	"github.com/san-kum/phaseplot/internal/ode"
)

// Pendulum implements a damped planar pendulum.
// State: [theta, omega]
// Equations:
//
//	dθ/dt = ω
//	dω/dt = -(g/L) sin θ - b ω
type Pendulum struct {
	g float64
	l float64
	b float64 // damping
}

func NewPendulum() *Pendulum {
	return &Pendulum{g: 9.81, l: 1.0, b: 0.25}
}

func (p *Pendulum) Dim() int { return 2 }

func (p *Pendulum) Derive(_ float64, s ode.State) ode.State {
	theta, omega := s[0], s[1]
	return ode.State{omega, -(p.g/p.l)*math.Sin(theta) - p.b*omega}
}

func (p *Pendulum) Equilibria() []ode.Equilibrium {
	return []ode.Equilibrium{
		{X: 0, Y: 0, Stable: p.b > 0},
		{X: math.Pi, Y: 0, Stable: false},
		{X: -math.Pi, Y: 0, Stable: false},
	}
}

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{"g": p.g, "l": p.l, "b": p.b}
}

func (p *Pendulum) SetParam(name string, value float64) error {
	switch name {
	case "g":
		p.g = value
	case "l":
		p.l = value
	case "b":
		p.b = value
	default:
		return ode.ErrUnknownParam
	}
	return nil
}
