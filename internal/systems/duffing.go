package systems

import (
	"math"

	"github.com/san-kum/phaseplot/internal/ode"
)

// Duffing implements the unforced Duffing oscillator (double well).
// State: [x, v]
// Equations:
//
//	dx/dt = v
//	dv/dt = -δv - αx - βx³
type Duffing struct {
	Alpha, Beta, Delta float64
}

func NewDuffing() *Duffing {
	return &Duffing{Alpha: -1.0, Beta: 1.0, Delta: 0.3}
}

func (d *Duffing) Dim() int { return 2 }

func (d *Duffing) Derive(_ float64, s ode.State) ode.State {
	x, v := s[0], s[1]
	return ode.State{v, -d.Delta*v - d.Alpha*x - d.Beta*x*x*x}
}

func (d *Duffing) Equilibria() []ode.Equilibrium {
	// α < 0, β > 0 gives the double well: two stable wells and an
	// unstable saddle at the origin.
	if d.Alpha < 0 && d.Beta > 0 {
		w := math.Sqrt(-d.Alpha / d.Beta)
		return []ode.Equilibrium{
			{X: -w, Y: 0, Stable: d.Delta > 0},
			{X: w, Y: 0, Stable: d.Delta > 0},
			{X: 0, Y: 0, Stable: false},
		}
	}
	return []ode.Equilibrium{{X: 0, Y: 0, Stable: d.Delta > 0}}
}

func (d *Duffing) GetParams() map[string]float64 {
	return map[string]float64{"alpha": d.Alpha, "beta": d.Beta, "delta": d.Delta}
}

func (d *Duffing) SetParam(n string, v float64) error {
	switch n {
	case "alpha":
		d.Alpha = v
	case "beta":
		d.Beta = v
	case "delta":
		d.Delta = v
	default:
		return ode.ErrUnknownParam
	}
	return nil
}
