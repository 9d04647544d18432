package systems

import "github.com/san-kum/phaseplot/internal/ode"

// Quadratic implements a damped oscillator with quadratic terms.
// State: [x, y] where y = dx/dt
// Equations:
//
//	dx/dt = y
//	dy/dt = -x - y + x² + y²
//
// The origin is a stable focus; (1, 0) is an unstable fixed point whose
// separatrix bounds the basin of attraction.
type Quadratic struct{}

func NewQuadratic() *Quadratic {
	return &Quadratic{}
}

func (q *Quadratic) Dim() int { return 2 }

func (q *Quadratic) Derive(_ float64, s ode.State) ode.State {
	x, y := s[0], s[1]
	return ode.State{y, -x - y + x*x + y*y}
}

func (q *Quadratic) Equilibria() []ode.Equilibrium {
	return []ode.Equilibrium{
		{X: 0, Y: 0, Stable: true},
		{X: 1, Y: 0, Stable: false},
	}
}
