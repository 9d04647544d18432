package ode

import "math"

// State is a point in the plane: [x, y].
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm is the Euclidean length of the state vector.
func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Field is the right-hand side of dX/dt = f(t, X).
type Field func(t float64, s State) State

// System is a named vector field, usually parameterized.
type System interface {
	Derive(t float64, s State) State
	Dim() int
}

// Configurable exposes tunable system parameters.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Equilibria is implemented by systems that know their fixed points.
// Stability is asserted by the system definition, not computed.
type Equilibria interface {
	Equilibria() []Equilibrium
}

// Equilibrium is a fixed point with a caller-asserted stability label.
type Equilibrium struct {
	X, Y   float64
	Stable bool
}
