package systems

import "github.com/san-kum/phaseplot/internal/ode"

// VanDerPol implements the Van der Pol oscillator.
// State: [x, y] where y = dx/dt
// Equations:
//
//	dx/dt = y
//	dy/dt = μ(1 - x²)y - x
type VanDerPol struct {
	mu float64 // Nonlinearity parameter
}

func NewVanDerPol() *VanDerPol {
	return &VanDerPol{
		mu: 1.0, // Classic value for limit cycle
	}
}

func (v *VanDerPol) Dim() int { return 2 }

func (v *VanDerPol) Derive(_ float64, s ode.State) ode.State {
	x, y := s[0], s[1]

	dx := y
	dy := v.mu*(1-x*x)*y - x

	return ode.State{dx, dy}
}

func (v *VanDerPol) Equilibria() []ode.Equilibrium {
	// The origin repels onto the limit cycle for μ > 0.
	return []ode.Equilibrium{{X: 0, Y: 0, Stable: v.mu <= 0}}
}

// GetParams implements ode.Configurable
func (v *VanDerPol) GetParams() map[string]float64 {
	return map[string]float64{
		"mu": v.mu,
	}
}

// SetParam implements ode.Configurable
func (v *VanDerPol) SetParam(name string, value float64) error {
	if name != "mu" {
		return ode.ErrUnknownParam
	}
	v.mu = value
	return nil
}
