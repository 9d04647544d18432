// Package ode provides core primitives for planar ordinary differential
// equations.
//
// The package defines the fundamental types shared across the module:
//
//   - [State]: the planar state vector [x, y]
//   - [Field]: the right-hand side dX/dt = f(t, X)
//   - [System]: a named, parameterized vector field
//   - [Equilibrium]: a fixed point with a stability label
//
// # Example
//
//	field := func(t float64, s ode.State) ode.State {
//		x, y := s[0], s[1]
//		return ode.State{y, -x - y + x*x + y*y}
//	}
//
// Stability labels on [Equilibrium] are asserted by whoever supplies the
// point; nothing in this module verifies them.
package ode
