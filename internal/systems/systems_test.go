package systems

import (
	"math"
	"testing"

	"github.com/san-kum/phaseplot/internal/ode"
)

func TestEquilibriaAreFixedPoints(t *testing.T) {
	reg := NewRegistry()
	for _, name := range reg.List() {
		sys, err := reg.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		eq, ok := sys.(ode.Equilibria)
		if !ok {
			continue
		}
		for _, e := range eq.Equilibria() {
			d := sys.Derive(0, ode.State{e.X, e.Y})
			if d.Norm() > 1e-9 {
				t.Errorf("%s: (%f, %f) is not a fixed point, f = %v", name, e.X, e.Y, d)
			}
		}
	}
}

func TestQuadraticField(t *testing.T) {
	q := NewQuadratic()
	d := q.Derive(0, ode.State{0.5, -1.5})
	if d[0] != -1.5 {
		t.Errorf("dx = %f, want -1.5", d[0])
	}
	// -0.5 + 1.5 + 0.25 + 2.25 = 3.5
	if math.Abs(d[1]-3.5) > 1e-12 {
		t.Errorf("dy = %f, want 3.5", d[1])
	}
}

func TestRegistry_Unknown(t *testing.T) {
	if _, err := NewRegistry().Get("lorenz96"); err == nil {
		t.Error("expected error for unknown system")
	}
}

func TestSetParam(t *testing.T) {
	v := NewVanDerPol()
	if err := v.SetParam("mu", 2.5); err != nil {
		t.Fatal(err)
	}
	if v.GetParams()["mu"] != 2.5 {
		t.Errorf("mu = %f after SetParam", v.GetParams()["mu"])
	}
	if err := v.SetParam("nope", 1); err == nil {
		t.Error("expected error for unknown parameter")
	}
}
