package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/phaseplot/internal/ode"
)

// dx/dt = y, dy/dt = -x; solution x(t) = cos t, y(t) = -sin t.
func harmonic(t float64, s ode.State) ode.State {
	return ode.State{s[1], -s[0]}
}

func linspace(t0, t1 float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + (t1-t0)*float64(i)/float64(n-1)
	}
	return out
}

func TestSolveIVP_Harmonic(t *testing.T) {
	tEval := linspace(0, 10, 500)
	sol, err := SolveIVP(harmonic, ode.State{1, 0}, tEval, Options{Rtol: 1e-8, Atol: 1e-10})
	if err != nil {
		t.Fatalf("SolveIVP: %v", err)
	}
	if sol.Len() != len(tEval) {
		t.Fatalf("expected %d samples, got %d", len(tEval), sol.Len())
	}
	for i, tv := range tEval {
		if math.Abs(sol.X[i]-math.Cos(tv)) > 1e-5 {
			t.Fatalf("x(%f) = %f, want %f", tv, sol.X[i], math.Cos(tv))
		}
		if math.Abs(sol.Y[i]+math.Sin(tv)) > 1e-5 {
			t.Fatalf("y(%f) = %f, want %f", tv, sol.Y[i], -math.Sin(tv))
		}
	}
}

func TestSolveIVP_Deterministic(t *testing.T) {
	tEval := linspace(0, 5, 200)
	a, err := SolveIVP(harmonic, ode.State{0.3, -0.7}, tEval, Options{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := SolveIVP(harmonic, ode.State{0.3, -0.7}, tEval, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.X {
		if a.X[i] != b.X[i] || a.Y[i] != b.Y[i] {
			t.Fatalf("sample %d differs between identical runs", i)
		}
	}
}

func TestSolveIVP_ReverseTime(t *testing.T) {
	fwd := linspace(0, 10, 300)
	rev := linspace(10, 0, 300)

	a, err := SolveIVP(harmonic, ode.State{1, 0}, fwd, Options{Rtol: 1e-8, Atol: 1e-10})
	if err != nil {
		t.Fatal(err)
	}
	if a.Reversed() {
		t.Error("ascending schedule reported as reversed")
	}

	// Start at the forward endpoint and integrate back: should retrace.
	end := ode.State{a.X[len(a.X)-1], a.Y[len(a.Y)-1]}
	b, err := SolveIVP(harmonic, end, rev, Options{Rtol: 1e-8, Atol: 1e-10})
	if err != nil {
		t.Fatal(err)
	}
	if !b.Reversed() {
		t.Error("descending schedule not reported as reversed")
	}
	if math.Abs(b.X[len(b.X)-1]-1) > 1e-4 || math.Abs(b.Y[len(b.Y)-1]) > 1e-4 {
		t.Errorf("reverse integration did not return to start: (%f, %f)",
			b.X[len(b.X)-1], b.Y[len(b.Y)-1])
	}
}

func TestSolveIVP_BadSchedule(t *testing.T) {
	cases := [][]float64{
		nil,
		{0},
		{0, 1, 1, 2},
		{0, 1, 0.5},
		{2, 1, 1.5},
	}
	for _, tEval := range cases {
		if _, err := SolveIVP(harmonic, ode.State{1, 0}, tEval, Options{}); !errors.Is(err, ode.ErrBadSchedule) {
			t.Errorf("schedule %v: expected ErrBadSchedule, got %v", tEval, err)
		}
	}
}

func TestSolveIVP_Dimension(t *testing.T) {
	_, err := SolveIVP(harmonic, ode.State{1, 0, 0}, linspace(0, 1, 10), Options{})
	if !errors.Is(err, ode.ErrDimension) {
		t.Errorf("expected ErrDimension, got %v", err)
	}
}

func TestSolveIVP_Diverges(t *testing.T) {
	blowup := func(t float64, s ode.State) ode.State {
		return ode.State{s[0] * s[0], s[1] * s[1]}
	}
	_, err := SolveIVP(blowup, ode.State{10, 10}, linspace(0, 100, 50), Options{})
	if err == nil {
		t.Fatal("expected an error for a diverging system")
	}
	var se *ode.SolveError
	if !errors.As(err, &se) {
		t.Fatalf("expected SolveError, got %T", err)
	}
}

func TestRK45_StepRejectsLargeError(t *testing.T) {
	r := NewRK45(1e-10, 1e-12)
	_, ratio := r.Step(harmonic, ode.State{1, 0}, 0, 1.0)
	if ratio <= 1 {
		t.Errorf("huge step should exceed tolerance, ratio = %f", ratio)
	}
	h := r.NextStep(1.0, ratio)
	if h >= 1.0 || h <= 0 {
		t.Errorf("rejected step should shrink, got %f", h)
	}
}
