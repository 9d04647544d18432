package integrators

import (
	"fmt"
	"math"

	"github.com/san-kum/phaseplot/internal/ode"
)

const (
	DefaultRtol = 1e-3
	DefaultAtol = 1e-6

	defaultMaxSteps = 200000
)

// Options controls a single SolveIVP call. Zero fields take defaults.
type Options struct {
	Rtol     float64
	Atol     float64
	MaxSteps int
}

func (o Options) withDefaults() Options {
	if o.Rtol <= 0 {
		o.Rtol = DefaultRtol
	}
	if o.Atol <= 0 {
		o.Atol = DefaultAtol
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = defaultMaxSteps
	}
	return o
}

// Solution is a trajectory sampled at exactly the requested schedule.
// T, X and Y are aligned index-for-index.
type Solution struct {
	T []float64
	X []float64
	Y []float64
}

// Reversed reports whether the schedule runs backward in time.
func (s *Solution) Reversed() bool {
	return len(s.T) >= 2 && s.T[0] > s.T[len(s.T)-1]
}

// Len returns the number of samples.
func (s *Solution) Len() int { return len(s.T) }

// SolveIVP integrates dX/dt = f(t, X) from tEval[0] and samples the
// solution at every point of tEval. The schedule must be strictly
// monotonic; a descending schedule integrates in reverse time. The
// returned solution always has exactly len(tEval) samples, or an error
// is returned instead (there is no silent truncation).
func SolveIVP(f ode.Field, y0 ode.State, tEval []float64, opt Options) (*Solution, error) {
	if len(y0) != 2 {
		return nil, ode.ErrDimension
	}
	if len(tEval) < 2 {
		return nil, ode.ErrBadSchedule
	}
	dir := 1.0
	if tEval[0] > tEval[len(tEval)-1] {
		dir = -1.0
	}
	for i := 1; i < len(tEval); i++ {
		if dir*(tEval[i]-tEval[i-1]) <= 0 {
			return nil, fmt.Errorf("%w: samples %d..%d", ode.ErrBadSchedule, i-1, i)
		}
	}

	opt = opt.withDefaults()
	stepper := NewRK45(opt.Rtol, opt.Atol)

	span := math.Abs(tEval[len(tEval)-1] - tEval[0])
	hMin := span * 1e-14

	sol := &Solution{
		T: make([]float64, 0, len(tEval)),
		X: make([]float64, 0, len(tEval)),
		Y: make([]float64, 0, len(tEval)),
	}

	x := y0.Clone()
	t := tEval[0]
	sol.record(t, x)

	h := tEval[1] - tEval[0] // first sub-interval as initial guess, carries the sign
	steps := 0

	for i := 1; i < len(tEval); i++ {
		target := tEval[i]

		for dir*(target-t) > 0 {
			if steps >= opt.MaxSteps {
				return nil, &ode.SolveError{Time: t, Sample: i, Wrapped: ode.ErrTooManySteps}
			}
			steps++

			// Clamp the trial step so we land exactly on the target.
			trial := h
			if dir*(t+trial-target) > 0 {
				trial = target - t
			}

			xNew, ratio := stepper.Step(f, x, t, trial)
			if !xNew.IsValid() {
				return nil, &ode.SolveError{Time: t, Sample: i, Wrapped: ode.ErrDiverged}
			}

			if ratio <= 1 {
				x = xNew
				t += trial
				if trial == h {
					h = stepper.NextStep(h, ratio)
				}
			} else {
				h = stepper.NextStep(trial, ratio)
			}

			if math.Abs(h) < hMin {
				return nil, &ode.SolveError{Time: t, Sample: i, Wrapped: ode.ErrStepTooSmall}
			}
		}

		t = target
		sol.record(t, x)
	}

	if sol.Len() != len(tEval) {
		return nil, &ode.SolveError{Time: t, Sample: sol.Len(), Wrapped: ode.ErrIncomplete}
	}
	return sol, nil
}

func (s *Solution) record(t float64, x ode.State) {
	s.T = append(s.T, t)
	s.X = append(s.X, x[0])
	s.Y = append(s.Y, x[1])
}
