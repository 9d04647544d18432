package portrait

import (
	"math"

	"github.com/san-kum/phaseplot/internal/figure"
	"github.com/san-kum/phaseplot/internal/integrators"
	"github.com/san-kum/phaseplot/internal/ode"
)

// Trajectory is one rendered solution curve plus its direction arrows,
// retained for terminal display after the figure has been drawn.
type Trajectory struct {
	XS, YS     []float64
	Color      string
	ArrowColor string
	Label      string
	Reversed   bool
	Arrows     []Arrow
}

// PhasePortrait owns the vector field and the drawing surface. One
// instance accumulates trajectories and equilibrium markers onto a
// single figure; it is not reset or reused. Not safe for concurrent
// use.
type PhasePortrait struct {
	field        ode.Field
	fig          *figure.Figure
	trajectories []Trajectory
	equilibria   []ode.Equilibrium
}

func New(field ode.Field) (*PhasePortrait, error) {
	if field == nil {
		return nil, ErrNoField
	}
	return &PhasePortrait{
		field: field,
		fig:   figure.New(),
	}, nil
}

// AddTrajectories integrates and draws each record, using the record's
// own schedule, tolerances and arrow settings and falling back to
// defaultTEval where a record lacks its own schedule. Every record is
// validated before the first solver call.
func (p *PhasePortrait) AddTrajectories(ics []InitialCondition, defaultTEval []float64) error {
	resolved := make([]InitialCondition, len(ics))
	for i, ic := range ics {
		r, err := resolve(ic, defaultTEval)
		if err != nil {
			return err
		}
		resolved[i] = r
	}

	for _, r := range resolved {
		if err := p.addOne(r); err != nil {
			return err
		}
	}
	return nil
}

// AddTrajectoriesConfigured is the positional batch API: one plot
// config per starting point, sharing a single schedule. A nil cfgs
// applies defaults to every point; any other length mismatch is a
// configuration error, raised before any integration.
func (p *PhasePortrait) AddTrajectoriesConfigured(points [][2]float64, tEval []float64, cfgs []PlotConfig) error {
	if cfgs != nil && len(cfgs) != len(points) {
		return ErrConfigCount
	}
	ics := make([]InitialCondition, len(points))
	for i, pt := range points {
		ics[i] = InitialCondition{Point: pt}
		if cfgs != nil {
			ics[i].Color = cfgs[i].Color
			ics[i].ArrowColor = cfgs[i].ArrowColor
			ics[i].Arrows = cfgs[i].Arrows
		}
	}
	return p.AddTrajectories(ics, tEval)
}

func (p *PhasePortrait) addOne(r InitialCondition) error {
	sol, err := integrators.SolveIVP(p.field, ode.State{r.Point[0], r.Point[1]}, r.TEval, integrators.Options{
		Rtol: r.Rtol,
		Atol: r.Atol,
	})
	if err != nil {
		return err
	}

	traj := Trajectory{
		XS:         sol.X,
		YS:         sol.Y,
		Color:      r.Color,
		ArrowColor: r.ArrowColor,
		Label:      r.Label,
		Reversed:   sol.Reversed(),
	}
	traj.Arrows = PlaceArrows(sol.X, sol.Y, traj.Reversed, r.Arrows.Span, r.Arrows.Count)

	lineColor, err := figure.ParseColor(r.Color)
	if err != nil {
		return err
	}
	arrowColor, err := figure.ParseColor(r.ArrowColor)
	if err != nil {
		return err
	}
	if err := p.fig.AddCurve(traj.XS, traj.YS, lineColor, r.Label); err != nil {
		return err
	}

	segs := make([]figure.Segment, len(traj.Arrows))
	for i, a := range traj.Arrows {
		segs[i] = figure.Segment{X0: a.X0, Y0: a.Y0, X1: a.X1, Y1: a.Y1}
	}
	p.fig.AddArrows(segs, arrowColor)

	p.trajectories = append(p.trajectories, traj)
	return nil
}

// AddEquilibrium marks one fixed point; the stability flag is taken on
// faith and only selects the marker color.
func (p *PhasePortrait) AddEquilibrium(x, y float64, stable bool) error {
	p.equilibria = append(p.equilibria, ode.Equilibrium{X: x, Y: y, Stable: stable})
	return p.fig.AddEquilibrium(x, y, stable)
}

// AddEquilibria marks every fixed point of the list.
func (p *PhasePortrait) AddEquilibria(eqs []ode.Equilibrium) error {
	for _, e := range eqs {
		if err := p.AddEquilibrium(e.X, e.Y, e.Stable); err != nil {
			return err
		}
	}
	return nil
}

// Format applies axis limits, labels, title and grid to the figure.
func (p *PhasePortrait) Format(o figure.Format) {
	p.fig.Apply(o)
}

// Save persists the figure as the next numbered PDF in dir and returns
// the path written.
func (p *PhasePortrait) Save(dir string) (string, error) {
	return p.fig.Save(dir)
}

// Trajectories returns the accumulated trajectories for terminal
// rendering.
func (p *PhasePortrait) Trajectories() []Trajectory { return p.trajectories }

// Equilibria returns the accumulated equilibrium markers.
func (p *PhasePortrait) Equilibria() []ode.Equilibrium { return p.equilibria }

// Bounds returns the data extent over all trajectories and equilibria.
// ok is false when nothing has been drawn yet.
func (p *PhasePortrait) Bounds() (xMin, xMax, yMin, yMax float64, ok bool) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for _, tr := range p.trajectories {
		for i := range tr.XS {
			xMin = math.Min(xMin, tr.XS[i])
			xMax = math.Max(xMax, tr.XS[i])
			yMin = math.Min(yMin, tr.YS[i])
			yMax = math.Max(yMax, tr.YS[i])
		}
	}
	for _, e := range p.equilibria {
		xMin = math.Min(xMin, e.X)
		xMax = math.Max(xMax, e.X)
		yMin = math.Min(yMin, e.Y)
		yMax = math.Max(yMax, e.Y)
	}
	ok = xMin <= xMax && yMin <= yMax
	return
}
