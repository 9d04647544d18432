package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Figure owns one set of coordinate axes and accumulates trajectory
// curves, direction arrows and equilibrium markers until it is saved.
type Figure struct {
	p *plot.Plot
}

func New() *Figure {
	p := plot.New()
	p.Title.Text = "Phase portrait"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	return &Figure{p: p}
}

// Format collects the axis/label options applied once before display
// or save.
type Format struct {
	XLim, YLim *[2]float64
	XLabel     string
	YLabel     string
	Title      string
	Grid       bool
}

func (f *Figure) Apply(o Format) {
	if o.Title != "" {
		f.p.Title.Text = o.Title
	}
	if o.XLabel != "" {
		f.p.X.Label.Text = o.XLabel
	}
	if o.YLabel != "" {
		f.p.Y.Label.Text = o.YLabel
	}
	if o.XLim != nil {
		f.p.X.Min, f.p.X.Max = o.XLim[0], o.XLim[1]
	}
	if o.YLim != nil {
		f.p.Y.Min, f.p.Y.Max = o.YLim[0], o.YLim[1]
	}
	if o.Grid {
		f.p.Add(plotter.NewGrid())
	}
}

// AddCurve draws a continuous trajectory through all samples. A
// non-empty label adds a legend entry.
func (f *Figure) AddCurve(xs, ys []float64, c color.Color, label string) error {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(1)
	f.p.Add(line)
	if label != "" {
		f.p.Legend.Add(label, line)
	}
	return nil
}

// AddArrows overlays direction arrows; each segment's head end carries
// the arrowhead.
func (f *Figure) AddArrows(segs []Segment, c color.Color) {
	if len(segs) == 0 {
		return
	}
	f.p.Add(&arrowPlotter{
		segs:    segs,
		color:   c,
		width:   vg.Points(1),
		headLen: vg.Points(6),
	})
}

// AddEquilibrium draws one marker; color is keyed only by the
// stability flag.
func (f *Figure) AddEquilibrium(x, y float64, stable bool) error {
	pts := plotter.XYs{{X: x, Y: y}}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = markerColor(stable)
	scatter.GlyphStyle.Radius = vg.Points(4)
	f.p.Add(scatter)
	return nil
}

// Save writes the figure as a PDF into dir under the next free
// plot_<n>.pdf name and returns the path written.
func (f *Figure) Save(dir string) (string, error) {
	path, err := NextPlotPath(dir)
	if err != nil {
		return "", err
	}
	if err := f.p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", err
	}
	return path, nil
}
