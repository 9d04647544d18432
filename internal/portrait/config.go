package portrait

import (
	"fmt"

	"github.com/san-kum/phaseplot/internal/figure"
	"github.com/san-kum/phaseplot/internal/integrators"
)

// Display defaults, matching the figure palette.
const (
	DefaultColor      = "black"
	DefaultArrowColor = "black"
	DefaultArrowCount = 1
	DefaultArrowSpan  = 10
)

// ArrowConfig controls direction arrows on one trajectory. Span is the
// sample-index spacing between arrows; Count is how many to draw.
type ArrowConfig struct {
	Count int `yaml:"count"`
	Span  int `yaml:"span"`
}

// PlotConfig is the per-trajectory display configuration used by the
// positional batch API.
type PlotConfig struct {
	Color      string      `yaml:"color"`
	ArrowColor string      `yaml:"arrow_color"`
	Arrows     ArrowConfig `yaml:"arrows"`
}

// InitialCondition bundles a starting point with its integration
// schedule, tolerances and display options. Zero fields take defaults;
// TEval may be left nil and filled from a batch default.
type InitialCondition struct {
	Point      [2]float64
	TEval      []float64
	Rtol       float64
	Atol       float64
	Color      string
	ArrowColor string
	Label      string
	Arrows     ArrowConfig
}

// resolve returns a fully-defaulted copy of ic. Defaults are copied per
// record so later mutation of one record cannot leak into another. All
// validation happens here, before any solver call.
func resolve(ic InitialCondition, defaultTEval []float64) (InitialCondition, error) {
	r := ic
	if r.TEval == nil {
		r.TEval = defaultTEval
	}
	if r.TEval == nil {
		return r, fmt.Errorf("%w: point (%g, %g)", ErrNoSchedule, ic.Point[0], ic.Point[1])
	}
	if r.Rtol <= 0 {
		r.Rtol = integrators.DefaultRtol
	}
	if r.Atol <= 0 {
		r.Atol = integrators.DefaultAtol
	}
	if r.Color == "" {
		r.Color = DefaultColor
	}
	if r.ArrowColor == "" {
		r.ArrowColor = DefaultArrowColor
	}
	if r.Arrows == (ArrowConfig{}) {
		r.Arrows = ArrowConfig{Count: DefaultArrowCount, Span: DefaultArrowSpan}
	}
	if r.Arrows.Span <= 0 || r.Arrows.Count < 0 {
		return r, fmt.Errorf("%w: span %d, count %d", ErrArrowConfig, r.Arrows.Span, r.Arrows.Count)
	}
	if _, err := figure.ParseColor(r.Color); err != nil {
		return r, err
	}
	if _, err := figure.ParseColor(r.ArrowColor); err != nil {
		return r, err
	}
	return r, nil
}
