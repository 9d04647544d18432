package config

import (
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/phaseplot/internal/figure"
	"github.com/san-kum/phaseplot/internal/portrait"
)

const (
	DefaultTimeFrom = 0.0
	DefaultTimeTo   = 50.0
	DefaultSamples  = 1500
)

// Scenario is a full phase-portrait run described in YAML: the system,
// its parameter overrides, the shared time schedule, the trajectory
// batch and the axes.
type Scenario struct {
	System         string              `yaml:"system"`
	Params         map[string]float64  `yaml:"params"`
	Time           TimeConfig          `yaml:"time"`
	Trajectories   []TrajectoryConfig  `yaml:"trajectories"`
	Equilibria     []EquilibriumConfig `yaml:"equilibria"`
	MarkEquilibria bool                `yaml:"mark_equilibria"`
	Axes           AxesConfig          `yaml:"axes"`
	OutDir         string              `yaml:"out_dir"`
}

// TimeConfig is an evaluation schedule: Samples points evenly spaced
// from From to To. From > To means reverse-time integration.
type TimeConfig struct {
	From    float64 `yaml:"from"`
	To      float64 `yaml:"to"`
	Samples int     `yaml:"samples"`
}

// Schedule materializes the evaluation times.
func (t TimeConfig) Schedule() []float64 {
	n := t.Samples
	if n < 2 {
		n = DefaultSamples
	}
	return floats.Span(make([]float64, n), t.From, t.To)
}

type TrajectoryConfig struct {
	X          float64              `yaml:"x"`
	Y          float64              `yaml:"y"`
	Time       *TimeConfig          `yaml:"time"`
	Rtol       float64              `yaml:"rtol"`
	Atol       float64              `yaml:"atol"`
	Color      string               `yaml:"color"`
	ArrowColor string               `yaml:"arrow_color"`
	Arrows     portrait.ArrowConfig `yaml:"arrows"`
	Label      string               `yaml:"label"`
}

// InitialCondition converts the YAML record to the orchestrator type.
// A record without its own time block leaves TEval nil so the batch
// default applies.
func (tc TrajectoryConfig) InitialCondition() portrait.InitialCondition {
	ic := portrait.InitialCondition{
		Point:      [2]float64{tc.X, tc.Y},
		Rtol:       tc.Rtol,
		Atol:       tc.Atol,
		Color:      tc.Color,
		ArrowColor: tc.ArrowColor,
		Arrows:     tc.Arrows,
		Label:      tc.Label,
	}
	if tc.Time != nil {
		ic.TEval = tc.Time.Schedule()
	}
	return ic
}

type EquilibriumConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Stable bool    `yaml:"stable"`
}

type AxesConfig struct {
	XLim   *[2]float64 `yaml:"xlim"`
	YLim   *[2]float64 `yaml:"ylim"`
	XLabel string      `yaml:"xlabel"`
	YLabel string      `yaml:"ylabel"`
	Title  string      `yaml:"title"`
	Grid   bool        `yaml:"grid"`
}

// Format converts the axes block to figure options.
func (a AxesConfig) Format() figure.Format {
	return figure.Format{
		XLim:   a.XLim,
		YLim:   a.YLim,
		XLabel: a.XLabel,
		YLabel: a.YLabel,
		Title:  a.Title,
		Grid:   a.Grid,
	}
}

func DefaultScenario() *Scenario {
	return &Scenario{
		System:         "quadratic",
		Time:           TimeConfig{From: DefaultTimeFrom, To: DefaultTimeTo, Samples: DefaultSamples},
		MarkEquilibria: true,
		Axes:           AxesConfig{Grid: true},
		OutDir:         figure.DefaultDir,
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultScenario()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Scenario) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
