package config

import (
	"math"
	"sort"

	"github.com/san-kum/phaseplot/internal/portrait"
)

// Built-in scenarios per system. The quadratic "basin" preset traces
// the basin boundary of the stable focus, including one reverse-time
// trajectory into the unstable fixed point.
var presets = map[string]map[string]func() *Scenario{
	"quadratic": {
		"basin": func() *Scenario {
			s := DefaultScenario()
			s.System = "quadratic"
			s.Trajectories = []TrajectoryConfig{
				{X: 0.5, Y: -1.5},
				{X: -0.3, Y: -1.5},
				{X: -0.409, Y: -1.5},
				{X: 0.9, Y: -1.5},
				{X: -0.49, Y: -1.5},
				{X: 1.5, Y: -1.5},
				{X: 1.64, Y: -1.5},
				{X: 1.9, Y: -1.5},
				// reverse time into the saddle
				{X: 1, Y: 0.5, Time: &TimeConfig{From: 50, To: 0, Samples: 1500}, Color: "red"},
			}
			s.Axes = AxesConfig{
				XLim:  &[2]float64{-1, 1.9},
				YLim:  &[2]float64{-1.4, 1.5},
				Title: "Phase portrait",
				Grid:  true,
			}
			return s
		},
	},
	"vanderpol": {
		"limitcycle": func() *Scenario {
			s := DefaultScenario()
			s.System = "vanderpol"
			s.Time = TimeConfig{From: 0, To: 20, Samples: 800}
			s.Trajectories = []TrajectoryConfig{
				{X: 0.1, Y: 0, Color: "blue", Arrows: portrait.ArrowConfig{Count: 3, Span: 120}},
				{X: 3, Y: 3, Color: "green", Arrows: portrait.ArrowConfig{Count: 3, Span: 120}},
				{X: -3, Y: -3, Color: "orange", Arrows: portrait.ArrowConfig{Count: 3, Span: 120}},
			}
			return s
		},
	},
	"pendulum": {
		"swing": func() *Scenario {
			s := DefaultScenario()
			s.System = "pendulum"
			s.Time = TimeConfig{From: 0, To: 12, Samples: 600}
			s.Trajectories = []TrajectoryConfig{
				{X: 0.5, Y: 0},
				{X: 1.5, Y: 0, Color: "blue"},
				{X: 2.8, Y: 0, Color: "green"},
				{X: -2.8, Y: 2, Color: "orange", Arrows: portrait.ArrowConfig{Count: 2, Span: 80}},
			}
			return s
		},
		// whirl starts above the separatrix so the pendulum rotates over
		// the top before friction drops it into a libration.
		"whirl": func() *Scenario {
			s := DefaultScenario()
			s.System = "pendulum"
			s.Time = TimeConfig{From: 0, To: 20, Samples: 900}
			s.Trajectories = []TrajectoryConfig{
				{X: -math.Pi, Y: 7, Color: "blue", Arrows: portrait.ArrowConfig{Count: 3, Span: 150}},
				{X: -math.Pi, Y: 8.5, Color: "green", Arrows: portrait.ArrowConfig{Count: 3, Span: 150}},
				{X: math.Pi, Y: -7, Color: "orange", Arrows: portrait.ArrowConfig{Count: 3, Span: 150}},
			}
			s.Axes = AxesConfig{Title: "Phase portrait", Grid: true}
			return s
		},
	},
	"duffing": {
		"wells": func() *Scenario {
			s := DefaultScenario()
			s.System = "duffing"
			s.Time = TimeConfig{From: 0, To: 25, Samples: 1000}
			s.Trajectories = []TrajectoryConfig{
				{X: 0.05, Y: 0.05, Color: "blue"},
				{X: -0.05, Y: -0.05, Color: "green"},
				{X: 2, Y: 0, Color: "orange"},
				{X: -2, Y: 0, Color: "purple"},
			}
			return s
		},
	},
}

// GetPreset returns a fresh scenario for system/name, nil if unknown.
// Each call builds a new value so callers can mutate freely.
func GetPreset(system, name string) *Scenario {
	byName, ok := presets[system]
	if !ok {
		return nil
	}
	fn, ok := byName[name]
	if !ok {
		return nil
	}
	return fn()
}

// ListPresets names the presets available for a system, nil if none.
func ListPresets(system string) []string {
	byName, ok := presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
