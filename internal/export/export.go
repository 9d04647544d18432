// Package export writes solved portrait data as JSON or CSV for use
// outside the tool.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/phaseplot/internal/portrait"
)

type PortraitData struct {
	System       string            `json:"system"`
	Trajectories []TrajectoryData  `json:"trajectories"`
	Equilibria   []EquilibriumData `json:"equilibria"`
}

type TrajectoryData struct {
	Label    string    `json:"label,omitempty"`
	Color    string    `json:"color"`
	Reversed bool      `json:"reversed"`
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
}

type EquilibriumData struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Stable bool    `json:"stable"`
}

func collect(system string, p *portrait.PhasePortrait) PortraitData {
	data := PortraitData{System: system}
	for _, tr := range p.Trajectories() {
		data.Trajectories = append(data.Trajectories, TrajectoryData{
			Label:    tr.Label,
			Color:    tr.Color,
			Reversed: tr.Reversed,
			X:        tr.XS,
			Y:        tr.YS,
		})
	}
	for _, e := range p.Equilibria() {
		data.Equilibria = append(data.Equilibria, EquilibriumData{X: e.X, Y: e.Y, Stable: e.Stable})
	}
	return data
}

func JSON(w io.Writer, system string, p *portrait.PhasePortrait) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(collect(system, p))
}

func JSONFile(path, system string, p *portrait.PhasePortrait) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return JSON(file, system, p)
}

// CSV writes one row per sample: trajectory index, sample index, x, y.
func CSV(w io.Writer, p *portrait.PhasePortrait) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"trajectory", "sample", "x", "y"}); err != nil {
		return err
	}
	for ti, tr := range p.Trajectories() {
		for i := range tr.XS {
			row := []string{
				strconv.Itoa(ti),
				strconv.Itoa(i),
				strconv.FormatFloat(tr.XS[i], 'f', 6, 64),
				strconv.FormatFloat(tr.YS[i], 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func CSVFile(path string, p *portrait.PhasePortrait) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := CSV(file, p); err != nil {
		return fmt.Errorf("csv export: %w", err)
	}
	return nil
}
