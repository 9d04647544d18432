package figure

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestNextPlotPath_Sequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")

	for i := 1; i <= 3; i++ {
		path, err := NextPlotPath(dir)
		if err != nil {
			t.Fatal(err)
		}
		want := filepath.Join(dir, fmt.Sprintf("plot_%d.pdf", i))
		if path != want {
			t.Fatalf("save %d: got %s, want %s", i, path, want)
		}
		if err := os.WriteFile(path, []byte("%PDF-"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNextPlotPath_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"notes.txt", "plot_final.pdf", "plot_1.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	path, err := NextPlotPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "plot_1.pdf" {
		t.Errorf("foreign files should not advance numbering, got %s", path)
	}
}

func TestNextPlotPath_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if _, err := NextPlotPath(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}

func TestFigure_SavePDF(t *testing.T) {
	f := New()
	if err := f.AddCurve([]float64{0, 1, 2}, []float64{0, 1, 0}, color.Black, ""); err != nil {
		t.Fatal(err)
	}
	f.AddArrows([]Segment{{X0: 0, Y0: 0, X1: 1, Y1: 1}}, color.Black)
	if err := f.AddEquilibrium(1, 0, false); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path, err := f.Save(dir)
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("saved PDF is empty")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"black", true},
		{"RED", true},
		{" blue ", true},
		{"#ff8800", true},
		{"#zzzzzz", false},
		{"chartreuse-ish", false},
		{"", false},
	}
	for _, tt := range tests {
		_, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q): err = %v, want ok=%v", tt.in, err, tt.ok)
		}
	}
}

func TestEquilibriumColorsFixed(t *testing.T) {
	if StableColor == UnstableColor {
		t.Fatal("stable and unstable markers must be distinguishable")
	}

	// The marker color is keyed only by the stability flag, never by
	// position.
	if got := markerColor(true); got != StableColor {
		t.Errorf("stable marker color = %v, want %v", got, StableColor)
	}
	if got := markerColor(false); got != UnstableColor {
		t.Errorf("unstable marker color = %v, want %v", got, UnstableColor)
	}

	f := New()
	for _, p := range []struct{ x, y float64 }{
		{0, 0}, {1, 0}, {-3.5, 2.25}, {1e6, -1e6},
	} {
		if err := f.AddEquilibrium(p.x, p.y, true); err != nil {
			t.Fatal(err)
		}
		if err := f.AddEquilibrium(p.x, p.y, false); err != nil {
			t.Fatal(err)
		}
	}
}
