package term

import (
	"strings"
	"testing"

	"github.com/san-kum/phaseplot/internal/ode"
	"github.com/san-kum/phaseplot/internal/portrait"
)

func TestCanvas_SetDot(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetDot(0, 0)
	if c.Rune(0, 0) == 0x2800 {
		t.Error("dot not set in first cell")
	}
	if c.Rune(1, 0) != 0x2800 {
		t.Error("neighbor cell should stay empty")
	}
}

func TestCanvas_OutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(2, 2)
	c.SetDot(-1, 0)
	c.SetDot(0, -3)
	c.SetDot(100, 100)
	c.Glyph(-1, 0, '●')
	c.Glyph(5, 5, '●')
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			if c.Rune(col, row) != 0x2800 {
				t.Fatalf("cell (%d,%d) modified by out-of-bounds draw", col, row)
			}
		}
	}
}

func TestCanvas_LineEndpoints(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 19, 39)
	if c.Rune(0, 0) == 0x2800 {
		t.Error("line start missing")
	}
	if c.Rune(9, 9) == 0x2800 {
		t.Error("line end missing")
	}
}

func TestCanvas_GlyphOverridesBraille(t *testing.T) {
	c := NewCanvas(3, 3)
	c.SetDot(2, 4)
	c.Glyph(1, 1, '●')
	if c.Rune(1, 1) != '●' {
		t.Errorf("overlay glyph should win, got %q", c.Rune(1, 1))
	}
}

func TestHeadGlyph(t *testing.T) {
	tests := []struct {
		a    portrait.Arrow
		want rune
	}{
		{portrait.Arrow{X0: 0, Y0: 0, X1: 1, Y1: 0.1}, '▶'},
		{portrait.Arrow{X0: 1, Y0: 0, X1: 0, Y1: 0.1}, '◀'},
		{portrait.Arrow{X0: 0, Y0: 0, X1: 0.1, Y1: 1}, '▲'},
		{portrait.Arrow{X0: 0, Y0: 1, X1: 0.1, Y1: 0}, '▼'},
	}
	for _, tt := range tests {
		if got := headGlyph(tt.a); got != tt.want {
			t.Errorf("headGlyph(%+v) = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestDraw_EquilibriumGlyphs(t *testing.T) {
	p, err := portrait.New(func(_ float64, s ode.State) ode.State {
		return ode.State{s[1], -s[0]}
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.AddEquilibrium(0, 0, true); err != nil {
		t.Fatal(err)
	}
	if err := p.AddEquilibrium(1, 0, false); err != nil {
		t.Fatal(err)
	}

	c := Draw(p, 40, 20, Viewport{XMin: -2, XMax: 2, YMin: -2, YMax: 2})
	out := c.String()
	if !strings.ContainsRune(out, '●') {
		t.Error("stable marker missing")
	}
	if !strings.ContainsRune(out, '○') {
		t.Error("unstable marker missing")
	}
}

func TestViewport_PanZoom(t *testing.T) {
	v := Viewport{XMin: -1, XMax: 1, YMin: -1, YMax: 1}

	p := v.Pan(0.5, 0)
	if p.XMin != 0 || p.XMax != 2 {
		t.Errorf("pan x wrong: %+v", p)
	}

	z := v.Zoom(0.5)
	if z.XMin != -0.5 || z.XMax != 0.5 || z.YMin != -0.5 || z.YMax != 0.5 {
		t.Errorf("zoom wrong: %+v", z)
	}
}
