package term

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/phaseplot/internal/portrait"
)

// Viewport is the data-coordinate window shown on the canvas.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// FitViewport frames all trajectories and equilibria with 10% padding.
func FitViewport(p *portrait.PhasePortrait) Viewport {
	xMin, xMax, yMin, yMax, ok := p.Bounds()
	if !ok {
		return Viewport{XMin: -1, XMax: 1, YMin: -1, YMax: 1}
	}
	rangeX := xMax - xMin
	rangeY := yMax - yMin
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	return Viewport{
		XMin: xMin - rangeX*0.1,
		XMax: xMax + rangeX*0.1,
		YMin: yMin - rangeY*0.1,
		YMax: yMax + rangeY*0.1,
	}
}

// Pan shifts the viewport by the given fractions of its span.
func (v Viewport) Pan(fx, fy float64) Viewport {
	dx := (v.XMax - v.XMin) * fx
	dy := (v.YMax - v.YMin) * fy
	return Viewport{XMin: v.XMin + dx, XMax: v.XMax + dx, YMin: v.YMin + dy, YMax: v.YMax + dy}
}

// Zoom scales the viewport about its center; factor < 1 zooms in.
func (v Viewport) Zoom(factor float64) Viewport {
	cx := (v.XMin + v.XMax) / 2
	cy := (v.YMin + v.YMax) / 2
	hx := (v.XMax - v.XMin) / 2 * factor
	hy := (v.YMax - v.YMin) / 2 * factor
	return Viewport{XMin: cx - hx, XMax: cx + hx, YMin: cy - hy, YMax: cy + hy}
}

// Draw renders the portrait into a braille canvas: curves as dotted
// lines, arrowheads as direction glyphs, equilibria as filled (stable)
// or open (unstable) circles.
func Draw(p *portrait.PhasePortrait, width, height int, vp Viewport) *Canvas {
	c := NewCanvas(width, height)

	subW := float64(width * 2)
	subH := float64(height * 4)
	rangeX := vp.XMax - vp.XMin
	rangeY := vp.YMax - vp.YMin
	if rangeX <= 0 || rangeY <= 0 {
		return c
	}

	toSub := func(x, y float64) (int, int) {
		sx := int((x - vp.XMin) / rangeX * (subW - 1))
		sy := int(subH - 1 - (y-vp.YMin)/rangeY*(subH-1))
		return sx, sy
	}

	for _, tr := range p.Trajectories() {
		for i := 1; i < len(tr.XS); i++ {
			x0, y0 := toSub(tr.XS[i-1], tr.YS[i-1])
			x1, y1 := toSub(tr.XS[i], tr.YS[i])
			if offCanvas(x0, y0, subW, subH) && offCanvas(x1, y1, subW, subH) {
				continue
			}
			c.Line(x0, y0, x1, y1)
		}
		for _, a := range tr.Arrows {
			sx, sy := toSub(a.X1, a.Y1)
			c.Glyph(sx/2, sy/4, headGlyph(a))
		}
	}

	for _, e := range p.Equilibria() {
		sx, sy := toSub(e.X, e.Y)
		r := '●'
		if !e.Stable {
			r = '○'
		}
		c.Glyph(sx/2, sy/4, r)
	}

	return c
}

func offCanvas(x, y int, subW, subH float64) bool {
	return x < 0 || y < 0 || x >= int(subW) || y >= int(subH)
}

// headGlyph picks a direction character from the arrow's dominant
// component. Screen y grows downward, so a positive dy points up.
func headGlyph(a portrait.Arrow) rune {
	dx := a.X1 - a.X0
	dy := a.Y1 - a.Y0
	if math.Abs(dx) >= math.Abs(dy) {
		if dx >= 0 {
			return '▶'
		}
		return '◀'
	}
	if dy >= 0 {
		return '▲'
	}
	return '▼'
}

// View assembles the framed terminal rendering: title, canvas, axis
// extents and legend line.
func View(p *portrait.PhasePortrait, width, height int, vp Viewport, title string) string {
	c := Draw(p, width, height, vp)

	var sb strings.Builder
	if title != "" {
		sb.WriteString(headerStyle.Render(title))
		sb.WriteString("\n")
	}
	sb.WriteString(frameStyle.Render(strings.TrimRight(c.String(), "\n")))
	sb.WriteString("\n")
	sb.WriteString(axisStyle.Render(fmt.Sprintf("x: [%.3g, %.3g]   y: [%.3g, %.3g]", vp.XMin, vp.XMax, vp.YMin, vp.YMax)))
	sb.WriteString("\n")
	sb.WriteString(legendStyle.Render("● stable   ○ unstable   ▶◀▲▼ flow direction"))
	sb.WriteString("\n")
	return sb.String()
}
