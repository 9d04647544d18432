package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Segment is a short directed segment in data coordinates; the
// arrowhead is drawn at (X1, Y1).
type Segment struct {
	X0, Y0 float64
	X1, Y1 float64
}

type arrowPlotter struct {
	segs    []Segment
	color   color.Color
	width   vg.Length
	headLen vg.Length
}

func (a *arrowPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := draw.LineStyle{Color: a.color, Width: a.width}

	for _, s := range a.segs {
		x0, y0 := trX(s.X0), trY(s.Y0)
		x1, y1 := trX(s.X1), trY(s.Y1)

		c.StrokeLine2(sty, x0, y0, x1, y1)

		dx := float64(x1 - x0)
		dy := float64(y1 - y0)
		n := math.Hypot(dx, dy)
		if n == 0 {
			continue
		}
		ux, uy := dx/n, dy/n

		// Triangle head: tip at the segment end, base perpendicular
		// to the flight direction.
		hl := float64(a.headLen)
		hw := hl * 0.4
		bx := float64(x1) - hl*ux
		by := float64(y1) - hl*uy
		px, py := -uy, ux

		c.FillPolygon(a.color, []vg.Point{
			{X: x1, Y: y1},
			{X: vg.Length(bx + hw*px), Y: vg.Length(by + hw*py)},
			{X: vg.Length(bx - hw*px), Y: vg.Length(by - hw*py)},
		})
	}
}
