package term

import "strings"

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille drawing surface with an overlay layer for marker
// glyphs that must win over curve dots.
type Canvas struct {
	Width, Height int
	grid          [][]rune
	overlay       [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:   w,
		Height:  h,
		grid:    make([][]rune, h),
		overlay: make([][]rune, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.overlay[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// SetDot sets a sub-pixel at (x, y). The canvas size in sub-pixels is
// (Width*2) x (Height*4).
func (c *Canvas) SetDot(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Line draws a sub-pixel line using Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetDot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Glyph places an overlay rune at cell coordinates; it replaces any
// braille content of that cell when rendering.
func (c *Canvas) Glyph(col, row int, r rune) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.overlay[row][col] = r
}

// GlyphAt reports the overlay rune at a cell, 0 when unset.
func (c *Canvas) GlyphAt(col, row int) rune {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return 0
	}
	return c.overlay[row][col]
}

// Rune returns the rune a cell renders as.
func (c *Canvas) Rune(col, row int) rune {
	if r := c.overlay[row][col]; r != 0 {
		return r
	}
	return c.grid[row][col]
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			sb.WriteRune(c.Rune(col, row))
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
