package figure

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fixed equilibrium marker colors keyed by the stability flag.
var (
	StableColor   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff} // blue
	UnstableColor = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff} // red
)

// markerColor maps the stability flag to its marker color. The choice
// depends on nothing but the flag.
func markerColor(stable bool) color.Color {
	if stable {
		return StableColor
	}
	return UnstableColor
}

var named = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xd6, 0x27, 0x28, 0xff},
	"blue":    {0x1f, 0x77, 0xb4, 0xff},
	"green":   {0x2c, 0xa0, 0x2c, 0xff},
	"orange":  {0xff, 0x7f, 0x0e, 0xff},
	"purple":  {0x94, 0x67, 0xbd, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"grey":    {0x7f, 0x7f, 0x7f, 0xff},
	"magenta": {0xe3, 0x77, 0xc2, 0xff},
	"cyan":    {0x17, 0xbe, 0xcf, 0xff},
	"brown":   {0x8c, 0x56, 0x4b, 0xff},
	"olive":   {0xbc, 0xbd, 0x22, 0xff},
}

// ParseColor resolves a display color identifier: a known name or a
// "#rrggbb" hex triplet.
func ParseColor(s string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") {
		c, err := colorful.Hex(key)
		if err != nil {
			return nil, fmt.Errorf("bad hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return nil, fmt.Errorf("unknown color: %q", s)
}
