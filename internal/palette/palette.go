// Package palette maps pads to display colors for both front ends.
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"simon/internal/game"
)

// Default hex colors for the pads, roughly the success/danger/warning/primary
// swatches of a dark web theme.
var defaultHex = map[game.Color]string{
	game.Green:  "#198754",
	game.Red:    "#dc3545",
	game.Yellow: "#ffc107",
	game.Blue:   "#0d6efd",
}

const (
	// dimFactor darkens idle pads toward the background.
	dimFactor = 0.35
	// litFactor blends flashed pads toward white.
	litFactor = 0.55
)

var (
	white      = colorful.Color{R: 1, G: 1, B: 1}
	background = colorful.Color{R: 0.13, G: 0.15, B: 0.16}
)

// Palette resolves display colors.
type Palette struct {
	base [4]colorful.Color
}

// Default returns the built-in palette.
func Default() Palette {
	p, err := New(nil)
	if err != nil {
		panic(err)
	}
	return p
}

// New builds a palette from optional hex overrides keyed by color name.
func New(overrides map[string]string) (Palette, error) {
	var p Palette
	for i, c := range game.Colors {
		hex := defaultHex[c]
		if v, ok := overrides[c.String()]; ok && v != "" {
			hex = v
		}
		col, err := colorful.Hex(hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", c, err)
		}
		p.base[i] = col
	}
	for name := range overrides {
		if _, err := game.ParseColor(name); err != nil {
			return Palette{}, fmt.Errorf("palette: %w", err)
		}
	}
	return p, nil
}

// Base returns the configured color for c, or the background for None.
func (p Palette) Base(c game.Color) colorful.Color {
	i := c.Index()
	if i < 0 {
		return background
	}
	return p.base[i]
}

// Fill returns the color a pad is painted with. Idle pads are dimmed; the
// flashed pad is brightened.
func (p Palette) Fill(c game.Color, lit bool) color.RGBA {
	base := p.Base(c)
	if lit {
		return toRGBA(base.BlendRgb(white, litFactor))
	}
	return toRGBA(base.BlendRgb(background, dimFactor))
}

// Background is the board color.
func (p Palette) Background() color.RGBA { return toRGBA(background) }

// Text is the header and footer text color.
func (p Palette) Text() color.RGBA { return color.RGBA{R: 235, G: 235, B: 240, A: 255} }

// Accent is used for the footer value and game over header.
func (p Palette) Accent(c game.Color) color.RGBA {
	if !c.Valid() {
		return p.Text()
	}
	return toRGBA(p.Base(c))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
