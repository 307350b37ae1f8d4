// Package layout computes where the header, the four pads and the footer go
// on a surface of a given size. Units are whatever the front end uses:
// pixels for the window, cells for the terminal.
package layout

import (
	"image"

	"simon/internal/core"
	"simon/internal/game"
)

// Options tunes the board geometry.
type Options struct {
	HeaderHeight int
	FooterHeight int
	Gap          int
	Margin       int
}

// WindowOptions suits the GUI at pixel resolution.
func WindowOptions() Options {
	return Options{HeaderHeight: 56, FooterHeight: 40, Gap: 16, Margin: 24}
}

// TerminalOptions suits a character grid.
func TerminalOptions() Options {
	return Options{HeaderHeight: 3, FooterHeight: 2, Gap: 1, Margin: 2}
}

// Pad is one clickable color region.
type Pad struct {
	Color game.Color
	Rect  image.Rectangle
}

// Board is the computed screen layout.
type Board struct {
	Size   core.Size
	Header image.Rectangle
	Footer image.Rectangle
	Pads   [4]Pad
}

// Compute lays out the board. The pads form a square 2x2 grid centred in
// the space between header and footer, in the order of game.Colors: green
// top-left, red top-right, yellow bottom-left, blue bottom-right.
func Compute(size core.Size, opts Options) Board {
	b := Board{Size: size}
	if size.Empty() {
		for i, c := range game.Colors {
			b.Pads[i] = Pad{Color: c}
		}
		return b
	}

	header := clampInt(opts.HeaderHeight, 0, size.H)
	footer := clampInt(opts.FooterHeight, 0, size.H-header)
	b.Header = image.Rect(0, 0, size.W, header)
	b.Footer = image.Rect(0, size.H-footer, size.W, size.H)

	area := image.Rect(0, header, size.W, size.H-footer).Inset(opts.Margin)
	if area.Empty() {
		area = image.Rect(0, header, size.W, size.H-footer)
	}

	gap := clampInt(opts.Gap, 0, minInt(area.Dx(), area.Dy()))
	side := minInt((area.Dx()-gap)/2, (area.Dy()-gap)/2)
	if side < 1 {
		side = 1
	}
	grid := 2*side + gap
	x0 := area.Min.X + (area.Dx()-grid)/2
	y0 := area.Min.Y + (area.Dy()-grid)/2

	for i, c := range game.Colors {
		col, row := i%2, i/2
		x := x0 + col*(side+gap)
		y := y0 + row*(side+gap)
		b.Pads[i] = Pad{Color: c, Rect: image.Rect(x, y, x+side, y+side)}
	}
	return b
}

// Pad returns the region for c.
func (b Board) Pad(c game.Color) (Pad, bool) {
	i := c.Index()
	if i < 0 {
		return Pad{}, false
	}
	return b.Pads[i], true
}

// HitTest reports which pad, if any, contains the point.
func (b Board) HitTest(x, y int) (game.Color, bool) {
	for _, p := range b.Pads {
		if pointInRect(x, y, p.Rect) {
			return p.Color, true
		}
	}
	return game.None, false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
