//go:build ebiten

package render

import (
	"image/color"

	"simon/internal/game"
	"simon/internal/layout"
	"simon/internal/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PadPainter draws the four pads, lighting the highlighted one.
type PadPainter struct {
	pal    palette.Palette
	border float32
}

// NewPadPainter constructs a painter using the provided palette.
func NewPadPainter(pal palette.Palette) *PadPainter {
	return &PadPainter{pal: pal, border: 4}
}

// Draw paints every pad in board onto dst.
func (p *PadPainter) Draw(dst *ebiten.Image, board layout.Board, highlight game.Color) {
	for _, pad := range board.Pads {
		r := pad.Rect
		if r.Empty() {
			continue
		}
		lit := pad.Color == highlight
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())
		vector.DrawFilledRect(dst, x, y, w, h, p.pal.Fill(pad.Color, lit), false)
		if lit {
			vector.StrokeRect(dst, x+p.border/2, y+p.border/2, w-p.border, h-p.border, p.border, color.White, false)
		}
	}
}
