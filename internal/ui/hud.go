//go:build ebiten

package ui

import (
	"image/color"

	"simon/internal/game"
	"simon/internal/layout"
	"simon/internal/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	headerScale = 3
	footerScale = 2
)

// HUD renders the header message and the last-clicked footer.
type HUD struct {
	pal palette.Palette

	header label
	footer label
}

// label caches a pre-rendered line of text so it is only rasterised when it
// changes.
type label struct {
	text  string
	color color.RGBA
	img   *ebiten.Image
}

// NewHUD constructs a HUD drawing with the provided palette.
func NewHUD(pal palette.Palette) *HUD {
	return &HUD{pal: pal}
}

// Draw paints the header and footer bands of board for state s.
func (h *HUD) Draw(screen *ebiten.Image, board layout.Board, s game.State) {
	if h == nil {
		return
	}
	headerColor := h.pal.Text()
	if s.Phase == game.GameOver {
		headerColor = h.pal.Accent(game.Red)
	}
	h.header.set(s.Message, headerColor)
	h.header.draw(screen, board.Header.Min.X, board.Header.Max.X, board.Header.Min.Y, board.Header.Dy(), headerScale)

	h.footer.set("User Clicked Color: "+s.LastClicked.String(), h.pal.Accent(s.LastClicked))
	h.footer.draw(screen, board.Footer.Min.X, board.Footer.Max.X, board.Footer.Min.Y, board.Footer.Dy(), footerScale)
}

func (l *label) set(s string, c color.RGBA) {
	if l.img != nil && l.text == s && l.color == c {
		return
	}
	l.text = s
	l.color = c
	if l.img != nil {
		l.img.Deallocate()
		l.img = nil
	}
	if s == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	l.img = ebiten.NewImage(bounds.Dx()+2, bounds.Dy()+2)
	text.Draw(l.img, s, face, 1-bounds.Min.X, 1-bounds.Min.Y, c)
}

func (l *label) draw(screen *ebiten.Image, minX, maxX, top, height, scale int) {
	if l.img == nil || height <= 0 {
		return
	}
	w := l.img.Bounds().Dx() * scale
	hgt := l.img.Bounds().Dy() * scale
	for scale > 1 && (w > maxX-minX || hgt > height) {
		scale--
		w = l.img.Bounds().Dx() * scale
		hgt = l.img.Bounds().Dy() * scale
	}
	x := minX + (maxX-minX-w)/2
	y := top + (height-hgt)/2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(l.img, op)
}
