//go:build ebiten

package app

import (
	"time"

	"simon/internal/core"
	"simon/internal/game"
	"simon/internal/layout"
	"simon/internal/palette"
	"simon/internal/render"
	"simon/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// colorKeys maps keyboard shortcuts to pads.
var colorKeys = []struct {
	key   ebiten.Key
	color game.Color
}{
	{ebiten.KeyDigit1, game.Green},
	{ebiten.KeyG, game.Green},
	{ebiten.KeyDigit2, game.Red},
	{ebiten.KeyR, game.Red},
	{ebiten.KeyDigit3, game.Yellow},
	{ebiten.KeyY, game.Yellow},
	{ebiten.KeyDigit4, game.Blue},
	{ebiten.KeyB, game.Blue},
}

// Game adapts a game.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *game.Controller
	painter *render.PadPainter
	hud     *ui.HUD
	board   layout.Board
	pal     palette.Palette
	size    core.Size

	touches []ebiten.TouchID
}

// New constructs a Game drawing a w*h logical screen.
func New(ctrl *game.Controller, pal palette.Palette, w, h int) *Game {
	size := core.Size{W: w, H: h}
	return &Game{
		ctrl:    ctrl,
		painter: render.NewPadPainter(pal),
		hud:     ui.NewHUD(pal),
		board:   layout.Compute(size, layout.WindowOptions()),
		pal:     pal,
		size:    size,
	}
}

// Reset returns the board to the start prompt.
func (g *Game) Reset() {
	g.ctrl.Reset()
}

// Update handles input and expires the flash.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.Reset()
	}

	for _, k := range colorKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.ctrl.Click(k.color)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.clickAt(ebiten.CursorPosition())
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		g.clickAt(ebiten.TouchPosition(id))
	}

	g.ctrl.Advance(time.Now())
	return nil
}

func (g *Game) clickAt(x, y int) {
	if c, ok := g.board.HitTest(x, y); ok {
		g.ctrl.Click(c)
	}
}

// Draw renders the current game state.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.ctrl.State()
	screen.Fill(g.pal.Background())
	g.painter.Draw(screen, g.board, s.Highlight)
	g.hud.Draw(screen, g.board, s)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W, g.size.H
}
