// Package term runs the game in a terminal with tcell. Pads are drawn as
// blocks of background color and respond to mouse clicks and keys.
package term

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"simon/internal/core"
	"simon/internal/game"
	"simon/internal/layout"
	"simon/internal/palette"
)

// UI binds a controller to a tcell screen. All state is touched from the
// goroutine that calls Run or HandleEvent.
type UI struct {
	screen  tcell.Screen
	ctrl    *game.Controller
	pal     palette.Palette
	board   layout.Board
	tick    time.Duration
	clock   core.Clock
	logger  *log.Logger
	buttons tcell.ButtonMask
}

// New wraps an initialised screen. tps sets how often the flash deadline is
// polled and the screen redrawn.
func New(screen tcell.Screen, ctrl *game.Controller, pal palette.Palette, tps int, logger *log.Logger) *UI {
	if tps <= 0 {
		tps = 60
	}
	if logger == nil {
		logger = log.Default()
	}
	u := &UI{
		screen: screen,
		ctrl:   ctrl,
		pal:    pal,
		tick:   time.Second / time.Duration(tps),
		clock:  core.SystemClock,
		logger: logger,
	}
	screen.EnableMouse()
	screen.HideCursor()
	u.relayout()
	return u
}

// Board returns the current layout.
func (u *UI) Board() layout.Board { return u.board }

// Run draws and processes events until the player quits or ctx is done.
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(u.tick)
	defer ticker.Stop()

	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !u.HandleEvent(ev) {
				return nil
			}
			u.Draw()
		case <-ticker.C:
			before := u.ctrl.State().Highlight
			u.ctrl.Advance(u.clock())
			if u.ctrl.State().Highlight != before {
				u.Draw()
			}
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		if r := unicode.ToLower(ev.Rune()); r == 'q' {
			return false
		}
		if c, ok := KeyColor(ev.Rune()); ok {
			u.ctrl.Click(c)
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		wasPressed := u.buttons & tcell.Button1
		u.buttons = ev.Buttons()
		if pressed == 0 || wasPressed != 0 {
			return true
		}
		x, y := ev.Position()
		if c, ok := u.board.HitTest(x, y); ok {
			u.ctrl.Click(c)
		}
	case *tcell.EventResize:
		u.relayout()
		u.screen.Sync()
	}
	return true
}

// KeyColor maps 1-4 and the pad initials to colors.
func KeyColor(r rune) (game.Color, bool) {
	switch unicode.ToLower(r) {
	case '1', 'g':
		return game.Green, true
	case '2', 'r':
		return game.Red, true
	case '3', 'y':
		return game.Yellow, true
	case '4', 'b':
		return game.Blue, true
	}
	return game.None, false
}

// FooterText is the line under the pads.
func FooterText(s game.State) string {
	return fmt.Sprintf("User Clicked Color: %s", s.LastClicked)
}

// HelpText lists the controls.
const HelpText = "click a pad or press 1-4 / g r y b, q to quit"

// Draw renders the current state.
func (u *UI) Draw() {
	s := u.ctrl.State()
	bg := u.style(u.pal.Background(), u.pal.Text())

	u.screen.SetStyle(bg)
	u.screen.Clear()

	header := u.board.Header
	headerStyle := bg.Bold(true)
	if s.Phase == game.GameOver {
		headerStyle = headerStyle.Foreground(rgb(u.pal.Accent(game.Red)))
	}
	u.centerText(header, header.Min.Y+header.Dy()/2, s.Message, headerStyle)

	for _, p := range u.board.Pads {
		lit := s.Highlight == p.Color
		fill := u.pal.Fill(p.Color, lit)
		u.fillRect(p.Rect, u.style(fill, u.pal.Background()))
		if lit && p.Rect.Dy() >= 1 {
			u.centerText(p.Rect, p.Rect.Min.Y+p.Rect.Dy()/2, string(p.Color), u.style(fill, u.pal.Background()).Bold(true))
		}
	}

	footer := u.board.Footer
	if footer.Dy() > 0 {
		u.centerText(footer, footer.Min.Y, FooterText(s), bg.Foreground(rgb(u.pal.Accent(s.LastClicked))))
	}
	if footer.Dy() > 1 {
		u.centerText(footer, footer.Max.Y-1, HelpText, bg.Dim(true))
	}
	u.screen.Show()
}

func (u *UI) relayout() {
	w, h := u.screen.Size()
	u.board = layout.Compute(core.Size{W: w, H: h}, layout.TerminalOptions())
	u.logger.Printf("[term] layout %dx%d", w, h)
}

func (u *UI) fillRect(r image.Rectangle, style tcell.Style) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			u.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (u *UI) centerText(r image.Rectangle, y int, text string, style tcell.Style) {
	runes := []rune(text)
	if len(runes) > r.Dx() {
		runes = runes[:max(r.Dx(), 0)]
	}
	x := r.Min.X + (r.Dx()-len(runes))/2
	for i, ch := range runes {
		u.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (u *UI) style(bg, fg color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(rgb(bg)).Foreground(rgb(fg))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
