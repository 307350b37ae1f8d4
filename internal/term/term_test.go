package term

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"simon/internal/game"
	"simon/internal/palette"
)

func newTestUI(t *testing.T, picks ...game.Color) (*UI, *game.Controller, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)

	i := 0
	picker := game.PickerFunc(func() game.Color {
		c := picks[i%len(picks)]
		i++
		return c
	})
	ctrl := game.New(game.WithPicker(picker))
	return New(screen, ctrl, palette.Default(), 60, log.New(io.Discard, "", 0)), ctrl, screen
}

func click(u *UI, c game.Color) {
	p, _ := u.Board().Pad(c)
	x := p.Rect.Min.X + p.Rect.Dx()/2
	y := p.Rect.Min.Y + p.Rect.Dy()/2
	u.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	u.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func screenText(s tcell.SimulationScreen) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for i, c := range cells {
		if i > 0 && i%w == 0 {
			b.WriteByte('\n')
		}
		if len(c.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestMouseClicksDriveTheGame(t *testing.T) {
	u, ctrl, _ := newTestUI(t, game.Red, game.Blue)

	click(u, game.Yellow)
	if s := ctrl.State(); s.Phase != game.Playing || s.Target != game.Red {
		t.Fatalf("first click did not start the game: %+v", s)
	}

	click(u, game.Red)
	if s := ctrl.State(); s.Level != 2 || s.Target != game.Blue {
		t.Fatalf("correct click did not advance: %+v", s)
	}

	click(u, game.Green)
	if s := ctrl.State(); s.Message != game.GameOverMessage {
		t.Fatalf("wrong click did not end the game: %+v", s)
	}
}

func TestHeldButtonClicksOnce(t *testing.T) {
	u, ctrl, _ := newTestUI(t, game.Red)
	p, _ := u.Board().Pad(game.Green)
	x, y := p.Rect.Min.X, p.Rect.Min.Y

	u.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	u.HandleEvent(tcell.NewEventMouse(x+1, y, tcell.Button1, tcell.ModNone))
	if s := ctrl.State(); s.Phase != game.Playing || s.LastClicked != game.None {
		t.Fatalf("drag registered as a second click: %+v", s)
	}
}

func TestKeysAndQuit(t *testing.T) {
	u, ctrl, _ := newTestUI(t, game.Yellow)

	if !u.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone)) {
		t.Fatal("digit key quit the game")
	}
	if !u.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'Y', tcell.ModNone)) {
		t.Fatal("color key quit the game")
	}
	if s := ctrl.State(); s.Level != 2 || s.LastClicked != game.Yellow {
		t.Fatalf("keys did not click: %+v", s)
	}
	if u.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q did not quit")
	}
	if u.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc did not quit")
	}
}

func TestKeyColor(t *testing.T) {
	for i, c := range game.Colors {
		got, ok := KeyColor(rune('1' + i))
		if !ok || got != c {
			t.Fatalf("KeyColor(%d) = %s, want %s", i+1, got, c)
		}
	}
	if _, ok := KeyColor('x'); ok {
		t.Fatal("x mapped to a color")
	}
}

func TestDrawShowsHeaderAndFooter(t *testing.T) {
	u, _, screen := newTestUI(t, game.Red)
	u.Draw()
	if text := screenText(screen); !strings.Contains(text, game.PromptMessage) {
		t.Fatalf("prompt missing from screen:\n%s", text)
	}

	click(u, game.Green)
	click(u, game.Blue)
	u.Draw()
	text := screenText(screen)
	if !strings.Contains(text, game.GameOverMessage) {
		t.Fatalf("game over missing from screen:\n%s", text)
	}
	if !strings.Contains(text, "User Clicked Color: blue") {
		t.Fatalf("footer missing from screen:\n%s", text)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	u, _, _ := newTestUI(t, game.Red)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := u.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
}
