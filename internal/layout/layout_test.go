package layout

import (
	"testing"

	"simon/internal/core"
	"simon/internal/game"
)

func TestComputeWindowBoard(t *testing.T) {
	b := Compute(core.Size{W: 480, H: 560}, WindowOptions())

	if b.Header.Dy() != 56 || b.Footer.Dy() != 40 {
		t.Fatalf("header/footer heights = %d/%d", b.Header.Dy(), b.Footer.Dy())
	}
	for i, p := range b.Pads {
		if p.Color != game.Colors[i] {
			t.Fatalf("pad %d color = %s, want %s", i, p.Color, game.Colors[i])
		}
		if p.Rect.Dx() != p.Rect.Dy() || p.Rect.Empty() {
			t.Fatalf("pad %s not a square: %v", p.Color, p.Rect)
		}
		if p.Rect.Min.Y < b.Header.Max.Y || p.Rect.Max.Y > b.Footer.Min.Y {
			t.Fatalf("pad %s overlaps header or footer: %v", p.Color, p.Rect)
		}
		for j, q := range b.Pads {
			if i != j && p.Rect.Overlaps(q.Rect) {
				t.Fatalf("pads %s and %s overlap", p.Color, q.Color)
			}
		}
	}

	green, _ := b.Pad(game.Green)
	red, _ := b.Pad(game.Red)
	yellow, _ := b.Pad(game.Yellow)
	if red.Rect.Min.X <= green.Rect.Min.X || yellow.Rect.Min.Y <= green.Rect.Min.Y {
		t.Fatalf("unexpected pad order: green=%v red=%v yellow=%v", green.Rect, red.Rect, yellow.Rect)
	}
}

func TestHitTest(t *testing.T) {
	b := Compute(core.Size{W: 480, H: 560}, WindowOptions())
	for _, p := range b.Pads {
		c := p.Rect.Min.Add(p.Rect.Size().Div(2))
		got, ok := b.HitTest(c.X, c.Y)
		if !ok || got != p.Color {
			t.Fatalf("centre of %s hit %s (ok=%v)", p.Color, got, ok)
		}
	}

	green, _ := b.Pad(game.Green)
	red, _ := b.Pad(game.Red)
	gapX := (green.Rect.Max.X + red.Rect.Min.X) / 2
	if c, ok := b.HitTest(gapX, green.Rect.Min.Y+1); ok {
		t.Fatalf("gap between pads hit %s", c)
	}
	if c, ok := b.HitTest(1, 1); ok {
		t.Fatalf("header hit %s", c)
	}
	if _, ok := b.Pad(game.None); ok {
		t.Fatal("Pad(None) should not resolve")
	}
}

func TestComputeTinyAndEmpty(t *testing.T) {
	b := Compute(core.Size{}, TerminalOptions())
	if _, ok := b.HitTest(0, 0); ok {
		t.Fatal("empty board should not hit anything")
	}

	b = Compute(core.Size{W: 20, H: 12}, TerminalOptions())
	for _, p := range b.Pads {
		if p.Rect.Empty() {
			t.Fatalf("pad %s empty on a small terminal", p.Color)
		}
	}
}
