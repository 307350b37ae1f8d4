// Package game holds the rules of the color memory game: the four pads, the
// state machine a click drives, and the controller that owns the flash.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// Color identifies one of the four pads. The zero value means no color.
type Color string

const (
	// None is the absent color: no target yet, nothing clicked, nothing lit.
	None   Color = ""
	Green  Color = "green"
	Red    Color = "red"
	Yellow Color = "yellow"
	Blue   Color = "blue"
)

// Colors is the fixed pad set in board order.
var Colors = [4]Color{Green, Red, Yellow, Blue}

// ErrUnknownColor is returned when a name does not match any pad.
var ErrUnknownColor = errors.New("unknown color")

// Valid reports whether c is one of the four pads.
func (c Color) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position of c in Colors, or -1.
func (c Color) Index() int {
	for i, k := range Colors {
		if k == c {
			return i
		}
	}
	return -1
}

func (c Color) String() string { return string(c) }

// ParseColor resolves a pad name, ignoring case and surrounding space.
func ParseColor(name string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return None, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}
