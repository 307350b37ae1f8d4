package game

import (
	"fmt"
	"time"
)

// Effect is a side effect a transition asks the controller to perform.
// The set is closed: Flash and ClearFlash.
type Effect interface {
	isEffect()
	fmt.Stringer
}

// Flash lights Color for Duration, dimming any other pad first.
type Flash struct {
	Color    Color
	Duration time.Duration
}

// ClearFlash dims every pad immediately.
type ClearFlash struct{}

func (Flash) isEffect()      {}
func (ClearFlash) isEffect() {}

func (f Flash) String() string { return fmt.Sprintf("flash(%s, %s)", f.Color, f.Duration) }

func (ClearFlash) String() string { return "clear-flash" }
