package game

import (
	"io"
	"log"
	"time"

	"simon/internal/core"
)

// Controller owns the game state and the pad highlight. It is driven from a
// single goroutine: front ends call Click on input and Advance once per
// frame. It is not safe for concurrent use.
type Controller struct {
	state  State
	picker Picker
	rules  Rules
	clock  core.Clock
	flash  core.Countdown
	logger *log.Logger

	observers []func(Effect)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPicker sets the target color source.
func WithPicker(p Picker) Option {
	return func(c *Controller) {
		if p != nil {
			c.picker = p
		}
	}
}

// WithRules overrides the default rules.
func WithRules(r Rules) Option {
	return func(c *Controller) {
		if r.FlashDuration > 0 {
			c.rules = r
		}
	}
}

// WithClock sets the time source used to arm flash deadlines.
func WithClock(clock core.Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger enables logging of picked targets and game overs.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers fn to be called with every effect the controller
// applies, after the state has been updated.
func WithObserver(fn func(Effect)) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// New constructs a Controller in the NotStarted state.
func New(opts ...Option) *Controller {
	c := &Controller{
		state:  NewState(),
		rules:  DefaultRules(),
		clock:  core.SystemClock,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.picker == nil {
		c.picker = NewRandomPicker(0)
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Rules returns the rules in effect.
func (c *Controller) Rules() Rules { return c.rules }

// Click feeds a pad press into the state machine and applies the resulting
// effects. The applied effects are returned.
func (c *Controller) Click(color Color) []Effect {
	next, effects := Transition(c.state, color, c.picker, c.rules)
	c.state = next

	if len(effects) > 0 && next.Phase == GameOver {
		c.logger.Printf("[game] game over: clicked %s, wanted %s", next.LastClicked, next.Target)
	}
	for _, e := range effects {
		c.apply(e)
	}
	return effects
}

// Advance clears the highlight once its flash deadline has passed.
func (c *Controller) Advance(now time.Time) {
	if c.flash.Expired(now) {
		c.state.Highlight = None
	}
}

// FlashRemaining reports how long the current highlight stays lit.
func (c *Controller) FlashRemaining(now time.Time) time.Duration {
	return c.flash.Remaining(now)
}

// Reset returns the board to its mount-time state.
func (c *Controller) Reset() {
	c.flash.Cancel()
	c.state = NewState()
}

func (c *Controller) apply(e Effect) {
	switch e := e.(type) {
	case Flash:
		c.flash.Cancel()
		c.state.Highlight = e.Color
		c.flash.Start(c.clock(), e.Duration)
		c.logger.Printf("[game] level %d target %s", c.state.Level, e.Color)
	case ClearFlash:
		c.flash.Cancel()
		c.state.Highlight = None
	}
	for _, fn := range c.observers {
		fn(e)
	}
}
