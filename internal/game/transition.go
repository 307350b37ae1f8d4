package game

import "time"

// DefaultFlashDuration is how long a new target stays lit.
const DefaultFlashDuration = 2 * time.Second

// Rules are the tunables a transition depends on.
type Rules struct {
	FlashDuration time.Duration
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return Rules{FlashDuration: DefaultFlashDuration}
}

// Transition computes the state that follows a click on c, along with the
// effects the caller should apply. s is not modified. Clicks on anything
// other than the four pads are ignored.
func Transition(s State, c Color, p Picker, r Rules) (State, []Effect) {
	if !c.Valid() {
		return s, nil
	}

	if !s.Started {
		next := s
		next.Started = true
		next.Phase = Playing
		next.Level = 1
		next.LastClicked = None
		next.Target = p.Pick()
		next.Message = LevelMessage(next.Level)
		return next, []Effect{Flash{Color: next.Target, Duration: r.FlashDuration}}
	}

	next := s
	next.LastClicked = c
	if c == s.Target {
		next.Level = s.Level + 1
		next.Target = p.Pick()
		next.Message = LevelMessage(next.Level)
		return next, []Effect{Flash{Color: next.Target, Duration: r.FlashDuration}}
	}

	next.Message = GameOverMessage
	next.Level = 1
	next.Started = false
	next.Phase = GameOver
	return next, []Effect{ClearFlash{}}
}
