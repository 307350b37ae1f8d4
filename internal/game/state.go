package game

import "fmt"

const (
	// PromptMessage is shown before the first click.
	PromptMessage = "Press a key to start"
	// GameOverMessage is shown after a wrong click.
	GameOverMessage = "Game Over!"
)

// Phase is the coarse state machine position.
type Phase int

const (
	NotStarted Phase = iota
	Playing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Playing:
		return "playing"
	case GameOver:
		return "game-over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is everything a front end needs to draw one frame.
type State struct {
	Message     string
	Level       int
	Target      Color
	LastClicked Color
	Started     bool
	Phase       Phase

	// Highlight is the pad currently flashed. The controller owns its
	// lifetime; Transition never sets it.
	Highlight Color
}

// NewState returns the state of a freshly mounted board.
func NewState() State {
	return State{
		Message: PromptMessage,
		Level:   1,
		Phase:   NotStarted,
	}
}

// LevelMessage formats the header for level n.
func LevelMessage(n int) string {
	return fmt.Sprintf("Level %d", n)
}
