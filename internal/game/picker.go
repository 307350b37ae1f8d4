package game

import "simon/internal/core"

// Picker chooses the next target color.
type Picker interface {
	Pick() Color
}

// RandomPicker draws uniformly from Colors. Repeats are allowed.
type RandomPicker struct {
	rng *core.RNG
}

// NewRandomPicker returns a picker seeded with seed; zero seeds from the clock.
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{rng: core.NewRNG(seed)}
}

// Pick returns one of the four colors.
func (p *RandomPicker) Pick() Color {
	return Colors[p.rng.IntN(len(Colors))]
}

// PickerFunc adapts a function to Picker.
type PickerFunc func() Color

// Pick calls f.
func (f PickerFunc) Pick() Color { return f() }
