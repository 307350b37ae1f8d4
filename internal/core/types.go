package core

// Size describes the dimensions of a drawing surface, in pixels for the GUI
// and in cells for the terminal.
type Size struct {
	W int
	H int
}

// Empty reports whether the size has no drawable area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }
