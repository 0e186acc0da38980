package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }
