package layout

// Size is a width/height pair.
type Size struct {
	Width, Height int
}

// Along returns the extent on axis.
func (s Size) Along(axis Axis) int {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}
