package layout

// Axis identifies one of the two layout dimensions.
type Axis uint8

const (
	Horizontal Axis = iota // X / width
	Vertical               // Y / height
)

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
