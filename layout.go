// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxtree

import "github.com/grindlemire/go-boxtree/internal/layout"

// Axis identifies the horizontal or vertical layout dimension.
type Axis = layout.Axis

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Policy specifies whether a size is caller-supplied or derived from content.
type Policy = layout.Policy

const (
	Fixed = layout.Fixed
	Fit   = layout.Fit
)

// Align specifies how children are placed on the cross axis.
type Align = layout.Align

const (
	Start  = layout.Start
	Center = layout.Center
	End    = layout.End
)

// Style holds the layout properties for a node.
type Style = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Layoutable is the interface that nodes must implement for layout calculation.
type Layoutable = layout.Layoutable

var (
	// ErrNegativeSpacing is returned by Style.Validate.
	ErrNegativeSpacing = layout.ErrNegativeSpacing
	// ErrUnknownName is returned by the Parse functions.
	ErrUnknownName = layout.ErrUnknownName
)

// DefaultStyle returns a Fixed/Fixed, start-aligned, vertically stacked style.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Calculate lays out any Layoutable tree in place.
func Calculate(root Layoutable) {
	layout.Calculate(root)
}

// ParsePolicy parses "fixed" or "fit".
func ParsePolicy(s string) (Policy, error) {
	return layout.ParsePolicy(s)
}

// ParseAlign parses "start", "center" or "end".
func ParseAlign(s string) (Align, error) {
	return layout.ParseAlign(s)
}

// ParseAxis parses "horizontal" or "vertical".
func ParseAxis(s string) (Axis, error) {
	return layout.ParseAxis(s)
}
