package layout

import (
	"errors"
	"fmt"
)

// Policy specifies how a node's size on one axis is determined.
type Policy uint8

const (
	Fixed Policy = iota // Size is caller-supplied and left alone
	Fit                 // Size is derived from children or content
)

// String returns "fixed" or "fit".
func (p Policy) String() string {
	if p == Fit {
		return "fit"
	}
	return "fixed"
}

// Align specifies how children are placed on a node's cross axis.
type Align uint8

const (
	Start  Align = iota // Left or top edge, after the inner margin
	Center              // Centered within the node
	End                 // Right or bottom edge, before the inner margin
)

// String returns "start", "center" or "end".
func (a Align) String() string {
	switch a {
	case Center:
		return "center"
	case End:
		return "end"
	default:
		return "start"
	}
}

// ErrNegativeSpacing is returned by Style.Validate for a negative margin or gap.
var ErrNegativeSpacing = errors.New("negative spacing")

// Style contains all layout properties for a node.
// It is a plain value so it can be copied from a template node.
type Style struct {
	WidthPolicy  Policy
	HeightPolicy Policy

	XAlign Align
	YAlign Align

	// MainAxis is the axis children are stacked along.
	MainAxis Axis

	InnerMargin int // Between the node's border and its children, both axes
	ChildGap    int // Between consecutive children, main axis only
}

// DefaultStyle returns a Fixed/Fixed, start-aligned, vertically stacked style.
func DefaultStyle() Style {
	return Style{
		WidthPolicy:  Fixed,
		HeightPolicy: Fixed,
		XAlign:       Start,
		YAlign:       Start,
		MainAxis:     Vertical,
	}
}

// Policy returns the sizing policy for axis.
func (s Style) Policy(axis Axis) Policy {
	if axis == Horizontal {
		return s.WidthPolicy
	}
	return s.HeightPolicy
}

// Align returns the alignment for axis.
func (s Style) Align(axis Axis) Align {
	if axis == Horizontal {
		return s.XAlign
	}
	return s.YAlign
}

// Validate reports negative spacing. Calculate never calls it; negative
// values are accepted and propagate arithmetically.
func (s Style) Validate() error {
	if s.InnerMargin < 0 {
		return fmt.Errorf("inner margin %d: %w", s.InnerMargin, ErrNegativeSpacing)
	}
	if s.ChildGap < 0 {
		return fmt.Errorf("child gap %d: %w", s.ChildGap, ErrNegativeSpacing)
	}
	return nil
}
