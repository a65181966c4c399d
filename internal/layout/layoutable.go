package layout

// Layoutable is the interface for anything that can participate in layout calculation.
// The layout engine works entirely with this interface, enabling custom implementations.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this element.
	LayoutStyle() Style

	// LayoutChildren returns the children to be laid out, in stacking order.
	// The engine never modifies the returned slice.
	LayoutChildren() []Layoutable

	// GetLayout returns the element's current rectangle. For Fixed axes the
	// size read here is the caller-supplied size.
	GetLayout() Rect

	// SetLayout is called by the layout engine to store a resolved rectangle.
	SetLayout(Rect)

	// IntrinsicSize returns the content size of a childless element (for
	// example measured text). ok is false when the element has no content
	// size, in which case a childless Fit element collapses to its margins.
	IntrinsicSize() (size Size, ok bool)
}
