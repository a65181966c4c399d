package boxtree

import "github.com/grindlemire/go-boxtree/internal/layout"

// Layout resolves sizes and then positions for n and its subtree, using n's
// current position as the origin. It is a full recomputation on every call.
func (n *Node) Layout() {
	layout.Calculate(n)
}

// --- Implement Layoutable interface ---

// LayoutStyle returns the layout style properties for this node.
func (n *Node) LayoutStyle() Style {
	return n.style
}

// LayoutChildren returns the children to be laid out.
func (n *Node) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

// GetLayout returns the node's current rectangle.
func (n *Node) GetLayout() Rect {
	return n.rect
}

// SetLayout is called by the layout engine to store a resolved rectangle.
func (n *Node) SetLayout(r Rect) {
	n.rect = r
}

// IntrinsicSize returns the content size set by SetIntrinsicSize or SetText.
func (n *Node) IntrinsicSize() (Size, bool) {
	if n.intrinsic == nil {
		return Size{}, false
	}
	return *n.intrinsic, true
}
