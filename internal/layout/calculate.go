package layout

// Calculate lays out the tree rooted at root in place.
//
// Sizes are resolved bottom-up for the horizontal and then the vertical axis,
// after which positions are resolved top-down starting from root's current
// origin. Calling Calculate on a subtree re-lays-out only that subtree.
// Every call is a full recomputation; nothing is cached between calls.
func Calculate(root Layoutable) {
	if root == nil {
		return
	}

	resolveSize(root, Horizontal)
	resolveSize(root, Vertical)

	origin := root.GetLayout()
	resolvePosition(root, Horizontal, origin.X)
	resolvePosition(root, Vertical, origin.Y)
}

// resolveSize computes and stores node's size on axis, resolving every
// descendant on the same axis first. Fixed sizes are returned untouched.
func resolveSize(node Layoutable, axis Axis) int {
	style := node.LayoutStyle()
	children := node.LayoutChildren()

	if style.Policy(axis) == Fixed {
		for _, child := range children {
			resolveSize(child, axis)
		}
		return node.GetLayout().Extent(axis)
	}

	size := contentSize(node, style, children, axis) + 2*style.InnerMargin
	node.SetLayout(node.GetLayout().WithExtent(axis, size))
	return size
}

// contentSize returns the size of node's content box on axis, excluding margins.
func contentSize(node Layoutable, style Style, children []Layoutable, axis Axis) int {
	if len(children) == 0 {
		if intrinsic, ok := node.IntrinsicSize(); ok {
			return intrinsic.Along(axis)
		}
		return 0
	}

	if axis == style.MainAxis {
		// Children stack: sizes add up, plus one gap between each pair.
		total := 0
		for _, child := range children {
			total += resolveSize(child, axis)
		}
		return total + (len(children)-1)*style.ChildGap
	}

	// Children overlap on the cross axis: the largest one wins.
	largest := resolveSize(children[0], axis)
	for _, child := range children[1:] {
		largest = max(largest, resolveSize(child, axis))
	}
	return largest
}

// resolvePosition places node at origin on axis and recursively places its
// children. Sizes on axis must already be resolved for the whole subtree.
func resolvePosition(node Layoutable, axis Axis, origin int) {
	style := node.LayoutStyle()
	rect := node.GetLayout().WithPos(axis, origin)
	node.SetLayout(rect)

	children := node.LayoutChildren()
	if len(children) == 0 {
		return
	}

	if axis == style.MainAxis {
		// Sequential, start-anchored; alignment does not apply here.
		cursor := origin + style.InnerMargin
		for _, child := range children {
			resolvePosition(child, axis, cursor)
			cursor += child.GetLayout().Extent(axis) + style.ChildGap
		}
		return
	}

	align := style.Align(axis)
	size := rect.Extent(axis)
	for _, child := range children {
		offset := alignOffset(align, size, child.GetLayout().Extent(axis), style.InnerMargin)
		resolvePosition(child, axis, origin+offset)
	}
}

// alignOffset returns a child's offset from its parent's origin on the cross axis.
// Center uses truncating integer division, so odd remainders bias toward the origin.
func alignOffset(align Align, parentSize, childSize, margin int) int {
	switch align {
	case Center:
		return (parentSize - childSize) / 2
	case End:
		return parentSize - childSize - margin
	default:
		return margin
	}
}
