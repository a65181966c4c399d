package layout

// testNode is a minimal Layoutable used throughout the package tests.
type testNode struct {
	style     Style
	children  []*testNode
	rect      Rect
	intrinsic *Size
}

func newTestNode(style Style) *testNode {
	return &testNode{style: style}
}

// newFixedNode returns a Fixed/Fixed node of the given size.
func newFixedNode(width, height int) *testNode {
	n := newTestNode(DefaultStyle())
	n.rect = NewRect(0, 0, width, height)
	return n
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

func (n *testNode) GetLayout() Rect  { return n.rect }
func (n *testNode) SetLayout(r Rect) { n.rect = r }

func (n *testNode) IntrinsicSize() (Size, bool) {
	if n.intrinsic == nil {
		return Size{}, false
	}
	return *n.intrinsic, true
}

func (n *testNode) AddChild(children ...*testNode) *testNode {
	n.children = append(n.children, children...)
	return n
}

// snapshot collects every rect in the subtree in depth-first order.
func snapshot(n *testNode) []Rect {
	rects := []Rect{n.rect}
	for _, child := range n.children {
		rects = append(rects, snapshot(child)...)
	}
	return rects
}
