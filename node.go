package boxtree

var _ Layoutable = (*Node)(nil)

// Node is a box in the layout tree.
// A node exclusively owns its children; there are no parent pointers, so a
// node must not be attached to more than one parent.
type Node struct {
	// Tree structure
	children []*Node

	// Layout properties
	style     Style
	rect      Rect
	intrinsic *Size // nil = no content size

	// Visual properties, consumed only by renderers
	visual   Visual
	measurer Measurer

	id string
}

// New creates a Node with DefaultStyle and applies opts.
func New(opts ...Option) *Node {
	return NewWithStyle(DefaultStyle(), opts...)
}

// NewWithStyle creates a Node with the given style and applies opts.
func NewWithStyle(style Style, opts ...Option) *Node {
	n := &Node{style: style}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Clone returns a copy of n's style, rectangle, visual, content size and ID
// with an empty children list, then applies opts to the copy. It is the
// template-copy constructor: style a prototype once, clone it per instance.
func (n *Node) Clone(opts ...Option) *Node {
	c := &Node{
		style:    n.style,
		rect:     n.rect,
		visual:   n.visual,
		measurer: n.measurer,
		id:       n.id,
	}
	if n.intrinsic != nil {
		size := *n.intrinsic
		c.intrinsic = &size
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends children in stacking order and returns n, so trees can be
// built in a single expression.
func (n *Node) Add(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.children = append(n.children, child)
		}
	}
	return n
}

// Children returns the child nodes in stacking order.
func (n *Node) Children() []*Node {
	return n.children
}

// Style returns the node's layout style.
func (n *Node) Style() Style {
	return n.style
}

// SetStyle replaces the node's layout style.
func (n *Node) SetStyle(style Style) {
	n.style = style
}

// Rect returns the node's rectangle. It is only meaningful after Layout has
// run on this node or an ancestor, except for the sizes of Fixed axes.
func (n *Node) Rect() Rect {
	return n.rect
}

// SetRect replaces the node's rectangle. Fit axes and positions below the
// node being laid out are overwritten by the next Layout.
func (n *Node) SetRect(r Rect) {
	n.rect = r
}

// SetPosition moves the node's origin. On a root node this is the origin
// used by the next Layout.
func (n *Node) SetPosition(x, y int) {
	n.rect.X = x
	n.rect.Y = y
}

// SetSize sets the node's width and height, which Layout keeps on Fixed axes.
func (n *Node) SetSize(width, height int) {
	n.rect.Width = width
	n.rect.Height = height
}

// SetIntrinsicSize sets the content size used when the node is a childless Fit node.
func (n *Node) SetIntrinsicSize(size Size) {
	n.intrinsic = &size
}

// ClearIntrinsicSize removes the content size.
func (n *Node) ClearIntrinsicSize() {
	n.intrinsic = nil
}

// Visual returns the node's visual payload, or None if it has none.
func (n *Node) Visual() Visual {
	if n.visual == nil {
		return None{}
	}
	return n.visual
}

// SetVisual replaces the node's visual payload.
func (n *Node) SetVisual(v Visual) {
	n.visual = v
}

// ID returns the node's identifier, used by Find and layout documents.
func (n *Node) ID() string {
	return n.id
}

// SetID sets the node's identifier.
func (n *Node) SetID(id string) {
	n.id = id
}

// Contains reports whether (x, y) lies inside the node's resolved rectangle.
func (n *Node) Contains(x, y int) bool {
	return n.rect.Contains(x, y)
}

// Walk visits n and its descendants parent-first, depth-first. Returning
// false from fn skips the visited node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

// Find returns the first node in the subtree with the given ID, or nil.
func (n *Node) Find(id string) *Node {
	if n.id == id {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}
