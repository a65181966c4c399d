package boxtree

import "image/color"

// Button binds a node to a click action. Hit-testing uses the node's
// resolved rectangle, so the tree must be laid out first.
type Button struct {
	Node    *Node
	OnClick func()
}

// NewButton creates a Button for node.
func NewButton(node *Node, onClick func()) Button {
	return Button{Node: node, OnClick: onClick}
}

// Buttons is a set of buttons checked in order.
type Buttons []Button

// At returns the first button containing (x, y).
func (bs Buttons) At(x, y int) (Button, bool) {
	for _, b := range bs {
		if b.Node != nil && b.Node.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// Dispatch runs the action of the first button containing (x, y) and
// reports whether one was found.
func (bs Buttons) Dispatch(x, y int) bool {
	b, ok := bs.At(x, y)
	if !ok {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Highlight recolors every button: down while the pointer is pressed over
// it, idle otherwise.
func (bs Buttons) Highlight(x, y int, pressed bool, idle, down color.Color) {
	for _, b := range bs {
		if b.Node == nil {
			continue
		}
		c := idle
		if pressed && b.Node.Contains(x, y) {
			c = down
		}
		WithColor(c)(b.Node)
	}
}
