package boxtree

import (
	"image/color"

	"golang.org/x/image/font"
)

// Measurer reports the size a string occupies when drawn with a face.
// Implementations must be deterministic for a given face and text.
type Measurer interface {
	Measure(face font.Face, text string) Size
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(face font.Face, text string) Size

// Measure calls f(face, text).
func (f MeasurerFunc) Measure(face font.Face, text string) Size {
	return f(face, text)
}

// NewText creates a Fit/Fit text leaf. opts are applied before the text is
// measured, so they may change the face, color or margins.
func NewText(m Measurer, face font.Face, content string, opts ...Option) *Node {
	n := New(WithFit())
	n.measurer = m
	n.visual = Text{Face: face, Color: color.Black}
	for _, opt := range opts {
		opt(n)
	}
	return n.SetText(content)
}

// SetText replaces the node's text and re-measures it. The measurement is
// stored as the node's intrinsic size; Layout itself never measures. A node
// whose visual is not Text becomes a text node with no face.
func (n *Node) SetText(content string) *Node {
	t, _ := n.visual.(Text)
	t.Content = content
	n.visual = t
	if n.measurer != nil {
		n.SetIntrinsicSize(n.measurer.Measure(t.Face, content))
	}
	return n
}

// Text returns the node's text, or "" if it is not a text node.
func (n *Node) Text() string {
	t, _ := n.visual.(Text)
	return t.Content
}
