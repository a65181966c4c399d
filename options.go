package boxtree

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Option configures a Node.
type Option func(*Node)

// --- Sizing Options ---

// WithFit sizes both axes from children or content.
func WithFit() Option {
	return func(n *Node) {
		n.style.WidthPolicy = Fit
		n.style.HeightPolicy = Fit
	}
}

// WithWidthFit sizes the width from children or content.
func WithWidthFit() Option {
	return func(n *Node) {
		n.style.WidthPolicy = Fit
	}
}

// WithHeightFit sizes the height from children or content.
func WithHeightFit() Option {
	return func(n *Node) {
		n.style.HeightPolicy = Fit
	}
}

// WithFixedWidth makes the width Fixed at the given value.
func WithFixedWidth(width int) Option {
	return func(n *Node) {
		n.style.WidthPolicy = Fixed
		n.rect.Width = width
	}
}

// WithFixedHeight makes the height Fixed at the given value.
func WithFixedHeight(height int) Option {
	return func(n *Node) {
		n.style.HeightPolicy = Fixed
		n.rect.Height = height
	}
}

// WithFixedSize makes both axes Fixed at the given size.
func WithFixedSize(width, height int) Option {
	return func(n *Node) {
		WithFixedWidth(width)(n)
		WithFixedHeight(height)(n)
	}
}

// WithRect sets the node's starting rectangle without changing its policies.
func WithRect(r Rect) Option {
	return func(n *Node) {
		n.rect = r
	}
}

// --- Alignment Options ---

// WithXAlign sets how children are placed horizontally when stacked vertically.
func WithXAlign(a Align) Option {
	return func(n *Node) {
		n.style.XAlign = a
	}
}

// WithYAlign sets how children are placed vertically when stacked horizontally.
func WithYAlign(a Align) Option {
	return func(n *Node) {
		n.style.YAlign = a
	}
}

// WithAlign sets both alignments.
func WithAlign(x, y Align) Option {
	return func(n *Node) {
		n.style.XAlign = x
		n.style.YAlign = y
	}
}

// WithMainAxis sets the axis children are stacked along.
func WithMainAxis(a Axis) Option {
	return func(n *Node) {
		n.style.MainAxis = a
	}
}

// --- Spacing Options ---

// WithInnerMargin sets the padding between the border and the children.
func WithInnerMargin(margin int) Option {
	return func(n *Node) {
		n.style.InnerMargin = margin
	}
}

// WithChildGap sets the spacing between consecutive children.
func WithChildGap(gap int) Option {
	return func(n *Node) {
		n.style.ChildGap = gap
	}
}

// --- Visual Options ---

// WithVisual sets the visual payload.
func WithVisual(v Visual) Option {
	return func(n *Node) {
		n.visual = v
	}
}

// WithColor fills the node with c. On a text node it sets the text color instead.
func WithColor(c color.Color) Option {
	return func(n *Node) {
		if t, ok := n.visual.(Text); ok {
			t.Color = c
			n.visual = t
			return
		}
		if p, ok := n.visual.(NinePatch); ok {
			p.Tint = c
			n.visual = p
			return
		}
		n.visual = Fill{Color: c}
	}
}

// WithNinePatch draws the node with a nine-patch texture.
func WithNinePatch(texture image.Image, margin, scale int) Option {
	return func(n *Node) {
		n.visual = NinePatch{Texture: texture, Margin: margin, Scale: scale}
	}
}

// WithFace sets the face of a text node. Call SetText afterwards to re-measure.
func WithFace(face font.Face) Option {
	return func(n *Node) {
		t, _ := n.visual.(Text)
		t.Face = face
		n.visual = t
	}
}

// WithMeasurer sets the measurer used by SetText.
func WithMeasurer(m Measurer) Option {
	return func(n *Node) {
		n.measurer = m
	}
}

// WithID sets the node's identifier.
func WithID(id string) Option {
	return func(n *Node) {
		n.id = id
	}
}
