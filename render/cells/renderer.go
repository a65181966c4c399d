package cells

import (
	"image/color"
	"strings"

	"github.com/grindlemire/go-boxtree"
)

var _ boxtree.Renderer = (*Renderer)(nil)

// Renderer draws laid-out nodes into a Buffer, one layout unit per cell.
// Lay the tree out with measure.Cells so text sizes are in columns and rows.
//
// Fills set the background of their cells. Nine-patches become box borders
// colored by their tint. Text is clipped to its node.
type Renderer struct {
	buf    *Buffer
	border BorderStyle
	fill   rune
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithBorder sets the characters nine-patch borders are drawn with.
func WithBorder(b BorderStyle) Option {
	return func(r *Renderer) {
		r.border = b
	}
}

// WithFillRune sets the rune written by fills, a space by default.
func WithFillRune(fill rune) Option {
	return func(r *Renderer) {
		r.fill = fill
	}
}

// New creates a Renderer drawing into buf.
func New(buf *Buffer, opts ...Option) *Renderer {
	r := &Renderer{buf: buf, border: BorderSingle, fill: ' '}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Buffer returns the buffer being drawn into.
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// DrawFill implements boxtree.Renderer.
func (r *Renderer) DrawFill(rect boxtree.Rect, c color.Color) {
	r.buf.Fill(rect, r.fill, Style{Bg: c})
}

// DrawNinePatch implements boxtree.Renderer.
func (r *Renderer) DrawNinePatch(rect boxtree.Rect, p boxtree.NinePatch) {
	DrawBox(r.buf, rect, r.border, Style{Fg: p.Tint})
}

// DrawText implements boxtree.Renderer.
func (r *Renderer) DrawText(rect boxtree.Rect, t boxtree.Text) {
	for i, line := range strings.Split(t.Content, "\n") {
		r.buf.SetStringClipped(rect.X, rect.Y+i, line, Style{Fg: t.Color}, rect)
	}
}
