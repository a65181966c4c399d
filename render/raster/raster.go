// Package raster draws laid-out boxtree nodes onto an image.
package raster

import (
	"image"
	"image/color"
	"strings"

	"github.com/grindlemire/go-boxtree"
	"github.com/grindlemire/go-boxtree/measure"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var _ boxtree.Renderer = (*Renderer)(nil)

// Renderer paints fills, nine-patches and text onto a draw.Image.
// Rectangles are in destination pixels; empty ones are ignored.
type Renderer struct {
	dst    draw.Image
	scaler draw.Scaler
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScaler sets the interpolator used to stretch nine-patch regions.
// The default is draw.NearestNeighbor, which keeps pixel art crisp.
func WithScaler(s draw.Scaler) Option {
	return func(r *Renderer) {
		r.scaler = s
	}
}

// New creates a Renderer drawing onto dst.
func New(dst draw.Image, opts ...Option) *Renderer {
	r := &Renderer{dst: dst, scaler: draw.NearestNeighbor}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewCanvas allocates an RGBA image of the given size filled with background
// and returns it with a Renderer for it.
func NewCanvas(width, height int, background color.Color, opts ...Option) (*image.RGBA, *Renderer) {
	img := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	return img, New(img, opts...)
}

// DrawFill implements boxtree.Renderer.
func (r *Renderer) DrawFill(rect boxtree.Rect, c color.Color) {
	if rect.IsEmpty() {
		return
	}
	draw.Draw(r.dst, toImage(rect), image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawNinePatch implements boxtree.Renderer.
func (r *Renderer) DrawNinePatch(rect boxtree.Rect, p boxtree.NinePatch) {
	if rect.IsEmpty() || p.Texture == nil {
		return
	}

	src := p.Texture
	if p.Tint != nil && !isOpaqueWhite(p.Tint) {
		src = tint(src, p.Tint)
	}
	origin := src.Bounds().Min

	for _, patch := range p.Slices(rect) {
		if patch.Dst.IsEmpty() || patch.Src.IsEmpty() {
			continue
		}
		sr := toImage(patch.Src).Add(origin)
		r.scaler.Scale(r.dst, toImage(patch.Dst), src, sr, draw.Over, nil)
	}
}

// DrawText implements boxtree.Renderer. Text starts at the rectangle's
// top-left corner and is not clipped to it.
func (r *Renderer) DrawText(rect boxtree.Rect, t boxtree.Text) {
	face := t.Face
	if face == nil {
		face = measure.DefaultFace
	}
	var c color.Color = color.Black
	if t.Color != nil {
		c = t.Color
	}

	d := font.Drawer{
		Dst:  r.dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	lineHeight := measure.LineHeight(face)
	baseline := rect.Y + measure.Ascent(face)
	for _, line := range strings.Split(t.Content, "\n") {
		d.Dot = fixed.P(rect.X, baseline)
		d.DrawString(line)
		baseline += lineHeight
	}
}

func toImage(r boxtree.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func isOpaqueWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff
}

// tint multiplies every texture pixel by c.
func tint(src image.Image, c color.Color) *image.RGBA {
	b := src.Bounds()
	out := image.NewRGBA(b)
	tr, tg, tb, ta := c.RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sr, sg, sb, sa := src.At(x, y).RGBA()
			out.SetRGBA64(x, y, color.RGBA64{
				R: uint16(sr * tr / 0xffff),
				G: uint16(sg * tg / 0xffff),
				B: uint16(sb * tb / 0xffff),
				A: uint16(sa * ta / 0xffff),
			})
		}
	}
	return out
}
