package boxtree

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Visual is the drawing payload of a node. The layout passes never look at
// it; only renderers switch on the concrete type. The set of variants is
// closed: None, Fill, NinePatch and Text.
type Visual interface {
	isVisual()
}

// None draws nothing.
type None struct{}

// Fill paints the node's rectangle with a solid color.
type Fill struct {
	Color color.Color
}

// NinePatch stretches a bordered texture over the node's rectangle.
// Margin is the border width in texture pixels; Scale multiplies it on
// screen. Tint is used as a color mask; nil means untinted.
type NinePatch struct {
	Texture image.Image
	Margin  int
	Scale   int
	Tint    color.Color
}

// Text draws a string with its top-left corner at the node's origin.
type Text struct {
	Face    font.Face
	Content string
	Color   color.Color
}

func (None) isVisual()      {}
func (Fill) isVisual()      {}
func (NinePatch) isVisual() {}
func (Text) isVisual()      {}

// EffectiveScale returns Scale, treating values below 1 as 1.
func (p NinePatch) EffectiveScale() int {
	return max(p.Scale, 1)
}

// TextureSize returns the texture's dimensions, or a zero Size without a texture.
func (p NinePatch) TextureSize() Size {
	if p.Texture == nil {
		return Size{}
	}
	b := p.Texture.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}
