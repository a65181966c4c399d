package boxtree

// Patch pairs a destination rectangle on screen with the source rectangle
// in the texture that is stretched into it.
type Patch struct {
	Dst, Src Rect
}

// NinePatchSlices splits dst into the nine regions of a nine-patch drawn from
// a texture of the given size. Corners keep their texture size multiplied by
// scale; edges and the center stretch to fill the rest. The order is
// top-left, top-right, bottom-left, bottom-right, top, bottom, left, right,
// center.
//
// When dst is smaller than two scaled margins the inner regions get negative
// sizes; renderers skip those.
func NinePatchSlices(dst Rect, texture Size, margin, scale int) [9]Patch {
	scale = max(scale, 1)
	m := margin * scale // margin on screen

	right := dst.X + dst.Width - m
	bottom := dst.Y + dst.Height - m
	innerW := dst.Width - 2*m
	innerH := dst.Height - 2*m

	texRight := texture.Width - margin
	texBottom := texture.Height - margin
	texInnerW := texture.Width - 2*margin
	texInnerH := texture.Height - 2*margin

	return [9]Patch{
		{Dst: NewRect(dst.X, dst.Y, m, m), Src: NewRect(0, 0, margin, margin)},
		{Dst: NewRect(right, dst.Y, m, m), Src: NewRect(texRight, 0, margin, margin)},
		{Dst: NewRect(dst.X, bottom, m, m), Src: NewRect(0, texBottom, margin, margin)},
		{Dst: NewRect(right, bottom, m, m), Src: NewRect(texRight, texBottom, margin, margin)},
		{Dst: NewRect(dst.X+m, dst.Y, innerW, m), Src: NewRect(margin, 0, texInnerW, margin)},
		{Dst: NewRect(dst.X+m, bottom, innerW, m), Src: NewRect(margin, texBottom, texInnerW, margin)},
		{Dst: NewRect(dst.X, dst.Y+m, m, innerH), Src: NewRect(0, margin, margin, texInnerH)},
		{Dst: NewRect(right, dst.Y+m, m, innerH), Src: NewRect(texRight, margin, margin, texInnerH)},
		{Dst: NewRect(dst.X+m, dst.Y+m, innerW, innerH), Src: NewRect(margin, margin, texInnerW, texInnerH)},
	}
}

// Slices returns the nine-patch regions for drawing p into dst.
func (p NinePatch) Slices(dst Rect) [9]Patch {
	return NinePatchSlices(dst, p.TextureSize(), p.Margin, p.EffectiveScale())
}
