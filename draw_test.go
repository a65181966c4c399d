package boxtree

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingRenderer logs every draw call as a string.
type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) DrawFill(rect Rect, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill %v", rect))
}

func (r *recordingRenderer) DrawNinePatch(rect Rect, p NinePatch) {
	r.calls = append(r.calls, fmt.Sprintf("patch %v margin=%d", rect, p.Margin))
}

func (r *recordingRenderer) DrawText(rect Rect, t Text) {
	r.calls = append(r.calls, fmt.Sprintf("text %v %q", rect, t.Content))
}

func TestDraw_ParentBeforeChildren(t *testing.T) {
	texture := image.NewRGBA(image.Rect(0, 0, 12, 12))
	root := New(WithFixedSize(100, 50), WithColor(color.Black)).Add(
		New(WithFit(), WithNinePatch(texture, 4, 1), WithInnerMargin(2)).Add(
			NewText(nil, nil, "hi", WithFixedSize(10, 5)),
		),
		New(WithFixedSize(5, 5), WithColor(color.White)),
	)
	root.Layout()

	r := &recordingRenderer{}
	Draw(root, r)

	assert.Equal(t, []string{
		"fill {0 0 100 50}",
		"patch {0 0 14 9} margin=4",
		`text {2 2 10 5} "hi"`,
		"fill {0 9 5 5}",
	}, r.calls)
}

func TestDraw_SkipsEmptyPayloads(t *testing.T) {
	root := New().Add(
		New(),
		New(WithVisual(Fill{})),
		New(WithNinePatch(nil, 1, 1)),
		NewText(nil, nil, ""),
		New(WithVisual(None{})),
		New(WithFixedSize(-5, -5), WithColor(color.Black)),
	)
	root.Layout()

	r := &recordingRenderer{}
	Draw(root, r)

	assert.Equal(t, []string{"fill {0 0 -5 -5}"}, r.calls, "negative rects still reach the renderer")
}

func TestDraw_NilRoot(t *testing.T) {
	assert.NotPanics(t, func() { Draw(nil, &recordingRenderer{}) })
}
