package cells

import (
	"image"
	"image/color"
	"testing"

	"github.com/grindlemire/go-boxtree"
	"github.com/grindlemire/go-boxtree/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Tree(t *testing.T) {
	panel := color.RGBA{B: 0x80, A: 0xff}

	root := boxtree.New(
		boxtree.WithFit(),
		boxtree.WithInnerMargin(1),
		boxtree.WithNinePatch(image.NewRGBA(image.Rect(0, 0, 3, 3)), 1, 1),
	)
	body := boxtree.New(boxtree.WithFit(), boxtree.WithColor(panel))
	body.Add(boxtree.NewText(measure.Cells{}, nil, "hi 日本"))
	root.Add(body)
	root.Layout()

	require.Equal(t, boxtree.NewRect(0, 0, 9, 3), root.Rect())

	buf := NewBuffer(9, 3)
	r := New(buf)
	boxtree.Draw(root, r)

	assert.Equal(t, "┌───────┐\n│hi 日本│\n└───────┘", buf.String())
	assert.True(t, colorEqual(panel, buf.Cell(1, 1).Style.Bg))
}

func TestRenderer_TextClippedToNode(t *testing.T) {
	buf := NewBuffer(10, 2)
	r := New(buf)
	r.DrawText(boxtree.NewRect(2, 0, 3, 1), boxtree.Text{Content: "abcdef\nxyz"})

	assert.Equal(t, "  abc\n", buf.StringTrimmed())
}

func TestRenderer_FillRune(t *testing.T) {
	buf := NewBuffer(3, 1)
	r := New(buf, WithFillRune('.'))
	r.DrawFill(boxtree.NewRect(0, 0, 2, 1), color.Black)

	assert.Equal(t, "..", buf.StringTrimmed())
}
