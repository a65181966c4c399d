package boxtree

import (
	"image/color"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

// countingMeasurer measures 7x13 per rune and counts calls.
type countingMeasurer struct {
	calls int
}

func (m *countingMeasurer) Measure(_ font.Face, text string) Size {
	m.calls++
	return Size{Width: 7 * utf8.RuneCountInString(text), Height: 13}
}

func TestNewText(t *testing.T) {
	m := &countingMeasurer{}
	label := NewText(m, nil, "Play", WithInnerMargin(2))

	assert.Equal(t, 1, m.calls)
	assert.Equal(t, "Play", label.Text())
	assert.Equal(t, Fit, label.Style().WidthPolicy)
	assert.Equal(t, Fit, label.Style().HeightPolicy)
	require.IsType(t, Text{}, label.Visual())
	assert.Equal(t, color.Color(color.Black), label.Visual().(Text).Color)

	label.Layout()
	assert.Equal(t, Size{Width: 28 + 4, Height: 13 + 4}, label.Rect().Size())
}

func TestSetText_MeasuresOnlyOnMutation(t *testing.T) {
	m := &countingMeasurer{}
	health := NewText(m, nil, "Health: 20")
	hud := New(WithFit(), WithInnerMargin(10)).Add(health)

	hud.Layout()
	hud.Layout()
	assert.Equal(t, 1, m.calls, "Layout must not measure")
	assert.Equal(t, 70+20, hud.Rect().Width)

	health.SetText("Health: 9")
	assert.Equal(t, 2, m.calls)

	hud.Layout()
	assert.Equal(t, 63+20, hud.Rect().Width)
}

func TestSetText_Chaining(t *testing.T) {
	m := &countingMeasurer{}
	template := NewText(m, nil, "", WithColor(color.White))

	title := template.Clone().SetText("Main menu")

	assert.Equal(t, "Main menu", title.Text())
	assert.Equal(t, "", template.Text())
	size, ok := title.IntrinsicSize()
	require.True(t, ok)
	assert.Equal(t, Size{Width: 63, Height: 13}, size)
	assert.Equal(t, color.Color(color.White), title.Visual().(Text).Color)
}

func TestSetText_WithoutMeasurer(t *testing.T) {
	n := New(WithFit())
	n.SetText("orphan")

	assert.Equal(t, "orphan", n.Text())
	_, ok := n.IntrinsicSize()
	assert.False(t, ok)

	n.Layout()
	assert.Equal(t, Size{}, n.Rect().Size())
}

func TestMeasurerFunc(t *testing.T) {
	f := MeasurerFunc(func(_ font.Face, text string) Size {
		return Size{Width: len(text), Height: 1}
	})
	n := NewText(f, nil, "abc")

	size, ok := n.IntrinsicSize()
	require.True(t, ok)
	assert.Equal(t, Size{Width: 3, Height: 1}, size)
}

func TestText_OnNonTextNode(t *testing.T) {
	assert.Equal(t, "", New(WithColor(color.Black)).Text())
}
