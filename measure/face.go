package measure

import (
	"strings"

	"github.com/grindlemire/go-boxtree"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var _ boxtree.Measurer = Face{}

// DefaultFace is used when a text node has no face.
var DefaultFace font.Face = basicfont.Face7x13

// Face measures text drawn with a font.Face. Width is the largest line
// advance rounded up to whole pixels; height is the line height times the
// number of lines.
type Face struct{}

// Measure implements boxtree.Measurer.
func (Face) Measure(face font.Face, text string) boxtree.Size {
	if face == nil {
		face = DefaultFace
	}
	if text == "" {
		return boxtree.Size{}
	}

	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(face, line).Ceil())
	}
	return boxtree.Size{Width: width, Height: LineHeight(face) * len(lines)}
}

// LineHeight returns the distance between baselines of consecutive lines.
func LineHeight(face font.Face) int {
	if face == nil {
		face = DefaultFace
	}
	m := face.Metrics()
	if h := m.Height.Ceil(); h > 0 {
		return h
	}
	return (m.Ascent + m.Descent).Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent(face font.Face) int {
	if face == nil {
		face = DefaultFace
	}
	return face.Metrics().Ascent.Ceil()
}
