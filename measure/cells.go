package measure

import (
	"strings"

	"github.com/grindlemire/go-boxtree"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
)

var _ boxtree.Measurer = Cells{}

// Cells measures text in terminal cells. The face is ignored.
type Cells struct{}

// Measure implements boxtree.Measurer.
func (Cells) Measure(_ font.Face, text string) boxtree.Size {
	if text == "" {
		return boxtree.Size{}
	}

	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, uniseg.StringWidth(line))
	}
	return boxtree.Size{Width: width, Height: len(lines)}
}
