package cells

import (
	"fmt"
	"image/color"
	"strings"
)

const ansiReset = "\x1b[0m"

// ANSI renders the buffer with 24-bit color escape sequences. Each row ends
// with a reset so rows can be printed independently.
func (b *Buffer) ANSI() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var cur Style
		styled := false
		for x := 0; x < b.width; x++ {
			c := b.Cell(x, y)
			if c.IsContinuation() {
				continue
			}
			if !c.Style.Equal(cur) {
				sb.WriteString(ansiReset)
				sb.WriteString(sgr(c.Style))
				cur = c.Style
				styled = true
			}
			sb.WriteString(c.Content)
		}
		if styled {
			sb.WriteString(ansiReset)
		}
	}
	return sb.String()
}

func sgr(s Style) string {
	var sb strings.Builder
	if s.Fg != nil {
		r, g, b := rgb8(s.Fg)
		fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", r, g, b)
	}
	if s.Bg != nil {
		r, g, b := rgb8(s.Bg)
		fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return sb.String()
}

func rgb8(c color.Color) (uint8, uint8, uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}
