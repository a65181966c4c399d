package cells

import (
	"image/color"

	"github.com/rivo/uniseg"
)

// Style holds the colors of a cell. A nil color means the terminal default.
type Style struct {
	Fg color.Color
	Bg color.Color
}

// Equal reports whether both styles resolve to the same colors.
func (s Style) Equal(other Style) bool {
	return colorEqual(s.Fg, other.Fg) && colorEqual(s.Bg, other.Bg)
}

func colorEqual(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// Cell is one terminal column. Wide grapheme clusters occupy two cells: the
// first holds the cluster, the second is a continuation with Width 0.
type Cell struct {
	Content string
	Style   Style
	Width   uint8
}

// NewCell creates a cell holding a single grapheme cluster, measuring its width.
func NewCell(cluster string, style Style) Cell {
	return Cell{Content: cluster, Style: style, Width: uint8(ClusterWidth(cluster))}
}

// blank is a space with the given style.
func blank(style Style) Cell {
	return Cell{Content: " ", Style: style, Width: 1}
}

// IsContinuation reports whether c is the trailing half of a wide cluster.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal reports whether both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Content == other.Content && c.Width == other.Width && c.Style.Equal(other.Style)
}

// ClusterWidth returns the column width of a grapheme cluster, clamped to
// 1 or 2 so every cluster stays addressable.
func ClusterWidth(cluster string) int {
	w := uniseg.StringWidth(cluster)
	switch {
	case w < 1:
		return 1
	case w > 2:
		return 2
	}
	return w
}
