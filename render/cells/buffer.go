package cells

import (
	"strings"

	"github.com/grindlemire/go-boxtree"
	"github.com/rivo/uniseg"
)

// Buffer is a 2D grid of cells addressed by column and row.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the given size filled with default spaces.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)

	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() boxtree.Rect {
	return boxtree.NewRect(0, 0, b.width, b.height)
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or a zero Cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell stores c at (x, y). Out of bounds writes are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.cells[i] = c
}

// SetCluster writes one grapheme cluster at (x, y) and returns the columns it
// took. Overlapped halves of wide clusters are blanked. A wide cluster that
// would cross the right edge is replaced by a space.
func (b *Buffer) SetCluster(x, y int, cluster string, style Style) int {
	if b.idx(x, y) < 0 {
		return 0
	}

	width := ClusterWidth(cluster)
	b.breakWide(x, y)
	if width == 2 {
		if x+1 >= b.width {
			b.SetCell(x, y, blank(style))
			return 1
		}
		b.breakWide(x+1, y)
	}

	b.SetCell(x, y, Cell{Content: cluster, Style: style, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Style: style})
	}
	return width
}

// breakWide blanks both halves of a wide cluster covering (x, y).
func (b *Buffer) breakWide(x, y int) {
	c := b.Cell(x, y)
	switch {
	case c.IsContinuation() && b.idx(x, y) >= 0:
		b.SetCell(x, y, blank(c.Style))
		if prev := b.Cell(x-1, y); prev.Width == 2 {
			b.SetCell(x-1, y, blank(prev.Style))
		}
	case c.Width == 2:
		b.SetCell(x, y, blank(c.Style))
		if next := b.Cell(x+1, y); next.IsContinuation() && b.idx(x+1, y) >= 0 {
			b.SetCell(x+1, y, blank(next.Style))
		}
	}
}

// SetString writes s starting at (x, y) without wrapping and returns the
// display width consumed. A nil background keeps the background already in
// each cell, so text can sit on top of a fill.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, s, style, b.Rect())
}

// SetStringClipped writes s starting at (x, y), skipping clusters that fall
// outside clip. It returns the display width of the whole string.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip boxtree.Rect) int {
	clip = clip.Intersect(b.Rect())
	col := x
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		width := ClusterWidth(cluster)

		if y >= clip.Y && y < clip.Bottom() && col >= clip.X && col+width <= clip.Right() {
			st := style
			if st.Bg == nil {
				st.Bg = b.Cell(col, y).Style.Bg
			}
			b.SetCluster(col, y, cluster, st)
		}
		col += width
	}
	return col - x
}

// Fill sets every cell of rect to r with style.
func (b *Buffer) Fill(rect boxtree.Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}
	cluster := string(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			x += max(b.SetCluster(x, y, cluster, style), 1)
		}
	}
}

// Clear resets every cell to a default space.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank(Style{})
	}
}

// String renders the buffer as plain text, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			if c := b.Cell(x, y); !c.IsContinuation() {
				sb.WriteString(c.Content)
			}
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each row.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
