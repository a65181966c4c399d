package cells

import "github.com/grindlemire/go-boxtree"

// BorderStyle selects the box-drawing characters a nine-patch is drawn with.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderDouble
	BorderRounded
	BorderThick
	BorderASCII
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// ParseBorderStyle maps a name such as "rounded" to its BorderStyle.
func ParseBorderStyle(name string) (BorderStyle, bool) {
	switch name {
	case "single", "":
		return BorderSingle, true
	case "double":
		return BorderDouble, true
	case "rounded":
		return BorderRounded, true
	case "thick":
		return BorderThick, true
	case "ascii":
		return BorderASCII, true
	}
	return BorderSingle, false
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	case BorderASCII:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

// DrawBox draws a border around rect. Rectangles smaller than 2x2 are
// skipped. The border is clipped to the buffer.
func DrawBox(buf *Buffer, rect boxtree.Rect, border BorderStyle, style Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}

	chars := border.Chars()
	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	set := func(x, y int, r rune) {
		st := style
		if st.Bg == nil {
			st.Bg = buf.Cell(x, y).Style.Bg
		}
		buf.SetCluster(x, y, string(r), st)
	}

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}
