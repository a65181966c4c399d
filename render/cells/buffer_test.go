package cells

import (
	"image/color"
	"testing"

	"github.com/grindlemire/go-boxtree"
	"github.com/stretchr/testify/assert"
)

func TestBuffer_SetString(t *testing.T) {
	type tc struct {
		width     int
		x, y      int
		text      string
		wantWidth int
		want      string
	}

	tests := map[string]tc{
		"ascii": {
			width: 6, x: 1, text: "abc",
			wantWidth: 3, want: " abc",
		},
		"wide clusters take two columns": {
			width: 6, text: "日本",
			wantWidth: 4, want: "日本",
		},
		"clipped at right edge": {
			width: 4, x: 2, text: "abcdef",
			wantWidth: 6, want: "  ab",
		},
		"wide cluster does not straddle edge": {
			width: 3, x: 1, text: "日本",
			wantWidth: 4, want: " 日",
		},
		"combining mark stays in one cell": {
			width: 4, text: "e\u0301x",
			wantWidth: 2, want: "e\u0301x",
		},
		"out of bounds row": {
			width: 4, y: 3, text: "abc",
			wantWidth: 3, want: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(tt.width, 1)
			got := buf.SetString(tt.x, tt.y, tt.text, Style{})

			assert.Equal(t, tt.wantWidth, got)
			assert.Equal(t, tt.want, buf.StringTrimmed())
		})
	}
}

func TestBuffer_OverwriteWide(t *testing.T) {
	buf := NewBuffer(4, 1)
	buf.SetString(0, 0, "日本", Style{})
	buf.SetString(1, 0, "x", Style{})

	assert.Equal(t, " x本", buf.String())
	assert.False(t, buf.Cell(2, 0).IsContinuation())
	assert.True(t, buf.Cell(3, 0).IsContinuation())
}

func TestBuffer_FillKeepsTextBackground(t *testing.T) {
	bg := color.RGBA{R: 10, A: 0xff}
	buf := NewBuffer(5, 2)
	buf.Fill(boxtree.NewRect(0, 0, 5, 2), ' ', Style{Bg: bg})
	buf.SetString(1, 1, "hi", Style{Fg: color.White})

	c := buf.Cell(1, 1)
	assert.Equal(t, "h", c.Content)
	assert.True(t, colorEqual(bg, c.Style.Bg))
	assert.True(t, colorEqual(color.White, c.Style.Fg))
}

func TestBuffer_Fill(t *testing.T) {
	buf := NewBuffer(4, 3)
	buf.Fill(boxtree.NewRect(1, 1, 10, 10), '#', Style{})

	assert.Equal(t, "\n ###\n ###", buf.StringTrimmed())
}

func TestDrawBox(t *testing.T) {
	type tc struct {
		rect   boxtree.Rect
		border BorderStyle
		want   string
	}

	tests := map[string]tc{
		"single": {
			rect:   boxtree.NewRect(0, 0, 4, 3),
			border: BorderSingle,
			want:   "┌──┐\n│  │\n└──┘",
		},
		"rounded offset": {
			rect:   boxtree.NewRect(1, 0, 3, 2),
			border: BorderRounded,
			want:   " ╭─╮\n ╰─╯\n",
		},
		"ascii": {
			rect:   boxtree.NewRect(0, 0, 2, 2),
			border: BorderASCII,
			want:   "++\n++\n",
		},
		"too small": {
			rect:   boxtree.NewRect(0, 0, 1, 3),
			border: BorderSingle,
			want:   "\n\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(4, 3)
			DrawBox(buf, tt.rect, tt.border, Style{})
			assert.Equal(t, tt.want, buf.StringTrimmed())
		})
	}
}

func TestParseBorderStyle(t *testing.T) {
	got, ok := ParseBorderStyle("double")
	assert.True(t, ok)
	assert.Equal(t, BorderDouble, got)

	_, ok = ParseBorderStyle("wavy")
	assert.False(t, ok)
}

func TestBuffer_ANSI(t *testing.T) {
	buf := NewBuffer(3, 1)
	buf.SetString(0, 0, "ab", Style{Fg: color.RGBA{R: 255, A: 255}})

	assert.Equal(t, "\x1b[0m\x1b[38;2;255;0;0mab\x1b[0m \x1b[0m", buf.ANSI())

	plain := NewBuffer(2, 1)
	assert.Equal(t, "  ", plain.ANSI())
}
