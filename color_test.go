package boxtree

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	type tc struct {
		input    string
		expected color.RGBA
		wantErr  bool
	}

	tests := map[string]tc{
		"six digit":       {input: "#313136", expected: color.RGBA{R: 0x31, G: 0x31, B: 0x36, A: 0xff}},
		"three digit":     {input: "#fA0", expected: color.RGBA{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}},
		"eight digit":     {input: "#ff000080", expected: color.RGBA{R: 0x80, A: 0x80}},
		"named":           {input: "White", expected: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		"transparent":     {input: " transparent ", expected: color.RGBA{}},
		"missing hash":    {input: "313136", wantErr: true},
		"bad length":      {input: "#12345", wantErr: true},
		"bad digit":       {input: "#12345g", wantErr: true},
		"bad short digit": {input: "#zzz", wantErr: true},
		"unknown name":    {input: "mauve", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
