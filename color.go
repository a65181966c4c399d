package boxtree

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidColor is returned by ParseColor for malformed input.
var ErrInvalidColor = errors.New("invalid color")

// namedColors are the names accepted by ParseColor besides hex notation.
var namedColors = map[string]color.RGBA{
	"transparent": {},
	"black":       {A: 0xff},
	"white":       {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"red":         {R: 0xff, A: 0xff},
	"green":       {G: 0x80, A: 0xff},
	"blue":        {B: 0xff, A: 0xff},
	"gray":        {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"lightgray":   {R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
}

// ParseColor parses "#RGB", "#RRGGBB", "#RRGGBBAA" or a color name
// (transparent, black, white, red, green, blue, gray, lightgray).
// Hex colors without an alpha component are opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	hex := s[1:]

	switch len(hex) {
	case 3:
		var rgb [3]uint8
		for i := range rgb {
			n, err := parseHexNibble(hex[i])
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%q: %w", s, err)
			}
			// Expand nibble to byte: 0xF -> 0xFF
			rgb[i] = n<<4 | n
		}
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
	case 6, 8:
		var parts [4]uint8
		parts[3] = 0xff
		for i := 0; i < len(hex)/2; i++ {
			b, err := parseHexByte(hex[2*i : 2*i+2])
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%q: %w", s, err)
			}
			parts[i] = b
		}
		return premultiply(parts[0], parts[1], parts[2], parts[3]), nil
	default:
		return color.RGBA{}, fmt.Errorf("%q: expected #RGB, #RRGGBB or #RRGGBBAA: %w", s, ErrInvalidColor)
	}
}

// premultiply converts straight alpha to the premultiplied form color.RGBA uses.
func premultiply(r, g, b, a uint8) color.RGBA {
	if a == 0xff {
		return color.RGBA{R: r, G: g, B: b, A: a}
	}
	scale := func(v uint8) uint8 {
		return uint8(uint16(v) * uint16(a) / 0xff)
	}
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: a}
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("hex character %q: %w", c, ErrInvalidColor)
	}
}
