package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// HexColor is an opaque-by-default color written as "#RRGGBB" or
// "#AARRGGBB" in config files. Channels are stored unpremultiplied.
type HexColor color.NRGBA

// RGBA implements color.Color
func (c HexColor) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

func (c HexColor) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler
func (c HexColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *HexColor) UnmarshalText(b []byte) error {
	parsed, err := ParseHexColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHexColor parses "#RRGGBB" and "#AARRGGBB" (the leading # is optional)
func ParseHexColor(s string) (HexColor, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return HexColor{}, fmt.Errorf("%w: color %q must have 6 or 8 hex digits", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("%w: color %q: %v", ErrInvalid, s, err)
	}
	c := HexColor{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}
	if len(s) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}
