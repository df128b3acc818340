package ggchart

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a packed 0xRRGGBBAA color with non-premultiplied components.
// Color implements color.Color, so it can be passed to any gg API.
type Color uint32

// ColorNull is the transparent sentinel: nothing is painted with it.
const ColorNull Color = 0

// Common colors.
const (
	Transparent Color = ColorNull
	Black       Color = 0x000000ff
	White       Color = 0xffffffff
	Red         Color = 0xff0000ff
	Green       Color = 0x00ff00ff
	Blue        Color = 0x0000ffff
	Gray        Color = 0x808080ff
	LightGray   Color = 0xd3d3d3ff
	Maroon      Color = 0x800000ff
	Teal        Color = 0x008080ff
)

var namedColors = map[string]Color{
	"none":        ColorNull,
	"null":        ColorNull,
	"transparent": Transparent,
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"gray":        Gray,
	"grey":        Gray,
	"lightgray":   LightGray,
	"maroon":      Maroon,
	"teal":        Teal,
}

// RGBA8 packs 8-bit components into a Color.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	if c == nil {
		return ColorNull
	}
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// Components returns the 8-bit red, green, blue and alpha components.
func (c Color) Components() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Visible reports whether the alpha channel is nonzero.
func (c Color) Visible() bool {
	return c&0xff != 0
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Components()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}

// String formats c as "#rrggbbaa".
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseColor.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor parses a color name or a hex string in one of the forms
// "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a leading '#'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	var r, g, b, a uint32
	a = 255

	ok := true
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return ColorNull, fmt.Errorf("%w: color %q", ErrInvalidArgument, s)
	}
	return RGBA8(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// parseHex follows gg's Hex helper but reports bad digits, which
// ParseColor must turn into an error.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
