package pxl

import (
	"fmt"
	"image/color"
)

// Color is a straight-alpha RGBA color with 8 bits per channel.
//
// Color implements color.Color with non-premultiplied semantics, the same
// as color.NRGBA.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Bytes returns the channels in R, G, B, A order.
func (c Color) Bytes() [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}

// String renders the color as lowercase rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// FromHex parses an "rrggbbaa" string. Exactly eight hex digits are
// accepted, in either case, with no leading '#'.
// Any other input returns a *ColorSyntaxError.
func FromHex(s string) (Color, error) {
	if len(s) != 8 {
		return Color{}, &ColorSyntaxError{Input: s}
	}

	var ch [4]uint8
	for i := range ch {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return Color{}, &ColorSyntaxError{Input: s}
		}
		ch[i] = hi<<4 | lo
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// MustHex is like FromHex but panics on malformed input.
// It is meant for package-level color literals.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// hexDigit is a helper for hex parsing
func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Common colors
var (
	White = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = Color{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	Red   = Color{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	Green = Color{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	Blue  = Color{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
)
