package scanline

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// RGB represents an opaque color with red, green and blue components,
// each in the range [0, 1]. It serializes to and from a JSON array of
// three numbers, the form the on-disk object records use.
type RGB struct {
	R, G, B float64
}

// Common drawing colors.
var (
	Black  = RGB{0, 0, 0}
	White  = RGB{1, 1, 1}
	Red    = RGB{1, 0, 0}
	Green  = RGB{0, 1, 0}
	Blue   = RGB{0, 0, 1}
	Yellow = RGB{1, 1, 0}
	Orange = RGB{1, 0.5, 0}
)

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: 255,
	}
}

// MarshalJSON encodes the color as a three-element array.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.R, c.G, c.B})
}

// UnmarshalJSON accepts any array of three numbers.
func (c *RGB) UnmarshalJSON(data []byte) error {
	var a []float64
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if len(a) != 3 {
		return fmt.Errorf("scanline: color needs 3 components, got %d", len(a))
	}
	c.R, c.G, c.B = a[0], a[1], a[2]
	return nil
}

// HexRGB parses a hex color string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Invalid input yields black.
func HexRGB(hex string) RGB {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	switch len(hex) {
	case 3:
		r := hexDigit(hex[0])
		g := hexDigit(hex[1])
		b := hexDigit(hex[2])
		return RGB{float64(r*17) / 255, float64(g*17) / 255, float64(b*17) / 255}
	case 6:
		r := hexDigit(hex[0])<<4 | hexDigit(hex[1])
		g := hexDigit(hex[2])<<4 | hexDigit(hex[3])
		b := hexDigit(hex[4])<<4 | hexDigit(hex[5])
		return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
	}
	return RGB{}
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
