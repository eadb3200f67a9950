// Package colour provides colour conversion, contrast and distance functions.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL converts the colour to HSL.
func (rgb RGB) HSL() HSL {
	return RGBToHSL(rgb)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// HexToRGB decodes a "#RRGGBB" string using fixed two-digit channels.
// It never fails: channels that cannot be decoded are zero. Use ParseHex
// for user supplied values.
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(hex, "#")
	return RGB{
		R: hexChannel(hex, 0),
		G: hexChannel(hex, 2),
		B: hexChannel(hex, 4),
	}
}

func hexChannel(hex string, offset int) uint8 {
	if len(hex) < offset+2 {
		return 0
	}
	v, err := strconv.ParseUint(hex[offset:offset+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// ParseHex parses a hex colour string into an RGB struct.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB.
func ParseHex(hex string) (RGB, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour length: expected 6 characters, got %d", len(hex))
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component: %w", err)
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component: %w", err)
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component: %w", err)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
