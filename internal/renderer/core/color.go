// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between panels and backends.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color represents an RGB color value.
type Color struct {
	R, G, B uint8

	// Default indicates the backend's default color.
	Default bool
}

// ColorDefault represents the backend's default color.
var ColorDefault = Color{Default: true}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0}
	ColorWhite = Color{R: 255, G: 255, B: 255}
	ColorGray  = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex creates a color from a hex string ("#rgb" or "#rrggbb").
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	parse := func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color: %s", hex)
		}
		return uint8(v), nil
	}

	switch len(hex) {
	case 3:
		r, err := parse(string(hex[0]) + string(hex[0]))
		if err != nil {
			return Color{}, err
		}
		g, err := parse(string(hex[1]) + string(hex[1]))
		if err != nil {
			return Color{}, err
		}
		b, err := parse(string(hex[2]) + string(hex[2]))
		if err != nil {
			return Color{}, err
		}
		return Color{R: r, G: g, B: b}, nil
	case 6:
		r, err := parse(hex[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parse(hex[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parse(hex[4:6])
		if err != nil {
			return Color{}, err
		}
		return Color{R: r, G: g, B: b}, nil
	default:
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
}

// Darker returns the color with its brightness divided by factor percent.
// A factor of 120 darkens by roughly 17%. Factors below 100 return the
// color unchanged.
func (c Color) Darker(factor int) Color {
	if c.Default || factor <= 100 {
		return c
	}
	scale := func(v uint8) uint8 {
		return uint8(int(v) * 100 / factor)
	}
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
