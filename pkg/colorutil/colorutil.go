// Package colorutil provides shared color utilities for the graph plotter.
package colorutil

import (
	"image/color"
)

// Common colors used throughout the application.
var (
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	GridGray  = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 255}
	Highlight = color.RGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 255}
)

// Palette is the series color cycle. Series i is drawn with Palette[i%len(Palette)].
var Palette = []color.RGBA{
	{R: 0x1F, G: 0x77, B: 0xB4, A: 255}, // blue
	{R: 0xFF, G: 0x7F, B: 0x0E, A: 255}, // orange
	{R: 0x2C, G: 0xA0, B: 0x2C, A: 255}, // green
	{R: 0xD6, G: 0x27, B: 0x28, A: 255}, // red
	{R: 0x94, G: 0x67, B: 0xBD, A: 255}, // purple
	{R: 0x8C, G: 0x56, B: 0x4B, A: 255}, // brown
	{R: 0xE3, G: 0x77, B: 0xC2, A: 255}, // pink
	{R: 0x7F, G: 0x7F, B: 0x7F, A: 255}, // gray
	{R: 0xBC, G: 0xBD, B: 0x22, A: 255}, // olive
	{R: 0x17, G: 0xBE, B: 0xCF, A: 255}, // cyan
}

// SeriesColor returns the palette color for the i-th series. Negative
// indices wrap like positive ones.
func SeriesColor(i int) color.RGBA {
	n := len(Palette)
	i %= n
	if i < 0 {
		i += n
	}
	return Palette[i]
}

// WithAlpha returns c with its alpha channel replaced by a.
func WithAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
