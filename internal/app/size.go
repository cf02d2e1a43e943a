package app

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidSize is returned when a panel size is not a pair of positive numbers.
var ErrInvalidSize = errors.New("invalid input for width or height")

// Size is a panel display size in inches.
type Size struct {
	WidthInches  float64
	HeightInches float64
}

// ParseSize parses user-entered width and height in inches.
func ParseSize(width, height string) (Size, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(width), 64)
	if err != nil {
		return Size{}, ErrInvalidSize
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(height), 64)
	if err != nil {
		return Size{}, ErrInvalidSize
	}
	size := Size{WidthInches: w, HeightInches: h}
	if !size.Valid() {
		return Size{}, ErrInvalidSize
	}
	return size, nil
}

// IsZero reports whether no size is set.
func (s Size) IsZero() bool {
	return s == Size{}
}

// Valid reports whether both dimensions are positive finite numbers.
func (s Size) Valid() bool {
	return positive(s.WidthInches) && positive(s.HeightInches)
}

// Pixels converts the size to pixels at dpi dots per inch.
func (s Size) Pixels(dpi float64) (int, int) {
	return int(math.Round(s.WidthInches * dpi)), int(math.Round(s.HeightInches * dpi))
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Settings controls how panels are sized on screen.
type Settings struct {
	DefaultSize     Size
	DPI             float64
	MinHeightPixels int
}

// DefaultSettings returns a 5×2 inch panel at 100 DPI, at least 300 px tall.
func DefaultSettings() Settings {
	return Settings{
		DefaultSize:     Size{WidthInches: 5, HeightInches: 2},
		DPI:             100,
		MinHeightPixels: 300,
	}
}

// normalized replaces unusable fields with their defaults.
func (s Settings) normalized() Settings {
	def := DefaultSettings()
	if !s.DefaultSize.Valid() {
		s.DefaultSize = def.DefaultSize
	}
	if !positive(s.DPI) {
		s.DPI = def.DPI
	}
	if s.MinHeightPixels < 0 {
		s.MinHeightPixels = 0
	}
	return s
}
