// Package chart provides the line-chart model and renders it with gonum/plot.
package chart

import "math"

// Series is one named line of (x, y) values.
type Series struct {
	Label string
	X     []float64
	Y     []float64
}

// NewSeries builds a series from paired x/y slices, dropping every point
// whose x or y is not a finite number. Slices of unequal length are
// truncated to the shorter one.
func NewSeries(label string, x, y []float64) Series {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	s := Series{
		Label: label,
		X:     make([]float64, 0, n),
		Y:     make([]float64, 0, n),
	}
	for i := 0; i < n; i++ {
		if !finite(x[i]) || !finite(y[i]) {
			continue
		}
		s.X = append(s.X, x[i])
		s.Y = append(s.Y, y[i])
	}
	return s
}

// Len implements plotter.XYer.
func (s Series) Len() int { return len(s.X) }

// XY implements plotter.XYer.
func (s Series) XY(i int) (float64, float64) { return s.X[i], s.Y[i] }

// Relabel returns a copy of s with a new label. The point data is copied
// so the result shares nothing with s.
func (s Series) Relabel(label string) Series {
	return Series{
		Label: label,
		X:     append([]float64(nil), s.X...),
		Y:     append([]float64(nil), s.Y...),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
