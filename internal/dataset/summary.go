package dataset

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the finite values of a column.
type Summary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

// Summarize computes a Summary over the finite values of the named column.
func (t *Table) Summarize(name string) (Summary, error) {
	col, err := t.Column(name)
	if err != nil {
		return Summary{}, err
	}
	vals := make([]float64, 0, len(col))
	for _, v := range col {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return Summary{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN()}, nil
	}
	return Summary{
		Count: len(vals),
		Min:   floats.Min(vals),
		Max:   floats.Max(vals),
		Mean:  stat.Mean(vals, nil),
	}, nil
}

func (s Summary) String() string {
	if s.Count == 0 {
		return "no numeric values"
	}
	return fmt.Sprintf("n=%d  min=%s  max=%s  mean=%s",
		s.Count, formatValue(s.Min), formatValue(s.Max), formatValue(s.Mean))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
