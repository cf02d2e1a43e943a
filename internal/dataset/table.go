// Package dataset reads delimited numeric tables and extracts chart series from them.
package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"graph-plotter/internal/chart"
)

var (
	// ErrNoHeader is returned for an input without a header row.
	ErrNoHeader = errors.New("missing header row")
	// ErrNoRows is returned when the header is not followed by any data.
	ErrNoRows = errors.New("no data rows")
	// ErrUnknownColumn is returned when a column name is not in the table.
	ErrUnknownColumn = errors.New("unknown column")
)

// Delimiters tried when sniffing the header line, in order of preference.
var delimiters = []rune{',', ';', '\t', '|'}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is an in-memory rows × named-columns table of numbers. The first
// column is the shared x-axis, the rest are candidate y-series.
type Table struct {
	Path    string
	Columns []string
	Delim   rune

	values  [][]float64 // per column, one entry per row; NaN for missing
	textual []bool      // per column, true if any non-blank cell was not a number
	rows    int
}

// Load reads a delimited table from a file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	t.Path = path
	return t, nil
}

// Read parses a delimited table with a header row. The delimiter is
// sniffed from the header line.
func Read(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	delim := sniffDelimiter(firstLine(data))
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = delim != '\t'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}

	t := &Table{
		Columns: normalizeHeader(header),
		Delim:   delim,
	}
	t.values = make([][]float64, len(t.Columns))
	t.textual = make([]bool, len(t.Columns))

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(t.Columns) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, got %d", line, len(t.Columns), len(rec))
		}
		for i := range t.Columns {
			v := math.NaN()
			if i < len(rec) {
				var ok bool
				v, ok = parseCell(rec[i])
				if !ok {
					t.textual[i] = true
				}
			}
			t.values[i] = append(t.values[i], v)
		}
		t.rows++
	}

	if t.rows == 0 {
		return nil, ErrNoRows
	}
	return t, nil
}

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.rows }

// XColumn returns the name of the x-axis column.
func (t *Table) XColumn() string { return t.Columns[0] }

// YColumns returns the names of every column except the first.
func (t *Table) YColumns() []string {
	return append([]string(nil), t.Columns[1:]...)
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	i := t.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return t.values[i], nil
}

// X returns the x-axis values. When the first column holds text rather
// than numbers the 0-based row index is used instead.
func (t *Table) X() []float64 {
	if !t.textual[0] {
		return t.values[0]
	}
	x := make([]float64, t.rows)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

// Series extracts the named y-column as a series labelled with the column name.
func (t *Table) Series(name string) (chart.Series, error) {
	y, err := t.Column(name)
	if err != nil {
		return chart.Series{}, err
	}
	return chart.NewSeries(name, t.X(), y), nil
}

// SeriesFor extracts several y-columns, preserving the order of names.
func (t *Table) SeriesFor(names []string) ([]chart.Series, error) {
	out := make([]chart.Series, 0, len(names))
	for _, name := range names {
		s, err := t.Series(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (t *Table) index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// parseCell returns the numeric value of a cell. Blank cells are missing
// values but still count as numeric; anything else that fails to parse
// reports ok=false.
func parseCell(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN(), false
	}
	return v, true
}

// normalizeHeader trims header names, names empty cells "Unnamed: i" and
// suffixes duplicates with ".1", ".2", ...
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if used[name] {
			base := name
			for n := 1; used[name]; n++ {
				name = fmt.Sprintf("%s.%d", base, n)
			}
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// sniffDelimiter picks the candidate delimiter occurring most often
// outside quotes in the header line, defaulting to a comma.
func sniffDelimiter(line string) rune {
	counts := make(map[rune]int, len(delimiters))
	inQuotes := false
	for _, r := range line {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[r]++
		}
	}
	best := delimiters[0]
	for _, d := range delimiters[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

func firstLine(data []byte) string {
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		var line []byte
		if i < 0 {
			line, data = data, nil
		} else {
			line, data = data[:i], data[i+1:]
		}
		if s := strings.TrimSpace(string(line)); s != "" {
			return s
		}
	}
	return ""
}
