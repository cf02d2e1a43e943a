package chart

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"graph-plotter/pkg/colorutil"

	"golang.org/x/image/tiff"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrUnknownFormat is returned when an export path has an unsupported extension.
var ErrUnknownFormat = errors.New("unsupported export format")

// Supported export formats, keyed by the lower-case file extension.
var formats = map[string]string{
	"png":  "png",
	"svg":  "svg",
	"pdf":  "pdf",
	"tif":  "tiff",
	"tiff": "tiff",
}

// Chart is an ordered set of series drawn on a single pair of axes.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// New creates an empty chart.
func New(title string) *Chart {
	return &Chart{Title: title}
}

// Add appends series to the chart.
func (c *Chart) Add(series ...Series) {
	c.Series = append(c.Series, series...)
}

// Clone returns a deep copy of the chart.
func (c *Chart) Clone() *Chart {
	out := &Chart{Title: c.Title, XLabel: c.XLabel, YLabel: c.YLabel}
	for _, s := range c.Series {
		out.Series = append(out.Series, s.Relabel(s.Label))
	}
	return out
}

// Labels returns the series labels in drawing order.
func (c *Chart) Labels() []string {
	labels := make([]string, len(c.Series))
	for i, s := range c.Series {
		labels[i] = s.Label
	}
	return labels
}

// Plot builds the gonum plot for the chart: a grid, one colored line per
// non-empty series, and a legend entry for each labelled line.
func (c *Chart) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = colorutil.GridGray
	grid.Horizontal.Color = colorutil.GridGray
	p.Add(grid)

	for i, s := range c.Series {
		if s.Len() == 0 {
			continue
		}
		line, err := plotter.NewLine(s)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		line.Color = colorutil.SeriesColor(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		if s.Label != "" {
			p.Legend.Add(s.Label, line)
		}
	}
	return p, nil
}

// Render draws the chart into an image of exactly w×h pixels at the given DPI.
func (c *Chart) Render(w, h int, dpi float64) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid render size %dx%d", w, h)
	}
	// vgimg only takes whole DPI values; size the canvas with the same
	// value so the image comes out at exactly w×h.
	d := int(math.Round(dpi))
	if d <= 0 {
		d = vgimg.DefaultDPI
	}
	p, err := c.Plot()
	if err != nil {
		return nil, err
	}
	canvas := vgimg.NewWith(
		vgimg.UseWH(pixelsToLength(w, float64(d)), pixelsToLength(h, float64(d))),
		vgimg.UseDPI(d),
	)
	p.Draw(draw.New(canvas))
	return canvas.Image(), nil
}

// Encode writes the chart in the given format ("png", "svg", "pdf" or
// "tiff") at w×h pixels.
func (c *Chart) Encode(out io.Writer, format string, w, h int, dpi float64) error {
	if dpi <= 0 {
		dpi = vgimg.DefaultDPI
	}
	switch format {
	case "png", "tiff":
		img, err := c.Render(w, h, dpi)
		if err != nil {
			return err
		}
		if format == "png" {
			return png.Encode(out, img)
		}
		return tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case "svg", "pdf":
		p, err := c.Plot()
		if err != nil {
			return err
		}
		wt, err := p.WriterTo(pixelsToLength(w, dpi), pixelsToLength(h, dpi), format)
		if err != nil {
			return err
		}
		_, err = wt.WriteTo(out)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes the chart to path, choosing the format from its extension.
func (c *Chart) Save(path string, w, h int, dpi float64) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f, format, w, h, dpi); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

// FormatFromPath maps a file path to an export format name.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format, ok := formats[ext]; ok {
		return format, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// ExportExtensions lists the file extensions accepted by Save.
func ExportExtensions() []string {
	return []string{".png", ".svg", ".pdf", ".tif", ".tiff"}
}

func pixelsToLength(px int, dpi float64) vg.Length {
	return vg.Length(float64(px)/dpi) * vg.Inch
}
