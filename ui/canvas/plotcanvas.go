// Package canvas provides a widget that draws a chart at its current size.
package canvas

import (
	"image"
	"image/draw"
	"log"

	"graph-plotter/internal/chart"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// PlotCanvas renders a chart into a raster that is redrawn whenever the
// widget is resized or refreshed.
type PlotCanvas struct {
	widget.BaseWidget

	chart   *chart.Chart
	dpi     float64
	minSize fyne.Size
	raster  *fynecanvas.Raster
}

// NewPlotCanvas creates a canvas for c at the given dots per inch.
func NewPlotCanvas(c *chart.Chart, dpi float64) *PlotCanvas {
	pc := &PlotCanvas{
		chart:   c,
		dpi:     dpi,
		minSize: fyne.NewSize(100, 100),
	}
	pc.raster = fynecanvas.NewRaster(pc.draw)
	pc.ExtendBaseWidget(pc)
	return pc
}

// Chart returns the chart being shown.
func (pc *PlotCanvas) Chart() *chart.Chart {
	return pc.chart
}

// SetChart replaces the chart and redraws.
func (pc *PlotCanvas) SetChart(c *chart.Chart) {
	pc.chart = c
	pc.Refresh()
}

// SetMinSize sets the smallest size the canvas may be laid out at, in
// fyne units.
func (pc *PlotCanvas) SetMinSize(size fyne.Size) {
	pc.minSize = size
	pc.Refresh()
}

// MinSize returns the configured minimum size.
func (pc *PlotCanvas) MinSize() fyne.Size {
	return pc.minSize
}

// CreateRenderer implements fyne.Widget.
func (pc *PlotCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.raster)
}

// Refresh redraws the chart.
func (pc *PlotCanvas) Refresh() {
	pc.raster.Refresh()
	pc.BaseWidget.Refresh()
}

// draw is the raster generator. w and h are device pixels, so the DPI is
// scaled by the ratio of device pixels to fyne units to keep text the same
// apparent size on scaled displays.
func (pc *PlotCanvas) draw(w, h int) image.Image {
	if pc.chart == nil || w <= 0 || h <= 0 {
		return blank(w, h)
	}
	dpi := pc.dpi
	if size := pc.Size(); size.Width > 0 {
		dpi *= float64(w) / float64(size.Width)
	}
	img, err := pc.chart.Render(w, h, dpi)
	if err != nil {
		log.Printf("Render failed: %v", err)
		return blank(w, h)
	}
	return img
}

func blank(w, h int) image.Image {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}
