package canvas

import (
	"testing"

	"graph-plotter/internal/chart"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *chart.Chart {
	c := chart.New("")
	c.Add(chart.NewSeries("s", []float64{0, 1, 2}, []float64{2, 1, 3}))
	return c
}

func TestDrawMatchesRequestedPixels(t *testing.T) {
	test.NewApp()
	pc := NewPlotCanvas(sample(), 100)
	pc.Resize(fyne.NewSize(300, 200))

	img := pc.draw(600, 400)
	require.NotNil(t, img)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestDrawWithoutChartIsBlank(t *testing.T) {
	test.NewApp()
	pc := NewPlotCanvas(nil, 100)
	img := pc.draw(20, 10)
	assert.Equal(t, 20, img.Bounds().Dx())
	r, g, b, _ := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xFFFF), r&g&b)

	img = pc.draw(0, 0)
	assert.Equal(t, 1, img.Bounds().Dx())
}

func TestMinSizeAndSetChart(t *testing.T) {
	test.NewApp()
	pc := NewPlotCanvas(sample(), 100)
	pc.SetMinSize(fyne.NewSize(500, 300))
	assert.Equal(t, fyne.NewSize(500, 300), pc.MinSize())

	w := test.NewWindow(pc)
	defer w.Close()
	w.Resize(fyne.NewSize(600, 400))

	other := chart.New("other")
	pc.SetChart(other)
	assert.Same(t, other, pc.Chart())
}
