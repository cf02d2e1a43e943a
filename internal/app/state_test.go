package app

import (
	"fmt"
	"strings"
	"testing"

	"graph-plotter/internal/chart"
	"graph-plotter/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const table = `x,a,b,c,d
0,1,2,3,4
1,2,3,4,5
2,3,4,5,6
`

func loadTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Read(strings.NewReader(table))
	require.NoError(t, err)
	return tbl
}

func newState() *State {
	return NewState(DefaultSettings())
}

func seriesChart(labels ...string) *chart.Chart {
	c := chart.New("")
	for _, l := range labels {
		c.Add(chart.NewSeries(l, []float64{0, 1}, []float64{1, 2}))
	}
	return c
}

func TestImportCombined(t *testing.T) {
	s := newState()
	panels, err := s.Import(loadTable(t), []string{"a", "c", "d"}, false)
	require.NoError(t, err)
	require.Len(t, panels, 1)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"a", "c", "d"}, panels[0].Chart.Labels())
	assert.Equal(t, []float64{0, 1, 2}, panels[0].Chart.Series[1].X)
	assert.Equal(t, []float64{3, 4, 5}, panels[0].Chart.Series[1].Y)
}

func TestImportSeparate(t *testing.T) {
	s := newState()
	panels, err := s.Import(loadTable(t), []string{"b", "d"}, true)
	require.NoError(t, err)
	require.Len(t, panels, 2)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"b"}, panels[0].Chart.Labels())
	assert.Equal(t, []string{"d"}, panels[1].Chart.Labels())
	assert.Equal(t, 1, panels[0].Number)
	assert.Equal(t, 2, panels[1].Number)
}

func TestImportNoColumns(t *testing.T) {
	s := newState()
	added := 0
	s.On(EventPanelAdded, func(interface{}) { added++ })

	for _, separate := range []bool{false, true} {
		panels, err := s.Import(loadTable(t), nil, separate)
		assert.ErrorIs(t, err, ErrNoColumns)
		assert.Nil(t, panels)
	}
	assert.Zero(t, s.Len())
	assert.Zero(t, added)
}

func TestImportUnknownColumn(t *testing.T) {
	s := newState()
	_, err := s.Import(loadTable(t), []string{"a", "zzz"}, true)
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
	assert.Zero(t, s.Len())
}

func TestCombineNeedsTwoSelected(t *testing.T) {
	s := newState()
	p1 := s.AddPanel(seriesChart("one"))
	s.AddPanel(seriesChart("two"))

	_, err := s.Combine()
	assert.ErrorIs(t, err, ErrTooFewSelected)

	require.NoError(t, s.SetSelected(p1.Number, true))
	_, err = s.Combine()
	assert.ErrorIs(t, err, ErrTooFewSelected)
	assert.Equal(t, 2, s.Len())
	assert.True(t, p1.Selected)
}

func TestCombineMergesSeries(t *testing.T) {
	s := newState()
	p1 := s.AddPanel(seriesChart("a", "b"))
	p2 := s.AddPanel(seriesChart("c", "d", "e"))
	p3 := s.AddPanel(seriesChart("ignored"))

	require.NoError(t, s.SetSelected(p1.Number, true))
	require.NoError(t, s.SetSelected(p2.Number, true))

	combined, err := s.Combine()
	require.NoError(t, err)
	assert.Equal(t, 4, combined.Number)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{
		"a from plot 1", "b from plot 1",
		"c from plot 2", "d from plot 2", "e from plot 2",
	}, combined.Chart.Labels())

	// Source panels are untouched and the selection is cleared.
	assert.Equal(t, []string{"a", "b"}, p1.Chart.Labels())
	assert.Empty(t, s.SelectedPanels())
	assert.False(t, p3.Selected)
}

func TestCombineCopiesPoints(t *testing.T) {
	s := newState()
	p1 := s.AddPanel(seriesChart("a"))
	p2 := s.AddPanel(seriesChart("b"))
	s.SelectAll(true)

	combined, err := s.Combine()
	require.NoError(t, err)
	combined.Chart.Series[0].Y[0] = 100
	assert.Equal(t, 1.0, p1.Chart.Series[0].Y[0])
	assert.Equal(t, 1.0, p2.Chart.Series[0].Y[0])
}

func TestDeleteSelectedPreservesOrder(t *testing.T) {
	s := newState()
	for i := 0; i < 5; i++ {
		s.AddRandom()
	}
	require.NoError(t, s.SetSelected(2, true))
	require.NoError(t, s.SetSelected(4, true))

	var removedEvent []*Panel
	s.On(EventPanelsRemoved, func(data interface{}) {
		removedEvent = data.([]*Panel)
	})

	removed := s.DeleteSelected()
	require.Len(t, removed, 2)
	assert.Equal(t, removed, removedEvent)

	var numbers []int
	for _, p := range s.Panels() {
		numbers = append(numbers, p.Number)
		assert.False(t, p.Selected)
		assert.Equal(t, []string{labelFor(p.Number)}, p.Chart.Labels())
	}
	assert.Equal(t, []int{1, 3, 5}, numbers)

	_, err := s.Panel(2)
	assert.ErrorIs(t, err, ErrUnknownPanel)
}

func labelFor(n int) string {
	return fmt.Sprintf("Graph %d", n)
}

func TestDeleteNothingSelected(t *testing.T) {
	s := newState()
	s.AddRandom()
	fired := false
	s.On(EventPanelsRemoved, func(interface{}) { fired = true })
	assert.Nil(t, s.DeleteSelected())
	assert.False(t, fired)
	assert.Equal(t, 1, s.Len())
}

func TestPlotNumbersAreNotReused(t *testing.T) {
	s := newState()
	s.AddRandom()
	p2 := s.AddRandom()
	require.NoError(t, s.SetSelected(p2.Number, true))
	s.DeleteSelected()

	p3 := s.AddRandom()
	assert.Equal(t, 3, p3.Number)
	assert.Equal(t, "Plot number 3", p3.Label())
	assert.Equal(t, "Plot 3", p3.Title())
	assert.Equal(t, []string{"Graph 3"}, p3.Chart.Labels())
}

func TestAddRandomRanges(t *testing.T) {
	s := newState()
	p := s.AddRandom()
	require.Len(t, p.Chart.Series, 1)
	sr := p.Chart.Series[0]
	require.Equal(t, randomPoints, sr.Len())
	for i := 0; i < sr.Len(); i++ {
		x, y := sr.XY(i)
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, float64(randomXMax))
		assert.GreaterOrEqual(t, y, 0.0)
		assert.Less(t, y, float64(randomYMax))
		if i > 0 {
			prev, _ := sr.XY(i - 1)
			assert.LessOrEqual(t, prev, x)
		}
	}
}

func TestSelectionEvents(t *testing.T) {
	s := newState()
	p := s.AddRandom()
	events := 0
	s.On(EventSelectionChanged, func(interface{}) { events++ })

	require.NoError(t, s.SetSelected(p.Number, true))
	require.NoError(t, s.SetSelected(p.Number, true))
	assert.Equal(t, 1, events)

	s.SelectAll(false)
	assert.Equal(t, 2, events)
	assert.ErrorIs(t, s.SetSelected(99, true), ErrUnknownPanel)
}

func TestResizeAndReset(t *testing.T) {
	s := newState()
	p := s.AddRandom()

	w, h, fixed := s.DisplayPixels(p)
	assert.Equal(t, 500, w)
	assert.Equal(t, 300, h) // 2in at 100dpi is raised to the minimum height
	assert.False(t, fixed)

	changed, err := s.ResetSize(p.Number)
	require.NoError(t, err)
	assert.False(t, changed)

	resized := 0
	s.On(EventPanelResized, func(interface{}) { resized++ })

	require.NoError(t, s.Resize(p.Number, Size{WidthInches: 4, HeightInches: 1.5}))
	w, h, fixed = s.DisplayPixels(p)
	assert.Equal(t, 400, w)
	assert.Equal(t, 150, h)
	assert.True(t, fixed)

	assert.ErrorIs(t, s.Resize(p.Number, Size{WidthInches: -1, HeightInches: 2}), ErrInvalidSize)
	assert.ErrorIs(t, s.Resize(42, Size{WidthInches: 1, HeightInches: 2}), ErrUnknownPanel)

	changed, err = s.ResetSize(p.Number)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, p.Size.IsZero())
	assert.Equal(t, 2, resized)
}

func TestParseSize(t *testing.T) {
	size, err := ParseSize(" 6.5", "3 ")
	require.NoError(t, err)
	assert.Equal(t, Size{WidthInches: 6.5, HeightInches: 3}, size)

	for _, in := range [][2]string{
		{"", "3"},
		{"abc", "3"},
		{"3", "x"},
		{"0", "3"},
		{"3", "-2"},
		{"NaN", "1"},
		{"Inf", "1"},
	} {
		_, err := ParseSize(in[0], in[1])
		assert.ErrorIs(t, err, ErrInvalidSize, "%q", in)
	}
}

func TestSettingsNormalized(t *testing.T) {
	s := NewState(Settings{DPI: -5, MinHeightPixels: -1})
	got := s.Settings()
	assert.Equal(t, DefaultSettings().DefaultSize, got.DefaultSize)
	assert.Equal(t, 100.0, got.DPI)
	assert.Equal(t, 0, got.MinHeightPixels)
}
