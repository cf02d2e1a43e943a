package panels

import (
	"graph-plotter/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PlotBoard is the scrolling column of plot panels. It mirrors the order
// of the collection in app.State and keeps one PlotPanel per plot number.
type PlotBoard struct {
	state  *app.State
	window fyne.Window

	box    *fyne.Container
	scroll *container.Scroll
	panels map[int]*PlotPanel
	order  []int
}

// NewPlotBoard creates the board and subscribes it to collection events.
func NewPlotBoard(state *app.State) *PlotBoard {
	b := &PlotBoard{
		state:  state,
		box:    container.NewVBox(),
		panels: make(map[int]*PlotPanel),
	}
	b.scroll = container.NewVScroll(b.box)

	state.On(app.EventPanelAdded, func(data interface{}) {
		b.Rebuild()
		b.scroll.ScrollToBottom()
	})
	state.On(app.EventPanelsRemoved, func(data interface{}) {
		b.Rebuild()
	})
	state.On(app.EventPanelResized, func(data interface{}) {
		if p, ok := data.(*app.Panel); ok {
			if pp := b.panels[p.Number]; pp != nil {
				pp.SyncSize()
			}
		}
	})
	state.On(app.EventSelectionChanged, func(data interface{}) {
		for _, pp := range b.panels {
			pp.SyncSelection()
		}
	})

	return b
}

// SetWindow sets the parent window used for dialogs.
func (b *PlotBoard) SetWindow(w fyne.Window) {
	b.window = w
}

// Container returns the board's root object.
func (b *PlotBoard) Container() fyne.CanvasObject {
	return b.scroll
}

// Rebuild brings the column in line with the collection: widgets are
// created for new panels, dropped for removed ones, and laid out in
// collection order.
func (b *PlotBoard) Rebuild() {
	panels := b.state.Panels()
	next := make(map[int]*PlotPanel, len(panels))
	order := make([]int, 0, len(panels))
	objects := make([]fyne.CanvasObject, 0, 2*len(panels))

	for i, p := range panels {
		pp := b.panels[p.Number]
		if pp == nil {
			pp = NewPlotPanel(b.state, p, b.window)
		}
		next[p.Number] = pp
		order = append(order, p.Number)
		if i > 0 {
			objects = append(objects, widget.NewSeparator())
		}
		objects = append(objects, pp.Container())
	}

	b.panels = next
	b.order = order
	b.box.Objects = objects
	b.box.Refresh()
}

// Len returns the number of panels shown.
func (b *PlotBoard) Len() int {
	return len(b.order)
}

// Numbers returns the plot numbers in display order.
func (b *PlotBoard) Numbers() []int {
	return append([]int(nil), b.order...)
}

// PlotPanel returns the widget for a plot number, or nil.
func (b *PlotBoard) PlotPanel(number int) *PlotPanel {
	return b.panels[number]
}
