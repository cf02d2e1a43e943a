// Package panels provides the plot panel widgets and the column that holds them.
package panels

import (
	"fmt"
	"log"
	"path/filepath"

	"graph-plotter/internal/app"
	"graph-plotter/internal/chart"
	"graph-plotter/ui/canvas"
	"graph-plotter/ui/dialogs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	sizeEntryWidth  = 70
	stretchMinWidth = 200
	popOutWidth     = 800
	popOutHeight    = 600
)

// PlotPanel shows one chart with its selection checkbox, size controls
// and toolbar.
type PlotPanel struct {
	state  *app.State
	panel  *app.Panel
	window fyne.Window

	canvas      *canvas.PlotCanvas
	check       *widget.Check
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
	holder      *fyne.Container // wraps canvas; fixed-size panels don't stretch
	container   fyne.CanvasObject
}

// NewPlotPanel creates the widgets for a panel in the collection.
func NewPlotPanel(state *app.State, panel *app.Panel, window fyne.Window) *PlotPanel {
	pp := &PlotPanel{
		state:  state,
		panel:  panel,
		window: window,
	}

	pp.canvas = canvas.NewPlotCanvas(panel.Chart, state.Settings().DPI)

	pp.check = widget.NewCheck(panel.Label(), func(checked bool) {
		if err := pp.state.SetSelected(pp.panel.Number, checked); err != nil {
			log.Printf("Select plot %d: %v", pp.panel.Number, err)
		}
	})
	pp.check.Checked = panel.Selected

	pp.widthEntry = widget.NewEntry()
	pp.widthEntry.SetPlaceHolder("Width")
	pp.heightEntry = widget.NewEntry()
	pp.heightEntry.SetPlaceHolder("Height")
	entrySize := fyne.NewSize(sizeEntryWidth, pp.widthEntry.MinSize().Height)

	applyBtn := widget.NewButton("Apply", pp.ApplySize)
	resetBtn := widget.NewButton("Reset", pp.ResetSize)

	controls := container.NewHBox(
		pp.check,
		widget.NewLabel(" w:"),
		container.NewGridWrap(entrySize, pp.widthEntry),
		widget.NewLabel("h:"),
		container.NewGridWrap(entrySize, pp.heightEntry),
		applyBtn,
		resetBtn,
	)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), pp.Export),
		widget.NewToolbarAction(theme.ViewFullScreenIcon(), func() { pp.PopOut() }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), pp.canvas.Refresh),
	)

	pp.holder = container.NewStack()
	pp.SyncSize()

	pp.container = container.NewVBox(controls, toolbar, pp.holder)
	return pp
}

// Container returns the panel's root object.
func (pp *PlotPanel) Container() fyne.CanvasObject {
	return pp.container
}

// Panel returns the collection record shown by this widget.
func (pp *PlotPanel) Panel() *app.Panel {
	return pp.panel
}

// Canvas returns the chart canvas.
func (pp *PlotPanel) Canvas() *canvas.PlotCanvas {
	return pp.canvas
}

// Check returns the selection checkbox.
func (pp *PlotPanel) Check() *widget.Check {
	return pp.check
}

// SizeEntries returns the width and height entries.
func (pp *PlotPanel) SizeEntries() (*widget.Entry, *widget.Entry) {
	return pp.widthEntry, pp.heightEntry
}

// SyncSelection updates the checkbox from the collection.
func (pp *PlotPanel) SyncSelection() {
	pp.check.SetChecked(pp.panel.Selected)
}

// SyncSize lays the canvas out at the panel's current display size.
func (pp *PlotPanel) SyncSize() {
	w, h, fixed := pp.state.DisplayPixels(pp.panel)
	if fixed {
		pp.canvas.SetMinSize(fyne.NewSize(float32(w), float32(h)))
		pp.holder.Objects = []fyne.CanvasObject{container.NewHBox(pp.canvas)}
	} else {
		pp.canvas.SetMinSize(fyne.NewSize(stretchMinWidth, float32(h)))
		pp.holder.Objects = []fyne.CanvasObject{pp.canvas}
	}
	pp.holder.Refresh()
}

// ApplySize fixes the canvas at the size typed into the entries.
func (pp *PlotPanel) ApplySize() {
	size, err := app.ParseSize(pp.widthEntry.Text, pp.heightEntry.Text)
	if err == nil {
		err = pp.state.Resize(pp.panel.Number, size)
	}
	if err != nil {
		dialogs.ShowErrorWarning(err, pp.window)
	}
}

// ResetSize restores the default size if a custom one is active.
func (pp *PlotPanel) ResetSize() {
	changed, err := pp.state.ResetSize(pp.panel.Number)
	if err != nil {
		log.Printf("Reset plot %d: %v", pp.panel.Number, err)
		return
	}
	if changed {
		pp.widthEntry.SetText("")
		pp.heightEntry.SetText("")
	}
}

// Export asks for a file name and saves the chart there.
func (pp *PlotPanel) Export() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()
		path := writer.URI().Path()
		if filepath.Ext(path) == "" {
			path += ".png"
		}
		if err := pp.ExportTo(path); err != nil {
			dialog.ShowError(err, pp.window)
			return
		}
		log.Printf("Exported plot %d to %s", pp.panel.Number, path)
	}, pp.window)
	fd.SetFilter(storage.NewExtensionFileFilter(chart.ExportExtensions()))
	fd.SetFileName(fmt.Sprintf("plot_%d.png", pp.panel.Number))
	fd.Show()
}

// ExportTo saves the chart to path at its on-screen size.
func (pp *PlotPanel) ExportTo(path string) error {
	w, h, fixed := pp.state.DisplayPixels(pp.panel)
	if !fixed {
		if cw := int(pp.canvas.Size().Width); cw > w {
			w = cw
		}
	}
	return pp.panel.Chart.Save(path, w, h, pp.state.Settings().DPI)
}

// PopOut opens the chart in a window of its own.
func (pp *PlotPanel) PopOut() fyne.Window {
	win := fyne.CurrentApp().NewWindow(pp.panel.Title())
	win.SetContent(canvas.NewPlotCanvas(pp.panel.Chart, pp.state.Settings().DPI))
	win.Resize(fyne.NewSize(popOutWidth, popOutHeight))
	win.Show()
	return win
}
