package dialogs

import (
	"graph-plotter/internal/dataset"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// ColumnPicker offers one toggle per y-column of a table plus a
// "Separate" option for one panel per column.
type ColumnPicker struct {
	columns  []string
	checks   []*widget.Check
	separate *widget.Check
	content  fyne.CanvasObject
}

// NewColumnPicker builds the picker for every column of t except the first.
func NewColumnPicker(t *dataset.Table) *ColumnPicker {
	cp := &ColumnPicker{
		columns:  t.YColumns(),
		separate: widget.NewCheck("Separate", nil),
	}

	rows := container.NewVBox()
	for _, name := range cp.columns {
		check := widget.NewCheck(name, nil)
		cp.checks = append(cp.checks, check)

		summary := widget.NewLabel("")
		if s, err := t.Summarize(name); err == nil {
			summary.SetText(s.String())
		}
		summary.Importance = widget.LowImportance
		rows.Add(container.NewHBox(check, summary))
	}

	selectAllBtn := widget.NewButton("Select All", cp.SelectAll)
	unselectAllBtn := widget.NewButton("Unselect All", cp.UnselectAll)

	scroll := container.NewVScroll(rows)
	scroll.SetMinSize(fyne.NewSize(360, 240))

	cp.content = container.NewBorder(
		container.NewVBox(
			container.NewHBox(selectAllBtn, unselectAllBtn, cp.separate),
			widget.NewLabel("Select Columns to Plot:"),
		),
		nil, nil, nil,
		scroll,
	)
	return cp
}

// Content returns the picker's root object.
func (cp *ColumnPicker) Content() fyne.CanvasObject {
	return cp.content
}

// Columns returns the offered column names.
func (cp *ColumnPicker) Columns() []string {
	return cp.columns
}

// Check returns the toggle for the i-th offered column.
func (cp *ColumnPicker) Check(i int) *widget.Check {
	return cp.checks[i]
}

// SeparateCheck returns the "Separate" toggle.
func (cp *ColumnPicker) SeparateCheck() *widget.Check {
	return cp.separate
}

// SelectAll checks every column.
func (cp *ColumnPicker) SelectAll() {
	for _, c := range cp.checks {
		c.SetChecked(true)
	}
}

// UnselectAll unchecks every column.
func (cp *ColumnPicker) UnselectAll() {
	for _, c := range cp.checks {
		c.SetChecked(false)
	}
}

// Selected returns the checked columns in table order.
func (cp *ColumnPicker) Selected() []string {
	var out []string
	for i, c := range cp.checks {
		if c.Checked {
			out = append(out, cp.columns[i])
		}
	}
	return out
}

// Separate reports whether one panel per column was requested.
func (cp *ColumnPicker) Separate() bool {
	return cp.separate.Checked
}

// ImportDialog asks which columns of a table to plot.
type ImportDialog struct {
	picker *ColumnPicker
	window fyne.Window

	// Callback, run on OK with the chosen columns (possibly none)
	onImport func(columns []string, separate bool)
}

// NewImportDialog creates the dialog for t.
func NewImportDialog(t *dataset.Table, window fyne.Window, onImport func(columns []string, separate bool)) *ImportDialog {
	return &ImportDialog{
		picker:   NewColumnPicker(t),
		window:   window,
		onImport: onImport,
	}
}

// Picker returns the dialog's column picker.
func (d *ImportDialog) Picker() *ColumnPicker {
	return d.picker
}

// Show displays the dialog.
func (d *ImportDialog) Show() {
	dlg := dialog.NewCustomConfirm(
		"Select Columns",
		"OK",
		"Cancel",
		d.picker.Content(),
		func(ok bool) {
			if ok {
				d.Accept()
			}
		},
		d.window,
	)
	dlg.Resize(fyne.NewSize(480, 420))
	dlg.Show()
}

// Accept delivers the current choice to the callback.
func (d *ImportDialog) Accept() {
	if d.onImport != nil {
		d.onImport(d.picker.Selected(), d.picker.Separate())
	}
}
