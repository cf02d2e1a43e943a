package dialogs

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"graph-plotter/internal/app"
	"graph-plotter/internal/dataset"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Read(strings.NewReader("x,a,b,c\n0,1,2,3\n1,4,5,6\n"))
	require.NoError(t, err)
	return tbl
}

func TestColumnPickerOffersYColumns(t *testing.T) {
	test.NewApp()
	cp := NewColumnPicker(loadTable(t))
	assert.Equal(t, []string{"a", "b", "c"}, cp.Columns())
	assert.Empty(t, cp.Selected())
	assert.False(t, cp.Separate())
}

func TestColumnPickerSelection(t *testing.T) {
	test.NewApp()
	cp := NewColumnPicker(loadTable(t))

	test.Tap(cp.Check(2))
	test.Tap(cp.Check(0))
	assert.Equal(t, []string{"a", "c"}, cp.Selected())

	cp.SelectAll()
	assert.Equal(t, []string{"a", "b", "c"}, cp.Selected())

	cp.UnselectAll()
	assert.Empty(t, cp.Selected())

	test.Tap(cp.SeparateCheck())
	assert.True(t, cp.Separate())
}

func TestImportDialogAccept(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	defer w.Close()

	var gotCols []string
	var gotSep bool
	calls := 0
	d := NewImportDialog(loadTable(t), w, func(cols []string, sep bool) {
		calls++
		gotCols, gotSep = cols, sep
	})
	d.Show()

	test.Tap(d.Picker().Check(1))
	test.Tap(d.Picker().SeparateCheck())
	d.Accept()

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"b"}, gotCols)
	assert.True(t, gotSep)
}

func TestWarningText(t *testing.T) {
	assert.Equal(t, "No columns selected", WarningText(app.ErrNoColumns))
	assert.Equal(t, "You need to select at least 2 plots!", WarningText(fmt.Errorf("combine: %w", app.ErrTooFewSelected)))
	assert.Equal(t, "Invalid input for width or height.", WarningText(app.ErrInvalidSize))
	assert.Equal(t, "boom", WarningText(errors.New("boom")))
	assert.Equal(t, "Failed to read file: no data rows", ReadFailureText(dataset.ErrNoRows))
}

func TestDeleteConfirmText(t *testing.T) {
	msg := DeleteConfirmText([]string{"Plot number 1", "Plot number 3"})
	assert.Equal(t, "You are about to delete the following plots:\n\nPlot number 1\nPlot number 3\n\nDo you want to proceed?", msg)
}
