// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"graph-plotter/internal/app"
	"graph-plotter/internal/dataset"
	"graph-plotter/internal/version"
	"graph-plotter/ui/dialogs"
	"graph-plotter/ui/panels"
	"graph-plotter/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const windowTitle = "Dynamic Graph Plotter"

// MainWindow is the primary application window: plot controls on the
// left, the scrolling column of panels on the right.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	board     *panels.PlotBoard
	selectAll *widget.Check
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(windowTitle)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	mw.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		mw.HandleDrop(uris)
	})

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.board = panels.NewPlotBoard(mw.state)
	mw.board.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")

	mw.selectAll = widget.NewCheck("Select All", func(checked bool) {
		mw.state.SelectAll(checked)
	})

	controls := container.NewVBox(
		widget.NewButton("Add Graph", mw.OnAddGraph),
		widget.NewButton("Delete Selected Graphs", mw.OnDeleteSelected),
		widget.NewButton("Combine Selected Graphs", mw.OnCombineSelected),
		widget.NewButton("Import from File", mw.OnImport),
		mw.selectAll,
	)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		container.NewPadded(controls),     // left
		nil,                               // right
		mw.board.Container(),              // center
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Import from File...", mw.OnImport),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	plotsMenu := fyne.NewMenu("Plots",
		fyne.NewMenuItem("Add Graph", mw.OnAddGraph),
		fyne.NewMenuItem("Combine Selected Graphs", mw.OnCombineSelected),
		fyne.NewMenuItem("Delete Selected Graphs", mw.OnDeleteSelected),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Select All", mw.OnSelectAllShortcut),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, plotsMenu, helpMenu))
}

// setupShortcuts binds Ctrl+A, Ctrl+N, Ctrl+D and Ctrl+I.
func (mw *MainWindow) setupShortcuts() {
	bind := func(key fyne.KeyName, fn func()) {
		mw.Canvas().AddShortcut(
			&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierControl},
			func(fyne.Shortcut) { fn() },
		)
	}
	bind(fyne.KeyA, mw.OnSelectAllShortcut)
	bind(fyne.KeyN, mw.OnAddGraph)
	bind(fyne.KeyD, mw.OnDeleteSelected)
	bind(fyne.KeyI, mw.OnImport)
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventPanelAdded, func(data interface{}) {
		if p, ok := data.(*app.Panel); ok {
			mw.updateStatus(fmt.Sprintf("Added %s (%d plots)", p.Title(), mw.state.Len()))
		}
	})

	mw.state.On(app.EventPanelsRemoved, func(data interface{}) {
		if removed, ok := data.([]*app.Panel); ok {
			mw.updateStatus(fmt.Sprintf("Deleted %d plot(s) (%d left)", len(removed), mw.state.Len()))
		}
	})
}

// Board returns the panel column.
func (mw *MainWindow) Board() *panels.PlotBoard {
	return mw.board
}

// SelectAllCheck returns the "Select All" checkbox.
func (mw *MainWindow) SelectAllCheck() *widget.Check {
	return mw.selectAll
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDir, filepath.Dir(filePath))
	if err := mw.prefs.SaveIfChanged(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// Action handlers

// OnAddGraph adds a panel of random data.
func (mw *MainWindow) OnAddGraph() {
	mw.state.AddRandom()
}

// OnSelectAllShortcut checks "Select All" and selects every panel.
func (mw *MainWindow) OnSelectAllShortcut() {
	mw.selectAll.SetChecked(true)
	mw.state.SelectAll(true)
}

// OnCombineSelected overlays the selected panels onto a new one.
func (mw *MainWindow) OnCombineSelected() {
	p, err := mw.state.Combine()
	if err != nil {
		log.Printf("Combine: %v", err)
		dialogs.ShowErrorWarning(err, mw.Window)
		return
	}
	log.Printf("Combined into plot %d", p.Number)
	mw.selectAll.SetChecked(false)
}

// OnDeleteSelected asks for confirmation and deletes the selected panels.
func (mw *MainWindow) OnDeleteSelected() {
	selected := mw.state.SelectedPanels()
	if len(selected) == 0 {
		return
	}
	labels := make([]string, len(selected))
	for i, p := range selected {
		labels[i] = p.Label()
	}
	dialogs.ConfirmWarning(dialogs.DeleteConfirmText(labels), mw.Window, mw.DeleteSelectedNow)
}

// DeleteSelectedNow deletes the selected panels without asking.
func (mw *MainWindow) DeleteSelectedNow() {
	mw.state.DeleteSelected()
	mw.selectAll.SetChecked(false)
}

// OnImport opens a CSV file chooser and imports the chosen file.
func (mw *MainWindow) OnImport() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		mw.ImportFile(reader.URI().Path())
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// HandleDrop imports the first dropped file if it is a CSV file.
func (mw *MainWindow) HandleDrop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	path := uris[0].Path()
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		dialogs.ShowWarning("Only CSV files are supported.", mw.Window)
		return
	}
	mw.ImportFile(path)
}

// ImportFile reads a table and shows the column selection dialog.
func (mw *MainWindow) ImportFile(path string) *dialogs.ImportDialog {
	t, err := dataset.Load(path)
	if err != nil {
		log.Printf("Failed to read %s: %v", path, err)
		dialogs.ShowWarning(dialogs.ReadFailureText(err), mw.Window)
		return nil
	}
	mw.saveLastDir(path)
	log.Printf("Read %s: %d rows, %d columns", path, t.Rows(), len(t.Columns))

	d := dialogs.NewImportDialog(t, mw.Window, func(columns []string, separate bool) {
		mw.importColumns(t, columns, separate)
	})
	d.Show()
	return d
}

func (mw *MainWindow) importColumns(t *dataset.Table, columns []string, separate bool) {
	if _, err := mw.state.Import(t, columns, separate); err != nil {
		log.Printf("Import: %v", err)
		dialogs.ShowErrorWarning(err, mw.Window)
		return
	}
	mw.updateStatus(fmt.Sprintf("Imported %d column(s) from %s", len(columns), filepath.Base(t.Path)))
}

// SavePreferences writes the window size and any changed preferences.
func (mw *MainWindow) SavePreferences() {
	if size := mw.Canvas().Size(); size.Width > 0 && size.Height > 0 {
		mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
		mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	}
	if err := mw.prefs.SaveIfChanged(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+windowTitle,
		fmt.Sprintf("%s v%s\n\n"+
			"Plot columns of delimited data files as line charts.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			windowTitle, version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
