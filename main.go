// Package main provides the entry point for the graph plotter application.
package main

import (
	"log"
	"os"

	"graph-plotter/internal/app"
	"graph-plotter/internal/version"
	"graph-plotter/ui/mainwindow"
	"graph-plotter/ui/prefs"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	appID         = "io.github.graph-plotter"
	appTitle      = "Dynamic Graph Plotter"
	defaultWidth  = 1200
	defaultHeight = 800
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.PlotterTheme{})

	appPrefs := prefs.Load()
	log.Printf("Preferences: %s", appPrefs.Path())

	state := app.NewState(appPrefs.Settings())
	win := mainwindow.New(fyneApp, state, appPrefs)
	win.Resize(fyne.NewSize(
		float32(appPrefs.FloatWithFallback(prefs.KeyWindowWidth, defaultWidth)),
		float32(appPrefs.FloatWithFallback(prefs.KeyWindowHeight, defaultHeight)),
	))
	win.SetOnClosed(win.SavePreferences)

	// Files named on the command line are imported at startup
	for _, path := range os.Args[1:] {
		win.ImportFile(path)
	}

	win.ShowAndRun()
}
