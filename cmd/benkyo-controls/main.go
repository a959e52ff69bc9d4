package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/benkyoapp/benkyo-controls/internal/config"
	"github.com/benkyoapp/benkyo-controls/internal/export"
	"github.com/benkyoapp/benkyo-controls/internal/store"
	"github.com/benkyoapp/benkyo-controls/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.benkyoapp.benkyo-controls")
	myWindow := myApp.NewWindow("Benkyo Controls")
	myWindow.Resize(fyne.NewSize(760, 620))

	// Initialize services
	settings := config.NewSettings(myApp)
	dataDir := settings.GetDataDirectory()

	storeSvc, err := store.NewService(dataDir)
	if err != nil {
		log.Fatalf("failed to open data dir %s: %v", dataDir, err)
	}

	exportSvc := export.NewService(storeSvc, dataDir)

	// Create and setup UI. Callbacks must be wired before the watcher starts.
	ui.NewRootUI(myWindow, myApp, storeSvc, exportSvc)

	if err := storeSvc.StartWatching(); err != nil {
		log.Printf("file watching unavailable: %v", err)
	}

	// Show and run
	myWindow.ShowAndRun()
}
