package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/benkyoapp/benkyo-controls/internal/config"
	"github.com/benkyoapp/benkyo-controls/internal/export"
	"github.com/benkyoapp/benkyo-controls/internal/store"
	"github.com/benkyoapp/benkyo-controls/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.benkyoapp.benkyo-controls"
	AppName = "Benkyo Controls"

	WindowWidth  = 760
	WindowHeight = 620
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

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

	myWindow.SetOnClosed(func() {
		if err := storeSvc.Close(); err != nil {
			log.Printf("failed to close store: %v", err)
		}
	})

	// Show and run
	myWindow.ShowAndRun()
}
