package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/woofget/breed-gallery/internal/api"
	"github.com/woofget/breed-gallery/internal/catalog"
	"github.com/woofget/breed-gallery/internal/config"
	"github.com/woofget/breed-gallery/internal/gallery"
	"github.com/woofget/breed-gallery/internal/platform"
	"github.com/woofget/breed-gallery/internal/saver"
	"github.com/woofget/breed-gallery/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.woofget.breed-gallery"
	AppName = "Breed Gallery"

	WindowWidth  = 1000
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("Breed Gallery v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Initialize settings and apply the persisted theme
	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewTheme(settings.GetTheme()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	saveDir := settings.GetSaveDirectory()
	if err := platform.CreateDirectoryIfNotExists(saveDir); err != nil {
		fmt.Printf("failed to ensure save dir: %v\n", err)
	}

	client := api.NewClient()
	catalogSvc := catalog.NewService(client)
	gallerySvc := gallery.NewService(client)
	saverSvc := saver.NewService(client, saveDir)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, catalogSvc, gallerySvc, saverSvc, client)

	// Show and run
	myWindow.ShowAndRun()
}
