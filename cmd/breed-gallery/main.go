package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/woofget/breed-gallery/internal/api"
	"github.com/woofget/breed-gallery/internal/catalog"
	"github.com/woofget/breed-gallery/internal/config"
	"github.com/woofget/breed-gallery/internal/gallery"
	"github.com/woofget/breed-gallery/internal/saver"
	"github.com/woofget/breed-gallery/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.woofget.breed-gallery")
	myWindow := myApp.NewWindow("Breed Gallery")
	myWindow.Resize(fyne.NewSize(1000, 700))

	settings := config.NewSettings(myApp)
	client := api.NewClient()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp,
		catalog.NewService(client),
		gallery.NewService(client),
		saver.NewService(client, settings.GetSaveDirectory()),
		client,
	)

	// Show and run
	myWindow.ShowAndRun()
}
