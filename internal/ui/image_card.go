package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/woofget/breed-gallery/internal/model"
)

// ImageCard is a single gallery cell: the image, the breed it belongs to, and
// a save button. Tapping the card opens the full image in the browser.
type ImageCard struct {
	widget.BaseWidget

	entry  model.ImageEntry
	loader *imageLoader

	// UI components
	image      *canvas.Image
	breedLabel *widget.Label
	saveBtn    *widget.Button

	// Callbacks
	onSave func(url, breed string)
	onOpen func(url string)
}

// NewImageCard creates a card for the given gallery entry and starts loading
// its image.
func NewImageCard(entry model.ImageEntry, loader *imageLoader) *ImageCard {
	ic := &ImageCard{
		entry:  entry,
		loader: loader,
	}
	ic.ExtendBaseWidget(ic)

	ic.image = canvas.NewImageFromResource(nil)
	ic.image.FillMode = canvas.ImageFillContain
	ic.image.SetMinSize(fyne.NewSize(GalleryCellWidth-ImageCardPadding, GalleryCellHeight-BreedRowHeight))

	ic.breedLabel = widget.NewLabel(entry.Breed)
	ic.breedLabel.TextStyle = fyne.TextStyle{Bold: true}
	ic.breedLabel.Truncation = fyne.TextTruncateEllipsis

	ic.saveBtn = widget.NewButton(IconSave, func() {
		if ic.onSave != nil {
			ic.onSave(ic.entry.URL, ic.entry.Breed)
		}
	})
	ic.saveBtn.Importance = widget.LowImportance

	ic.loader.Load(entry.URL, func(resource fyne.Resource) {
		ic.image.Resource = resource
		ic.image.Refresh()
	})

	return ic
}

// SetCallbacks sets the action callbacks
func (ic *ImageCard) SetCallbacks(onSave func(url, breed string), onOpen func(url string)) {
	ic.onSave = onSave
	ic.onOpen = onOpen
}

// Tapped opens the full-size image
func (ic *ImageCard) Tapped(_ *fyne.PointEvent) {
	if ic.onOpen != nil {
		ic.onOpen(ic.entry.URL)
	}
}

// CreateRenderer creates the widget renderer
func (ic *ImageCard) CreateRenderer() fyne.WidgetRenderer {
	bottom := container.NewBorder(nil, nil, nil, ic.saveBtn, ic.breedLabel)
	content := container.NewBorder(nil, bottom, nil, nil, ic.image)

	log.Printf("Created image card for %s (%s)", ic.entry.Breed, ic.entry.ID)
	return widget.NewSimpleRenderer(content)
}
