package gallery

import "context"

// ImageSource provides random image URLs for a breed.
type ImageSource interface {
	RandomImages(ctx context.Context, breed string, count int) ([]string, error)
}

// Controller defines the interface the UI drives the gallery through.
type Controller interface {
	SetUpdateCallback(func(Snapshot))
	ToggleBreed(name string)
	LoadRandomSelection(catalog []string)
	ClearSelection()
	SetSearchFilter(term string)
	SearchFilter() string
	VisibleBreeds(catalog []string) []string
	SelectedBreeds() []string
	IsSelected(name string) bool
	Snapshot() Snapshot
	SetImagesPerBreed(count int)
}
