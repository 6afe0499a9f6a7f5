package model

// GalleryStatus represents the state of the gallery controller
type GalleryStatus string

const (
	// GalleryIdle means no breeds are selected and the gallery is empty
	GalleryIdle GalleryStatus = "Idle"

	// GalleryLoading means image fetches for the current selection are in flight
	GalleryLoading GalleryStatus = "Loading"

	// GalleryReady means the gallery holds images for the current selection
	GalleryReady GalleryStatus = "Ready"

	// GalleryError means the last fetch batch failed; the previous gallery
	// content is kept on screen
	GalleryError GalleryStatus = "Error"
)

// String returns the string representation of GalleryStatus
func (gs GalleryStatus) String() string {
	return string(gs)
}

// IsActive returns true if fetches are in flight
func (gs GalleryStatus) IsActive() bool {
	return gs == GalleryLoading
}

// IsSettled returns true if the gallery is in a stable state (idle, ready, or error)
func (gs GalleryStatus) IsSettled() bool {
	return gs == GalleryIdle || gs == GalleryReady || gs == GalleryError
}
