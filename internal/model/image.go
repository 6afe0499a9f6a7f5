package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ImageEntry is a single gallery item: one image URL paired with the breed it
// was fetched for. Entries are immutable; the gallery replaces them wholesale
// on every selection change.
type ImageEntry struct {
	ID    string
	URL   string
	Breed string
}

// NewImageEntry creates an entry with a fresh ID for the given URL and breed.
func NewImageEntry(url, breed string) ImageEntry {
	return ImageEntry{
		ID:    generateEntryID(),
		URL:   url,
		Breed: breed,
	}
}

// generateEntryID generates a unique entry ID using UUID v7 for better
// uniqueness and time ordering.
func generateEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf("entry-%d", time.Now().UnixNano())
	}
	return "entry-" + id.String()
}
