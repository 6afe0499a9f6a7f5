package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pictures")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Second call on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		breed    string
		expected string
	}{
		{
			name:     "typical image url",
			url:      "https://images.dog.ceo/breeds/beagle/n02088364_11136.jpg",
			breed:    "beagle",
			expected: "beagle-n02088364_11136.jpg",
		},
		{
			name:     "no breed prefix",
			url:      "https://img.test/photo.png",
			breed:    "",
			expected: "photo.png",
		},
		{
			name:     "missing extension gets default",
			url:      "https://img.test/photo",
			breed:    "pug",
			expected: "pug-photo.jpg",
		},
		{
			name:     "empty path falls back to placeholder",
			url:      "https://img.test/",
			breed:    "akita",
			expected: "akita-image.jpg",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := FilenameFromURL(test.url, test.breed)
			if result != test.expected {
				t.Errorf("FilenameFromURL(%q, %q) = %q, expected %q", test.url, test.breed, result, test.expected)
			}
		})
	}
}

func TestFilenameFromURL_Sanitized(t *testing.T) {
	result := FilenameFromURL("https://img.test/we?ird:name.jpg", "german shepherd")

	for _, forbidden := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", " "} {
		if strings.Contains(result, forbidden) {
			t.Errorf("Filename %q contains forbidden character %q", result, forbidden)
		}
	}
}

func TestFilenameFromURL_Truncated(t *testing.T) {
	longName := strings.Repeat("a", 300) + ".jpg"
	result := FilenameFromURL("https://img.test/"+longName, "breed")

	if len(result) > MaxFilenameLength {
		t.Errorf("Expected filename capped at %d characters, got %d", MaxFilenameLength, len(result))
	}
	if !strings.HasSuffix(result, ".jpg") {
		t.Errorf("Expected extension preserved after truncation, got %q", result)
	}
}
