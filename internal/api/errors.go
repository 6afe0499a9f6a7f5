package api

import "fmt"

// ErrorKind distinguishes which external endpoint a fetch failure came from.
type ErrorKind string

const (
	// ErrorKindCatalog marks failures of the breed catalog endpoint
	ErrorKindCatalog ErrorKind = "catalog"

	// ErrorKindImage marks failures of the per-breed image endpoint
	ErrorKindImage ErrorKind = "image"
)

// FetchError describes a failed request against one of the remote endpoints.
// StatusCode is zero when the request never produced a response.
type FetchError struct {
	Kind       ErrorKind
	Breed      string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	switch {
	case e.Kind == ErrorKindImage && e.Breed != "":
		return fmt.Sprintf("image fetch for breed %q failed: %v", e.Breed, e.Err)
	case e.Kind == ErrorKindCatalog:
		return fmt.Sprintf("catalog fetch failed: %v", e.Err)
	default:
		return fmt.Sprintf("%s fetch failed: %v", e.Kind, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}

func newCatalogError(statusCode int, err error) *FetchError {
	return &FetchError{Kind: ErrorKindCatalog, StatusCode: statusCode, Err: err}
}

func newImageError(breed string, statusCode int, err error) *FetchError {
	return &FetchError{Kind: ErrorKindImage, Breed: breed, StatusCode: statusCode, Err: err}
}
