package catalog

import "context"

// BreedSource provides the remote breed catalog.
type BreedSource interface {
	ListBreeds(ctx context.Context) ([]string, error)
}
