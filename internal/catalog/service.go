package catalog

import (
	"context"
	"log"
	"sync"

	"github.com/woofget/breed-gallery/internal/model"
)

// Service loads and holds the breed catalog. A successful load is performed
// at most once per session; the catalog is immutable afterwards. A failed
// load leaves the catalog empty and may be retried.
type Service struct {
	source BreedSource

	mu       sync.RWMutex
	breeds   []string
	loaded   bool
	lastErr  error
	fetching bool
}

// NewService creates a new catalog service
func NewService(source BreedSource) *Service {
	return &Service{source: source}
}

// Load fetches the breed catalog. If a previous call already succeeded, Load
// is a no-op. Concurrent calls while a fetch is in flight return the last
// known error without issuing a second request.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	if s.fetching {
		err := s.lastErr
		s.mu.Unlock()
		return err
	}
	s.fetching = true
	s.mu.Unlock()

	breeds, err := s.source.ListBreeds(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetching = false

	if err != nil {
		log.Printf("Catalog load failed: %v", err)
		s.lastErr = err
		return err
	}

	s.breeds = breeds
	s.loaded = true
	s.lastErr = nil
	log.Printf("Catalog loaded with %d breeds", len(breeds))
	return nil
}

// Breeds returns the sorted breed list, or an empty slice before a
// successful load. The returned slice is a copy.
func (s *Service) Breeds() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.breeds))
	copy(result, s.breeds)
	return result
}

// Filter returns the breeds matching term as a case-insensitive substring.
// It is a pure view over the catalog and never mutates it.
func (s *Service) Filter(term string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.FilterBreeds(s.breeds, term)
}

// Loaded reports whether the catalog has been successfully loaded.
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LastError returns the error from the most recent failed load, or nil.
func (s *Service) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
