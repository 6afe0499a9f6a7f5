package gallery

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/woofget/breed-gallery/internal/model"
)

const (
	// RandomPickCount is the number of breeds a random pick selects
	RandomPickCount = 3

	// DefaultImagesPerBreed is the number of image URLs fetched per breed
	DefaultImagesPerBreed = 3

	// MinImagesPerBreed and MaxImagesPerBreed bound the configurable count
	MinImagesPerBreed = 1
	MaxImagesPerBreed = 10
)

// Snapshot is an immutable view of the gallery state pushed to the UI after
// every committed change. Err is set only while Status is GalleryError.
type Snapshot struct {
	Status  model.GalleryStatus
	Breeds  []string
	Entries []model.ImageEntry
	Err     error
}

// Service owns the selection set, the search filter, and the displayed image
// list. All mutations go through its methods; fetch results are committed
// only when their generation is still current.
type Service struct {
	images ImageSource

	mu             sync.Mutex
	selection      *model.Selection
	entries        []model.ImageEntry
	status         model.GalleryStatus
	lastErr        error
	generation     uint64
	filter         string
	imagesPerBreed int
	rng            *rand.Rand
	onUpdate       func(Snapshot)
}

// NewService creates a new gallery service
func NewService(images ImageSource) *Service {
	return &Service{
		images:         images,
		selection:      model.NewSelection(),
		status:         model.GalleryIdle,
		imagesPerBreed: DefaultImagesPerBreed,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetUpdateCallback sets the callback invoked after every committed state
// change. The callback runs on service goroutines; UI callers must marshal
// onto the UI thread themselves.
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetImagesPerBreed sets how many image URLs are fetched per selected breed.
// Takes effect on the next recompute.
func (s *Service) SetImagesPerBreed(count int) {
	if count < MinImagesPerBreed {
		count = MinImagesPerBreed
	}
	if count > MaxImagesPerBreed {
		count = MaxImagesPerBreed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.imagesPerBreed = count
}

// ToggleBreed adds name to the selection if absent and removes it otherwise.
// Either way a full gallery recompute is issued.
func (s *Service) ToggleBreed(name string) {
	s.mu.Lock()
	selected := s.selection.Toggle(name)
	snapshot, b := s.recomputeLocked()
	s.mu.Unlock()

	log.Printf("Toggled breed %s (selected=%v)", name, selected)
	s.afterMutation(snapshot, b)
}

// LoadRandomSelection replaces the whole selection with a uniform sample of
// up to RandomPickCount distinct breeds from the catalog. Any prior selection
// is discarded.
func (s *Service) LoadRandomSelection(catalog []string) {
	s.mu.Lock()
	picked := model.SampleBreeds(catalog, RandomPickCount, s.rng)
	s.selection.Replace(picked)
	snapshot, b := s.recomputeLocked()
	s.mu.Unlock()

	log.Printf("Random selection: %v", picked)
	s.afterMutation(snapshot, b)
}

// ClearSelection removes all selected breeds and empties the gallery
// immediately without issuing any fetch.
func (s *Service) ClearSelection() {
	s.mu.Lock()
	s.selection.Clear()
	snapshot, b := s.recomputeLocked()
	s.mu.Unlock()

	s.afterMutation(snapshot, b)
}

// SetSearchFilter replaces the search filter term. The filter only affects
// which breeds the picker shows; selection and gallery are untouched.
func (s *Service) SetSearchFilter(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = term
}

// SearchFilter returns the current filter term.
func (s *Service) SearchFilter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// VisibleBreeds applies the current search filter to the given catalog.
func (s *Service) VisibleBreeds(catalog []string) []string {
	s.mu.Lock()
	term := s.filter
	s.mu.Unlock()

	return model.FilterBreeds(catalog, term)
}

// SelectedBreeds returns the selected breeds in insertion order.
func (s *Service) SelectedBreeds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Names()
}

// IsSelected reports whether the breed is currently selected.
func (s *Service) IsSelected(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Contains(name)
}

// Snapshot returns the current gallery state.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// batch describes one recompute invocation: the generation it was issued
// under and the selection it must fetch for.
type batch struct {
	generation uint64
	names      []string
	count      int
}

// recomputeLocked starts a new gallery computation for the current selection.
// It bumps the generation so that any in-flight fetch from an older selection
// is discarded at commit time. Must be called with the mutex held. Returns
// the snapshot to publish and, when a fetch is needed, the batch to launch.
func (s *Service) recomputeLocked() (Snapshot, *batch) {
	s.generation++

	if s.selection.Len() == 0 {
		s.entries = nil
		s.status = model.GalleryIdle
		s.lastErr = nil
		return s.snapshotLocked(), nil
	}

	s.status = model.GalleryLoading
	return s.snapshotLocked(), &batch{
		generation: s.generation,
		names:      s.selection.Names(),
		count:      s.imagesPerBreed,
	}
}

// afterMutation publishes the post-mutation snapshot and launches the fetch
// batch captured by the mutation, if any.
func (s *Service) afterMutation(snapshot Snapshot, b *batch) {
	s.notify(snapshot)
	if b != nil {
		go s.fetchBatch(b.generation, b.names, b.count)
	}
}

// fetchBatch fetches images for every breed concurrently and commits the
// merged result if the generation is still current. The join is
// all-or-nothing: one failed breed fails the whole batch and the previous
// gallery content stays on screen.
func (s *Service) fetchBatch(generation uint64, names []string, count int) {
	results := make([][]string, len(names))

	group, ctx := errgroup.WithContext(context.Background())
	for i, name := range names {
		group.Go(func() error {
			urls, err := s.images.RandomImages(ctx, name, count)
			if err != nil {
				return err
			}
			results[i] = urls
			return nil
		})
	}
	err := group.Wait()

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		log.Printf("Discarding stale fetch batch (generation %d, current %d)", generation, s.generation)
		return
	}

	if err != nil {
		// Keep the previous entries so a transient failure does not blank
		// the gallery.
		s.status = model.GalleryError
		s.lastErr = err
		log.Printf("Gallery fetch batch failed: %v", err)
	} else {
		entries := make([]model.ImageEntry, 0, len(names)*count)
		for i, name := range names {
			for _, url := range results[i] {
				entries = append(entries, model.NewImageEntry(url, name))
			}
		}
		s.entries = entries
		s.status = model.GalleryReady
		s.lastErr = nil
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
}

// snapshotLocked builds a copy of the current state. Must be called with the
// mutex held.
func (s *Service) snapshotLocked() Snapshot {
	entries := make([]model.ImageEntry, len(s.entries))
	copy(entries, s.entries)

	return Snapshot{
		Status:  s.status,
		Breeds:  s.selection.Names(),
		Entries: entries,
		Err:     s.lastErr,
	}
}

// notify calls the update callback if set
func (s *Service) notify(snapshot Snapshot) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
