package gallery

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/woofget/breed-gallery/internal/model"
)

// fakeImages is a scripted ImageSource. Per-breed errors and per-breed
// blocking gates make fetch interleavings deterministic in tests.
type fakeImages struct {
	mu     sync.Mutex
	errs   map[string]error
	gates  map[string]chan struct{}
	calls  int
	breeds []string
}

func newFakeImages() *fakeImages {
	return &fakeImages{
		errs:  make(map[string]error),
		gates: make(map[string]chan struct{}),
	}
}

func (f *fakeImages) RandomImages(ctx context.Context, breed string, count int) ([]string, error) {
	f.mu.Lock()
	f.calls++
	f.breeds = append(f.breeds, breed)
	gate := f.gates[breed]
	err := f.errs[breed]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}

	urls := make([]string, count)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://img.test/%s/%d.jpg", breed, i)
	}
	return urls, nil
}

func (f *fakeImages) failBreed(breed string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[breed] = err
}

func (f *fakeImages) blockBreed(breed string) chan struct{} {
	gate := make(chan struct{})
	f.mu.Lock()
	f.gates[breed] = gate
	f.mu.Unlock()
	return gate
}

func (f *fakeImages) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// watchUpdates registers an update callback that forwards snapshots on a
// channel.
func watchUpdates(service *Service) chan Snapshot {
	updates := make(chan Snapshot, 32)
	service.SetUpdateCallback(func(snapshot Snapshot) {
		updates <- snapshot
	})
	return updates
}

// waitForStatus reads updates until one with the wanted status arrives.
func waitForStatus(t *testing.T, updates chan Snapshot, status model.GalleryStatus) Snapshot {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case snapshot := <-updates:
			if snapshot.Status == status {
				return snapshot
			}
		case <-deadline:
			t.Fatalf("Timed out waiting for status %s", status)
		}
	}
}

func TestNewService(t *testing.T) {
	service := NewService(newFakeImages())

	snapshot := service.Snapshot()
	if snapshot.Status != model.GalleryIdle {
		t.Errorf("Expected initial status Idle, got %s", snapshot.Status)
	}
	if len(snapshot.Entries) != 0 {
		t.Errorf("Expected empty gallery, got %d entries", len(snapshot.Entries))
	}
	if service.imagesPerBreed != DefaultImagesPerBreed {
		t.Errorf("Expected imagesPerBreed %d, got %d", DefaultImagesPerBreed, service.imagesPerBreed)
	}
}

func TestToggleBreed_SingleBreedScenario(t *testing.T) {
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	service.ToggleBreed("beagle")

	loading := waitForStatus(t, updates, model.GalleryLoading)
	if len(loading.Breeds) != 1 || loading.Breeds[0] != "beagle" {
		t.Errorf("Expected selection [beagle], got %v", loading.Breeds)
	}

	ready := waitForStatus(t, updates, model.GalleryReady)
	if len(ready.Entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(ready.Entries))
	}
	for _, entry := range ready.Entries {
		if entry.Breed != "beagle" {
			t.Errorf("Expected all entries for beagle, got %s", entry.Breed)
		}
		if entry.URL == "" {
			t.Error("Expected entry URL to be set")
		}
	}
}

func TestGallery_EntryCountPerSelection(t *testing.T) {
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	service.ToggleBreed("akita")
	waitForStatus(t, updates, model.GalleryReady)

	service.ToggleBreed("beagle")
	ready := waitForStatus(t, updates, model.GalleryReady)

	if len(ready.Entries) != 6 {
		t.Fatalf("Expected 3*|S| = 6 entries, got %d", len(ready.Entries))
	}

	// Entries follow selection insertion order: akita first, beagle second
	for i := 0; i < 3; i++ {
		if ready.Entries[i].Breed != "akita" {
			t.Errorf("Entry %d: expected akita, got %s", i, ready.Entries[i].Breed)
		}
	}
	for i := 3; i < 6; i++ {
		if ready.Entries[i].Breed != "beagle" {
			t.Errorf("Entry %d: expected beagle, got %s", i, ready.Entries[i].Breed)
		}
	}
}

func TestToggleBreed_Idempotence(t *testing.T) {
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	service.ToggleBreed("husky")
	waitForStatus(t, updates, model.GalleryReady)

	service.ToggleBreed("husky")
	settled := waitForStatus(t, updates, model.GalleryIdle)

	if len(settled.Breeds) != 0 {
		t.Errorf("Expected empty selection after double toggle, got %v", settled.Breeds)
	}
	if len(settled.Entries) != 0 {
		t.Errorf("Expected empty gallery after double toggle, got %d entries", len(settled.Entries))
	}
}

func TestClearSelection_ImmediateIdleWithoutFetch(t *testing.T) {
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	service.ToggleBreed("akita")
	waitForStatus(t, updates, model.GalleryReady)
	callsAfterReady := images.callCount()

	service.ClearSelection()
	idle := waitForStatus(t, updates, model.GalleryIdle)

	if len(idle.Entries) != 0 {
		t.Errorf("Expected empty gallery after clear, got %d entries", len(idle.Entries))
	}
	if images.callCount() != callsAfterReady {
		t.Errorf("Clear must not issue fetches, call count went %d -> %d", callsAfterReady, images.callCount())
	}
}

func TestLoadRandomSelection(t *testing.T) {
	catalog := []string{"akita", "beagle", "chow", "husky", "pug"}
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	service.ToggleBreed("pug")
	waitForStatus(t, updates, model.GalleryReady)

	service.LoadRandomSelection(catalog)
	ready := waitForStatus(t, updates, model.GalleryReady)

	if len(ready.Breeds) != RandomPickCount {
		t.Fatalf("Expected %d random breeds, got %d", RandomPickCount, len(ready.Breeds))
	}

	seen := make(map[string]bool)
	for _, breed := range ready.Breeds {
		if seen[breed] {
			t.Errorf("Duplicate breed in random selection: %s", breed)
		}
		seen[breed] = true

		found := false
		for _, candidate := range catalog {
			if candidate == breed {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Random breed %s not in catalog", breed)
		}
	}

	if len(ready.Entries) != RandomPickCount*DefaultImagesPerBreed {
		t.Errorf("Expected %d entries, got %d", RandomPickCount*DefaultImagesPerBreed, len(ready.Entries))
	}
}

func TestLoadRandomSelection_SmallCatalog(t *testing.T) {
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	service.LoadRandomSelection([]string{"akita", "beagle"})
	ready := waitForStatus(t, updates, model.GalleryReady)

	if len(ready.Breeds) != 2 {
		t.Errorf("Expected min(3, |Catalog|) = 2 breeds, got %d", len(ready.Breeds))
	}
}

func TestFetchFailure_KeepsPreviousGallery(t *testing.T) {
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	service.ToggleBreed("akita")
	ready := waitForStatus(t, updates, model.GalleryReady)
	if len(ready.Entries) != 3 {
		t.Fatalf("Expected 3 entries before failure, got %d", len(ready.Entries))
	}

	images.failBreed("beagle", fmt.Errorf("connection refused"))
	service.ToggleBreed("beagle")

	failed := waitForStatus(t, updates, model.GalleryError)
	if failed.Err == nil {
		t.Error("Expected snapshot error to be set")
	}
	if len(failed.Entries) != 3 {
		t.Errorf("Previous gallery must survive a failed batch, got %d entries", len(failed.Entries))
	}
	for _, entry := range failed.Entries {
		if entry.Breed != "akita" {
			t.Errorf("Expected surviving entries for akita, got %s", entry.Breed)
		}
	}
}

func TestStaleBatchIsDiscarded(t *testing.T) {
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	// First selection S1 blocks in flight.
	gate := images.blockBreed("akita")
	service.ToggleBreed("akita")
	waitForStatus(t, updates, model.GalleryLoading)

	// Second selection S2 supersedes it and completes immediately.
	service.ToggleBreed("akita") // removes akita, selection empty
	service.ToggleBreed("beagle")
	ready := waitForStatus(t, updates, model.GalleryReady)

	// Now let the stale S1 batch resolve.
	close(gate)

	// The committed gallery must correspond to S2, never a mix.
	deadline := time.After(500 * time.Millisecond)
	final := ready
	for {
		select {
		case snapshot := <-updates:
			final = snapshot
		case <-deadline:
			goto done
		}
	}
done:
	if final.Status != model.GalleryReady {
		t.Fatalf("Expected final status Ready, got %s", final.Status)
	}
	for _, entry := range final.Entries {
		if entry.Breed != "beagle" {
			t.Errorf("Stale akita result leaked into gallery: %v", entry)
		}
	}
	if len(final.Entries) != 3 {
		t.Errorf("Expected 3 beagle entries, got %d", len(final.Entries))
	}
}

func TestSetSearchFilter_DoesNotTouchSelectionOrGallery(t *testing.T) {
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	service.ToggleBreed("labrador")
	ready := waitForStatus(t, updates, model.GalleryReady)
	callsAfterReady := images.callCount()

	service.SetSearchFilter("lab")

	if service.SearchFilter() != "lab" {
		t.Errorf("Expected filter to be stored, got %q", service.SearchFilter())
	}
	if images.callCount() != callsAfterReady {
		t.Error("Setting the filter must not issue fetches")
	}

	snapshot := service.Snapshot()
	if len(snapshot.Breeds) != len(ready.Breeds) || len(snapshot.Entries) != len(ready.Entries) {
		t.Error("Setting the filter must not change selection or gallery")
	}

	visible := service.VisibleBreeds([]string{"affenpinscher", "labrador"})
	if len(visible) != 1 || visible[0] != "labrador" {
		t.Errorf("VisibleBreeds = %v, expected [labrador]", visible)
	}
}

func TestSetImagesPerBreed(t *testing.T) {
	images := newFakeImages()
	service := NewService(images)
	updates := watchUpdates(service)

	service.SetImagesPerBreed(5)
	service.ToggleBreed("akita")
	ready := waitForStatus(t, updates, model.GalleryReady)

	if len(ready.Entries) != 5 {
		t.Errorf("Expected 5 entries, got %d", len(ready.Entries))
	}

	// Clamping
	service.SetImagesPerBreed(0)
	if service.imagesPerBreed != MinImagesPerBreed {
		t.Errorf("Expected clamp to %d, got %d", MinImagesPerBreed, service.imagesPerBreed)
	}
	service.SetImagesPerBreed(100)
	if service.imagesPerBreed != MaxImagesPerBreed {
		t.Errorf("Expected clamp to %d, got %d", MaxImagesPerBreed, service.imagesPerBreed)
	}
}
