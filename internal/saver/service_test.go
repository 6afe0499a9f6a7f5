package saver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/woofget/breed-gallery/internal/model"
)

// fakeFetcher serves canned bytes or an error.
type fakeFetcher struct {
	data  []byte
	err   error
	gate  chan struct{}
	mu    sync.Mutex
	calls int
}

func (f *fakeFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

// collectUpdates buffers task updates on a channel.
func collectUpdates(service *Service) chan *model.SaveTask {
	updates := make(chan *model.SaveTask, 16)
	service.SetUpdateCallback(func(task *model.SaveTask) {
		updates <- task
	})
	return updates
}

// waitForFinished reads updates until the task reaches a finished status.
func waitForFinished(t *testing.T, updates chan *model.SaveTask) *model.SaveTask {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case task := <-updates:
			if task.Status.IsFinished() {
				return task
			}
		case <-deadline:
			t.Fatal("Timed out waiting for task to finish")
		}
	}
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{data: []byte{0xFF, 0xD8, 0xFF, 0xE0}}
	service := NewService(fetcher, dir)
	updates := collectUpdates(service)

	task, err := service.SaveImage("https://img.test/beagle/photo.jpg", "beagle")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Breed != "beagle" {
		t.Errorf("Expected breed beagle, got %s", task.Breed)
	}

	finished := waitForFinished(t, updates)
	if finished.Status != model.TaskStatusCompleted {
		t.Fatalf("Expected Completed, got %s (%s)", finished.Status, finished.LastError)
	}

	data, err := os.ReadFile(finished.OutputPath)
	if err != nil {
		t.Fatalf("Expected output file to exist: %v", err)
	}
	if len(data) != 4 {
		t.Errorf("Expected 4 bytes written, got %d", len(data))
	}
	if filepath.Dir(finished.OutputPath) != dir {
		t.Errorf("Expected file in %s, got %s", dir, finished.OutputPath)
	}
}

func TestSaveImage_FetchFailure(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{err: fmt.Errorf("connection refused")}
	service := NewService(fetcher, dir)
	updates := collectUpdates(service)

	_, err := service.SaveImage("https://img.test/akita/photo.jpg", "akita")
	if err != nil {
		t.Fatalf("Expected no error from SaveImage, got %v", err)
	}

	finished := waitForFinished(t, updates)
	if finished.Status != model.TaskStatusError {
		t.Fatalf("Expected Error status, got %s", finished.Status)
	}
	if finished.LastError == "" {
		t.Error("Expected LastError to be set")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read save dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no files written on failure, got %d", len(entries))
	}
}

func TestSaveImage_DuplicateInFlight(t *testing.T) {
	dir := t.TempDir()
	fetcher := &fakeFetcher{data: []byte{1}, gate: make(chan struct{})}
	service := NewService(fetcher, dir)
	updates := collectUpdates(service)

	url := "https://img.test/chow/photo.jpg"
	if _, err := service.SaveImage(url, "chow"); err != nil {
		t.Fatalf("First save should start, got %v", err)
	}

	// Wait for the task to become active before attempting the duplicate
	deadline := time.After(5 * time.Second)
	for {
		select {
		case task := <-updates:
			if task.Status.IsActive() {
				goto active
			}
		case <-deadline:
			t.Fatal("Timed out waiting for task to become active")
		}
	}
active:
	if _, err := service.SaveImage(url, "chow"); err == nil {
		t.Error("Expected duplicate in-flight save to be rejected")
	}

	close(fetcher.gate)
	waitForFinished(t, updates)
}

func TestGetTask(t *testing.T) {
	service := NewService(&fakeFetcher{data: []byte{1}}, t.TempDir())
	updates := collectUpdates(service)

	task, err := service.SaveImage("https://img.test/pug/photo.jpg", "pug")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	retrieved, exists := service.GetTask(task.ID)
	if !exists {
		t.Fatal("Expected task to exist")
	}
	if retrieved.ID != task.ID {
		t.Errorf("Expected task ID %s, got %s", task.ID, retrieved.ID)
	}

	_, exists = service.GetTask("missing-id")
	if exists {
		t.Error("Expected missing task to not exist")
	}

	waitForFinished(t, updates)
}
