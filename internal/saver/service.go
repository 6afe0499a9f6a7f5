package saver

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/woofget/breed-gallery/internal/model"
	"github.com/woofget/breed-gallery/internal/platform"
)

const (
	// TaskIDPrefix prefixes every save task ID
	TaskIDPrefix = "save-"

	// DefaultFilePermissions for written image files
	DefaultFilePermissions = 0644

	// SaveTimeout bounds a single image download
	SaveTimeout = 60 * time.Second
)

// Service handles save-to-disk operations
type Service struct {
	fetcher    ImageFetcher
	tasks      map[string]*model.SaveTask
	tasksMutex sync.RWMutex
	saveDir    string
	onUpdate   func(*model.SaveTask) // callback for UI updates
}

// NewService creates a new save service writing into saveDir
func NewService(fetcher ImageFetcher, saveDir string) *Service {
	return &Service{
		fetcher: fetcher,
		tasks:   make(map[string]*model.SaveTask),
		saveDir: saveDir,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.SaveTask)) {
	s.onUpdate = callback
}

// SetSaveDirectory sets the directory new tasks write into
func (s *Service) SetSaveDirectory(dir string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.saveDir = dir
}

// SaveImage starts saving the image at url to the save directory. A second
// save of the same URL is rejected while the first is still active.
func (s *Service) SaveImage(url, breed string) (*model.SaveTask, error) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	for _, task := range s.tasks {
		if task.URL == url && task.Status.IsActive() {
			return nil, fmt.Errorf("save already in progress for URL: %s", url)
		}
	}

	outputPath := filepath.Join(s.saveDir, platform.FilenameFromURL(url, breed))

	task := &model.SaveTask{
		ID:         generateTaskID(),
		URL:        url,
		Breed:      breed,
		OutputPath: outputPath,
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}

	s.tasks[task.ID] = task

	go s.runTask(task)

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(taskID string) (*model.SaveTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	return task, exists
}

// GetAllTasks returns all tasks
func (s *Service) GetAllTasks() []*model.SaveTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.SaveTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	return tasks
}

// runTask downloads the image and writes it to disk
func (s *Service) runTask(task *model.SaveTask) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusSaving
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	ctx, cancel := context.WithTimeout(context.Background(), SaveTimeout)
	defer cancel()

	data, err := s.fetcher.FetchImage(ctx, task.URL)
	if err != nil {
		s.setTaskError(task, err)
		return
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(task.OutputPath)); err != nil {
		s.setTaskError(task, err)
		return
	}

	if err := os.WriteFile(task.OutputPath, data, DefaultFilePermissions); err != nil {
		s.setTaskError(task, err)
		return
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	log.Printf("Saved image %s to %s", task.URL, task.OutputPath)
	s.notifyUpdate(task)
}

// setTaskError marks the task as failed
func (s *Service) setTaskError(task *model.SaveTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	log.Printf("Save failed for %s: %v", task.URL, err)
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.SaveTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better
// uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
