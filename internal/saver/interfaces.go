package saver

import (
	"context"

	"github.com/woofget/breed-gallery/internal/model"
)

// ImageFetcher downloads the raw bytes of an image URL.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// Saver defines the interface for the save service.
type Saver interface {
	SetUpdateCallback(func(*model.SaveTask))
	SaveImage(url, breed string) (*model.SaveTask, error)
	GetTask(taskID string) (*model.SaveTask, bool)
	GetAllTasks() []*model.SaveTask
	SetSaveDirectory(dir string)
}
