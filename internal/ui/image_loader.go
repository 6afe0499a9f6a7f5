package ui

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"github.com/patrickmn/go-cache"
)

// Image load timeout
const (
	imageLoadTimeout = 30 * time.Second
)

// ImageFetcher downloads the raw bytes of an image URL.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// imageLoader resolves image URLs to Fyne resources. Downloaded resources are
// kept in a TTL cache so re-rendering the grid does not refetch bytes; the
// cache holds rendering artifacts only, never gallery data.
type imageLoader struct {
	fetcher ImageFetcher
	cache   *cache.Cache
}

// newImageLoader creates a loader around the given fetcher
func newImageLoader(fetcher ImageFetcher) *imageLoader {
	return &imageLoader{
		fetcher: fetcher,
		cache:   cache.New(ImageCacheTTL, ImageCacheCleanup),
	}
}

// Load delivers the resource for url through done on the UI thread. Cached
// resources are delivered synchronously; misses are fetched in the
// background. Failed loads are logged and dropped; the card keeps its
// placeholder.
func (il *imageLoader) Load(url string, done func(fyne.Resource)) {
	if cached, found := il.cache.Get(url); found {
		done(cached.(fyne.Resource))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), imageLoadTimeout)
		defer cancel()

		data, err := il.fetcher.FetchImage(ctx, url)
		if err != nil {
			log.Printf("Failed to load image %s: %v", url, err)
			return
		}

		resource := fyne.NewStaticResource(filepath.Base(url), data)
		il.cache.Set(url, resource, cache.DefaultExpiration)

		fyne.Do(func() {
			done(resource)
		})
	}()
}
