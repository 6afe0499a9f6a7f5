package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"
)

const (
	// DefaultBaseURL is the public dog breed API
	DefaultBaseURL = "https://dog.ceo/api"

	// DefaultTimeout bounds every request; there is no retry layer on top
	DefaultTimeout = 15 * time.Second

	userAgent = "breed-gallery/1.0"

	// maxImageBytes caps raw image downloads to avoid unbounded reads
	maxImageBytes = 20 << 20
)

const statusSuccess = "success"

// breedListResponse is the catalog endpoint payload: breed names mapped to
// their sub-breed lists. Only the top-level keys matter here.
type breedListResponse struct {
	Message map[string][]string `json:"message"`
	Status  string              `json:"status"`
}

// randomImagesResponse is the image endpoint payload.
type randomImagesResponse struct {
	Message []string `json:"message"`
	Status  string   `json:"status"`
}

// Client talks to the remote breed service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the default public API.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom base URL (used by
// tests and proxies).
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// ListBreeds fetches the full breed catalog and returns the breed names
// sorted lexicographically ascending. Any transport, status, or decoding
// failure is returned as a catalog FetchError.
func (c *Client) ListBreeds(ctx context.Context) ([]string, error) {
	url := c.baseURL + "/breeds/list/all"

	body, statusCode, err := c.get(ctx, url)
	if err != nil {
		return nil, newCatalogError(statusCode, err)
	}

	var response breedListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, newCatalogError(statusCode, fmt.Errorf("malformed response: %w", err))
	}
	if response.Status != statusSuccess {
		return nil, newCatalogError(statusCode, fmt.Errorf("unexpected response status %q", response.Status))
	}

	breeds := make([]string, 0, len(response.Message))
	for breed := range response.Message {
		breeds = append(breeds, breed)
	}
	sort.Strings(breeds)

	return breeds, nil
}

// RandomImages fetches count random image URLs for the given breed. Failures
// are returned as an image FetchError carrying the breed name.
func (c *Client) RandomImages(ctx context.Context, breed string, count int) ([]string, error) {
	url := fmt.Sprintf("%s/breed/%s/images/random/%d", c.baseURL, breed, count)

	body, statusCode, err := c.get(ctx, url)
	if err != nil {
		return nil, newImageError(breed, statusCode, err)
	}

	var response randomImagesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, newImageError(breed, statusCode, fmt.Errorf("malformed response: %w", err))
	}
	if response.Status != statusSuccess {
		return nil, newImageError(breed, statusCode, fmt.Errorf("unexpected response status %q", response.Status))
	}

	return response.Message, nil
}

// FetchImage downloads the raw bytes of a single image URL. Used for gallery
// rendering and for saving images to disk.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	return data, nil
}

// get performs a GET request and returns the body and status code. A non-2xx
// status is an error; the status code is still returned for error context.
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("non-OK response status %d", resp.StatusCode)
	}

	return body, resp.StatusCode, nil
}
