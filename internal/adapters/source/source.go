// Package source fetches the raw dataset text from files or HTTP.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Sentinel kinds for source errors.
var (
	ErrFetch     = errors.New("fetch failed")
	ErrNoSource  = errors.New("no source configured")
	ErrBadStatus = errors.New("unexpected status")
)

// Fetcher returns the full text of one dataset.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
	Location() string
}

// New picks an HTTPSource for http(s) URLs and a FileSource otherwise.
func New(location string) Fetcher {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, nil)
	}
	return NewFileSource(location)
}

// FileSource reads a local file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Location returns the file path.
func (s *FileSource) Location() string { return s.path }

// Fetch reads the whole file.
func (s *FileSource) Fetch(ctx context.Context) (string, error) {
	if s.path == "" {
		return "", ErrNoSource
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFetch, s.path, err)
	}
	return string(b), nil
}

// HTTPSource downloads text from a URL. No client timeout is set; callers
// bound the request through ctx if they need to.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource. A nil client uses a default client.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPSource{url: url, client: client}
}

// Location returns the URL.
func (s *HTTPSource) Location() string { return s.url }

// Fetch performs a GET and returns the body. Non-2xx responses are errors.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFetch, s.url, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFetch, s.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s: %w %d", ErrFetch, s.url, ErrBadStatus, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrFetch, s.url, err)
	}
	return string(b), nil
}

// Static serves fixed text; useful for embedding and tests.
type Static struct {
	Text string
	Err  error
	Name string
}

// Location returns the configured name.
func (s Static) Location() string { return s.Name }

// Fetch returns Text or Err.
func (s Static) Fetch(_ context.Context) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}
