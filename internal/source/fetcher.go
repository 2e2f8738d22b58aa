// Package source reads the contact collection from the remote directory.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cristianoliveira/contactbook/internal/domain"
	"github.com/cristianoliveira/contactbook/internal/version"
)

// ErrUnexpectedStatus is returned when the server answers with a non-2xx code.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// maxBodyBytes bounds the decoded response.
const maxBodyBytes = 8 << 20

// Fetcher retrieves the full contact collection.
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Contact, error)
}

// HTTPFetcher issues one unauthenticated GET and decodes a JSON array.
type HTTPFetcher struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithTimeout bounds a single request. Zero disables the bound.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *HTTPFetcher) {
		f.timeout = d
	}
}

// NewHTTPFetcher creates a fetcher for url.
func NewHTTPFetcher(url string, opts ...FetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{url: url, client: http.DefaultClient}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the endpoint the fetcher reads.
func (f *HTTPFetcher) URL() string {
	return f.url
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]domain.Contact, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch contacts: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch contacts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("fetch contacts: %w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var contacts []domain.Contact
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&contacts); err != nil {
		return nil, fmt.Errorf("fetch contacts: decode body: %w", err)
	}
	return contacts, nil
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]domain.Contact, error)

// Fetch implements Fetcher.
func (fn FetcherFunc) Fetch(ctx context.Context) ([]domain.Contact, error) {
	return fn(ctx)
}
