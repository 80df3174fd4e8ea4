// Package fetcher retrieves the three forecast pages for a location as one
// all-or-nothing batch.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const (
	// DefaultBaseURL is the production site root.
	DefaultBaseURL = "https://tenki.jp"

	hourlySuffix = "1hour.html"
	tenDaySuffix = "10days.html"

	requestTimeout = 15 * time.Second
)

// Pages holds the raw bodies of one fetch batch.
type Pages struct {
	Base   string
	Hourly string
	TenDay string
}

// Fetcher issues the page requests. The HTTP client is shared and must be
// safe for concurrent use.
type Fetcher struct {
	client  *http.Client
	baseURL string
}

// New creates a Fetcher against the production site.
func New(client *http.Client) *Fetcher {
	return NewWithBaseURL(client, DefaultBaseURL)
}

// NewWithBaseURL creates a Fetcher against an alternate site root.
func NewWithBaseURL(client *http.Client, baseURL string) *Fetcher {
	return &Fetcher{client: client, baseURL: baseURL}
}

// FetchAll retrieves the base, hourly and ten-day pages for a location path
// concurrently, each bounded by its own 15-second timeout. Any single
// failure aborts the batch: the record built from these pages cross-references
// all three documents, so a partial batch would silently misreport data.
func (f *Fetcher) FetchAll(ctx context.Context, urlPath string) (*Pages, error) {
	pages := &Pages{}

	targets := []struct {
		name string
		url  string
		dst  *string
	}{
		{"base", f.baseURL + urlPath, &pages.Base},
		{"hourly", f.baseURL + urlPath + hourlySuffix, &pages.Hourly},
		{"tenday", f.baseURL + urlPath + tenDaySuffix, &pages.TenDay},
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		t := t
		g.Go(func() error {
			body, err := f.getPage(ctx, t.url)
			if err != nil {
				return fmt.Errorf("failed to fetch %s page: %w", t.name, err)
			}
			*t.dst = body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

// FetchBase retrieves only the base page; used by the location setup flow.
func (f *Fetcher) FetchBase(ctx context.Context, urlPath string) (string, error) {
	body, err := f.getPage(ctx, f.baseURL+urlPath)
	if err != nil {
		return "", fmt.Errorf("failed to fetch base page: %w", err)
	}
	return body, nil
}

func (f *Fetcher) getPage(ctx context.Context, url string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(decodeBody(resp))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// decodeBody converts legacy-encoded responses to UTF-8 when the server
// declares a Shift_JIS charset.
func decodeBody(resp *http.Response) io.Reader {
	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return resp.Body
	}
	switch strings.ToLower(params["charset"]) {
	case "shift_jis", "shift-jis", "sjis":
		return transform.NewReader(resp.Body, japanese.ShiftJIS.NewDecoder())
	default:
		return resp.Body
	}
}
