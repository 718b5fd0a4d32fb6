// Package cloud is the HTTP client half of the note store: list remote
// filenames, fetch a file, push a file. Errors are returned to the caller,
// which in this application means the state machine quietly ignores them.
package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// fileURL escapes each path segment of name separately so that nested names
// like "notes/a.md" keep their slashes on the wire.
func (c *Client) fileURL(name string) string {
	segments := strings.Split(name, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return c.baseURL + "/files/" + strings.Join(segments, "/")
}

// List fetches the remote filename listing.
func (c *Client) List(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/files", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create list request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list cloud files: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list cloud files: unexpected status %d", resp.StatusCode)
	}

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		return nil, fmt.Errorf("failed to decode file list: %w", err)
	}
	return names, nil
}

// Get fetches the raw text stored under name.
func (c *Client) Get(ctx context.Context, name string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.fileURL(name), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create get request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get cloud file %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get cloud file %q: unexpected status %d", name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read cloud file %q: %w", name, err)
	}
	return string(body), nil
}

// Put stores text under name and returns the server's echo of the stored
// body.
func (c *Client) Put(ctx context.Context, name, text string) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.fileURL(name), strings.NewReader(text),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create put request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to put cloud file %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("put cloud file %q: unexpected status %d", name, resp.StatusCode)
	}

	echoed, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read put confirmation for %q: %w", name, err)
	}
	return string(echoed), nil
}
