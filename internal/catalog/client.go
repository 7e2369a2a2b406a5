package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/logging"
)

const (
	DefaultBaseURL  = "https://api.rawg.io/api"
	DefaultPageSize = 10
	// PlaceholderKey is the value shipped in sample configs; it counts as
	// no key at all.
	PlaceholderKey = "YOUR_API_KEY_HERE"

	maxBodySize = 4 << 20
	// rawgKeyNotFound is the error text RAWG returns for an unknown key.
	rawgKeyNotFound = "The API key is not found"
)

// Options configures a Client.
type Options struct {
	BaseURL  string
	APIKey   string
	PageSize int
	// Timeout bounds a whole request. Zero leaves it to the transport.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the RAWG REST API. It is safe for concurrent use.
type Client struct {
	baseURL  string
	pageSize int
	http     *http.Client
	log      logging.Logger

	mu     sync.RWMutex
	apiKey string
}

func NewClient(opts Options, log logging.Logger) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		pageSize: opts.PageSize,
		http:     opts.HTTPClient,
		log:      log.With("component", "catalog"),
		apiKey:   opts.APIKey,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.pageSize <= 0 {
		c.pageSize = DefaultPageSize
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: opts.Timeout}
	}
	return c
}

// SetAPIKey replaces the key used for subsequent requests.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = strings.TrimSpace(key)
}

// Configured reports whether a usable key is set.
func (c *Client) Configured() bool {
	_, err := c.key()
	return err == nil
}

func (c *Client) key() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.apiKey == "" || c.apiKey == PlaceholderKey {
		return "", ErrNotConfigured
	}
	return c.apiKey, nil
}

// Search returns the games matching title in the order the service ranks
// them. A blank title returns no results without a request.
func (c *Client) Search(ctx context.Context, title string) ([]Summary, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return []Summary{}, nil
	}
	key, err := c.key()
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("key", key)
	q.Set("search", title)
	q.Set("page_size", strconv.Itoa(c.pageSize))

	var resp searchResponse
	if err := c.get(ctx, "/games", q, &resp, false); err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, r.summary())
	}
	c.log.Debug(ctx, "catalog search", "query", title, "results", len(out))
	return out, nil
}

// FetchDetails returns the full record for a catalog id. An id of zero means
// the game was never linked to the catalog: the result is nil with no error.
func (c *Client) FetchDetails(ctx context.Context, id int) (*Details, error) {
	if id == 0 {
		return nil, nil
	}
	key, err := c.key()
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("key", key)

	var resp detailsResponse
	if err := c.get(ctx, "/games/"+strconv.Itoa(id), q, &resp, true); err != nil {
		return nil, err
	}
	return resp.details(), nil
}

// get fetches path into out. A 404 is ErrNotFound only when the path names a
// single record; for listings it means the service is not usable.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any, record bool) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "catalog request failed", "path", path, "err", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(ctx, path, resp.StatusCode, body, record)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	return nil
}

func (c *Client) statusError(ctx context.Context, path string, status int, body []byte, record bool) error {
	var e errorResponse
	_ = json.Unmarshal(body, &e)

	c.log.Warn(ctx, "catalog returned an error", "path", path, "status", status, "error", e.Error)

	switch {
	case e.Error == rawgKeyNotFound || status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrNotConfigured, ErrInvalidAPIKey)
	case record && status == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrUnavailable, status)
	}
}
