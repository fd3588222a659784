package gazette

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/natscan/natscan/internal/model"
)

// DefaultBaseURL is the bibliographic API search endpoint.
const DefaultBaseURL = "https://api.trove.nla.gov.au/v2/result"

// gazetteZone is the search zone holding digitized gazette articles.
const gazetteZone = "newspaper"

// Cache stores raw API response bodies keyed by request URL. A nil
// Cache disables caching. Implementations must be safe for sequential
// use; the client never calls the cache concurrently.
type Cache interface {
	// Get returns the cached body for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores the body under key, replacing any previous entry.
	Put(ctx context.Context, key string, body []byte) error
}

// Client queries the bibliographic API for gazette articles.
//
// The client pages through results with the bulk-harvest cursor and is
// read-only after construction.
type Client struct {
	// httpClient performs the requests.
	httpClient *http.Client

	// baseURL is the search endpoint.
	baseURL string

	// apiKey authenticates requests.
	apiKey string

	// userAgent is sent with every request.
	userAgent string

	// pageSize is the number of results requested per page.
	pageSize int

	// delay is the politeness pause between page requests.
	delay time.Duration

	// maxBodySize caps the response body read.
	maxBodySize int64

	// cache replays stored responses. May be nil.
	cache Cache

	// logger for structured logging.
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithPageSize sets the results-per-page count.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithDelay sets the politeness delay between page requests.
func WithDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.delay = d
	}
}

// WithMaxBodySize caps the response body size.
func WithMaxBodySize(size int64) ClientOption {
	return func(c *Client) {
		if size > 0 {
			c.maxBodySize = size
		}
	}
}

// WithCache installs a response cache.
func WithCache(cache Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client authenticating with apiKey.
func NewClient(httpClient *http.Client, apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  httpClient,
		baseURL:     DefaultBaseURL,
		apiKey:      apiKey,
		userAgent:   "natscan/1.0",
		pageSize:    100,
		delay:       time.Second,
		maxBodySize: 10 * 1024 * 1024,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Harvest retrieves the articles matching query, following the
// bulk-harvest cursor until the results are exhausted or max articles
// have been collected. A max of 0 means no cap.
//
// Pages already in the cache are replayed without touching the network
// or the politeness delay.
func (c *Client) Harvest(ctx context.Context, query string, max int) ([]*model.Article, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var articles []*model.Article

	cursor := "*"
	for {
		pageURL := c.pageURL(query, cursor)

		body, cached, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			return articles, err
		}

		page, err := decodePage(body)
		if err != nil {
			return articles, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}

		c.logger.Debug("harvested page",
			"query", query,
			"cursor", cursor,
			"articles", len(page.Article),
			"total", page.Total,
			"cached", cached,
		)

		for _, a := range page.Article {
			articles = append(articles, model.NewArticle(a.ID, a.ArticleText))
			if max > 0 && len(articles) >= max {
				return articles, nil
			}
		}

		if page.NextStart == "" || len(page.Article) == 0 {
			return articles, nil
		}
		cursor = page.NextStart

		if !cached && c.delay > 0 {
			select {
			case <-ctx.Done():
				return articles, ctx.Err()
			case <-time.After(c.delay):
			}
		}
	}
}

// pageURL builds the request URL for one result page.
func (c *Client) pageURL(query, cursor string) string {
	v := url.Values{}
	v.Set("key", c.apiKey)
	v.Set("zone", gazetteZone)
	v.Set("q", query)
	v.Set("encoding", "json")
	v.Set("include", "articletext")
	v.Set("bulkHarvest", "true")
	v.Set("n", fmt.Sprintf("%d", c.pageSize))
	v.Set("s", cursor)

	return c.baseURL + "?" + v.Encode()
}

// fetchPage returns the page body, serving from the cache when
// possible. The cached flag reports whether the network was skipped.
func (c *Client) fetchPage(ctx context.Context, pageURL string) (body []byte, cached bool, err error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(ctx, pageURL)
		if err != nil {
			c.logger.Warn("cache read failed", "error", err)
		} else if ok {
			return body, true, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return nil, false, err
	}

	if c.cache != nil {
		if err := c.cache.Put(ctx, pageURL, body); err != nil {
			c.logger.Warn("cache write failed", "error", err)
		}
	}

	return body, false, nil
}

// decodePage extracts the gazette zone's records from a response body.
func decodePage(body []byte) (*resultRecords, error) {
	var envelope resultEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	for _, zone := range envelope.Response.Zone {
		if zone.Name == gazetteZone {
			records := zone.Records
			return &records, nil
		}
	}

	return nil, fmt.Errorf("no %q zone in response", gazetteZone)
}
