// Package news talks to the external news-search service. It builds
// one request from the current query, issues it, and maps the outcome
// to a page of articles or a typed failure. No retries, no caching.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hnrks/tidings/internal/config"
	"github.com/hnrks/tidings/internal/debuglog"
)

// RateLimitMessage is shown verbatim when the service returns 429.
const RateLimitMessage = "Rate limit reached. Please wait a moment and try again."

type Client struct {
	client    *http.Client
	token     string
	baseURL   string
	limit     int
	userAgent string
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.API.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client:    &http.Client{Timeout: timeout},
		token:     cfg.API.Token,
		baseURL:   strings.TrimRight(cfg.API.BaseURL, "/"),
		limit:     cfg.API.Limit,
		userAgent: cfg.API.UserAgent,
	}
}

// RequestURL builds the full request URL for q. Endpoint selection:
// any search text or category means the search/filter endpoint,
// otherwise top headlines.
func (c *Client) RequestURL(q Query) string {
	endpoint := c.baseURL + "/top"
	if q.Filtered() {
		endpoint = c.baseURL + "/all"
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("api_token", c.token)
	params.Set("limit", strconv.Itoa(c.limit))
	params.Set("page", strconv.Itoa(page))
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Category != "" {
		params.Set("categories", q.Category)
	}

	return endpoint + "?" + params.Encode()
}

// Fetch issues a single request for q. It refuses to go out at all
// when the token is missing or still the placeholder.
func (c *Client) Fetch(ctx context.Context, q Query) (*Page, error) {
	if c.token == "" || c.token == config.PlaceholderToken {
		return nil, &ConfigError{Reason: "API token is not configured; set api.token or TIDINGS_API_TOKEN"}
	}

	reqURL := c.RequestURL(q)
	debuglog.Debugf("fetching page %d (filtered=%v)", q.Page, q.Filtered())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		debuglog.Warnf("rate limited by news service")
		return nil, &RateLimitError{Message: RateLimitMessage}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		debuglog.Warnf("news service returned %d", resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	debuglog.Debugf("received %d articles (found=%d)", len(page.Data), page.Meta.Found)
	return &page, nil
}
