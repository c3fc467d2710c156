package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Searcher runs a repository search. *Client implements it; tests substitute
// their own.
type Searcher interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// DefaultBaseURL is the legacy repository search endpoint. The raw query is
// appended to it.
const DefaultBaseURL = "https://api.github.com/legacy/repos/search/"

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "reposearch/0.1"

// Client talks to the repository search endpoint.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
	log       zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithToken authenticates requests with a static bearer token. An empty
// token keeps the client anonymous.
func WithToken(token string) Option {
	return func(c *Client) {
		token = strings.TrimSpace(token)
		if token == "" {
			return
		}
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		authed := oauth2.NewClient(context.Background(), src)
		authed.Timeout = c.http.Timeout
		c.http = authed
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient builds a Client for the given base URL. An empty base uses
// DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: DefaultUserAgent,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the endpoint queries are appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search issues one GET for query and decodes the result. Every failure is
// returned as a *NetworkError.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	if c == nil {
		return nil, &NetworkError{Query: query, Err: fmt.Errorf("client is nil")}
	}
	reqURL, err := c.searchURL(query)
	if err != nil {
		return nil, &NetworkError{Query: query, Err: err}
	}

	log := c.log.With().Str("request_id", uuid.NewString()).Str("query", query).Logger()
	started := time.Now()
	log.Debug().Str("url", reqURL).Msg("search started")

	var envelope searchEnvelope
	status, err := c.get(ctx, reqURL, &envelope)
	if err != nil {
		log.Warn().Err(err).Int("status", status).Dur("elapsed", time.Since(started)).Msg("search failed")
		return nil, &NetworkError{Query: query, StatusCode: status, Err: err}
	}

	repos := envelope.Data.Repositories
	if repos == nil {
		repos = []Repository{}
	}
	log.Info().Int("results", len(repos)).Dur("elapsed", time.Since(started)).Msg("search completed")
	return &SearchResponse{
		Query:        query,
		Repositories: repos,
		Meta:         envelope.Meta,
	}, nil
}

// searchURL appends the raw query to the base path and adds format=json.
// A '%' that does not start a valid escape is sent as %25.
func (c *Client) searchURL(query string) (string, error) {
	u, err := url.Parse(c.baseURL + escapeStrayPercent(query))
	if err != nil {
		return "", fmt.Errorf("build request url: %w", err)
	}
	values := u.Query()
	values.Set("format", "json")
	u.RawQuery = values.Encode()
	return u.String(), nil
}

func escapeStrayPercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && (i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func (c *Client) get(ctx context.Context, reqURL string, dest any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, fmt.Errorf("api returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

// NormalizeBaseURL defaults a blank endpoint, adds https:// when no scheme is
// given, drops any query or fragment and ensures a trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String(), nil
}
