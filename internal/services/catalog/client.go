// Package catalog reads playlists and tracks from the Spotify Web API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/killallgit/jamjot-api/internal/metrics"
)

const (
	defaultBaseURL  = "https://api.spotify.com/v1"
	defaultTimeout  = 10 * time.Second
	defaultPageSize = 100

	// Spotify caps playlist listings at 50 per page and track listings at 100
	maxPlaylistPageSize = 50
	maxTrackPageSize    = 100

	defaultRetryDelay = 250 * time.Millisecond
	maxRetryDelay     = 30 * time.Second
)

const (
	endpointUserPlaylists  = "user_playlists"
	endpointPlaylist       = "playlist"
	endpointPlaylistTracks = "playlist_tracks"
	endpointTrack          = "track"
)

const (
	outcomeOK        = "ok"
	outcomeNotFound  = "not_found"
	outcomeThrottled = "throttled"
	outcomeError     = "error"
)

// Config holds configuration for the catalog client
type Config struct {
	BaseURL       string
	TokenURL      string
	ClientID      string
	ClientSecret  string
	Timeout       time.Duration
	RateLimit     float64
	RetryAttempts int
	PageSize      int
}

// Client handles communication with the catalog API
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	attempts   uint
	retryDelay time.Duration
	pageSize   int
	logger     *log.Logger
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the logger used by the client
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the HTTP client, bypassing client-credentials auth
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetryDelay sets the base backoff used when the catalog throttles us
// without a Retry-After header
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// NewClient creates a new catalog client. When a client ID is configured
// requests are authorized with an OAuth2 client-credentials token.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.PageSize <= 0 || cfg.PageSize > maxTrackPageSize {
		cfg.PageSize = defaultPageSize
	}
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	c := &Client{
		httpClient: newHTTPClient(cfg),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
		attempts:   uint(cfg.RetryAttempts),
		retryDelay: defaultRetryDelay,
		pageSize:   cfg.PageSize,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newHTTPClient(cfg Config) *http.Client {
	base := &http.Client{Timeout: cfg.Timeout}
	if cfg.ClientID == "" {
		return base
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	// token requests go through base so they share its timeout
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := cc.Client(ctx)
	client.Timeout = cfg.Timeout
	return client
}

// UserPlaylists lists the playlists of a user in catalog order. The listing is
// fetched page by page as the sequence is consumed.
func (c *Client) UserPlaylists(ctx context.Context, userID string) iter.Seq2[Playlist, error] {
	first := c.endpointURL(fmt.Sprintf("/users/%s/playlists", url.PathEscape(userID)), min(c.pageSize, maxPlaylistPageSize))

	return func(yield func(Playlist, error) bool) {
		for next := first; next != ""; {
			var p page[playlistObject]
			if err := c.get(ctx, endpointUserPlaylists, next, &p); err != nil {
				yield(Playlist{}, err)
				return
			}
			for _, item := range p.Items {
				if item.ID == "" {
					continue
				}
				if !yield(item.toPlaylist(), nil) {
					return
				}
			}
			next = nextURL(p.Next)
		}
	}
}

// Playlist fetches a single playlist. A missing playlist returns ErrNotFound.
func (c *Client) Playlist(ctx context.Context, playlistID string) (*Playlist, error) {
	endpoint := c.baseURL + "/playlists/" + url.PathEscape(playlistID) + "?fields=" + url.QueryEscape("id,name,owner(id,display_name)")

	var obj playlistObject
	if err := c.get(ctx, endpointPlaylist, endpoint, &obj); err != nil {
		return nil, err
	}
	playlist := obj.toPlaylist()
	return &playlist, nil
}

// PlaylistTracks lists the tracks of a playlist in catalog order. Positions
// are assigned by enumeration across all pages, starting at 1. Items with no
// track still consume a position so that positions match the catalog's
// ordering, but they are not yielded.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) iter.Seq2[PlaylistTrack, error] {
	first := c.endpointURL(fmt.Sprintf("/playlists/%s/tracks", url.PathEscape(playlistID)), min(c.pageSize, maxTrackPageSize))

	return func(yield func(PlaylistTrack, error) bool) {
		position := 0
		for next := first; next != ""; {
			var p page[playlistItem]
			if err := c.get(ctx, endpointPlaylistTracks, next, &p); err != nil {
				yield(PlaylistTrack{}, err)
				return
			}
			for _, item := range p.Items {
				position++
				if item.Track == nil || item.Track.ID == "" {
					continue
				}
				t := item.Track.toTrack()
				pt := PlaylistTrack{
					TrackID:  t.ID,
					Name:     t.Name,
					Artists:  t.Artists,
					Duration: t.Duration,
					Position: position,
				}
				if !yield(pt, nil) {
					return
				}
			}
			next = nextURL(p.Next)
		}
	}
}

// Track fetches a single track. A missing track returns ErrNotFound.
func (c *Client) Track(ctx context.Context, trackID string) (*Track, error) {
	endpoint := c.baseURL + "/tracks/" + url.PathEscape(trackID)

	var obj trackObject
	if err := c.get(ctx, endpointTrack, endpoint, &obj); err != nil {
		return nil, err
	}
	track := obj.toTrack()
	return &track, nil
}

func (c *Client) endpointURL(path string, limit int) string {
	params := url.Values{}
	params.Set("limit", fmt.Sprintf("%d", limit))
	return c.baseURL + path + "?" + params.Encode()
}

func nextURL(next *string) string {
	if next == nil {
		return ""
	}
	return *next
}

// get performs a GET and decodes the body into result. Throttled responses
// are retried up to the configured number of attempts; nothing else is.
func (c *Client) get(ctx context.Context, endpoint, rawURL string, result any) error {
	err := retry.Do(
		func() error {
			return c.do(ctx, endpoint, rawURL, result)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isThrottled),
		retry.DelayType(retryAfterDelay),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("catalog throttled, backing off", "endpoint", endpoint, "attempt", n+1, "error", err)
		}),
	)
	if err == nil || IsNotFound(err) || IsUnavailable(err) {
		return err
	}
	// context cancellation while waiting between attempts
	return &RemoteError{Endpoint: endpoint, Err: err}
}

func retryAfterDelay(n uint, err error, config *retry.Config) time.Duration {
	var re *RemoteError
	if errors.As(err, &re) && re.RetryAfter > 0 {
		return re.RetryAfter
	}
	return retry.BackOffDelay(n, err, config)
}

func (c *Client) do(ctx context.Context, endpoint, rawURL string, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &RemoteError{Endpoint: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &RemoteError{Endpoint: endpoint, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(endpoint, outcomeError)
		return &RemoteError{Endpoint: endpoint, Err: fmt.Errorf("executing request: %w", err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.record(endpoint, outcomeNotFound)
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		c.record(endpoint, outcomeThrottled)
		return &RemoteError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.record(endpoint, outcomeError)
		c.logger.Warn("catalog request failed", "endpoint", endpoint, "status", resp.StatusCode)
		return &RemoteError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		c.record(endpoint, outcomeError)
		return &RemoteError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}

	c.record(endpoint, outcomeOK)
	return nil
}

func (c *Client) record(endpoint, outcome string) {
	metrics.CatalogRequests.WithLabelValues(endpoint, outcome).Inc()
}
