// Package weather proxies the open-meteo historical archive for the temperature widget.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL = "https://archive-api.open-meteo.com/v1/archive"

	latitude  = "50.6053"
	longitude = "-3.5952"
)

var (
	ErrUpstreamStatus = errors.New("weather archive returned non-2xx status")
	ErrInvalidJSON    = errors.New("weather archive returned invalid JSON")
)

// Cache stores upstream responses by key. Implemented by redissvc.RedisService.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

type Client struct {
	baseURL string
	http    *http.Client
	cache   Cache
	ttl     time.Duration
	logger  zerolog.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithCache enables response caching for ttl.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.ttl = ttl
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DailyMaxTemperature returns the archive's daily maximum temperatures between start and end
// (inclusive, YYYY-MM-DD) as the upstream JSON document.
func (c *Client) DailyMaxTemperature(ctx context.Context, start, end string) ([]byte, error) {
	key := fmt.Sprintf("weather:%s:%s", start, end)

	if c.cache != nil {
		cached, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("weather cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	body, err := c.fetch(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, body, c.ttl); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("weather cache write failed")
		}
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, start, end string) ([]byte, error) {
	q := url.Values{}
	q.Set("latitude", latitude)
	q.Set("longitude", longitude)
	q.Set("start_date", start)
	q.Set("end_date", end)
	q.Set("daily", "temperature_2m_max")
	q.Set("timezone", "GMT")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}
	return body, nil
}
