package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chartloom/chartloom/config"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4"

// Client reads value ranges from a spreadsheet values API. Transient
// failures (429, 5xx, transport errors) retry with capped exponential
// backoff and jitter.
type Client struct {
	httpClient       *http.Client
	apiKey           string
	baseURL          string
	retryMaxAttempts int
	retryBaseDelay   time.Duration
	retryMaxDelay    time.Duration
}

// NewClient returns a client with the default timeout and retry strategy.
func NewClient(apiKey string) *Client {
	return New(apiKey, 30*time.Second, 3, 500*time.Millisecond, 4*time.Second)
}

// New allows customizing HTTP timeout and retry/backoff behavior.
func New(apiKey string, httpTimeout time.Duration, retryMax int, baseDelay, maxDelay time.Duration) *Client {
	if httpTimeout <= 0 {
		httpTimeout = 30 * time.Second
	}
	if retryMax <= 0 {
		retryMax = 3
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 4 * time.Second
	}
	return &Client{
		httpClient:       &http.Client{Timeout: httpTimeout},
		apiKey:           apiKey,
		baseURL:          defaultBaseURL,
		retryMaxAttempts: retryMax,
		retryBaseDelay:   baseDelay,
		retryMaxDelay:    maxDelay,
	}
}

// FromSettings builds a client from loaded configuration.
func FromSettings(s *config.Settings) *Client {
	return NewWithBaseURL(
		s.APIKey,
		time.Duration(s.HTTPTimeoutSec)*time.Second,
		s.RetryMaxAttempts,
		time.Duration(s.RetryBaseDelayMs)*time.Millisecond,
		time.Duration(s.RetryMaxDelayMs)*time.Millisecond,
		s.BaseURL,
	)
}

// NewWithBaseURL allows injecting a custom base URL (used in tests).
func NewWithBaseURL(apiKey string, httpTimeout time.Duration, retryMax int, baseDelay, maxDelay time.Duration, baseURL string) *Client {
	c := New(apiKey, httpTimeout, retryMax, baseDelay, maxDelay)
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

// Values fetches one value range. A response carrying an API error object is
// returned as-is so callers see the same *UpstreamResponseError from Grid
// whether the failure came over HTTP or inside a 200 body.
func (c *Client) Values(ctx context.Context, spreadsheetID, readRange string) (*ValuesResponse, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id cannot be empty")
	}
	if readRange == "" {
		return nil, errors.New("read range cannot be empty")
	}
	endpoint := fmt.Sprintf("%s/spreadsheets/%s/values/%s",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(readRange))
	if c.apiKey != "" {
		endpoint += "?key=" + url.QueryEscape(c.apiKey)
	}

	maxAttempts := c.retryMaxAttempts
	backoff := c.retryBaseDelay

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if isRetryableNetErr(err) && attempt < maxAttempts {
				lastErr = err
				time.Sleep(withJitter(backoff, c.retryMaxDelay))
				backoff *= 2
				continue
			}
			return nil, fmt.Errorf("http request: %w", err)
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("read response: %w", readErr)
		}

		if resp.StatusCode == http.StatusTooManyRequests || (resp.StatusCode >= 500 && resp.StatusCode <= 599) {
			lastErr = fmt.Errorf("values api: status %d", resp.StatusCode)
			if attempt < maxAttempts {
				sleep := withJitter(backoff, c.retryMaxDelay)
				if ra := resp.Header.Get("Retry-After"); ra != "" {
					if secs, err := strconv.Atoi(ra); err == nil && secs > 0 {
						sleep = time.Duration(secs) * time.Second
					}
				}
				time.Sleep(sleep)
				backoff *= 2
				continue
			}
			break
		}

		var out ValuesResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, &UpstreamResponseError{Reason: fmt.Sprintf("malformed body: %v", err)}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if out.Error != nil {
				return &out, nil
			}
			return nil, fmt.Errorf("values api: status %d", resp.StatusCode)
		}
		return &out, nil
	}
	return nil, lastErr
}

func isRetryableNetErr(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	var oe *net.OpError
	return errors.As(err, &oe)
}

func withJitter(d, limit time.Duration) time.Duration {
	d += time.Duration(rand.Int63n(int64(d)/4 + 1))
	if limit > 0 && d > limit {
		d = limit
	}
	return d
}
