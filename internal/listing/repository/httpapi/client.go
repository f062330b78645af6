package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"property-listings/internal/listing/repository"
	"property-listings/pkg/log"
	"property-listings/pkg/response"
	"property-listings/pkg/throttle"
)

const (
	DefaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 64 << 10
)

// Config configures the listings API client.
type Config struct {
	BaseURL         string // including the /api prefix
	Timeout         time.Duration
	RateLimitPerSec float64
	RateBurst       int
	HTTPClient      *http.Client // optional; Timeout is ignored when set
}

// Client is the HTTP wrapper for the listings REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *throttle.Limiter
	l          log.Logger
}

var _ repository.Repository = (*Client)(nil)

// New creates a new listings API client.
func New(l log.Logger, cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("listings API base URL is required")
	}
	if l == nil {
		l = log.NewNopLogger()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		limiter:    throttle.New(cfg.RateLimitPerSec, cfg.RateBurst),
		l:          l,
	}, nil
}

// call performs one request and decodes a 2xx JSON body into out.
// route is the path template used as the throttle key and in logs.
func (c *Client) call(ctx context.Context, method, route, path string, in, out any) error {
	requestID := uuid.NewString()
	ctx = log.WithRequestID(ctx, requestID)

	if err := c.limiter.Wait(ctx, method+" "+route); err != nil {
		c.l.Warnf(ctx, "httpapi.call %s %s throttled: %v", method, route, err)
		return repository.NewAPIError(repository.KindNetworkUnreachable, 0, "Request cancelled before it was sent", err)
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return repository.NewAPIError(repository.KindServerError, 0, "Failed to encode request", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return repository.NewAPIError(repository.KindServerError, 0, "Failed to build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.l.Errorf(ctx, "httpapi.call %s %s: %v", method, route, err)
		return transportError(err)
	}
	defer resp.Body.Close()

	c.l.Debugf(ctx, "httpapi.call %s %s -> %d in %s", method, path, resp.StatusCode, time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		msg, ok := response.ParseError(raw)
		if !ok {
			msg = repository.StatusMessage(resp.StatusCode)
		}
		kind := repository.KindForStatus(resp.StatusCode)
		c.l.Warnf(ctx, "httpapi.call %s %s status %d (%s): %s", method, route, resp.StatusCode, kind, msg)
		return repository.NewAPIError(kind, resp.StatusCode, msg, nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.l.Errorf(ctx, "httpapi.call %s %s decode: %v", method, route, err)
		return repository.NewAPIError(repository.KindServerError, resp.StatusCode, "Received an invalid response from the server", err)
	}
	return nil
}

func transportError(err error) *repository.APIError {
	switch {
	case errors.Is(err, context.Canceled):
		return repository.NewAPIError(repository.KindNetworkUnreachable, 0, "Request cancelled", err)
	case errors.Is(err, context.DeadlineExceeded), isTimeout(err):
		return repository.NewAPIError(repository.KindNetworkUnreachable, 0, "Request timed out", err)
	default:
		return repository.NewAPIError(repository.KindNetworkUnreachable, 0, "Failed to reach the listings service", err)
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
