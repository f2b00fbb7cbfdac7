package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/straye-as/sales-dashboard/internal/config"
	"github.com/straye-as/sales-dashboard/internal/domain"
	"go.uber.org/zap"
)

// Result is the body of a successful mutation
type Result struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// Payload is a form-shaped request body keyed by wire field name
type Payload map[string]interface{}

// clone copies the payload so callers' maps are never modified
func (p Payload) clone() Payload {
	out := make(Payload, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// TokenRenewBefore is how long before expiry an issued token is replaced
const TokenRenewBefore = 5 * time.Minute

// TokenIssuer mints a bearer token and reports when it expires
type TokenIssuer func() (token string, expiresAt time.Time, err error)

// Client performs JSON requests against the REST backend
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger

	mu        sync.Mutex
	token     string
	issue     TokenIssuer
	expiresAt time.Time
	now       func() time.Time
}

// NewClient creates a client from dashboard configuration
func NewClient(cfg *config.DashboardConfig, logger *zap.Logger) *Client {
	return NewClientWithHTTP(cfg.APIBaseURL, cfg.APIToken, &http.Client{Timeout: cfg.HTTPTimeoutDuration()}, logger)
}

// NewClientWithHTTP creates a client over an existing http.Client
func NewClientWithHTTP(baseURL, token string, httpClient *http.Client, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
		logger:  logger,
		now:     time.Now,
	}
}

// SetToken replaces the bearer token sent with every request and drops any
// issuer set before
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.issue = nil
	c.expiresAt = time.Time{}
}

// SetTokenIssuer issues a token now and issues a new one whenever a request
// is made within TokenRenewBefore of its expiry
func (c *Client) SetTokenIssuer(issue TokenIssuer) (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issue = issue
	if err := c.renewLocked(); err != nil {
		return time.Time{}, err
	}
	return c.expiresAt, nil
}

// SetClock replaces the clock used for token expiry
func (c *Client) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *Client) renewLocked() error {
	token, expiresAt, err := c.issue()
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	c.token = token
	c.expiresAt = expiresAt
	return nil
}

// bearer returns the token for the next request, renewing it when due. A
// failed renewal keeps the old token until it is rejected.
func (c *Client) bearer() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.issue != nil && !c.now().Before(c.expiresAt.Add(-TokenRenewBefore)) {
		if err := c.renewLocked(); err != nil {
			c.logger.Error("token renewal failed", zap.Error(err))
		} else {
			c.logger.Info("renewed API token", zap.Time("expires_at", c.expiresAt))
		}
	}
	return c.token
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send executes req and turns transport failures and non-2xx statuses into NetworkError.
// On success the caller owns resp.Body.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return nil, &NetworkError{Err: err}
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return resp, nil
	}
	defer resp.Body.Close()

	netErr := &NetworkError{Status: resp.StatusCode}
	var apiErr domain.APIError
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10)); err == nil && json.Unmarshal(body, &apiErr) == nil {
		netErr.Message = apiErr.Message
	}

	c.logger.Warn("backend returned error status",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", netErr.Message),
	)
	return nil, netErr
}

// do sends a JSON request and decodes a JSON response into out when out is non-nil
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// download streams a non-JSON response body into w
func (c *Client) download(ctx context.Context, path string, query url.Values, w io.Writer) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "*/*")

	resp, err := c.send(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", &NetworkError{Status: resp.StatusCode, Err: fmt.Errorf("failed to read download: %w", err)}
	}
	return resp.Header.Get("Content-Disposition"), nil
}
