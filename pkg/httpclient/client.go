package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

const (
	// MessageServerError is reported when a non-2xx body is not JSON
	MessageServerError = "A server error occurred."
	// MessageRequestFailed is reported when a JSON error body carries no message
	MessageRequestFailed = "Request failed"
)

// ErrUnauthorized is matched by StatusError values carrying a 401
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is returned for every non-2xx response. Code is the
// envelope's error.code when the body carries one.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrUnauthorized) match a 401 response
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// HTTPClient defines the interface for HTTP client operations
type HTTPClient interface {
	Do(ctx context.Context, method, path string, data any, headers map[string]string) (*http.Response, error)
	GetJSON(ctx context.Context, path string, result any, headers map[string]string) error
	PostJSON(ctx context.Context, path string, data any, result any, headers map[string]string) error
	PutJSON(ctx context.Context, path string, data any, result any, headers map[string]string) error
	DeleteJSON(ctx context.Context, path string, result any, headers map[string]string) error
	BaseURL() string
	Timeout() time.Duration
}

// Client represents an HTTP client with configurable settings.
// Requests are sent once; there is no retry.
type Client struct {
	client  *http.Client
	baseURL string
	headers map[string]string
	timeout time.Duration
	logger  logger.LoggerInterface
}

// New creates a new HTTP client with the provided options
func New(opts ...Option) HTTPClient {
	client := &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
		timeout: 30 * time.Second,
		logger:  logger.NoOpLogger(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.client.Timeout = client.timeout

	return client
}

type tokenKey struct{}

// WithToken returns a context whose requests carry "Authorization: Bearer <token>"
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token stored by WithToken
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Do performs an HTTP request. A non-nil data is encoded as the JSON body.
func (c *Client) Do(ctx context.Context, method, path string, data any, headers map[string]string) (*http.Response, error) {
	url := c.baseURL + path

	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.DebugContext(ctx, "HTTP request", "method", method, "url", url)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "HTTP request failed", "method", method, "url", url, "error", err)
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}

	c.logger.DebugContext(ctx, "HTTP response", "method", method, "url", url, "statusCode", resp.StatusCode)

	return resp, nil
}

// GetJSON performs a GET request and decodes the response into result
func (c *Client) GetJSON(ctx context.Context, path string, result any, headers map[string]string) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, result, headers)
}

// PostJSON performs a POST request with a JSON body and decodes the response into result
func (c *Client) PostJSON(ctx context.Context, path string, data any, result any, headers map[string]string) error {
	return c.doJSON(ctx, http.MethodPost, path, data, result, headers)
}

// PutJSON performs a PUT request with a JSON body and decodes the response into result
func (c *Client) PutJSON(ctx context.Context, path string, data any, result any, headers map[string]string) error {
	return c.doJSON(ctx, http.MethodPut, path, data, result, headers)
}

// DeleteJSON performs a DELETE request and decodes the response into result
func (c *Client) DeleteJSON(ctx context.Context, path string, result any, headers map[string]string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, result, headers)
}

func (c *Client) doJSON(ctx context.Context, method, path string, data any, result any, headers map[string]string) error {
	resp, err := c.Do(ctx, method, path, data, headers)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to read response body", "path", path, "error", err)
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message, code := backendError(responseBody)
		statusErr := &StatusError{StatusCode: resp.StatusCode, Code: code, Message: message}
		c.logger.WarnContext(ctx, "HTTP request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", statusErr.Message)
		return statusErr
	}

	if result == nil || len(bytes.TrimSpace(responseBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(responseBody, result); err != nil {
		c.logger.ErrorContext(ctx, "Failed to unmarshal response", "path", path, "error", err)
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

// backendError extracts the human message of an error body: top-level
// "message" first, then "error.message", then "error" when it is a string.
// The code is "error.code" if present.
func backendError(body []byte) (message, code string) {
	var payload struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return MessageServerError, ""
	}

	var nested struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	var plain string
	if len(payload.Error) > 0 {
		if err := json.Unmarshal(payload.Error, &nested); err != nil {
			_ = json.Unmarshal(payload.Error, &plain)
		}
	}

	switch {
	case payload.Message != "":
		return payload.Message, nested.Code
	case nested.Message != "":
		return nested.Message, nested.Code
	case plain != "":
		return plain, ""
	}
	return MessageRequestFailed, nested.Code
}

// BaseURL returns the base URL of the client
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the timeout setting of the client
func (c *Client) Timeout() time.Duration {
	return c.timeout
}
