package httpclient

import (
	"net/http"
	"time"

	"github.com/izaldotcom/gerbang-backoffice/pkg/logger"
)

// Option is a function that configures a Client
type Option func(*Client)

// WithBaseURL sets the base URL for the client
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the timeout for requests
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHeaders sets default headers for all requests
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithHTTPClient allows using a custom http.Client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger used for request/response lines
func WithLogger(log logger.LoggerInterface) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}
