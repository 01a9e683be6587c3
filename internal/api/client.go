// Package api implements the HTTP client for the WellnessHub backend.
package api

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"

	"github.com/wellnesshub/wellnesshub-cli/internal/models"
)

// Client is the HTTP client for the WellnessHub chat endpoint
type Client struct {
	httpClient tls_client.HttpClient
	serverURL  string
	timeout    time.Duration
	mu         sync.RWMutex
	closed     bool
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithServerURL sets the backend base URL
func WithServerURL(serverURL string) ClientOption {
	return func(c *Client) {
		c.serverURL = strings.TrimRight(serverURL, "/")
	}
}

// WithTimeout bounds a single chat request
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient creates a new Client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		serverURL: models.DefaultServerURL,
		timeout:   30 * time.Second,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.serverURL == "" {
		return nil, fmt.Errorf("server URL cannot be empty")
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
	}

	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	client.httpClient = httpClient

	return client, nil
}

// ServerURL returns the configured backend base URL
func (c *Client) ServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverURL
}

// Close marks the client as closed; further requests fail
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
