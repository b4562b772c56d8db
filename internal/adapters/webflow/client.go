package webflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// DefaultBaseURL is the Webflow Data API v2 endpoint
const DefaultBaseURL = "https://api.webflow.com/v2"

// Client implements ports.CollectionService over the Webflow Data API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Client implements CollectionService
var _ ports.CollectionService = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithBaseURL overrides the API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Webflow client authenticated with token
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListItems returns one page of items from a collection
func (c *Client) ListItems(ctx context.Context, collectionID string, limit, offset int) (*domain.Page, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	endpoint := fmt.Sprintf("/collections/%s/items?%s", url.PathEscape(collectionID), query.Encode())

	var page domain.Page
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetItem returns a single item
func (c *Client) GetItem(ctx context.Context, collectionID, itemID string) (*domain.CollectionItem, error) {
	var item domain.CollectionItem
	if err := c.do(ctx, http.MethodGet, itemEndpoint(collectionID, itemID), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem patches a single item
func (c *Client) UpdateItem(ctx context.Context, collectionID, itemID string, payload domain.UpdatePayload) (*domain.CollectionItem, error) {
	var item domain.CollectionItem
	if err := c.do(ctx, http.MethodPatch, itemEndpoint(collectionID, itemID), payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func itemEndpoint(collectionID, itemID string) string {
	return fmt.Sprintf("/collections/%s/items/%s", url.PathEscape(collectionID), url.PathEscape(itemID))
}

// do sends one request and decodes a 2xx JSON response into out.
// Any transport failure or non-2xx status is returned; nothing is retried.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	fullURL := c.baseURL + endpoint

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, URL: fullURL, Err: err}
	}

	c.logger.Debug("webflow request",
		"method", method,
		"url", fullURL,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, fullURL, resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, endpoint, err)
	}
	return nil
}
