package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-portal/internal/content"
	"github.com/goliatone/go-portal/internal/domain"
	"github.com/goliatone/go-portal/internal/logging"
	"github.com/goliatone/go-portal/internal/validation"
	"github.com/goliatone/go-portal/pkg/interfaces"
)

// DefaultTimeout bounds every upstream request unless overridden.
const DefaultTimeout = 10 * time.Second

const maxBodyBytes = 8 << 20

var (
	ErrBaseURLRequired  = errors.New("upstream: base url required")
	ErrUnexpectedStatus = errors.New("upstream: unexpected status")
)

// Config captures the upstream endpoint.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its Timeout is left untouched.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithValidator overrides the payload validator.
func WithValidator(v *validation.Validator) Option {
	return func(c *Client) {
		if v != nil {
			c.validator = v
		}
	}
}

// Client is a content.Store backed by the upstream JSON API.
type Client struct {
	base      *url.URL
	http      *http.Client
	validator *validation.Validator
	logger    interfaces.Logger
}

var _ content.Store = (*Client)(nil)

// New constructs a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, ErrBaseURLRequired
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("upstream: parse base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &Client{
		base:   base,
		http:   &http.Client{Timeout: timeout},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	if client.validator == nil {
		v, err := validation.Default()
		if err != nil {
			return nil, err
		}
		client.validator = v
	}
	return client, nil
}

// Get fetches GET {base}/{domain}/{id}.
func (c *Client) Get(ctx context.Context, domainKey, id string) (*content.Record, error) {
	body, err := c.fetch(ctx, c.endpoint(nil, domainKey, id), domainKey, id)
	if err != nil {
		return nil, err
	}
	return c.decodeRecord(domainKey, body)
}

// GetBySlug fetches GET {base}/{domain}/slug/{slug}.
func (c *Client) GetBySlug(ctx context.Context, domainKey, slug string) (*content.Record, error) {
	body, err := c.fetch(ctx, c.endpoint(nil, domainKey, "slug", slug), domainKey, slug)
	if err != nil {
		return nil, err
	}
	return c.decodeRecord(domainKey, body)
}

// List fetches GET {base}/{domain}?page=&pageSize=&search=&parentId=.
func (c *Client) List(ctx context.Context, domainKey string, filter content.Filter) ([]*content.Record, int, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(filter.Query.Page))
	params.Set("pageSize", strconv.Itoa(filter.Query.PageSize))
	if search := strings.TrimSpace(filter.Query.Search); search != "" {
		params.Set("search", search)
	}
	if parent := strings.TrimSpace(filter.ParentID); parent != "" {
		params.Set("parentId", parent)
	}

	body, err := c.fetch(ctx, c.endpoint(params, domainKey), domainKey, "")
	if err != nil {
		if domain.IsNotFound(err) {
			return []*content.Record{}, 0, nil
		}
		return nil, 0, err
	}
	if err := c.validator.ValidateJSON(validation.ListSchema, body); err != nil {
		return nil, 0, err
	}

	var envelope wireList
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, 0, fmt.Errorf("upstream: decode %s list: %w", domainKey, err)
	}
	records := make([]*content.Record, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		records = append(records, item.toRecord(domainKey))
	}
	return records, envelope.Pagination.ItemsCount, nil
}

func (c *Client) endpoint(params url.Values, segments ...string) string {
	u := c.base.JoinPath(segments...)
	if params != nil {
		u.RawQuery = params.Encode()
	}
	return u.String()
}

func (c *Client) fetch(ctx context.Context, endpoint, domainKey, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithContext(ctx).Error("upstream.request.failed", "url", endpoint, "error", err)
		return nil, fmt.Errorf("upstream: GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	c.logger.WithContext(ctx).Debug("upstream.request",
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &domain.NotFoundError{Resource: domainKey, Key: key}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %d from %s: %s", ErrUnexpectedStatus, resp.StatusCode, endpoint, bytes.TrimSpace(snippet))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("upstream: read body: %w", err)
	}
	return body, nil
}

func (c *Client) decodeRecord(domainKey string, body []byte) (*content.Record, error) {
	if err := c.validator.ValidateJSON(validation.RecordSchema, body); err != nil {
		return nil, err
	}
	var item wireRecord
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("upstream: decode %s record: %w", domainKey, err)
	}
	return item.toRecord(domainKey), nil
}
