// Package backend talks to the admin HTTP backend. Every mutating call returns
// the decoded Response on success and a typed error (ValidationError,
// TransportError or ApplicationError) otherwise.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"adminctl/internal/config"
	"adminctl/internal/domain"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	// maxBodyBytes bounds how much of a response body is read
	maxBodyBytes = 4 << 20
)

// Response is the body every mutating endpoint answers with
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// listResponse is the list endpoint body
type listResponse struct {
	Items []domain.Row `json:"items"`
}

// Client is the admin backend client
type Client struct {
	baseURL   *url.URL
	endpoints config.Endpoints
	encoding  string
	actions   map[string]bool
	http      *http.Client
	logger    *zap.Logger
	lists     singleflight.Group
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l.Named("backend") }
}

// NewClient builds a client from configuration. The session cookie, when
// configured, is placed in the client's cookie jar for the base URL.
func NewClient(cfg *config.Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	if cfg.SessionCookie != "" {
		jar.SetCookies(base, []*http.Cookie{{
			Name:  cfg.SessionCookieName,
			Value: cfg.SessionCookie,
			Path:  "/",
		}})
	}

	c := &Client{
		baseURL:   base,
		endpoints: cfg.ResolvedEndpoints(),
		encoding:  cfg.BulkEncoding,
		actions:   make(map[string]bool),
		http:      &http.Client{Jar: jar},
		logger:    zap.NewNop(),
	}
	for _, a := range cfg.BulkActions {
		c.actions[a] = true
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Jar == nil {
		c.http.Jar = jar
	}
	return c, nil
}

// List fetches the rows. Concurrent calls share one request.
func (c *Client) List(ctx context.Context) ([]domain.Row, error) {
	v, err, shared := c.lists.Do("list", func() (interface{}, error) {
		return c.list(ctx)
	})
	if shared {
		c.logger.Debug("list request coalesced")
	}
	if err != nil {
		return nil, err
	}
	rows := v.([]domain.Row)
	out := make([]domain.Row, len(rows))
	copy(out, rows)
	return out, nil
}

func (c *Client) list(ctx context.Context) ([]domain.Row, error) {
	const op = "list"
	body, err := c.do(ctx, op, http.MethodGet, c.endpoints.List, "", nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rows []domain.Row
		if err := json.Unmarshal(trimmed, &rows); err != nil {
			return nil, &TransportError{Op: op, Err: fmt.Errorf("decode rows: %w", err)}
		}
		return rows, nil
	}

	var lr listResponse
	if err := json.Unmarshal(trimmed, &lr); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("decode rows: %w", err)}
	}
	return lr.Items, nil
}

// Delete asks the backend to delete one row
func (c *Client) Delete(ctx context.Context, id string) (Response, error) {
	const op = "delete"
	if strings.TrimSpace(id) == "" {
		return Response{}, &ValidationError{Reason: "no id found for delete"}
	}
	return c.mutate(ctx, op, expand(c.endpoints.Delete, id), contentTypeJSON, nil)
}

// UpdateStatus posts the new status of one row
func (c *Client) UpdateStatus(ctx context.Context, id, status string) (Response, error) {
	const op = "update status"
	if strings.TrimSpace(id) == "" {
		return Response{}, &ValidationError{Reason: "no id found for status update"}
	}
	if status != domain.StatusActive && status != domain.StatusInactive {
		return Response{}, &ValidationError{Reason: fmt.Sprintf("invalid status %q", status)}
	}
	payload, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return Response{}, fmt.Errorf("encode status: %w", err)
	}
	return c.mutate(ctx, op, expand(c.endpoints.Status, id), contentTypeJSON, payload)
}

// BulkAction applies action to ids in one request
func (c *Client) BulkAction(ctx context.Context, action string, ids []string) (Response, error) {
	const op = "bulk action"
	if len(ids) == 0 {
		return Response{}, &ValidationError{Reason: "no rows selected"}
	}
	if !c.actions[action] {
		return Response{}, &ValidationError{Reason: fmt.Sprintf("unknown bulk action %q", action)}
	}
	contentType, payload, err := EncodeBulk(c.encoding, action, ids)
	if err != nil {
		return Response{}, err
	}
	return c.mutate(ctx, op, c.endpoints.Bulk, contentType, payload)
}

// EncodeBulk renders the bulk request body. The form encoding repeats the
// ids[] field once per id; the JSON encoding sends {"action", "items"}.
func EncodeBulk(encoding, action string, ids []string) (string, []byte, error) {
	switch encoding {
	case config.BulkEncodingForm, "":
		form := url.Values{}
		form.Set("action", action)
		for _, id := range ids {
			form.Add("ids[]", id)
		}
		return contentTypeForm, []byte(form.Encode()), nil
	case config.BulkEncodingJSON:
		payload, err := json.Marshal(struct {
			Action string   `json:"action"`
			Items  []string `json:"items"`
		}{Action: action, Items: ids})
		if err != nil {
			return "", nil, fmt.Errorf("encode bulk action: %w", err)
		}
		return contentTypeJSON, payload, nil
	}
	return "", nil, &ValidationError{Reason: fmt.Sprintf("unknown bulk encoding %q", encoding)}
}

func (c *Client) mutate(ctx context.Context, op, path, contentType string, payload []byte) (Response, error) {
	body, err := c.do(ctx, op, http.MethodPost, path, contentType, payload)
	if err != nil {
		return Response{}, err
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return Response{}, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !resp.Success {
		return resp, &ApplicationError{Op: op, Message: resp.Message}
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, op, method, path, contentType string, payload []byte) ([]byte, error) {
	target := c.resolve(path)
	requestID := uuid.NewString()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("op", op),
			zap.String("url", target),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug("request completed",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", target),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		te := &TransportError{Op: op, StatusCode: resp.StatusCode}
		var r Response
		if json.Unmarshal(body, &r) == nil {
			te.Message = r.Message
		}
		return nil, te
	}
	return body, nil
}

// resolve joins an already-escaped path onto the base URL
func (c *Client) resolve(path string) string {
	return strings.TrimRight(c.baseURL.String(), "/") + "/" + strings.TrimLeft(path, "/")
}

// expand substitutes the escaped id into a path template
func expand(template, id string) string {
	return strings.ReplaceAll(template, "{id}", url.PathEscape(id))
}
