// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	xerrors "lazzat-client/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Client encapsulates HTTP interactions with the storefront backend.
// A bearer token is attached to every request when the token source
// yields one; request correlation uses a fresh ULID per call.
type Client struct {
	baseURL        *url.URL
	httpClient     *http.Client
	tokenSource    func() string
	onUnauthorized func()
	logger         *zap.Logger
}

// Options allows overriding client dependencies.
type Options struct {
	HTTPClient  *http.Client
	TokenSource func() string
	Logger      *zap.Logger
}

func New(baseURL string, opts Options) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tokenSource := opts.TokenSource
	if tokenSource == nil {
		tokenSource = func() string { return "" }
	}

	return &Client{
		baseURL:     parsed,
		httpClient:  httpClient,
		tokenSource: tokenSource,
		logger:      logger,
	}, nil
}

// SetTokenSource installs the bearer token provider after construction.
// The session manager owns the token but is itself built on top of this
// client, so the hookup happens once both exist.
func (c *Client) SetTokenSource(source func() string) {
	c.tokenSource = source
}

// SetUnauthorizedHook installs a callback fired whenever the backend answers
// 401, so the session manager can drop a token the backend no longer accepts.
func (c *Client) SetUnauthorizedHook(hook func()) {
	c.onUnauthorized = hook
}

// Error is a structured backend failure: either a detail message or a
// field-keyed validation map, plus the HTTP status.
type Error struct {
	Status int
	Detail string
	Fields map[string][]string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// FieldError returns the first message for a field, if any.
func (e *Error) FieldError(field string) (string, bool) {
	msgs, ok := e.Fields[field]
	if !ok || len(msgs) == 0 {
		return "", false
	}
	return msgs[0], true
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	rel, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	// Endpoint paths are rooted under the base URL's own path, so a base of
	// http://host/api keeps its /api prefix.
	full := *c.baseURL
	full.Path = strings.TrimSuffix(c.baseURL.Path, "/") + rel.Path
	full.RawQuery = rel.RawQuery

	req, err := http.NewRequestWithContext(ctx, method, full.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", ulid.Make().String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokenSource(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.httpClient.Do(req)
}

// doJSON sends an optional JSON payload and decodes a JSON response into out.
// Backend errors come back as *Error.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return err
		}
		body = buf
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return decodeJSON(resp.Body, out)
}

func decodeJSON(r io.Reader, out interface{}) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return xerrors.Wrap(err, "decode response")
	}
	return nil
}

// decodeError maps a backend error body into *Error. Django-style bodies are
// either {"detail": "..."} or a {"field": ["msg", ...]} validation map.
func (c *Client) decodeError(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}

	apiErr := &Error{Status: resp.StatusCode, Fields: map[string][]string{}}

	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return apiErr
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		c.logger.Debug("unparseable error body", zap.Int("status", resp.StatusCode))
		return apiErr
	}

	for field, msg := range raw {
		if field == "detail" {
			var detail string
			if json.Unmarshal(msg, &detail) == nil {
				apiErr.Detail = detail
			}
			continue
		}

		var list []string
		if json.Unmarshal(msg, &list) == nil {
			apiErr.Fields[field] = list
			continue
		}
		var single string
		if json.Unmarshal(msg, &single) == nil {
			apiErr.Fields[field] = []string{single}
		}
	}

	return apiErr
}
