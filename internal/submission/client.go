// Package submission sends guest data to the registry spreadsheet endpoint.
package submission

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"checkin/internal/document"
	"checkin/pkg/platform/sentinel"
)

const maxErrorBody = 4 << 10

// Client posts guest payloads as multipart form data.
type Client struct {
	endpoint string
	httpc    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpc = c
	}
}

// New creates a Client for endpoint with the given per-call timeout.
func New(endpoint string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimSpace(endpoint),
		httpc:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts payload. Any non-2xx answer is an error carrying the status and
// the start of the body.
func (c *Client) Submit(ctx context.Context, payload document.GuestPayload) error {
	body, contentType, err := encode(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("submit guest data: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		x, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(x))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// StatusError reports a non-2xx answer from the endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("submission endpoint returned %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Unwrap classifies the failure as an unavailable dependency.
func (e *StatusError) Unwrap() error {
	return sentinel.ErrUnavailable
}

func encode(payload document.GuestPayload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, key := range document.PayloadKeys() {
		if err := w.WriteField(key, payload[key]); err != nil {
			return nil, "", fmt.Errorf("encode %s: %w", key, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("encode submission: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
