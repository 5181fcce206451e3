// File: api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"miorai-web/logger"
)

const requestTimeout = 30 * time.Second

// Client talks to one miorai backend. It is a small per-request value:
// controllers derive a token-bearing copy from the shared base client for
// every incoming request, so the client itself holds no session state.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New returns a client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

// WithToken returns a copy of the client that authenticates as the holder of
// the given backend token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.Token = token
	return &clone
}

// ---------------------- request plumbing ----------------------

// doJSON performs one backend call with a JSON body (body may be nil) and
// decodes a 2xx response into out (out may be nil). Every failure surfaces
// as an *Error; nothing is retried here.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, path, out)
}

// doMultipart performs one backend call with a multipart form body.
func (c *Client) doMultipart(ctx context.Context, method, path string, form func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := form(writer); err != nil {
		return fmt.Errorf("build form for %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("build form for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, path, out)
}

func (c *Client) send(req *http.Request, path string, out any) error {
	if c.Token != "" {
		req.Header.Set("Authorization", "Token "+c.Token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Warn.Printf("[api] %s %s request_id=%s failed: %v", req.Method, path, requestID, err)
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn.Printf("[api] closing response body for %s: %v", path, err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response for %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp.StatusCode, resp.Header, body)
		logger.Debug.Printf("[api] %s %s request_id=%s -> %d (%s)", req.Method, path, requestID, resp.StatusCode, apiErr.Kind)
		return apiErr
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response for %s: %w", path, err)
		}
	}
	return nil
}
