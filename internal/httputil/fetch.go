// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP transport used by the dictionary
// adapter: one GET per call, body returned as text, non-2xx responses
// reported as *StatusError.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/dictionary-uniprot/pkg/types"
)

// StatusError reports a response with a non-2xx status code. Detail holds
// the decoded body when the body is JSON, otherwise the body text.
type StatusError struct {
	Status int `json:"status" yaml:"status"`
	Detail any `json:"error" yaml:"error"`
}

func (e *StatusError) Error() string {
	switch d := e.Detail.(type) {
	case string:
		return fmt.Sprintf("HTTP %d: %s", e.Status, d)
	default:
		b, err := json.Marshal(d)
		if err != nil {
			return fmt.Sprintf("HTTP %d", e.Status)
		}
		return fmt.Sprintf("HTTP %d: %s", e.Status, b)
	}
}

// NewStatusError builds a StatusError from a status code and raw body.
func NewStatusError(status int, body string) *StatusError {
	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err == nil {
		return &StatusError{Status: status, Detail: decoded}
	}
	return &StatusError{Status: status, Detail: body}
}

// Client fetches URLs over HTTP.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// NewClient returns a Client configured from cfg.
func NewClient(cfg types.HTTPConfig) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		UserAgent: cfg.UserAgent,
	}
}

// Fetch performs a GET on rawURL and returns the response body. Network
// failures are wrapped; non-2xx responses return a *StatusError.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("UniProt API request: %w", err)
	}
	defer resp.Body.Close()

	var b strings.Builder
	if _, err := io.Copy(&b, resp.Body); err != nil {
		return "", fmt.Errorf("reading UniProt response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", NewStatusError(resp.StatusCode, b.String())
	}
	return b.String(), nil
}
