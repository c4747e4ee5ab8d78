// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

// Package transport retrieves remote artifacts in full. There are no retries: a failure aborts the caller.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// StatusError is returned when the server answers with anything except 200.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("received %d status code from %s", e.StatusCode, e.URL)
}

// Client adds the userAgent header to each request, so that we can tell what is a dev build vs release.
type Client struct {
	client    *http.Client
	userAgent string
}

// New returns a Client backed by http.DefaultClient.
func New(userAgent string) *Client {
	return &Client{client: http.DefaultClient, userAgent: userAgent}
}

// Get returns the entire body of url.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	// #nosec -> url can be anywhere by design
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Add("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body) // fully read the response
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", url, err)
	}
	return body, nil
}
