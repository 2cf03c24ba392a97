// Package infoclient fetches the docker info payload from a running info
// service.
package infoclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/melih/lighthouse-info/internal/core/domain"
)

// Path is the endpoint the viewer reads from.
const Path = "/api/docker-info"

// Client implements ports.InfoFetcher over HTTP.
type Client struct {
	url     string
	timeout time.Duration
}

// New returns a client for the service at baseURL. A zero timeout means the
// request may stay pending indefinitely.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		url:     strings.TrimRight(baseURL, "/") + Path,
		timeout: timeout,
	}
}

// URL returns the full endpoint URL.
func (c *Client) URL() string { return c.url }

// Fetch issues a single GET and decodes the body. It does not retry. A
// context deadline, when set, takes precedence over the configured timeout.
// Cancelling ctx returns immediately; the abandoned request finishes in the
// background and its result is dropped.
func (c *Client) Fetch(ctx context.Context) (domain.DockerInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.DockerInfo{}, err
	}

	agent := fiber.Get(c.url)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if err := agent.Parse(); err != nil {
		return domain.DockerInfo{}, fmt.Errorf("build request: %w", err)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return domain.DockerInfo{}, context.DeadlineExceeded
		}
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	done := make(chan response, 1)
	go func() {
		code, body, errs := agent.Bytes()
		done <- response{code: code, body: body, errs: errs}
	}()

	var resp response
	select {
	case <-ctx.Done():
		return domain.DockerInfo{}, ctx.Err()
	case resp = <-done:
	}

	if len(resp.errs) > 0 {
		return domain.DockerInfo{}, fmt.Errorf("get %s: %w", c.url, errors.Join(resp.errs...))
	}
	if resp.code < 200 || resp.code > 299 {
		return domain.DockerInfo{}, &StatusError{Code: resp.code, Body: strings.TrimSpace(string(resp.body))}
	}

	var info domain.DockerInfo
	if err := json.Unmarshal(resp.body, &info); err != nil {
		return domain.DockerInfo{}, fmt.Errorf("decode docker info: %w", err)
	}
	return info, nil
}

type response struct {
	code int
	body []byte
	errs []error
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}
