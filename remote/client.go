// Package remote is the one HTTP client every screen shares to reach the
// dashboard's REST API. It sets the default headers, turns non-2xx answers
// into coded errors and never retries.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/supakorn-kn/go-dashboard/env"
	serverError "github.com/supakorn-kn/go-dashboard/errors"
)

type Client struct {
	baseURL *url.URL
	http    *http.Client
	headers http.Header
	token   string
}

type Option func(*Client)

// WithHTTPClient swaps the transport, mostly for tests against httptest servers.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

func New(cfg env.RemoteConfig, opts ...Option) (*Client, error) {

	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, serverError.InvalidConfigError.New("REMOTE_BASE_URL", err)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, serverError.InvalidConfigError.New("REMOTE_BASE_URL", "must be an absolute URL")
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("ngrok-skip-browser-warning", "true")

	client := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		headers: headers,
		token:   cfg.Token,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// WithToken returns a copy of the client that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {

	copied := *c
	copied.headers = c.headers.Clone()
	copied.token = token

	return &copied
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// GetRaw fetches path and hands back the undecoded body, for callers that
// must inspect the response shape themselves.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, error) {

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	return c.send(req)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {

	var reader io.Reader
	if body != nil {

		b, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}

	respBody, err := c.send(req)
	if err != nil {
		return err
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return serverError.MalformedPayloadError.New(path, err)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {

	endpoint := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, err
	}

	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

func (c *Client) send(req *http.Request) ([]byte, error) {

	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {

		// Cancelled fetches are not failures worth showing; callers check with errors.Is.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, serverError.RemoteUnreachableError.New(err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serverError.RemoteUnreachableError.New(err)
	}

	slog.Debug("remote request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(started))

	if resp.StatusCode == http.StatusNotFound {
		return nil, serverError.RemoteNotFoundError.New(req.URL.Path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serverError.RemoteStatusError.New(resp.StatusCode, remoteMessage(body, resp.Status))
	}

	return body, nil
}

// remoteMessage pulls the human readable reason the API put in an error body.
func remoteMessage(body []byte, fallback string) string {

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {

		if payload.Error != "" {
			return payload.Error
		}

		if payload.Message != "" {
			return payload.Message
		}
	}

	return fallback
}
