package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/oyenscilik/cms-admin/src/session"
)

// ErrUnauthorized indicates the API rejected the bearer token. By the time a
// caller sees this error the session has already been torn down; the web
// layer's only remaining job is to redirect to the login screen.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries a non-2xx response from the API. Message holds the
// server's own message field when one was present, so validation errors can
// be surfaced to the admin verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// IsClientError reports whether the failure is a 4xx validation/business
// error whose message should be shown to the admin as-is.
func (e *APIError) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// Client is the single HTTP client behind every resource gateway. It attaches
// the session's bearer token to each outgoing request and tears the session
// down on any 401 response. No gateway implements its own auth handling.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   session.Store
}

// New creates a client for the API at baseURL backed by the given session
// store.
func New(baseURL string, sessions session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
		sessions: sessions,
	}
}

// envelope is the API's standard response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Get issues a GET and decodes the enveloped response data into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response data into out.
// Both body and out may be nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body and decodes the response data into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE. The API returns no body of interest.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Ping reports whether the API host answers at all. Any HTTP response
// counts as reachable; only a transport failure does not.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create ping request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if _, token, ok := c.sessions.Current(); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Global teardown: the session is cleared before the caller's own
		// error handler runs, regardless of which screen issued the request.
		if err := c.sessions.Logout(); err != nil {
			log.Error().Err(err).Msg("failed to clear session after 401")
		}
		return ErrUnauthorized
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read api response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(respBody)}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode api response: %w", err)
	}
	if env.Data == nil {
		// Some endpoints (logout, delete) respond without the envelope.
		return json.Unmarshal(respBody, out)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode api response data: %w", err)
	}
	return nil
}

// extractMessage pulls the server's message field out of an error body.
func extractMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}
