// Package client implements a typed REST client over the tracker API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jiyaaggarwal267-maker/career-tracker/internal/model"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
	// Messages holds the validation error list on 400 responses.
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// Client calls the tracker API. Calls are sequential; there is no retry
// policy beyond what http.Client provides.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New constructs a Client for the API served at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP:    http.DefaultClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		envelope := struct {
			Error   string   `json:"error"`
			Message string   `json:"message"`
			Errors  []string `json:"errors"`
		}{}
		if err := json.Unmarshal(raw, &envelope); err == nil {
			apiErr.Message = envelope.Error
			if envelope.Message != "" {
				apiErr.Message = envelope.Message
			}
			apiErr.Messages = envelope.Errors
		}
		return apiErr
	}

	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// List fetches records, optionally narrowed to one status and ordered by date.
func (c *Client) List(ctx context.Context, status, sortDir string) ([]model.Application, error) {
	path := "/api/applications"
	query := []string{}
	if status != "" {
		query = append(query, "status="+status)
	}
	if sortDir != "" {
		query = append(query, "sort="+sortDir)
	}
	if len(query) > 0 {
		path += "?" + strings.Join(query, "&")
	}

	apps := []model.Application{}
	if err := c.do(ctx, http.MethodGet, path, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Get fetches one record by id.
func (c *Client) Get(ctx context.Context, id int) (model.Application, error) {
	app := model.Application{}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/applications/%d", id), nil, &app)
	return app, err
}

// Create submits a new record and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, in model.ApplicationInput) (model.Application, error) {
	app := model.Application{}
	err := c.do(ctx, http.MethodPost, "/api/applications", in, &app)
	return app, err
}

// Update replaces the record at id wholesale.
func (c *Client) Update(ctx context.Context, id int, in model.ApplicationInput) (model.Application, error) {
	app := model.Application{}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/applications/%d", id), in, &app)
	return app, err
}

// Delete removes the record at id.
func (c *Client) Delete(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/applications/%d", id), nil, nil)
}

// Stats fetches aggregate counts over the whole collection.
func (c *Client) Stats(ctx context.Context) (model.Stats, error) {
	stats := model.Stats{}
	err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats)
	return stats, err
}
