// Package apiclient is a typed Go client for the talentradar API. It shares
// the request types (and their Validate methods) with the server handlers, so
// a payload that passes here passes server-side validation too, barring
// cross-user races.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	alertModel "talentradar/internal/alert/models"
	newsletterModel "talentradar/internal/newsletter/models"
	profileModel "talentradar/internal/recruiter/models"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("api error %d: %s (field %s)", e.Status, e.Message, e.Field)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to a talentradar server.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client (timeouts, transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sets the bearer token used for authenticated endpoints.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{baseURL: baseURL, http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAlerts returns all alerts owned by the authenticated user.
func (c *Client) ListAlerts(ctx context.Context) ([]*alertModel.Alert, error) {
	var out []*alertModel.Alert
	err := c.do(ctx, http.MethodGet, "/api/alerts", nil, http.StatusOK, &out)
	return out, err
}

// GetAlert returns one alert by id.
func (c *Client) GetAlert(ctx context.Context, id int) (*alertModel.Alert, error) {
	var out alertModel.Alert
	err := c.do(ctx, http.MethodGet, "/api/alerts/"+strconv.Itoa(id), nil, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAlert validates req locally, then creates the alert.
func (c *Client) CreateAlert(ctx context.Context, req *alertModel.CreateAlertRequest) (*alertModel.Alert, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out alertModel.Alert
	err := c.do(ctx, http.MethodPost, "/api/alerts", req, http.StatusCreated, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAlert validates req locally, then applies the partial update.
func (c *Client) UpdateAlert(ctx context.Context, id int, req *alertModel.UpdateAlertRequest) (*alertModel.Alert, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out alertModel.Alert
	err := c.do(ctx, http.MethodPut, "/api/alerts/"+strconv.Itoa(id), req, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAlert removes an alert.
func (c *Client) DeleteAlert(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/alerts/"+strconv.Itoa(id), nil, http.StatusNoContent, nil)
}

// GetProfile returns the authenticated user's recruiter profile.
func (c *Client) GetProfile(ctx context.Context) (*profileModel.RecruiterProfile, error) {
	var out profileModel.RecruiterProfile
	err := c.do(ctx, http.MethodGet, "/api/recruiter/profile", nil, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile validates req locally, then upserts the profile.
func (c *Client) UpdateProfile(ctx context.Context, req *profileModel.UpdateProfileRequest) (*profileModel.RecruiterProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out profileModel.RecruiterProfile
	err := c.do(ctx, http.MethodPut, "/api/recruiter/profile", req, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Subscribe signs an email up for the newsletter. No authentication.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	req := &newsletterModel.SubscribeRequest{Email: email}
	if err := req.Validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/newsletter/subscribe", req, http.StatusCreated, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr := json.NewDecoder(resp.Body).Decode(apiErr); decodeErr != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
