package portalsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal HTTP client for the portal API. A zero SessionToken
// makes unauthenticated calls; WithSession derives an authenticated view.
type Client struct {
	BaseURL      string
	HTTPClient   *http.Client
	SessionToken string
}

// NewClient creates a portal API client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithSession returns a copy of the client that sends the given session
// token as a bearer credential.
func (c *Client) WithSession(token string) *Client {
	clone := *c
	clone.SessionToken = token
	return &clone
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, expected int) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.SessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.SessionToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != expected {
		return parseErrorResponse(resp, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (SessionResponse, error) {
	var out SessionResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (SessionResponse, error) {
	var out SessionResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &out, http.StatusOK)
	return out, err
}

func (c *Client) ListProjects(ctx context.Context) (ProjectListResponse, error) {
	var out ProjectListResponse
	err := c.do(ctx, http.MethodGet, "/v1/projects", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (ProjectCreateResponse, error) {
	var out ProjectCreateResponse
	err := c.do(ctx, http.MethodPost, "/v1/projects", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) GetProject(ctx context.Context, id string) (ProjectResponse, error) {
	var out ProjectResponse
	err := c.do(ctx, http.MethodGet, "/v1/projects/"+url.PathEscape(id), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) EditProject(ctx context.Context, id string, req ProjectRequest) (ProjectResponse, error) {
	var out ProjectResponse
	err := c.do(ctx, http.MethodPut, "/v1/projects/"+url.PathEscape(id), req, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/projects/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (c *Client) ListUpdates(ctx context.Context, projectID string) (UpdateListResponse, error) {
	var out UpdateListResponse
	err := c.do(ctx, http.MethodGet, "/v1/projects/"+url.PathEscape(projectID)+"/updates", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) AddUpdate(ctx context.Context, projectID string, req UpdateRequest) (UpdateResponse, error) {
	var out UpdateResponse
	err := c.do(ctx, http.MethodPost, "/v1/projects/"+url.PathEscape(projectID)+"/updates", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) ListInvites(ctx context.Context) (InviteListResponse, error) {
	var out InviteListResponse
	err := c.do(ctx, http.MethodGet, "/v1/invites", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) IssueInvite(ctx context.Context, req InviteRequest) (IssueInviteResponse, error) {
	var out IssueInviteResponse
	err := c.do(ctx, http.MethodPost, "/v1/invites", req, &out, http.StatusOK)
	return out, err
}

func (c *Client) InviteView(ctx context.Context, token string) (AcceptViewResponse, error) {
	var out AcceptViewResponse
	err := c.do(ctx, http.MethodGet, "/v1/invites/accept/"+url.PathEscape(token), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) AcceptInvite(ctx context.Context, token string, req AcceptRequest) (AcceptResponse, error) {
	var out AcceptResponse
	err := c.do(ctx, http.MethodPost, "/v1/invites/accept/"+url.PathEscape(token), req, &out, http.StatusOK)
	return out, err
}

func (c *Client) ListClients(ctx context.Context) (ClientListResponse, error) {
	var out ClientListResponse
	err := c.do(ctx, http.MethodGet, "/v1/clients", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK)
	return out, err
}
