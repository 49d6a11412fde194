// Package client is the HTTP transport for the control-plane admin API.
// It owns auth headers, timeouts, and retries; callers get decoded JSON
// values or an error.
package client

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

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/soyeahso/tenctl/internal/config"
	"github.com/soyeahso/tenctl/internal/logging"
)

// Client issues admin requests against the control-plane API.
type Client struct {
	baseURL string
	apiKey  string
	agentID string
	http    *retryablehttp.Client
	log     *logging.Logger
}

// New builds a Client from the resolved config. The timeout applies per
// attempt; requests are retried a few times on connection errors and 5xx
// replies regardless of method, per retryablehttp's default policy.
func New(cfg config.Config, log *logging.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 250 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.Logger = logging.Leveled{L: log.Sub("transport")}
	rc.HTTPClient.Timeout = time.Duration(cfg.Timeout * float64(time.Second))

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		agentID: cfg.AgentID,
		http:    rc,
		log:     log.Sub("client"),
	}
}

// CreateAccount creates a new account with an initial admin user.
func (c *Client) CreateAccount(ctx context.Context, accountID, adminUserID string) (any, error) {
	body := map[string]string{"account_id": accountID, "admin_user_id": adminUserID}
	return c.do(ctx, http.MethodPost, "/admin/accounts", body)
}

// ListAccounts returns all accounts.
func (c *Client) ListAccounts(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/admin/accounts", nil)
}

// DeleteAccount deletes an account. The API may reply with an empty body
// on success.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) (any, error) {
	return c.do(ctx, http.MethodDelete, "/admin/accounts/"+url.PathEscape(accountID), nil)
}

// RegisterUser adds a user to an account with the given role.
func (c *Client) RegisterUser(ctx context.Context, accountID, userID, role string) (any, error) {
	body := map[string]string{"user_id": userID, "role": role}
	return c.do(ctx, http.MethodPost, "/admin/accounts/"+url.PathEscape(accountID)+"/users", body)
}

// ListUsers returns all users of an account.
func (c *Client) ListUsers(ctx context.Context, accountID string) (any, error) {
	return c.do(ctx, http.MethodGet, "/admin/accounts/"+url.PathEscape(accountID)+"/users", nil)
}

// RemoveUser removes a user from an account. The API may reply with an
// empty body on success.
func (c *Client) RemoveUser(ctx context.Context, accountID, userID string) (any, error) {
	path := "/admin/accounts/" + url.PathEscape(accountID) + "/users/" + url.PathEscape(userID)
	return c.do(ctx, http.MethodDelete, path, nil)
}

// SetRole changes a user's role within an account.
func (c *Client) SetRole(ctx context.Context, accountID, userID, role string) (any, error) {
	path := "/admin/accounts/" + url.PathEscape(accountID) + "/users/" + url.PathEscape(userID) + "/role"
	return c.do(ctx, http.MethodPut, path, map[string]string{"role": role})
}

// RegenerateKey issues a fresh API key for a user, invalidating the old one.
func (c *Client) RegenerateKey(ctx context.Context, accountID, userID string) (any, error) {
	path := "/admin/accounts/" + url.PathEscape(accountID) + "/users/" + url.PathEscape(userID) + "/key"
	return c.do(ctx, http.MethodPost, path, nil)
}

// do performs one request and decodes the JSON reply. Empty bodies decode
// to nil so callers can substitute their own confirmation payloads.
func (c *Client) do(ctx context.Context, method, path string, body any) (any, error) {
	var payload any
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = data
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.agentID != "" {
		req.Header.Set("X-Agent-Id", c.agentID)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return result, nil
}

// errorMessage extracts a human-readable message from an error body.
func errorMessage(body []byte) string {
	var shape struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &shape); err == nil {
		if shape.Error != "" {
			return shape.Error
		}
		if shape.Message != "" {
			return shape.Message
		}
	}
	return strings.TrimSpace(string(body))
}
