package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the identity service's anonymous sign-in.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new identity client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// SignInAnonymously obtains a non-interactive session via POST /auth/v1/signup.
// Callers treat failure as non-fatal: subsequent operations proceed with the
// public API key only.
func (c *Client) SignInAnonymously(ctx context.Context) (Session, error) {
	url := fmt.Sprintf("%s/auth/v1/signup", c.baseURL)

	body, err := json.Marshal(map[string]any{"is_anonymous": true})
	if err != nil {
		return Session{}, fmt.Errorf("failed to marshal sign-in request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Session{}, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Session{}, fmt.Errorf("failed to call identity API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Session{}, fmt.Errorf("identity API error %d: %s", resp.StatusCode, string(raw))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return Session{}, fmt.Errorf("failed to decode sign-in response: %w", err)
	}
	if session.AccessToken == "" {
		return Session{}, fmt.Errorf("identity API returned no access token")
	}
	return session, nil
}
