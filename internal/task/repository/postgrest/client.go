package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for a PostgREST-style table endpoint. Every
// request carries the project API key; the bearer token is the anonymous
// session token when sign-in succeeded, or the API key again when it did not.
type Client struct {
	baseURL    string
	apiKey     string
	bearer     string
	httpClient *http.Client
}

// NewClient creates a new table store client.
func NewClient(baseURL, apiKey, bearer string) *Client {
	if bearer == "" {
		bearer = apiKey
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		bearer:     bearer,
		httpClient: &http.Client{},
	}
}

func (c *Client) setHeaders(req *http.Request, representation bool) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.bearer))
	req.Header.Set("Content-Type", "application/json")
	if representation {
		req.Header.Set("Prefer", "return=representation")
	}
}

// Insert appends rows via POST /rest/v1/{table} and returns the created rows.
func (c *Client) Insert(ctx context.Context, table string, rows []TaskRow) ([]TaskRow, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)

	body, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal insert rows: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build insert request: %w", err)
	}
	c.setHeaders(httpReq, true)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call table insert API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("table API insert error %d: %s", resp.StatusCode, string(raw))
	}

	var created []TaskRow
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode insert response: %w", err)
	}
	return created, nil
}

// Select fetches the entire table ordered by the given column and direction.
func (c *Client) Select(ctx context.Context, table, orderBy string, descending bool) ([]TaskRow, error) {
	direction := "asc"
	if descending {
		direction = "desc"
	}
	url := fmt.Sprintf("%s/rest/v1/%s?select=*&order=%s.%s", c.baseURL, table, orderBy, direction)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build select request: %w", err)
	}
	c.setHeaders(httpReq, false)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call table select API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("table API select error %d: %s", resp.StatusCode, string(raw))
	}

	var rows []TaskRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode select response: %w", err)
	}
	return rows, nil
}

// Update patches rows matching id via PATCH /rest/v1/{table}?id=eq.{id} and
// returns the updated rows. An empty result means no row matched.
func (c *Client) Update(ctx context.Context, table string, id int64, patch UpdateRow) ([]TaskRow, error) {
	url := fmt.Sprintf("%s/rest/v1/%s?id=eq.%d", c.baseURL, table, id)

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal update patch: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build update request: %w", err)
	}
	c.setHeaders(httpReq, true)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call table update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("table API update error %d: %s", resp.StatusCode, string(raw))
	}

	var updated []TaskRow
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to decode update response: %w", err)
	}
	return updated, nil
}

// Delete removes rows matching id via DELETE /rest/v1/{table}?id=eq.{id} and
// returns the deleted rows. An empty result means no row matched.
func (c *Client) Delete(ctx context.Context, table string, id int64) ([]TaskRow, error) {
	url := fmt.Sprintf("%s/rest/v1/%s?id=eq.%d", c.baseURL, table, id)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build delete request: %w", err)
	}
	c.setHeaders(httpReq, true)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call table delete API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("table API delete error %d: %s", resp.StatusCode, string(raw))
	}

	var deleted []TaskRow
	if err := json.NewDecoder(resp.Body).Decode(&deleted); err != nil {
		return nil, fmt.Errorf("failed to decode delete response: %w", err)
	}
	return deleted, nil
}
