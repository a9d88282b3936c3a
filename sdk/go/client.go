// Package accesslintsdk is a minimal Accesslint HTTP API client.
package accesslintsdk

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

// Client talks to an Accesslint server.
type Client struct {
	BaseURL     string
	BasePath    string
	APIKey      string
	BearerToken string
	HTTPClient  *http.Client
	Timeout     time.Duration
}

// New creates a client with sane defaults.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:  baseURL,
		BasePath: "api/v1",
		Timeout:  10 * time.Second,
	}
}

// Verdict mirrors the API's per-criterion result, including the resolved
// reference URL in machine output.
type Verdict struct {
	CriterionID    string `json:"criterion_id"`
	Name           string `json:"name"`
	Level          string `json:"level"`
	Status         string `json:"status"`
	Observed       any    `json:"observed,omitempty"`
	Required       any    `json:"required,omitempty"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation,omitempty"`
	URL            string `json:"url,omitempty"`
}

// Summary mirrors the API's aggregate counts.
type Summary struct {
	Total    int                       `json:"total"`
	Passed   int                       `json:"passed"`
	Failed   int                       `json:"failed"`
	Warnings int                       `json:"warnings"`
	Info     int                       `json:"info"`
	ByLevel  map[string]map[string]int `json:"by_level"`
}

// MachineReport mirrors the structured half of a check response.
type MachineReport struct {
	Version     string    `json:"version"`
	GeneratedAt string    `json:"generated_at"`
	Title       string    `json:"title,omitempty"`
	Category    string    `json:"category,omitempty"`
	Summary     Summary   `json:"summary"`
	Results     []Verdict `json:"results"`
}

// CheckResponse is the full body of a check operation.
type CheckResponse struct {
	Text    string        `json:"text"`
	Machine MachineReport `json:"machine"`
}

// Criterion mirrors a catalog entry.
type Criterion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       string `json:"level"`
	Category    string `json:"category"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Audit mirrors a recorded evaluation run.
type Audit struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Operation string `json:"operation"`
	Category  string `json:"category,omitempty"`
	Total     int    `json:"total"`
	Passed    int    `json:"passed"`
	Failed    int    `json:"failed"`
	Warnings  int    `json:"warnings"`
	Info      int    `json:"info"`
}

// APIError wraps non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Check runs one named check operation, e.g. "contrast" or
// "text-spacing", with the given input document.
func (c *Client) Check(ctx context.Context, name string, input any) (CheckResponse, error) {
	var resp CheckResponse
	err := c.do(ctx, http.MethodPost, "checks/"+url.PathEscape(name), input, &resp)
	return resp, err
}

// Validate runs one topic orchestrator, e.g. "text" or "forms".
func (c *Client) Validate(ctx context.Context, topic string, input any) (CheckResponse, error) {
	var resp CheckResponse
	err := c.do(ctx, http.MethodPost, "validate/"+url.PathEscape(topic), input, &resp)
	return resp, err
}

// CheckContrast is a typed convenience wrapper for the contrast check.
func (c *Client) CheckContrast(ctx context.Context, foreground, background string, fontSizePx *float64, bold *bool) (CheckResponse, error) {
	body := map[string]any{
		"foreground": foreground,
		"background": background,
	}
	if fontSizePx != nil {
		body["font_size_px"] = *fontSizePx
	}
	if bold != nil {
		body["bold"] = *bold
	}
	return c.Check(ctx, "contrast", body)
}

// Criteria lists the success criteria catalog, optionally filtered.
func (c *Client) Criteria(ctx context.Context, category, level string) ([]Criterion, error) {
	endpoint := "criteria"
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if level != "" {
		q.Set("level", level)
	}
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	var resp []Criterion
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

// Criterion fetches one catalog entry by id.
func (c *Client) Criterion(ctx context.Context, id string) (Criterion, error) {
	var resp Criterion
	err := c.do(ctx, http.MethodGet, "criteria/"+url.PathEscape(id), nil, &resp)
	return resp, err
}

// Audits lists recent evaluation runs.
func (c *Client) Audits(ctx context.Context, operation string, limit int) ([]Audit, error) {
	endpoint := "audits"
	q := url.Values{}
	if operation != "" {
		q.Set("operation", operation)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	var resp []Audit
	err := c.do(ctx, http.MethodGet, endpoint, nil, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	u := c.base() + "/" + strings.Trim(c.BasePath, "/") + "/" + strings.TrimLeft(endpoint, "/")
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	switch {
	case c.BearerToken != "":
		req.Header.Set("Authorization", "Bearer "+c.BearerToken)
	case c.APIKey != "":
		req.Header.Set("X-Api-Key", c.APIKey)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) base() string {
	return strings.TrimRight(c.BaseURL, "/")
}
