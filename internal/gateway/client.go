// Package gateway is the HTTP client for the external messaging
// platform: game threads, thread comments and private messages. All
// text it receives already carries any embedded correlation context.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	BaseUrl   string
	Community string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type thingResponse struct {
	Id string `json:"id"`
}

func (c *Client) post(ctx context.Context, path string, body any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseUrl+path, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("platform returned status %d", resp.StatusCode)
	}

	var thing thingResponse
	if err := json.NewDecoder(resp.Body).Decode(&thing); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return thing.Id, nil
}

// PublishThread creates the game thread and returns its id. Called once
// per game; the id is immutable afterwards.
func (c *Client) PublishThread(ctx context.Context, title, body string) (string, error) {
	return c.post(ctx, "/api/submit", map[string]string{
		"community": c.cfg.Community,
		"title":     title,
		"text":      body,
	})
}

func (c *Client) EditThread(ctx context.Context, threadId, body string) error {
	_, err := c.post(ctx, "/api/editusertext", map[string]string{
		"thing_id": threadId,
		"text":     body,
	})
	return err
}

func (c *Client) PostReply(ctx context.Context, threadId, body string) (string, error) {
	return c.post(ctx, "/api/comment", map[string]string{
		"thing_id": threadId,
		"text":     body,
	})
}

func (c *Client) SendPrivateMessage(ctx context.Context, recipients []string, subject, body string) (string, error) {
	return c.post(ctx, "/api/compose", map[string]any{
		"to":      recipients,
		"subject": subject,
		"text":    body,
	})
}
