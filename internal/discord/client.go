package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client posts alerts to a Discord webhook. Callers treat every send as
// fire and forget.
type Client struct {
	webhookUrl string
	httpClient *http.Client
}

func NewClient(webhookUrl string) *Client {
	return &Client{
		webhookUrl: webhookUrl,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

type embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

const embedColor = 0x4169e1

func (c *Client) send(ctx context.Context, title, message string) error {
	if c.webhookUrl == "" {
		return fmt.Errorf("no webhook url configured")
	}

	payload, err := json.Marshal(webhookPayload{
		Embeds: []embed{{
			Title:       title,
			Description: message,
			Color:       embedColor,
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookUrl, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
