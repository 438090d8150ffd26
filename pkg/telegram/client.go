// Package telegram provides a small client for posting operator alerts via Telegram.
//
// The client is bound to a single chat. When no bot token is configured it is
// disabled and every call is a no-op.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// Client represents a Telegram client used to send alerts.
type Client struct {
	token   string       // bot token for authentication
	chatID  string       // ops chat receiving alerts
	baseURL string       // Bot API root, overridable in tests
	client  *http.Client // HTTP client used to make requests
}

// NewClient creates a new Telegram Client posting to chatID.
func NewClient(token, chatID string) *Client {
	return &Client{
		token:   token,
		chatID:  chatID,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"` // chat id to send message to
	Text   string `json:"text"`    // message text
}

// Enabled reports whether alerts will actually be delivered.
func (c *Client) Enabled() bool {
	return c.token != "" && c.chatID != ""
}

// Alert posts text to the configured ops chat.
//
// It returns an error if the request fails or the API responds with a non-200 status.
func (c *Client) Alert(ctx context.Context, text string) error {
	if !c.Enabled() {
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	body, err := json.Marshal(sendMessageRequest{ChatID: c.chatID, Text: text})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}
