package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"linebot-admin/internal/models"
)

const (
	DefaultLinePushURL = "https://api.line.me/v2/bot/message/push"

	maxErrorBody = 1 << 10
)

type linePushMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type linePushPayload struct {
	To       string            `json:"to"`
	Messages []linePushMessage `json:"messages"`
}

// LineClient sends push messages through the LINE Messaging API.
type LineClient struct {
	pushURL string
	client  *http.Client
}

func NewLineClient(pushURL string, timeout time.Duration) *LineClient {
	if pushURL == "" {
		pushURL = DefaultLinePushURL
	}
	return &LineClient{
		pushURL: pushURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// SendMessage pushes one text message to recipientID. It never returns an
// error: every failure is reported in the result.
func (c *LineClient) SendMessage(ctx context.Context, accessToken, recipientID, text string) models.SendResult {
	payload := linePushPayload{
		To:       recipientID,
		Messages: []linePushMessage{{Type: "text", Text: text}},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return models.SendFailed("send failed: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pushURL, bytes.NewReader(data))
	if err != nil {
		return models.SendFailed("send failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return models.SendFailed("send failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return models.SendOK("message sent")
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := string(bytes.TrimSpace(body))
	if detail == "" {
		detail = "Unknown error"
	}
	return models.SendFailed("send failed: status %d: %s", resp.StatusCode, detail)
}
