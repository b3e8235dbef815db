package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secretToken
// is echoed back by Telegram in HeaderSecretToken.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secretToken string) error {
	payload := map[string]string{"url": webhookURL}
	if secretToken != "" {
		payload["secret_token"] = secretToken
	}
	resp, err := b.post(ctx, "setWebhook", payload)
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode webhook response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends plain text to a chat, split over several messages when it
// exceeds the API limit.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	for _, part := range splitMessage(text, maxMessageLength) {
		if err := b.sendOne(ctx, chatID, part); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) sendOne(ctx context.Context, chatID int64, text string) error {
	resp, err := b.post(ctx, "sendMessage", SendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram sendMessage API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

func (b *Bot) post(ctx context.Context, method string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return b.httpClient.Do(req)
}

// splitMessage cuts text into parts of at most limit runes, preferring line breaks.
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var parts []string
	for len(runes) > limit {
		cut := limit
		if nl := strings.LastIndex(string(runes[:limit]), "\n"); nl > 0 {
			cut = len([]rune(string(runes[:limit])[:nl]))
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
		if len(runes) > 0 && runes[0] == '\n' {
			runes = runes[1:]
		}
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
