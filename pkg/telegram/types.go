package telegram

// maxMessageLength is the Bot API limit for one sendMessage text, in UTF-16 units.
// Runes are counted here, which stays under the limit for the texts we send.
const maxMessageLength = 4096

// HeaderSecretToken carries the secret_token given to setWebhook on every
// webhook request.
const HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"

// Update represents a Telegram incoming update.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message represents a Telegram message.
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      *Chat  `json:"chat"`
	Date      int64  `json:"date"`
	Text      string `json:"text,omitempty"`
}

// User represents a Telegram user.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// Chat represents a Telegram chat.
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// SendMessageRequest is the payload for Telegram sendMessage API.
type SendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// APIResponse is a generic Telegram Bot API response wrapper.
type APIResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}
