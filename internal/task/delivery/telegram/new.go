package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/task"
	pkgLog "task-assistant/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers reply texts to a chat. *pkg/telegram.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// New creates a new Telegram delivery handler. welcome is the reply to /start.
// When secretToken is set, updates without the matching secret header are rejected.
func New(l pkgLog.Logger, uc task.UseCase, bot Sender, welcome, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		welcome:     welcome,
		secretToken: secretToken,
	}
}
