package telegram

import (
	"context"
	"crypto/hmac"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-assistant/internal/task"
	pkgLog "task-assistant/pkg/log"
	pkgResponse "task-assistant/pkg/response"
	pkgTelegram "task-assistant/pkg/telegram"
)

type handler struct {
	l           pkgLog.Logger
	uc          task.UseCase
	bot         Sender
	welcome     string
	secretToken string
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges at once and handles the message in the background, since
// Telegram retries updates that are not answered quickly.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		got := c.GetHeader(pkgTelegram.HeaderSecretToken)
		if !hmac.Equal([]byte(got), []byte(h.secretToken)) {
			h.l.Warnf(ctx, "telegram handler: rejected update from %s: bad secret token", c.ClientIP())
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		// Detached: the request context is cancelled once we respond.
		bgCtx := pkgLog.WithTraceID(context.Background(), uuid.NewString())
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: reply to chat %d failed: %v", msg.Chat.ID, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case commandStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, h.welcome)
	case commandHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, helpText)
	}

	out, err := h.uc.Execute(ctx, task.ExecuteInput{Input: text})
	if err != nil {
		h.l.Debugf(ctx, "telegram handler: chat %d %q: %v", msg.Chat.ID, text, err)
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, replyFor(out, err))
}
