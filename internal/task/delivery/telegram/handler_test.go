package telegram_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/command"
	"task-assistant/internal/task"
	"task-assistant/internal/task/delivery/telegram"
	"task-assistant/pkg/log"
	pkgTelegram "task-assistant/pkg/telegram"
)

type mockUseCase struct {
	mu     sync.Mutex
	inputs []string
	out    task.ExecuteOutput
	err    error
}

func (m *mockUseCase) Load(ctx context.Context) error { return nil }

func (m *mockUseCase) Execute(ctx context.Context, in task.ExecuteInput) (task.ExecuteOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, in.Input)
	return m.out, m.err
}

func (m *mockUseCase) List(ctx context.Context) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}

type mockSender struct {
	mu      sync.Mutex
	chatIDs []int64
	texts   []string
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chatIDs = append(m.chatIDs, chatID)
	m.texts = append(m.texts, text)
	return nil
}

func (m *mockSender) sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.texts...)
}

func postUpdate(t *testing.T, h telegram.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	return postUpdateWithSecret(t, h, body, "")
}

func postUpdateWithSecret(t *testing.T, h telegram.Handler, body, secret string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(pkgTelegram.HeaderSecretToken, secret)
	}
	r.ServeHTTP(w, req)
	return w
}

func textUpdate(text string) string {
	return fmt.Sprintf(`{"update_id":1,"message":{"message_id":7,"chat":{"id":42,"type":"private"},"from":{"id":9,"first_name":"A"},"text":%q}}`, text)
}

func waitForReply(t *testing.T, s *mockSender) string {
	t.Helper()
	require.Eventually(t, func() bool { return len(s.sent()) > 0 }, time.Second, 10*time.Millisecond)
	return s.sent()[0]
}

func TestHandleWebhook_Replies(t *testing.T) {
	addErr := &command.Error{Kind: command.ErrEmptyDescription, Message: "☹ OOPS!!! The description of a todo cannot be empty."}

	tests := []struct {
		name      string
		text      string
		out       task.ExecuteOutput
		err       error
		wantReply string
		wantExec  bool
	}{
		{
			name:      "start",
			text:      "/start",
			wantReply: "Hello!",
		},
		{
			name:      "help",
			text:      "/help",
			wantReply: "Commands:",
		},
		{
			name:      "command",
			text:      "todo read book",
			out:       task.ExecuteOutput{Response: "Got it. I've added this task:"},
			wantReply: "Got it. I've added this task:",
			wantExec:  true,
		},
		{
			name:      "command error",
			text:      "todo",
			err:       addErr,
			wantReply: addErr.Message,
			wantExec:  true,
		},
		{
			name:      "save failure keeps response",
			text:      "todo x",
			out:       task.ExecuteOutput{Response: "Got it."},
			err:       fmt.Errorf("%w: disk full", task.ErrSaveFailed),
			wantReply: "could not be saved",
			wantExec:  true,
		},
		{
			name:      "unexpected error",
			text:      "todo y",
			err:       errors.New("boom"),
			wantReply: "Something went wrong",
			wantExec:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{out: tc.out, err: tc.err}
			sender := &mockSender{}
			h := telegram.New(log.NewNop(), uc, sender, "Hello! I'm Banana", "")

			w := postUpdate(t, h, textUpdate(tc.text))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "accepted")

			assert.Contains(t, waitForReply(t, sender), tc.wantReply)
			if tc.wantExec {
				assert.Equal(t, []string{tc.text}, uc.inputs)
			} else {
				assert.Empty(t, uc.inputs)
			}
			assert.Equal(t, int64(42), sender.chatIDs[0])
		})
	}
}

func TestHandleWebhook_IgnoresNonMessageUpdates(t *testing.T) {
	uc := &mockUseCase{}
	h := telegram.New(log.NewNop(), uc, &mockSender{}, "hi", "")

	w := postUpdate(t, h, `{"update_id":2}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
}

func TestHandleWebhook_BadJSON(t *testing.T) {
	h := telegram.New(log.NewNop(), &mockUseCase{}, &mockSender{}, "hi", "")

	w := postUpdate(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleWebhook_SecretToken(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		wantCode int
		wantExec bool
	}{
		{name: "missing header", secret: "", wantCode: http.StatusUnauthorized},
		{name: "wrong secret", secret: "guess", wantCode: http.StatusUnauthorized},
		{name: "matching secret", secret: "s3cret", wantCode: http.StatusOK, wantExec: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{out: task.ExecuteOutput{Response: "Got it."}}
			sender := &mockSender{}
			h := telegram.New(log.NewNop(), uc, sender, "hi", "s3cret")

			w := postUpdateWithSecret(t, h, textUpdate("todo x"), tc.secret)
			assert.Equal(t, tc.wantCode, w.Code)

			if tc.wantExec {
				waitForReply(t, sender)
				assert.Equal(t, []string{"todo x"}, uc.inputs)
			} else {
				assert.Empty(t, uc.inputs)
				assert.Empty(t, sender.sent())
			}
		})
	}
}
