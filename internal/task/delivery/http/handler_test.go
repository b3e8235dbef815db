package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-assistant/internal/command"
	"task-assistant/internal/middleware"
	"task-assistant/internal/task"
	taskHTTP "task-assistant/internal/task/delivery/http"
	"task-assistant/pkg/log"
	"task-assistant/pkg/response"
)

type mockUseCase struct {
	out     task.ExecuteOutput
	err     error
	list    task.ListOutput
	listErr error
	inputs  []string
}

func (m *mockUseCase) Load(ctx context.Context) error { return nil }

func (m *mockUseCase) Execute(ctx context.Context, in task.ExecuteInput) (task.ExecuteOutput, error) {
	m.inputs = append(m.inputs, in.Input)
	return m.out, m.err
}

func (m *mockUseCase) List(ctx context.Context) (task.ListOutput, error) {
	return m.list, m.listErr
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.RateLimitOptions{PerMin: 6000, Burst: 100})
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), taskHTTP.New(log.NewNop(), uc), mw)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp response.Resp
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		out         task.ExecuteOutput
		err         error
		wantStatus  int
		wantMessage string
		wantData    map[string]any
	}{
		{
			name:       "success",
			body:       `{"input":"todo read book"}`,
			out:        task.ExecuteOutput{Response: "Got it.", Mutated: true, Intent: "TODO"},
			wantStatus: http.StatusOK,
			wantData:   map[string]any{"response": "Got it.", "mutated": true, "intent": "TODO"},
		},
		{
			name: "command error",
			body: `{"input":"todo"}`,
			err: &command.Error{
				Kind:    command.ErrEmptyDescription,
				Message: "☹ OOPS!!! The description of a todo cannot be empty.",
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "☹ OOPS!!! The description of a todo cannot be empty.",
		},
		{
			name:       "save failure is a warning",
			body:       `{"input":"todo read book"}`,
			out:        task.ExecuteOutput{Response: "Got it.", Mutated: true, Intent: "TODO"},
			err:        fmt.Errorf("%w: disk full", task.ErrSaveFailed),
			wantStatus: http.StatusOK,
			wantData: map[string]any{
				"response": "Got it.", "mutated": true, "intent": "TODO",
				"warning": "the change is applied in memory but could not be saved",
			},
		},
		{
			name:        "unexpected error",
			body:        `{"input":"todo read book"}`,
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: response.DefaultErrorMessage,
		},
		{
			name:       "missing input",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &mockUseCase{out: tc.out, err: tc.err}
			w, resp := do(newRouter(uc), http.MethodPost, "/api/v1/commands", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, resp.Message)
			}
			if tc.wantData != nil {
				assert.Equal(t, tc.wantData, resp.Data)
			}
		})
	}
}

func TestExecute_InvalidBodyDoesNotReachUseCase(t *testing.T) {
	uc := &mockUseCase{}
	w, _ := do(newRouter(uc), http.MethodPost, "/api/v1/commands", `not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uc.inputs)
}

func TestList(t *testing.T) {
	uc := &mockUseCase{list: task.ListOutput{
		Tasks: []task.TaskItem{
			{Index: 1, Type: task.TypeTodo, Description: "read book", Done: true},
			{Index: 2, Type: task.TypeDeadline, Description: "report", When: "2023-12-02 6pm"},
		},
		Count: 2,
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
	newRouter(uc).ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Tasks []map[string]any `json:"tasks"`
			Count int              `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Data.Count)
	assert.Equal(t, "2023-12-02 6pm", body.Data.Tasks[1]["when"])
	_, hasWhen := body.Data.Tasks[0]["when"]
	assert.False(t, hasWhen)
}

func TestList_Error(t *testing.T) {
	uc := &mockUseCase{listErr: errors.New("boom")}
	w, _ := do(newRouter(uc), http.MethodGet, "/api/v1/tasks", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
