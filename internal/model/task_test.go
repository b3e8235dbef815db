package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-assistant/internal/model"
)

func TestTask_String(t *testing.T) {
	date := time.Date(2023, 12, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task *model.Task
		want string
	}{
		{name: "todo", task: model.NewToDo("read book"), want: "[T][ ] read book"},
		{name: "plain", task: model.NewTask("buy milk"), want: "[ ] buy milk"},
		{
			name: "deadline free text",
			task: model.NewDeadline("return book", model.Schedule{Text: "Sunday"}),
			want: "[D][ ] return book (by: Sunday)",
		},
		{
			name: "deadline with date",
			task: model.NewDeadline("submit report", model.Schedule{Text: "2/12/2023 6pm", Date: &date, Time: "6pm"}),
			want: "[D][ ] submit report (by: 2023-12-02 6pm)",
		},
		{
			name: "event",
			task: model.NewEvent("project meeting", model.Schedule{Text: "Mon 2pm"}),
			want: "[E][ ] project meeting (at: Mon 2pm)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.String())
		})
	}
}

func TestTask_MarkDoneIdempotent(t *testing.T) {
	task := model.NewToDo("read book")
	assert.False(t, task.IsDone())
	assert.Equal(t, "No", task.DoneFlag())

	task.MarkDone()
	once := task.String()
	task.MarkDone()

	assert.True(t, task.IsDone())
	assert.Equal(t, once, task.String())
	assert.Equal(t, "[T][X] read book", task.String())
	assert.Equal(t, "Yes", task.DoneFlag())
}

func TestSchedule_String(t *testing.T) {
	date := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "tomorrow", model.Schedule{Text: "tomorrow"}.String())
	assert.Equal(t, "2024-01-09 noon", model.Schedule{Text: "ignored", Date: &date, Time: "noon"}.String())
	assert.False(t, model.Schedule{Text: "x"}.HasDate())
}
