package http

import (
	"task-assistant/internal/task"
)

// --- Request DTOs ---

type executeReq struct {
	Input string `json:"input" binding:"required,max=1000" example:"todo read book"`
}

func (r executeReq) toInput() task.ExecuteInput {
	return task.ExecuteInput{Input: r.Input}
}

// --- Response DTOs ---

type executeResp struct {
	Response string `json:"response" example:"Got it. I've added this task:\n  [T][ ] read book\nNow you have 1 tasks in the list."`
	Mutated  bool   `json:"mutated"`
	Intent   string `json:"intent" example:"TODO"`
	Warning  string `json:"warning,omitempty"`
}

func (h *handler) newExecuteResp(o task.ExecuteOutput, warning string) executeResp {
	return executeResp{
		Response: o.Response,
		Mutated:  o.Mutated,
		Intent:   o.Intent,
		Warning:  warning,
	}
}

type taskResp struct {
	Index       int    `json:"index" example:"1"`
	Type        string `json:"type" example:"deadline"`
	Done        bool   `json:"done"`
	Description string `json:"description" example:"submit report"`
	When        string `json:"when,omitempty" example:"2023-12-02 6pm"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(o task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, taskResp(t))
	}
	return listResp{Tasks: tasks, Count: o.Count}
}
