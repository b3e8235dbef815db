package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"task-assistant/internal/command"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/pkg/gcalendar"
	pkgLog "task-assistant/pkg/log"
)

func (uc *implUseCase) Load(ctx context.Context) error {
	tasks, err := uc.repo.Load(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Load: starting with an empty list: %v", err)
		uc.tasks = model.NewCollection()
		return fmt.Errorf("%w: %v", task.ErrLoadFailed, err)
	}

	uc.tasks = tasks
	uc.l.Infof(ctx, "task.usecase.Load: %d tasks loaded", tasks.Size())
	return nil
}

func (uc *implUseCase) Execute(ctx context.Context, input task.ExecuteInput) (task.ExecuteOutput, error) {
	if pkgLog.TraceID(ctx) == "" {
		ctx = pkgLog.WithTraceID(ctx, uuid.NewString())
	}

	out, event, err := uc.execute(ctx, input.Input)
	if event != nil {
		uc.mirror(ctx, *event)
	}
	return out, err
}

// execute runs the command under the lock. It also returns the calendar event
// to create for a newly added dated task, if any.
func (uc *implUseCase) execute(ctx context.Context, input string) (task.ExecuteOutput, *gcalendar.CreateEventRequest, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	res, err := uc.parser.Process(input, uc.tasks)
	if err != nil {
		var cmdErr *command.Error
		if errors.As(err, &cmdErr) {
			uc.l.Debugf(ctx, "task.usecase.Execute: rejected %q: %v", input, cmdErr.Kind)
		} else {
			uc.l.Errorf(ctx, "task.usecase.Execute: %q: %v", input, err)
		}
		return task.ExecuteOutput{}, nil, err
	}

	out := task.ExecuteOutput{
		Response:  res.Response,
		Mutated:   res.Mutated,
		Intent:    string(res.Intent),
		TaskCount: uc.tasks.Size(),
	}
	if !res.Mutated {
		return out, nil, nil
	}

	if err := uc.repo.Save(ctx, uc.tasks); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Execute: save after %q failed: %v", uc.parser.Last(), err)
		return out, nil, fmt.Errorf("%w: %v", task.ErrSaveFailed, err)
	}
	uc.l.Debugf(ctx, "task.usecase.Execute: saved %d tasks after %q", uc.tasks.Size(), uc.parser.Last())

	if res.Intent != command.IntentDeadline && res.Intent != command.IntentEvent {
		return out, nil, nil
	}
	added, err := uc.tasks.Get(uc.tasks.Size() - 1)
	if err != nil {
		return out, nil, nil
	}
	return out, uc.eventRequest(added), nil
}

func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	all := uc.tasks.All()
	items := make([]task.TaskItem, 0, len(all))
	for i, t := range all {
		items = append(items, toItem(i+1, t))
	}
	return task.ListOutput{Tasks: items, Count: len(items)}, nil
}

func toItem(index int, t *model.Task) task.TaskItem {
	item := task.TaskItem{
		Index:       index,
		Done:        t.IsDone(),
		Description: t.Description,
	}
	switch t.Kind {
	case model.KindToDo:
		item.Type = task.TypeTodo
	case model.KindDeadline:
		item.Type = task.TypeDeadline
		item.When = t.When.String()
	case model.KindEvent:
		item.Type = task.TypeEvent
		item.When = t.When.String()
	default:
		item.Type = task.TypeTask
	}
	return item
}
