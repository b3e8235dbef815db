package usecase

import (
	"context"
	"sync"
	"time"

	"task-assistant/internal/command"
	"task-assistant/internal/model"
	"task-assistant/internal/task"
	"task-assistant/internal/task/repository"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/gcalendar"
	pkgLog "task-assistant/pkg/log"
)

// CalendarClient is the part of the Google Calendar client the mirror needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarOptions configures mirroring of dated deadlines and events.
type CalendarOptions struct {
	Client        CalendarClient // nil disables mirroring
	CalendarID    string
	EventDuration time.Duration
	Timeout       time.Duration
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.TaskRepository
	parser     *command.Parser
	normalizer *datemath.Normalizer
	calendar   CalendarOptions

	mu    sync.Mutex
	tasks *model.Collection
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	parser *command.Parser,
	normalizer *datemath.Normalizer,
	calendar CalendarOptions,
) task.UseCase {
	if calendar.EventDuration <= 0 {
		calendar.EventDuration = time.Hour
	}
	if calendar.Timeout <= 0 {
		calendar.Timeout = 10 * time.Second
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		parser:     parser,
		normalizer: normalizer,
		calendar:   calendar,
		tasks:      model.NewCollection(),
	}
}
