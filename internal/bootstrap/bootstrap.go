// Package bootstrap builds the task core shared by every entry point.
package bootstrap

import (
	"context"
	"fmt"

	"task-assistant/config"
	"task-assistant/internal/command"
	"task-assistant/internal/task"
	"task-assistant/internal/task/repository/file"
	"task-assistant/internal/task/usecase"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/gcalendar"
	"task-assistant/pkg/log"
)

// NewLogger builds the zap-backed logger from configuration.
func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
		FilePath:     cfg.FilePath,
		MaxSizeMB:    cfg.MaxSizeMB,
		MaxBackups:   cfg.MaxBackups,
		MaxAgeDays:   cfg.MaxAgeDays,
	})
}

// NewTaskUseCase wires normalizer, file store, parser and the optional
// calendar mirror, then loads the stored list.
func NewTaskUseCase(ctx context.Context, cfg *config.Config, l log.Logger) (task.UseCase, error) {
	normalizer, err := datemath.NewNormalizer(cfg.DateMath.Timezone)
	if err != nil {
		return nil, fmt.Errorf("datemath: %w", err)
	}

	repo := file.New(cfg.Storage.Path, normalizer, l)
	parser := command.New(normalizer)

	calendarOpts := usecase.CalendarOptions{
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		EventDuration: cfg.GoogleCalendar.EventDuration,
	}
	if cfg.GoogleCalendar.Enabled {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			l.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate the token file")
		} else {
			calendarOpts.Client = client
			l.Info(ctx, "Google Calendar mirroring enabled")
		}
	}

	uc := usecase.New(l, repo, parser, normalizer, calendarOpts)
	if err := uc.Load(ctx); err != nil {
		l.Warnf(ctx, "Continuing with an empty task list: %v", err)
	}
	return uc, nil
}
