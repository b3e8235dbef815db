package usecase

import (
	"context"

	"task-assistant/internal/model"
	"task-assistant/pkg/gcalendar"
)

// eventRequest builds the calendar event for a dated deadline or event.
// It returns nil when mirroring is disabled or t carries no date.
func (uc *implUseCase) eventRequest(t *model.Task) *gcalendar.CreateEventRequest {
	if uc.calendar.Client == nil || uc.normalizer == nil || !t.When.HasDate() {
		return nil
	}

	start := uc.normalizer.ClockTime(*t.When.Date, t.When.Time)
	return &gcalendar.CreateEventRequest{
		CalendarID:  uc.calendar.CalendarID,
		Summary:     t.Description,
		Description: t.String(),
		StartTime:   start,
		EndTime:     start.Add(uc.calendar.EventDuration),
		Timezone:    uc.normalizer.Location().String(),
	}
}

// mirror pushes req to Google Calendar. Failures are logged only; the list
// itself is already saved.
func (uc *implUseCase) mirror(ctx context.Context, req gcalendar.CreateEventRequest) {
	ctx, cancel := context.WithTimeout(ctx, uc.calendar.Timeout)
	defer cancel()

	event, err := uc.calendar.Client.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.mirror: calendar event for %q not created: %v", req.Summary, err)
		return
	}
	uc.l.Infof(ctx, "task.usecase.mirror: calendar event %s created: %s", event.ID, event.HtmlLink)
}
