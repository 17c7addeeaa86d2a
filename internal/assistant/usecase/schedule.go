package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/availability"
)

// Schedule resolves a free-text query the same way chat does and lists the events in it.
// Day-level windows cover the whole calendar day.
func (uc *implUseCase) Schedule(ctx context.Context, input assistant.ScheduleInput) (assistant.ScheduleOutput, error) {
	w := uc.ext.Extract(input.Query, uc.now())
	start, end := w.Start, w.End
	if availability.IsWholeDay(availability.Interval{Start: start, End: end}, uc.ext.BusinessHours()) {
		start, end = uc.ext.Day(start)
	}

	events, err := uc.listEvents(ctx, start, end)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Schedule: %v", err)
		return assistant.ScheduleOutput{}, err
	}

	return assistant.ScheduleOutput{
		Label:  w.Label,
		Start:  start,
		End:    end,
		Events: events,
	}, nil
}

// Health pings the calendar session.
func (uc *implUseCase) Health(ctx context.Context) error {
	began := time.Now()
	err := uc.cal.Ping(ctx)
	uc.obs.RecordCalendarCall("ping", time.Since(began), err)
	if err != nil {
		return fmt.Errorf("%w: %w", assistant.ErrCalendar, err)
	}
	return nil
}
