package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/availability"
	"calendar-assistant/pkg/gcalendar"
)

// Book creates an event unless it overlaps an existing one. An end that is not after start is
// replaced by start plus the default duration. Calendar failures become an error action rather
// than an error.
func (uc *implUseCase) Book(ctx context.Context, input assistant.BookInput) (assistant.BookOutput, error) {
	out, err := uc.book(ctx, input)
	if err == nil {
		uc.obs.RecordAction(string(out.Action))
	}
	return out, err
}

func (uc *implUseCase) book(ctx context.Context, input assistant.BookInput) (assistant.BookOutput, error) {
	loc, tzName, err := uc.location(input.Timezone)
	if err != nil {
		return assistant.BookOutput{}, err
	}
	if input.Start.IsZero() {
		return assistant.BookOutput{}, assistant.ErrMissingStart
	}

	start, end := input.Start.In(loc), input.End.In(loc)
	if !start.Before(end) {
		end = start.Add(uc.ext.DefaultDuration())
	}
	if uc.cfg.RejectPast && start.Before(uc.now()) {
		return assistant.BookOutput{}, assistant.ErrBookingInPast
	}

	summary := strings.TrimSpace(input.Summary)
	if summary == "" {
		summary = defaultSummary
	}

	out := assistant.BookOutput{Start: start, End: end, Timezone: tzName}

	existing, err := uc.listEvents(ctx, start.Add(-uc.cfg.FetchPadding), end.Add(uc.cfg.FetchPadding))
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Book listEvents: %v", err)
		return uc.bookFailed(out), nil
	}

	if conflicts := availability.Conflicts(start, end, uc.cfg.ConflictBuffer, toBusy(existing)); len(conflicts) > 0 {
		out.Action = assistant.ActionConflict
		out.Conflicts = fromBusy(conflicts, existing)
		out.Response = fmt.Sprintf(msgConflict, eventLines(out.Conflicts))
		return out, nil
	}

	began := time.Now()
	created, err := uc.cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     summary,
		Description: input.Description,
		Location:    input.Location,
		Attendees:   input.Attendees,
		StartTime:   start,
		EndTime:     end,
		Timezone:    tzName,
	})
	uc.obs.RecordCalendarCall("insert", time.Since(began), err)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Book CreateEvent: %v", err)
		return uc.bookFailed(out), nil
	}

	uc.l.Infof(ctx, "usecase.Book: created event %s (%s)", created.ID, formatTimeRange(start, end))
	out.Action = assistant.ActionConfirmBooking
	out.EventID = created.ID
	out.HtmlLink = created.HtmlLink
	out.Response = fmt.Sprintf(msgBooked, summary, formatTimeRange(start, end))
	return out, nil
}

func (uc *implUseCase) bookFailed(out assistant.BookOutput) assistant.BookOutput {
	out.Action = assistant.ActionError
	out.Response = msgCalendarDown
	return out
}

// location resolves a request timezone, falling back to the assistant's own.
func (uc *implUseCase) location(name string) (*time.Location, string, error) {
	if name == "" {
		loc := uc.ext.Location()
		return loc, loc.String(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", assistant.ErrInvalidTimezone, name)
	}
	return loc, name, nil
}
