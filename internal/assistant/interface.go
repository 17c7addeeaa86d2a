package assistant

import (
	"context"

	"calendar-assistant/pkg/gcalendar"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat answers one user message given the prior turns.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// Book creates an event after checking it against existing events.
	Book(ctx context.Context, input BookInput) (BookOutput, error)
	// Schedule resolves a free-text query to a window and lists its events.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
	// Health checks the calendar session.
	Health(ctx context.Context) error
}

// Calendar is the remote calendar the assistant reads and writes.
type Calendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	Ping(ctx context.Context) error
}
