package http

import (
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  assistant.UseCase
	loc *time.Location // zone for request times without an offset
	now func() time.Time
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase, loc *time.Location) *handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
		now: time.Now,
	}
}
