package usecase

import (
	"time"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/extractor"
	"calendar-assistant/internal/router"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/metrics"
)

// Config tunes the booking and availability behavior.
type Config struct {
	CalendarID string
	// SlotDuration is the length of each whole-day candidate slot.
	SlotDuration time.Duration
	// AutoConfirm books a specific window from chat immediately instead of offering it.
	AutoConfirm bool
	// RejectPast refuses bookings that start before now.
	RejectPast bool
	// FetchPadding widens the event fetch around a booking.
	FetchPadding time.Duration
	// ConflictBuffer widens the overlap test around a booking.
	ConflictBuffer time.Duration
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l   log.Logger
	ext *extractor.Extractor
	rt  router.Router
	cal assistant.Calendar
	obs metrics.Observer
	cfg Config
	now func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase implementation.
func New(l log.Logger, ext *extractor.Extractor, rt router.Router, cal assistant.Calendar, obs metrics.Observer, cfg Config) *implUseCase {
	if cfg.SlotDuration <= 0 {
		cfg.SlotDuration = defaultSlotDuration
	}
	if cfg.FetchPadding < 0 {
		cfg.FetchPadding = defaultFetchPadding
	}
	if obs == nil {
		obs = metrics.NewNop()
	}
	return &implUseCase{
		l:   l,
		ext: ext,
		rt:  rt,
		cal: cal,
		obs: obs,
		cfg: cfg,
		now: time.Now,
	}
}
