package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/availability"
	"calendar-assistant/internal/extractor"
	"calendar-assistant/internal/router"
)

// Chat classifies the message and answers it. It is stateless: everything it knows about the
// conversation comes from input.History.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	convID := input.ConversationID
	if convID == "" {
		convID = uuid.NewString()
	}

	route := uc.rt.Classify(ctx, message, historyContents(input.History))
	uc.obs.RecordIntent(string(route.Intent))

	var out assistant.ChatOutput
	switch route.Intent {
	case router.IntentGreeting:
		out = uc.greet(len(input.History) == 0)
	case router.IntentShowSchedule:
		out = uc.showSchedule(ctx, message)
	case router.IntentCheckAvailability:
		out = uc.checkAvailability(ctx, message)
	case router.IntentBookMeeting:
		out = uc.bookFromChat(ctx, message)
	default:
		out = assistant.ChatOutput{
			Response:           msgClarify,
			Action:             assistant.ActionClarify,
			SuggestedResponses: welcomeSuggestions,
		}
	}

	out.Intent = route.Intent
	out.ConversationID = convID
	if out.Timezone == "" {
		out.Timezone = uc.ext.Location().String()
	}
	uc.obs.RecordAction(string(out.Action))
	return out, nil
}

func (uc *implUseCase) greet(firstTurn bool) assistant.ChatOutput {
	msg := msgGreetAgain
	if firstTurn {
		msg = msgWelcome
	}
	return assistant.ChatOutput{
		Response:           msg,
		Action:             assistant.ActionGreeting,
		SuggestedResponses: welcomeSuggestions,
	}
}

func (uc *implUseCase) showSchedule(ctx context.Context, message string) assistant.ChatOutput {
	w := uc.ext.Extract(message, uc.now())
	start, end := w.Start, w.End
	if availability.IsWholeDay(availability.Interval{Start: start, End: end}, uc.ext.BusinessHours()) {
		start, end = uc.ext.Day(start)
	}

	events, err := uc.queryEvents(ctx, start, end)
	if err != nil {
		return calendarError()
	}

	day := start.Format(dayLayout)
	out := assistant.ChatOutput{
		Action: assistant.ActionShowSchedule,
		Events: events,
		Start:  timePtr(start),
		End:    timePtr(end),
	}
	if len(events) == 0 {
		out.Response = fmt.Sprintf(msgNoEvents, day)
	} else {
		out.Response = fmt.Sprintf(msgScheduleFor, day, eventLines(events))
	}
	return out
}

func (uc *implUseCase) checkAvailability(ctx context.Context, message string) assistant.ChatOutput {
	w := uc.ext.Extract(message, uc.now())
	res, events, err := uc.evaluate(ctx, w)
	if err != nil {
		return calendarError()
	}

	out := assistant.ChatOutput{
		Start: timePtr(w.Start),
		End:   timePtr(w.End),
		Slots: toSlots(res.Slots),
	}
	day := w.Start.Format(dayLayout)

	switch {
	case res.Mode == availability.ModeSpecific && len(res.Conflicts) == 0:
		out.Action = assistant.ActionShowAvailability
		out.Response = fmt.Sprintf(msgFreeSlot, w.Label)
	case res.Mode == availability.ModeSpecific:
		out.Action = assistant.ActionConflict
		out.Events = fromBusy(res.Conflicts, events)
		out.Response = fmt.Sprintf(msgBusySlot, w.Label, eventLines(out.Events))
	case res.FullyBooked():
		out.Action = assistant.ActionFullyBooked
		out.Events = events
		out.Response = fmt.Sprintf(msgFullyBooked, day, eventLines(events))
	case len(events) == 0:
		out.Action = assistant.ActionShowAvailability
		out.Events = events
		out.Response = fmt.Sprintf(msgFreeDay, day)
	default:
		out.Action = assistant.ActionShowAvailability
		out.Events = events
		out.Response = fmt.Sprintf(msgFreeSlotsDay, len(events), day, eventLines(events), slotList(out.Slots))
	}
	return out
}

// bookFromChat offers free slots for the requested window, or books it outright when
// auto-confirm is on and the window is a specific slot.
func (uc *implUseCase) bookFromChat(ctx context.Context, message string) assistant.ChatOutput {
	now := uc.now()
	w := uc.ext.Extract(message, now)
	summary := summaryFrom(message)
	wholeDay := availability.IsWholeDay(availability.Interval{Start: w.Start, End: w.End}, uc.ext.BusinessHours())

	if uc.cfg.AutoConfirm && !wholeDay {
		return uc.autoBook(ctx, w, summary)
	}

	res, events, err := uc.evaluate(ctx, w)
	if err != nil {
		return calendarError()
	}

	out := assistant.ChatOutput{
		Start:   timePtr(w.Start),
		End:     timePtr(w.End),
		Summary: summary,
	}
	day := w.Start.Format(dayLayout)

	if res.Mode == availability.ModeSpecific {
		if w.Start.Before(now) {
			out.Action = assistant.ActionClarify
			out.Response = msgPastBooking
			return out
		}
		if len(res.Conflicts) == 0 {
			out.Action = assistant.ActionOfferBooking
			out.Slots = toSlots(res.Slots)
			out.Response = fmt.Sprintf(msgOfferSlot, w.Label, summary)
			return out
		}

		out.Action = assistant.ActionConflict
		out.Events = fromBusy(res.Conflicts, events)
		out.Slots = futureSlots(uc.daySlots(w, events), now)
		if len(out.Slots) == 0 {
			out.Response = fmt.Sprintf(msgConflict, eventLines(out.Events))
		} else {
			out.Response = fmt.Sprintf(msgConflictAlt, eventLines(out.Events), slotList(out.Slots))
		}
		return out
	}

	out.Slots = futureSlots(toSlots(res.Slots), now)
	out.Events = events
	if len(out.Slots) == 0 {
		out.Action = assistant.ActionFullyBooked
		out.Response = fmt.Sprintf(msgFullyBooked, day, eventLines(events))
		return out
	}
	out.Action = assistant.ActionOfferBooking
	out.Response = fmt.Sprintf(msgOfferSlots, day, summary, slotList(out.Slots))
	return out
}

func (uc *implUseCase) autoBook(ctx context.Context, w extractor.Window, summary string) assistant.ChatOutput {
	bo, err := uc.book(ctx, assistant.BookInput{
		Start:   w.Start,
		End:     w.End,
		Summary: summary,
	})
	if errors.Is(err, assistant.ErrBookingInPast) {
		return assistant.ChatOutput{
			Response: msgPastBooking,
			Action:   assistant.ActionClarify,
			Start:    timePtr(w.Start),
			End:      timePtr(w.End),
			Summary:  summary,
		}
	}
	if err != nil {
		uc.l.Errorf(ctx, "usecase.autoBook: %v", err)
		return calendarError()
	}
	return assistant.ChatOutput{
		Response: bo.Response,
		Action:   bo.Action,
		Events:   bo.Conflicts,
		Start:    timePtr(bo.Start),
		End:      timePtr(bo.End),
		Summary:  summary,
		Timezone: bo.Timezone,
	}
}

// evaluate fetches the window's whole day and runs the availability engine over it.
func (uc *implUseCase) evaluate(ctx context.Context, w extractor.Window) (availability.Result, []assistant.Event, error) {
	dayStart, _ := uc.ext.Day(w.Start)
	_, dayEnd := uc.ext.Day(w.End)

	events, err := uc.queryEvents(ctx, dayStart, dayEnd)
	if err != nil {
		return availability.Result{}, nil, err
	}

	window := availability.Interval{Start: w.Start, End: w.End}
	res := availability.Compute(window, toBusy(events), uc.cfg.SlotDuration, uc.ext.BusinessHours())
	return res, events, nil
}

// daySlots lists the free whole-day slots of w's day.
func (uc *implUseCase) daySlots(w extractor.Window, events []assistant.Event) []assistant.Slot {
	open, closeAt := uc.ext.BusinessHours().Span(w.Start)
	res := availability.Compute(availability.Interval{Start: open, End: closeAt}, toBusy(events), uc.cfg.SlotDuration, uc.ext.BusinessHours())
	return toSlots(res.Slots)
}

func calendarError() assistant.ChatOutput {
	return assistant.ChatOutput{
		Response: msgCalendarDown,
		Action:   assistant.ActionError,
	}
}
