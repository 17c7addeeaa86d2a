package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/availability"
	"calendar-assistant/pkg/gcalendar"
)

var (
	withRe  = regexp.MustCompile(`\bwith\s+(.+)`)
	aboutRe = regexp.MustCompile(`\babout\s+(.+)`)
	// Words that start the date/time part of a booking request.
	summaryStopRe = regexp.MustCompile(`\s+(?:(?:today|tonight|tomorrow|tomorow|tomorroe|tmrw|on|at|from|between|next|this|for|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b|\d).*$`)
)

// listEvents fetches events in [start, end] and records the call.
func (uc *implUseCase) listEvents(ctx context.Context, start, end time.Time) ([]assistant.Event, error) {
	began := time.Now()
	items, err := uc.cal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    start,
		TimeMax:    end,
		Location:   uc.ext.Location(),
	})
	uc.obs.RecordCalendarCall("list", time.Since(began), err)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", assistant.ErrCalendar, err)
	}

	events := make([]assistant.Event, 0, len(items))
	for _, it := range items {
		events = append(events, toEvent(it))
	}
	return events, nil
}

// queryEvents is listEvents for read-only paths: failures other than lost credentials are
// logged and treated as an empty calendar.
func (uc *implUseCase) queryEvents(ctx context.Context, start, end time.Time) ([]assistant.Event, error) {
	events, err := uc.listEvents(ctx, start, end)
	if err == nil {
		return events, nil
	}
	uc.l.Errorf(ctx, "usecase.queryEvents: %v", err)
	if gcalendar.IsAuthError(err) {
		return nil, err
	}
	return nil, nil
}

func toEvent(e gcalendar.Event) assistant.Event {
	return assistant.Event{
		ID:          e.ID,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Status:      e.Status,
		HtmlLink:    e.HtmlLink,
		Attendees:   e.Attendees,
		Start:       e.StartTime,
		End:         e.EndTime,
		AllDay:      e.AllDay,
	}
}

func toBusy(events []assistant.Event) []availability.Busy {
	busy := make([]availability.Busy, 0, len(events))
	for _, e := range events {
		busy = append(busy, availability.Busy{
			ID:       e.ID,
			Summary:  e.Summary,
			Interval: availability.Interval{Start: e.Start, End: e.End},
		})
	}
	return busy
}

// fromBusy maps busy intervals back to the events they came from.
func fromBusy(busy []availability.Busy, events []assistant.Event) []assistant.Event {
	byID := make(map[string]assistant.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	out := make([]assistant.Event, 0, len(busy))
	for _, b := range busy {
		if e, ok := byID[b.ID]; ok {
			out = append(out, e)
			continue
		}
		out = append(out, assistant.Event{ID: b.ID, Summary: b.Summary, Start: b.Start, End: b.End})
	}
	return out
}

func toSlots(intervals []availability.Interval) []assistant.Slot {
	slots := make([]assistant.Slot, 0, len(intervals))
	for _, iv := range intervals {
		slots = append(slots, assistant.Slot{Start: iv.Start, End: iv.End})
	}
	return slots
}

// futureSlots drops slots that start before now.
func futureSlots(slots []assistant.Slot, now time.Time) []assistant.Slot {
	out := slots[:0:0]
	for _, s := range slots {
		if !s.Start.Before(now) {
			out = append(out, s)
		}
	}
	return out
}

// formatTimeRange renders "3:00 PM - 4:00 PM", marking ends on a later day.
func formatTimeRange(start, end time.Time) string {
	s := start.Format(timeLayout) + " - " + end.Format(timeLayout)
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		s += " (next day)"
	}
	return s
}

func eventLines(events []assistant.Event) string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		summary := e.Summary
		if summary == "" {
			summary = "(no title)"
		}
		if e.AllDay {
			lines = append(lines, fmt.Sprintf("- %s (all day)", summary))
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s (%s)", summary, formatTimeRange(e.Start, e.End)))
	}
	return strings.Join(lines, "\n")
}

func slotList(slots []assistant.Slot) string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start.Format(timeLayout))
	}
	return strings.Join(starts, ", ")
}

// summaryFrom derives an event title from "... with Ana" or "... about the roadmap".
func summaryFrom(message string) string {
	low := strings.ToLower(strings.TrimSpace(message))
	prefix, rest := "", ""
	if m := withRe.FindStringSubmatch(low); m != nil {
		prefix, rest = "Meeting with ", m[1]
	} else if m := aboutRe.FindStringSubmatch(low); m != nil {
		prefix, rest = "Meeting about ", m[1]
	} else {
		return defaultSummary
	}

	rest = strings.TrimSpace(summaryStopRe.ReplaceAllString(" "+rest, ""))
	rest = strings.TrimRight(rest, ".,!?")
	if rest == "" {
		return defaultSummary
	}
	return prefix + titleCase(rest)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func historyContents(turns []assistant.Turn) []string {
	out := make([]string, 0, len(turns))
	for _, t := range turns {
		out = append(out, t.Content)
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	return &t
}
