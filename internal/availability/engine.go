// Package availability computes free slots and booking conflicts from busy intervals.
// Everything here is pure interval math.
package availability

import (
	"time"

	"calendar-assistant/pkg/datemath"
)

// Overlaps reports whether a and b share any instant. Touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.End.After(b.Start) && a.Start.Before(b.End)
}

// IsWholeDay reports whether w should be treated as a whole-day query: its start and end hours
// equal the business open and close hours, or it spans an entire calendar day.
func IsWholeDay(w Interval, hours datemath.Hours) bool {
	if w.Start.Hour() == hours.Open && w.End.Hour() == hours.Close && w.End.Minute() == 0 {
		return true
	}
	midnight := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, w.Start.Location())
	return w.Start.Equal(midnight) && !w.End.Before(midnight.Add(24*time.Hour-time.Minute))
}

// Compute evaluates window against busy. In specific-slot mode the window is the only candidate;
// in whole-day mode every hourly slot of slotDuration inside business hours is checked.
func Compute(window Interval, busy []Busy, slotDuration time.Duration, hours datemath.Hours) Result {
	res := Result{Schedule: busy}

	if !IsWholeDay(window, hours) {
		res.Mode = ModeSpecific
		res.Conflicts = overlapping(window, busy)
		if len(res.Conflicts) == 0 {
			res.Slots = []Interval{window}
		}
		return res
	}

	res.Mode = ModeWholeDay
	for _, s := range Grid(window, busy, slotDuration, hours) {
		if s.Available {
			res.Slots = append(res.Slots, s.Interval)
		}
	}
	return res
}

// Grid lays slots of slotDuration at the top of each hour from window.Start through window.End,
// keeps those fully inside business hours and tags each against busy.
func Grid(window Interval, busy []Busy, slotDuration time.Duration, hours datemath.Hours) []GridSlot {
	if slotDuration <= 0 || !window.Start.Before(window.End) {
		return nil
	}

	ws := window.Start
	s := time.Date(ws.Year(), ws.Month(), ws.Day(), ws.Hour(), 0, 0, 0, ws.Location())
	if s.Before(window.Start) {
		s = s.Add(time.Hour)
	}

	var grid []GridSlot
	for ; s.Before(window.End); s = s.Add(time.Hour) {
		slot := Interval{Start: s, End: s.Add(slotDuration)}
		openAt, closeAt := hours.Span(s)
		if slot.Start.Before(openAt) || slot.End.After(closeAt) {
			continue
		}
		grid = append(grid, GridSlot{
			Interval:  slot,
			Available: len(overlapping(slot, busy)) == 0,
		})
	}
	return grid
}

// Conflicts returns every busy interval overlapping [start-buffer, end+buffer], in input order.
func Conflicts(start, end time.Time, buffer time.Duration, busy []Busy) []Busy {
	return overlapping(Interval{Start: start.Add(-buffer), End: end.Add(buffer)}, busy)
}

func overlapping(w Interval, busy []Busy) []Busy {
	var out []Busy
	for _, b := range busy {
		if Overlaps(w, b.Interval) {
			out = append(out, b)
		}
	}
	return out
}
