package availability

import "time"

// Mode tells which way a window was evaluated.
type Mode string

const (
	// ModeSpecific checks the window itself as the only candidate.
	ModeSpecific Mode = "specific"
	// ModeWholeDay lays an hourly slot grid over the window.
	ModeWholeDay Mode = "whole_day"
)

// Interval is a half-open [Start, End) span.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Busy is an existing calendar event that blocks new bookings.
type Busy struct {
	ID      string
	Summary string
	Interval
}

// GridSlot is one candidate slot tagged against the busy set.
type GridSlot struct {
	Interval
	Available bool
}

// Result is the outcome of one availability computation.
type Result struct {
	Mode Mode
	// Slots holds the available slots in chronological order.
	Slots []Interval
	// Conflicts holds the busy intervals overlapping a specific-slot request.
	Conflicts []Busy
	// Schedule is the busy set, returned as-is.
	Schedule []Busy
}

// FullyBooked reports whether no slot is available.
func (r Result) FullyBooked() bool {
	return len(r.Slots) == 0
}
