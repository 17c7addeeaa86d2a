package gcalendar

import "time"

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

// Notification policies for CreateEvent.
const (
	NotifyAll  = "all"
	NotifyNone = "none"
)

const statusCancelled = "cancelled"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	Attendees   []string // email addresses
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/New_York"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Status      string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Attendees   []string
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	// Location resolves all-day dates. Defaults to TimeMin's location.
	Location *time.Location
}
