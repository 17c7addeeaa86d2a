package assistant

import (
	"time"

	"calendar-assistant/internal/router"
)

// --- Conversation ---

// Role is who spoke a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one prior message in the conversation, resent by the caller every request.
type Turn struct {
	Role    Role
	Content string
}

// Action tags what a reply is about.
type Action string

const (
	ActionGreeting         Action = "greeting"
	ActionShowSchedule     Action = "show_schedule"
	ActionShowAvailability Action = "show_availability"
	ActionOfferBooking     Action = "offer_booking"
	ActionConflict         Action = "conflict"
	ActionFullyBooked      Action = "fully_booked"
	ActionConfirmBooking   Action = "confirm_booking"
	ActionClarify          Action = "clarify"
	ActionError            Action = "error"
)

// --- Domain Model ---

// Event is a calendar event as the assistant presents it.
type Event struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Status      string
	HtmlLink    string
	Attendees   []string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// Slot is a free candidate interval.
type Slot struct {
	Start time.Time
	End   time.Time
}

// --- UseCase Inputs ---

type ChatInput struct {
	Message        string
	History        []Turn
	ConversationID string
}

type BookInput struct {
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Location    string
	Attendees   []string
	Timezone    string // defaults to the assistant timezone
}

type ScheduleInput struct {
	Query string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Response           string
	Action             Action
	Intent             router.Intent
	Events             []Event
	Slots              []Slot
	Start              *time.Time
	End                *time.Time
	Summary            string // suggested title for offered slots
	Timezone           string
	ConversationID     string
	SuggestedResponses []string
}

type BookOutput struct {
	Response  string
	Action    Action
	EventID   string
	HtmlLink  string
	Start     time.Time
	End       time.Time
	Conflicts []Event
	Timezone  string
}

// Booked reports whether the event was created.
func (o BookOutput) Booked() bool {
	return o.Action == ActionConfirmBooking
}

type ScheduleOutput struct {
	Label  string
	Start  time.Time
	End    time.Time
	Events []Event
}
