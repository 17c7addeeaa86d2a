package usecase

import "time"

const (
	defaultSlotDuration = time.Hour
	defaultFetchPadding = 24 * time.Hour
	defaultSummary      = "Meeting"

	timeLayout = "3:04 PM"
	dayLayout  = "Monday, January 2"
)

// Replies
const (
	msgWelcome      = "Hi! I'm your calendar assistant. How can I help you today?"
	msgGreetAgain   = "Hi again! I can show your schedule, check when you're free, or book a meeting."
	msgClarify      = "I can help you check your schedule or book meetings. Try: 'Book a meeting today at 2pm'."
	msgCalendarDown = "Sorry, an error occurred with the calendar service."
	msgPastBooking  = "That time has already passed. Try a time later today or another day."

	msgNoEvents      = "You have no events scheduled for %s."
	msgScheduleFor   = "Your schedule for %s:\n%s"
	msgFreeSlot      = "You're free %s."
	msgFreeDay       = "You're completely free on %s! Would you like to schedule something?"
	msgFreeSlotsDay  = "You have %d events on %s:\n%s\nFree slots: %s"
	msgBusySlot      = "You're busy %s:\n%s"
	msgFullyBooked   = "You're fully booked on %s:\n%s"
	msgOfferSlot     = "%s is open. Shall I book '%s'?"
	msgOfferSlots    = "Here are the open slots on %s. Pick one to book '%s':\n%s"
	msgConflict      = "That time conflicts with:\n%s"
	msgConflictAlt   = "That time conflicts with:\n%s\nOpen slots that day: %s"
	msgBooked        = "Successfully booked '%s' from %s"
)

var welcomeSuggestions = []string{
	"What's my schedule today?",
	"Am I free tomorrow at 2pm?",
	"Book a meeting for June 28 at 3pm",
	"Show my schedule for tomorrow",
}
