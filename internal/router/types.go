package router

// Intent represents user's intention
type Intent string

const (
	IntentGreeting          Intent = "GREETING"
	IntentShowSchedule      Intent = "SHOW_SCHEDULE"
	IntentCheckAvailability Intent = "CHECK_AVAILABILITY"
	IntentBookMeeting       Intent = "BOOK_MEETING"
	IntentUnknown           Intent = "UNKNOWN"
)

// RouterOutput is the classifier verdict for one message.
type RouterOutput struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`
	Keyword    string `json:"keyword,omitempty"`
}
