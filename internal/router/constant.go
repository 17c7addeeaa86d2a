package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Classifier configuration
const (
	// SimilarityThreshold is the whole-text ratio above which a keyword counts as matched.
	SimilarityThreshold = 0.6

	ConfidenceExact   = 100
	ConfidenceHistory = 100
	ConfidenceNone    = 0
)

// Reasons
const (
	ReasonEmptyHistory = "no conversation history, greeting first"
	ReasonSubstring    = "keyword %q found in message"
	ReasonFuzzy        = "message similar to keyword %q (ratio %.2f)"
	ReasonWord         = "greeting word %q found in message"
	ReasonNoMatch      = "no keyword matched"
)

// MatchMode selects how a rule's keywords are compared to a message.
type MatchMode int

const (
	// MatchSubstringOrFuzzy matches a literal substring, or a whole-text similarity above the threshold.
	MatchSubstringOrFuzzy MatchMode = iota
	// MatchWord matches whole words only, so "hi" does not fire inside "this".
	MatchWord
)

// Rule binds a keyword set to an intent.
type Rule struct {
	Intent   Intent
	Keywords []string
	Mode     MatchMode
}

// DefaultRules is evaluated top to bottom; the first rule that matches wins.
var DefaultRules = []Rule{
	{
		Intent: IntentShowSchedule,
		Keywords: []string{
			"what's my schedule", "whats my schedule", "show my schedule", "my schedule",
			"my meetings", "show schedule", "schedule for", "my calendar", "my agenda", "what's on",
		},
		Mode: MatchSubstringOrFuzzy,
	},
	{
		Intent: IntentCheckAvailability,
		Keywords: []string{
			"are you free", "am i free", "is there time", "available", "availability",
			"free slot", "open slot", "any free time",
		},
		Mode: MatchSubstringOrFuzzy,
	},
	{
		Intent:   IntentBookMeeting,
		Keywords: []string{"book", "schedule", "meeting", "appointment", "set up a call", "reserve"},
		Mode:     MatchSubstringOrFuzzy,
	},
	{
		Intent:   IntentGreeting,
		Keywords: []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "help"},
		Mode:     MatchWord,
	},
}
