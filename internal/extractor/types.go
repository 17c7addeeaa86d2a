package extractor

import (
	"time"

	"calendar-assistant/pkg/datemath"
)

// Rule names the heuristic that produced a Window.
type Rule string

const (
	RuleExplicitRange Rule = "explicit_range"
	RuleMonthDay      Rule = "month_day"
	RuleWeekday       Rule = "weekday"
	RuleSpan          Rule = "span"
	RuleNatural       Rule = "natural"
	RuleFallback      Rule = "fallback"
)

// Window is a resolved [Start, End] pair in the configured timezone.
// Start is always strictly before End.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
	Rule  Rule
}

// Config configures an Extractor.
type Config struct {
	Timezone        string
	BusinessHours   datemath.Hours
	DefaultDuration time.Duration
}

// query is the per-call state shared by all matchers.
type query struct {
	text      string // lowercased, single-spaced
	stripped  string // text with relative day markers removed
	now       time.Time
	offset    int
	hasOffset bool
	marker    string // the relative day word that set offset
}

type matcher struct {
	rule  Rule
	match func(q query) (Window, bool)
}
