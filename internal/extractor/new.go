package extractor

import (
	"errors"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"calendar-assistant/pkg/datemath"
)

const defaultMeetingDuration = 30 * time.Minute

var ErrInvalidBusinessHours = errors.New("business hours must satisfy 0 <= open < close <= 24")

// Extractor turns free text into a concrete time window.
type Extractor struct {
	dates           *datemath.Parser
	hours           datemath.Hours
	defaultDuration time.Duration
	nl              *when.Parser
	matchers        []matcher
}

// New creates an Extractor. A zero DefaultDuration means 30 minutes.
func New(cfg Config) (*Extractor, error) {
	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	if !cfg.BusinessHours.Valid() {
		return nil, ErrInvalidBusinessHours
	}
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = defaultMeetingDuration
	}

	nl := when.New(nil)
	nl.Add(en.All...)
	nl.Add(common.All...)

	e := &Extractor{
		dates:           dates,
		hours:           cfg.BusinessHours,
		defaultDuration: cfg.DefaultDuration,
		nl:              nl,
	}

	// Order matters: first match wins.
	e.matchers = []matcher{
		{rule: RuleExplicitRange, match: e.matchExplicitRange},
		{rule: RuleMonthDay, match: e.matchMonthDay},
		{rule: RuleWeekday, match: e.matchWeekday},
		{rule: RuleSpan, match: e.matchSpan},
		{rule: RuleNatural, match: e.matchNatural},
	}
	return e, nil
}

// Location returns the timezone every Window is expressed in.
func (e *Extractor) Location() *time.Location {
	return e.dates.Location()
}

// BusinessHours returns the configured open/close hours.
func (e *Extractor) BusinessHours() datemath.Hours {
	return e.hours
}

// DefaultDuration returns the length given to single time mentions.
func (e *Extractor) DefaultDuration() time.Duration {
	return e.defaultDuration
}

// Day returns midnight and 23:59:59 of t's calendar day in the extractor's timezone.
func (e *Extractor) Day(t time.Time) (time.Time, time.Time) {
	start := e.dates.StartOfDay(t)
	return start, e.dates.EndOfDay(start)
}
