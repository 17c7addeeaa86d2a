package extractor

import (
	"regexp"
	"strings"
	"time"
)

var (
	spaceRe       = regexp.MustCompile(`\s+`)
	relativeDayRe = regexp.MustCompile(`\b(today|tonight|tomorrow|tomorow|tomorroe|tmrw)\b`)
)

// Extract resolves text against now. It never fails: when no rule matches, the business hours of
// today (shifted by any "today"/"tomorrow" marker) are returned.
func (e *Extractor) Extract(text string, now time.Time) Window {
	q := e.newQuery(text, now)

	for _, m := range e.matchers {
		if w, ok := m.match(q); ok {
			w.Rule = m.rule
			return e.normalize(w)
		}
	}
	return e.normalize(e.fallback(q))
}

func (e *Extractor) newQuery(text string, now time.Time) query {
	lower := strings.ToLower(strings.TrimSpace(text))
	lower = spaceRe.ReplaceAllString(lower, " ")

	q := query{
		text: lower,
		now:  now.In(e.Location()),
	}

	if m := relativeDayRe.FindString(lower); m != "" {
		q.hasOffset = true
		q.marker = m
		if m != "today" && m != "tonight" {
			q.offset = 1
		}
	}
	q.stripped = strings.TrimSpace(spaceRe.ReplaceAllString(relativeDayRe.ReplaceAllString(lower, " "), " "))
	return q
}

// targetDay returns midnight of today shifted by the pending relative day offset.
func (e *Extractor) targetDay(q query) time.Time {
	return e.dates.StartOfDay(e.dates.AddDays(q.now, q.offset))
}

// fallback covers the business hours of the target day.
func (e *Extractor) fallback(q query) Window {
	start, end := e.hours.Span(e.targetDay(q))
	return Window{
		Start: start,
		End:   end,
		Label: rangeLabel(start, end),
		Rule:  RuleFallback,
	}
}

// normalize pins both instants to the configured zone and guarantees Start < End.
func (e *Extractor) normalize(w Window) Window {
	loc := e.Location()
	w.Start = w.Start.In(loc)
	w.End = w.End.In(loc)
	if !w.End.After(w.Start) {
		w.End = w.Start.Add(e.defaultDuration)
	}
	return w
}
