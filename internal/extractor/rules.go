package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"calendar-assistant/pkg/datemath"
)

const weekdayAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

const monthAlt = `january|february|march|april|may|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

var (
	explicitRangeRe = regexp.MustCompile(
		`(?:\b(` + weekdayAlt + `)[\s,]+(?:at\s+|from\s+)?)?` +
			`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*[-–]\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

	monthDayRe = regexp.MustCompile(`\b(` + monthAlt + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	dayMonthRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlt + `)\b`)

	weekdayRe = regexp.MustCompile(`\b(` + weekdayAlt + `)\b`)

	spanRe = regexp.MustCompile(`\b(?:from|between)\s+(.+?)\s*(?:\bto\b|\buntil\b|\btill\b|\band\b|[-–])\s*(.+)$`)

	bareClockRe = regexp.MustCompile(`^\d{1,2}(?::\d{2})?$`)
	meridiemRe  = regexp.MustCompile(`\b\d{1,2}(?::\d{2})?\s*(am|pm)\b`)

	clockRe   = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	clock24Re = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	noonRe    = regexp.MustCompile(`\bnoon\b`)
)

// matchExplicitRange handles "[weekday] H[:MM][am|pm] - H[:MM][am|pm]".
func (e *Extractor) matchExplicitRange(q query) (Window, bool) {
	for _, idx := range explicitRangeRe.FindAllStringSubmatchIndex(q.text, -1) {
		if partOfDate(q.text, idx[0], idx[1]) {
			continue
		}
		groups := submatches(q.text, idx)

		startH, startM, endH, endM, ok := parseClockRange(groups[2], groups[3], groups[4], groups[5], groups[6], groups[7])
		if !ok {
			continue
		}

		weekday := groups[1]
		if weekday == "" {
			if m := weekdayRe.FindStringSubmatch(q.text); m != nil {
				weekday = m[1]
			}
		}

		day := e.targetDay(q)
		if wd, found := datemath.LookupWeekday(weekday); found {
			day = e.dates.NextWeekday(q.now, wd)
		} else if date, span, found := e.findMonthDay(q); found && (span[1] <= idx[0] || span[0] >= idx[1]) {
			day = date
		}

		start := e.dates.At(day, startH, startM)
		end := e.dates.At(day, endH, endM)
		return Window{Start: start, End: end, Label: rangeLabel(start, end)}, true
	}
	return Window{}, false
}

// matchMonthDay handles "June 30" and "30th of June". A clock time in the same text narrows the
// window to [time, time+defaultDuration] on that date.
func (e *Extractor) matchMonthDay(q query) (Window, bool) {
	date, _, ok := e.findMonthDay(q)
	if !ok {
		return Window{}, false
	}

	if hour, minute, found := clockOf(q.stripped); found && !spanRe.MatchString(q.stripped) {
		start := e.dates.At(date, hour, minute)
		return Window{
			Start: start,
			End:   start.Add(e.defaultDuration),
			Label: date.Format("January 2") + " " + clock(start),
		}, true
	}

	start, end := e.hours.Span(date)
	return Window{Start: start, End: end, Label: date.Format("January 2")}, true
}

// findMonthDay resolves the first month/day literal in q and returns its byte span in q.text.
func (e *Extractor) findMonthDay(q query) (time.Time, []int, bool) {
	var monthName, dayStr string
	var span []int
	if m := monthDayRe.FindStringSubmatchIndex(q.text); m != nil {
		monthName, dayStr, span = q.text[m[2]:m[3]], q.text[m[4]:m[5]], m[:2]
	} else if m := dayMonthRe.FindStringSubmatchIndex(q.text); m != nil {
		dayStr, monthName, span = q.text[m[2]:m[3]], q.text[m[4]:m[5]], m[:2]
	} else {
		return time.Time{}, nil, false
	}

	month, ok := datemath.LookupMonth(monthName)
	if !ok {
		return time.Time{}, nil, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, nil, false
	}

	date, ok := e.dates.MonthDay(q.now, month, day)
	if !ok {
		return time.Time{}, nil, false
	}
	return date, span, true
}

// matchWeekday handles a bare weekday name. Text that also names a clock time is left to the
// natural-language rule.
func (e *Extractor) matchWeekday(q query) (Window, bool) {
	m := weekdayRe.FindStringSubmatch(q.text)
	if m == nil {
		return Window{}, false
	}
	if _, _, found := clockOf(q.stripped); found {
		return Window{}, false
	}
	wd, _ := datemath.LookupWeekday(m[1])
	date := e.dates.NextWeekday(q.now, wd)

	start, end := e.hours.Span(date)
	return Window{Start: start, End: end, Label: date.Weekday().String()}, true
}

// matchSpan handles "from X to Y" / "between X and Y" where each side is free text.
func (e *Extractor) matchSpan(q query) (Window, bool) {
	m := spanRe.FindStringSubmatch(q.stripped)
	if m == nil {
		return Window{}, false
	}
	left, right := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])

	// "between 2 and 4pm": the left side borrows the right side's meridiem.
	if bareClockRe.MatchString(left) {
		if mm := meridiemRe.FindStringSubmatch(right); mm != nil {
			left += mm[1]
		}
	}

	start, _, ok := e.search(left, q)
	if !ok {
		return Window{}, false
	}
	end, _, ok := e.search(right, q)
	if !ok {
		return Window{}, false
	}
	return Window{Start: start, End: end, Label: rangeLabel(start, end)}, true
}

// matchNatural handles a single time mention such as "at 3pm" or "next week at noon".
func (e *Extractor) matchNatural(q query) (Window, bool) {
	start, phrase, ok := e.search(q.stripped, q)
	if !ok {
		return Window{}, false
	}
	if q.hasOffset {
		phrase = q.marker + " " + phrase
	}
	return Window{Start: start, End: start.Add(e.defaultDuration), Label: phrase}, true
}

// search runs the natural-language date parser anchored at q.now. Bare clock times that already
// passed today move to tomorrow; a pending relative day offset replaces the parsed date.
func (e *Extractor) search(text string, q query) (time.Time, string, bool) {
	if strings.TrimSpace(text) == "" {
		return time.Time{}, "", false
	}
	r, err := e.nl.Parse(text, q.now)
	if err != nil || r == nil {
		return time.Time{}, "", false
	}

	t := r.Time.In(e.Location())
	t = e.dates.At(t, t.Hour(), t.Minute())
	switch {
	case q.hasOffset:
		t = e.dates.At(e.targetDay(q), t.Hour(), t.Minute())
	case t.Before(q.now) && sameDay(t, q.now):
		t = e.dates.AddDays(t, 1)
	}
	return t, strings.TrimSpace(r.Text), true
}

// parseClockRange converts the captured pieces of "H[:MM][am|pm] - H[:MM][am|pm]" to 24-hour
// clock values. A missing meridiem is borrowed from the other side ("3-4pm").
func parseClockRange(sh, sm, smer, eh, em, emer string) (int, int, int, int, bool) {
	startHour, err1 := strconv.Atoi(sh)
	endHour, err2 := strconv.Atoi(eh)
	if err1 != nil || err2 != nil {
		return 0, 0, 0, 0, false
	}
	startMin, ok1 := parseMinutes(sm)
	endMin, ok2 := parseMinutes(em)
	if !ok1 || !ok2 {
		return 0, 0, 0, 0, false
	}

	startBorrowed, endBorrowed := false, false
	if smer == "" && emer != "" {
		smer, startBorrowed = emer, true
	}
	if emer == "" && smer != "" {
		emer, endBorrowed = smer, true
	}

	h1, ok1 := to24(startHour, smer)
	h2, ok2 := to24(endHour, emer)
	if !ok1 || !ok2 {
		return 0, 0, 0, 0, false
	}

	// "11-1pm" means 11am to 1pm and "9am-5" means 9am to 5pm.
	if h1*60+startMin >= h2*60+endMin {
		if startBorrowed && smer == "pm" {
			if h, ok := to24(startHour, "am"); ok {
				h1 = h
			}
		}
		if endBorrowed && emer == "am" {
			if h, ok := to24(endHour, "pm"); ok {
				h2 = h
			}
		}
	}

	if h1*60+startMin >= h2*60+endMin {
		return 0, 0, 0, 0, false
	}
	return h1, startMin, h2, endMin, true
}

// clockOf finds a single clock time: "3pm", "10:30am", "14:30" or "noon".
func clockOf(text string) (int, int, bool) {
	if m := clockRe.FindStringSubmatch(text); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, 0, false
		}
		minute, ok := parseMinutes(m[2])
		if !ok {
			return 0, 0, false
		}
		if hour, ok = to24(hour, m[3]); ok {
			return hour, minute, true
		}
	}
	if m := clock24Re.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return hour, minute, true
	}
	if noonRe.MatchString(text) {
		return 12, 0, true
	}
	return 0, 0, false
}

func parseMinutes(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	m, err := strconv.Atoi(s)
	if err != nil || m > 59 {
		return 0, false
	}
	return m, true
}

// to24 applies the 12-hour clock rules: pm adds 12 below noon, 12am is midnight.
func to24(hour int, meridiem string) (int, bool) {
	switch meridiem {
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	default:
		if hour > 23 {
			return 0, false
		}
	}
	return hour, true
}

// partOfDate reports whether text[start:end] is glued to other digits, as in "2024-06-10".
func partOfDate(text string, start, end int) bool {
	if start > 0 {
		if c := text[start-1]; isDigit(c) || c == '-' || c == '/' {
			return true
		}
	}
	if end < len(text) {
		if c := text[end]; isDigit(c) || c == '-' || c == '/' || c == ':' {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func submatches(text string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		if idx[2*i] >= 0 {
			out[i] = text[idx[2*i]:idx[2*i+1]]
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
