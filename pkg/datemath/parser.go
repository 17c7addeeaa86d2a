package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Kolkata"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// NextWeekday returns midnight of the next occurrence of wd strictly after baseTime's day.
// A weekday equal to today's rolls forward a full week.
func (p *Parser) NextWeekday(baseTime time.Time, wd time.Weekday) time.Time {
	base := baseTime.In(p.location)
	daysUntil := int(wd - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(p.AddDays(base, daysUntil))
}

// MonthDay resolves month/day against baseTime's year, rolling to next year when the date is
// already past. ok is false when day does not exist in that month.
func (p *Parser) MonthDay(baseTime time.Time, month time.Month, day int) (time.Time, bool) {
	base := baseTime.In(p.location)
	today := p.StartOfDay(base)

	for _, year := range []int{base.Year(), base.Year() + 1} {
		d := time.Date(year, month, day, 0, 0, 0, 0, p.location)
		if d.Month() != month || d.Day() != day {
			// Feb 29 may still exist next year.
			continue
		}
		if !d.Before(today) {
			return d, true
		}
	}
	return time.Time{}, false
}

// AddDays shifts t by n calendar days in the parser's timezone, preserving wall clock time.
func (p *Parser) AddDays(t time.Time, n int) time.Time {
	return t.In(p.location).AddDate(0, 0, n)
}

// At returns the instant at hour:minute on day's calendar date.
func (p *Parser) At(day time.Time, hour, minute int) time.Time {
	d := day.In(p.location)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, p.location)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// LookupWeekday maps an English weekday name to time.Weekday.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}

// LookupMonth maps an English month name or abbreviation to time.Month.
func LookupMonth(name string) (time.Month, bool) {
	m, ok := months[strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))]
	return m, ok
}
