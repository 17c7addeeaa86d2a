package datemath

import "time"

// Hours is an open/close pair of whole hours on the 24-hour clock, e.g. {9, 17}.
type Hours struct {
	Open  int
	Close int
}

// Span returns the open and close instants of hours on the calendar day of day.
func (h Hours) Span(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	return time.Date(y, m, d, h.Open, 0, 0, 0, loc), time.Date(y, m, d, h.Close, 0, 0, 0, loc)
}

// Valid reports whether the hours describe a non-empty span within one day.
func (h Hours) Valid() bool {
	return h.Open >= 0 && h.Close <= 24 && h.Open < h.Close
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}
