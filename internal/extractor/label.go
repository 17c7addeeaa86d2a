package extractor

import (
	"fmt"
	"time"
)

// clock renders 15:00 as "3:00pm".
func clock(t time.Time) string {
	return t.Format("3:04pm")
}

// rangeLabel renders "Friday 3:00pm to 4:00pm", naming the end day only when it differs.
func rangeLabel(start, end time.Time) string {
	if sameDay(start, end) {
		return fmt.Sprintf("%s %s to %s", start.Weekday(), clock(start), clock(end))
	}
	return fmt.Sprintf("%s %s to %s %s", start.Weekday(), clock(start), end.Weekday(), clock(end))
}
