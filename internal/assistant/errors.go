package assistant

import "errors"

var (
	ErrEmptyMessage    = errors.New("message content is required")
	ErrMissingStart    = errors.New("start time is required")
	ErrInvalidTimezone = errors.New("unknown timezone")
	ErrBookingInPast   = errors.New("cannot book a meeting in the past")
	ErrCalendar        = errors.New("calendar service unavailable")
)
