package http

import (
	"errors"
	"net/http"

	"calendar-assistant/internal/assistant"
	pkgErrors "calendar-assistant/pkg/errors"
)

var (
	errInvalidStart    = pkgErrors.NewHTTPError(http.StatusBadRequest, "start must be an ISO-8601 date-time")
	errInvalidEnd      = pkgErrors.NewHTTPError(http.StatusBadRequest, "end must be an ISO-8601 date-time")
	errInvalidTimezone = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown timezone")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, assistant.ErrEmptyMessage.Error())
	case errors.Is(err, assistant.ErrMissingStart):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, assistant.ErrMissingStart.Error())
	case errors.Is(err, assistant.ErrInvalidTimezone):
		return errInvalidTimezone
	case errors.Is(err, assistant.ErrBookingInPast):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, assistant.ErrBookingInPast.Error())
	case errors.Is(err, assistant.ErrCalendar):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, assistant.ErrCalendar.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
