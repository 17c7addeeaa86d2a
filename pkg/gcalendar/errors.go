package gcalendar

import (
	"errors"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

var (
	ErrTokenMissing           = errors.New("no stored OAuth token, run `calctl auth` first")
	ErrUnsupportedCredentials = errors.New("unsupported credentials format")
)

// IsAuthError reports whether err means the session credentials are no longer usable.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenMissing) {
		return true
	}
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return true
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusUnauthorized
	}
	return false
}
