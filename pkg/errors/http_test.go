package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("book: %w", NewHTTPError(http.StatusUnprocessableEntity, "start is in the past"))

	httpErr, ok := AsHTTPError(wrapped)
	if !ok {
		t.Fatal("AsHTTPError() should find the wrapped HTTPError")
	}
	if httpErr.StatusCode != http.StatusUnprocessableEntity || httpErr.Error() != "start is in the past" {
		t.Errorf("unexpected error: %+v", httpErr)
	}

	if _, ok := AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("AsHTTPError() should not match a plain error")
	}
}
