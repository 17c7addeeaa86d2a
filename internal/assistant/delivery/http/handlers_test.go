package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-assistant/config"
	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/internal/router"
	pkgErrors "calendar-assistant/pkg/errors"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeUseCase struct {
	chatIn   assistant.ChatInput
	bookIn   assistant.BookInput
	schedIn  assistant.ScheduleInput
	chatOut  assistant.ChatOutput
	bookOut  assistant.BookOutput
	schedOut assistant.ScheduleOutput
	err      error
}

func (f *fakeUseCase) Chat(ctx context.Context, in assistant.ChatInput) (assistant.ChatOutput, error) {
	f.chatIn = in
	return f.chatOut, f.err
}

func (f *fakeUseCase) Book(ctx context.Context, in assistant.BookInput) (assistant.BookOutput, error) {
	f.bookIn = in
	return f.bookOut, f.err
}

func (f *fakeUseCase) Schedule(ctx context.Context, in assistant.ScheduleInput) (assistant.ScheduleOutput, error) {
	f.schedIn = in
	return f.schedOut, f.err
}

func (f *fakeUseCase) Health(ctx context.Context) error { return f.err }

const apiKey = "test-key"

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(uc assistant.UseCase, loc *time.Location) *gin.Engine {
	r := gin.New()
	h := New(&mockLogger{}, uc, loc)
	h.now = func() time.Time { return time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC) }
	mw := middleware.New(&mockLogger{}, config.SecurityConfig{APIKey: apiKey, APIKeyHeader: "x-api-key"}, 0)
	RegisterRoutes(r, h, mw)
	return r
}

func call(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeFlat reads a bare success body and checks it is not wrapped in the error envelope.
func decodeFlat(t *testing.T, w *httptest.ResponseRecorder, data any) {
	t.Helper()
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &keys), w.Body.String())
	assert.NotContains(t, keys, "error_code")
	assert.NotContains(t, keys, "data")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), data))
}

func TestChat(t *testing.T) {
	start := time.Date(2024, 6, 11, 15, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{chatOut: assistant.ChatOutput{
		Response:       "open",
		Action:         assistant.ActionOfferBooking,
		Intent:         router.IntentBookMeeting,
		Slots:          []assistant.Slot{{Start: start, End: start.Add(time.Hour)}},
		Start:          &start,
		Timezone:       "UTC",
		ConversationID: "conv-1",
	}}
	r := newServer(uc, time.UTC)

	w := call(r, http.MethodPost, "/chat", `{"content":"book tomorrow 3-4pm","conversation_id":"conv-1",
		"conversation_history":[{"role":"assistant","content":"Hi"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got chatResp
	decodeFlat(t, w, &got)
	assert.Equal(t, "open", got.Response)
	assert.Equal(t, "UTC", got.Timezone)
	assert.Equal(t, "offer_booking", got.Action)
	assert.Equal(t, "BOOK_MEETING", got.Intent)
	assert.Equal(t, []string{"2024-06-11T15:00:00Z"}, got.Slots)
	require.NotNil(t, got.Start)
	assert.Equal(t, "2024-06-11T15:00:00Z", *got.Start)
	assert.Nil(t, got.End)

	assert.Equal(t, "book tomorrow 3-4pm", uc.chatIn.Message)
	assert.Equal(t, "conv-1", uc.chatIn.ConversationID)
	require.Len(t, uc.chatIn.History, 1)
	assert.Equal(t, assistant.RoleAssistant, uc.chatIn.History[0].Role)
}

func TestChatValidation(t *testing.T) {
	r := newServer(&fakeUseCase{}, time.UTC)

	w := call(r, http.MethodPost, "/chat", `{"conversation_history":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, http.MethodPost, "/chat", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRequiresAPIKey(t *testing.T) {
	r := newServer(&fakeUseCase{}, time.UTC)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"content":"hi"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBook(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	uc := &fakeUseCase{bookOut: assistant.BookOutput{
		Response: "booked",
		Action:   assistant.ActionConfirmBooking,
		EventID:  "evt-1",
		Start:    time.Date(2024, 6, 12, 14, 0, 0, 0, berlin),
		End:      time.Date(2024, 6, 12, 15, 0, 0, 0, berlin),
		Timezone: "Europe/Berlin",
	}}
	r := newServer(uc, berlin)

	w := call(r, http.MethodPost, "/book_appointment", `{"start":"2024-06-12T14:00","end":"2024-06-12T15:00:00+02:00",
		"summary":"Sync","attendees":["ana@example.com"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got bookResp
	decodeFlat(t, w, &got)
	assert.True(t, got.Booked)
	assert.Equal(t, "evt-1", got.EventID)
	assert.Equal(t, "2024-06-12T14:00:00+02:00", got.Start)

	assert.True(t, uc.bookIn.Start.Equal(time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)), "offset-less start is read in the default zone")
	assert.True(t, uc.bookIn.End.Equal(time.Date(2024, 6, 12, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"ana@example.com"}, uc.bookIn.Attendees)
}

func TestBookRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "missing start", body: `{"summary":"x"}`, want: http.StatusBadRequest},
		{name: "bad start", body: `{"start":"next tuesday"}`, want: http.StatusBadRequest},
		{name: "bad end", body: `{"start":"2024-06-12T14:00:00Z","end":"later"}`, want: http.StatusBadRequest},
		{name: "bad timezone", body: `{"start":"2024-06-12T14:00:00Z","timezone":"Mars/Olympus"}`, want: http.StatusBadRequest},
		{name: "bad attendee", body: `{"start":"2024-06-12T14:00:00Z","attendees":["not-an-email"]}`, want: http.StatusBadRequest},
		{name: "past", body: `{"start":"2024-06-01T14:00:00Z"}`, err: assistant.ErrBookingInPast, want: http.StatusUnprocessableEntity},
		{name: "calendar down", body: `{"start":"2024-06-12T14:00:00Z"}`, err: fmt.Errorf("%w: boom", assistant.ErrCalendar), want: http.StatusServiceUnavailable},
		{name: "unexpected", body: `{"start":"2024-06-12T14:00:00Z"}`, err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newServer(&fakeUseCase{err: tt.err}, time.UTC)
			w := call(r, http.MethodPost, "/book_appointment", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestScheduleICS(t *testing.T) {
	uc := &fakeUseCase{schedOut: assistant.ScheduleOutput{
		Label: "Tuesday",
		Events: []assistant.Event{{
			ID:      "standup",
			Summary: "Standup",
			Start:   time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 6, 11, 10, 0, 0, 0, time.UTC),
		}},
	}}
	r := newServer(uc, time.UTC)

	w := call(r, http.MethodGet, "/schedule.ics?q=tomorrow", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tomorrow", uc.schedIn.Query)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar"))

	body := w.Body.Bytes()
	assert.True(t, bytes.HasPrefix(body, []byte("BEGIN:VCALENDAR")))
	assert.Contains(t, string(body), "SUMMARY:Standup")
	assert.Contains(t, string(body), "UID:standup")
}

func TestScheduleICSCalendarDown(t *testing.T) {
	r := newServer(&fakeUseCase{err: fmt.Errorf("%w: boom", assistant.ErrCalendar)}, time.UTC)

	w := call(r, http.MethodGet, "/schedule.ics", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMapError(t *testing.T) {
	h := New(&mockLogger{}, &fakeUseCase{}, nil)

	tests := []struct {
		err  error
		want int
	}{
		{assistant.ErrEmptyMessage, http.StatusBadRequest},
		{assistant.ErrMissingStart, http.StatusBadRequest},
		{fmt.Errorf("%w: %q", assistant.ErrInvalidTimezone, "x"), http.StatusBadRequest},
		{assistant.ErrBookingInPast, http.StatusUnprocessableEntity},
		{assistant.ErrCalendar, http.StatusServiceUnavailable},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		httpErr, ok := pkgErrors.AsHTTPError(h.mapError(tt.err))
		require.True(t, ok, tt.err.Error())
		assert.Equal(t, tt.want, httpErr.StatusCode, tt.err.Error())
	}
}
