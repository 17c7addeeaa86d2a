package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"calendar-assistant/config"
	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/metrics"
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

type stubUseCase struct {
	healthErr error
}

func (s *stubUseCase) Chat(ctx context.Context, in assistant.ChatInput) (assistant.ChatOutput, error) {
	return assistant.ChatOutput{Action: assistant.ActionGreeting, Timezone: "UTC"}, nil
}

func (s *stubUseCase) Book(ctx context.Context, in assistant.BookInput) (assistant.BookOutput, error) {
	return assistant.BookOutput{}, nil
}

func (s *stubUseCase) Schedule(ctx context.Context, in assistant.ScheduleInput) (assistant.ScheduleOutput, error) {
	return assistant.ScheduleOutput{}, nil
}

func (s *stubUseCase) Health(ctx context.Context) error { return s.healthErr }

func newTestServer(t *testing.T, uc assistant.UseCase) *HTTPServer {
	t.Helper()

	reg := prometheus.NewRegistry()
	obs, err := metrics.NewPrometheusObserver("test", reg)
	if err != nil {
		t.Fatalf("NewPrometheusObserver() error = %v", err)
	}
	obs.RecordIntent("GREETING")

	l := &mockLogger{}
	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Middleware:  middleware.New(l, config.SecurityConfig{APIKey: "k", APIKeyHeader: "x-api-key"}, 0),
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		AssistantUC: uc,
		Location:    time.UTC,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewValidates(t *testing.T) {
	l := &mockLogger{}
	cases := []Config{
		{Port: 8080, Mode: gin.TestMode, AssistantUC: &stubUseCase{}},
		{Logger: l, Mode: gin.TestMode, AssistantUC: &stubUseCase{}},
		{Logger: l, Port: 8080, Mode: gin.TestMode},
	}
	for i, cfg := range cases {
		if _, err := New(cfg.Logger, cfg); err == nil {
			t.Errorf("case %d: New() should fail", i)
		}
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, &stubUseCase{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		if w := get(srv, path); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
	}

	w := get(srv, "/metrics")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "test_intents_total") {
		t.Errorf("GET /metrics = %d, body missing intents counter", w.Code)
	}
}

func TestHealthUnavailable(t *testing.T) {
	srv := newTestServer(t, &stubUseCase{healthErr: errors.New("token expired")})

	w := get(srv, "/health")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /health = %d, want 503", w.Code)
	}
	if !strings.Contains(w.Body.String(), "token expired") {
		t.Errorf("body = %s, want failure reason", w.Body.String())
	}
}

func TestAssistantRoutesMounted(t *testing.T) {
	srv := newTestServer(t, &stubUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"content":"hi"}`))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("POST /chat without key = %d, want 403", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", "k")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("POST /chat = %d, want 200: %s", w.Code, w.Body.String())
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("response is missing the request id header")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, &stubUseCase{})
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
