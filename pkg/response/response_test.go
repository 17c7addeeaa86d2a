package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "calendar-assistant/pkg/errors"
	"calendar-assistant/pkg/response"
)

func TestEnvelopes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		write    func(c *gin.Context)
		wantCode int
		wantErr  int
		wantMsg  string
	}{
		{
			name:     "ok",
			write:    func(c *gin.Context) { response.OK(c, gin.H{"status": "booked"}) },
			wantCode: http.StatusOK,
			wantErr:  0,
			wantMsg:  response.MessageSuccess,
		},
		{
			name:     "plain error is a 400",
			write:    func(c *gin.Context) { response.Error(c, errors.New("content is required"), nil) },
			wantCode: http.StatusBadRequest,
			wantErr:  response.DefaultErrorCode,
			wantMsg:  "content is required",
		},
		{
			name: "http error keeps its status",
			write: func(c *gin.Context) {
				response.Error(c, pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "start is in the past"), nil)
			},
			wantCode: http.StatusUnprocessableEntity,
			wantErr:  http.StatusUnprocessableEntity,
			wantMsg:  "start is in the past",
		},
		{
			name:     "internal error hides the cause",
			write:    func(c *gin.Context) { response.InternalError(c, errors.New("token file unreadable")) },
			wantCode: http.StatusInternalServerError,
			wantErr:  response.InternalServerErrorCode,
			wantMsg:  response.DefaultErrorMessage,
		},
		{
			name:     "unavailable",
			write:    func(c *gin.Context) { response.Unavailable(c, "Unhealthy: calendar down") },
			wantCode: http.StatusServiceUnavailable,
			wantErr:  http.StatusServiceUnavailable,
			wantMsg:  "Unhealthy: calendar down",
		},
		{
			name:     "too many requests",
			write:    response.TooManyRequests,
			wantCode: http.StatusTooManyRequests,
			wantErr:  http.StatusTooManyRequests,
			wantMsg:  "Too Many Requests",
		},
		{
			name:     "unauthorized",
			write:    response.Unauthorized,
			wantCode: http.StatusUnauthorized,
			wantErr:  http.StatusUnauthorized,
			wantMsg:  "Unauthorized",
		},
		{
			name:     "forbidden",
			write:    response.Forbidden,
			wantCode: http.StatusForbidden,
			wantErr:  http.StatusForbidden,
			wantMsg:  "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.write(c)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.ErrorCode != tt.wantErr {
				t.Errorf("error_code = %d, want %d", resp.ErrorCode, tt.wantErr)
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
		})
	}
}

func TestOKData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.OK(c, map[string]string{"event_id": "evt-1"})

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["event_id"] != "evt-1" {
		t.Errorf("unexpected data payload: %v", resp.Data)
	}
}

func TestErrorCarriesData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Error(c, errors.New("invalid start"), map[string]interface{}{"field": "start"})

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["field"] != "start" {
		t.Errorf("unexpected data payload: %v", resp.Data)
	}
}
