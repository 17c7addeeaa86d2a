package httpserver

import (
	"context"

	assistantHTTP "calendar-assistant/internal/assistant/delivery/http"
)

// setupAssistantDomain mounts /chat, /book_appointment and /schedule.ics.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC, srv.location)
	assistantHTTP.RegisterRoutes(srv.gin, h, srv.mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
