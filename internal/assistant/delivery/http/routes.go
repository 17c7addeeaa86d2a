package http

import (
	"calendar-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the assistant endpoints. All of them require the API key.
func RegisterRoutes(rg gin.IRouter, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), h.Chat)
	rg.POST("/book_appointment", mw.Auth(), h.Book)
	rg.GET("/schedule.ics", mw.Auth(), h.ScheduleICS)
}
