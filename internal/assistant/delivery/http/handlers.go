package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/pkg/ical"
	"calendar-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Classifies the message against the prior turns and answers it: schedule, availability or a booking offer.
// @Description Success bodies are the bare ChatResponse; errors use the response.Resp envelope.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body chatReq true "Message and conversation history"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// Book godoc
// @Summary     Book an appointment
// @Description Creates the event unless it overlaps an existing one. An end not after start is replaced by start plus the default duration.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body bookReq true "Event to create"
// @Success     200  {object} bookResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     403  {object} response.Resp "Forbidden"
// @Failure     422  {object} response.Resp "Start is in the past"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /book_appointment [POST]
func (h *handler) Book(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBookReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Book(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Book: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newBookResp(output))
}

// ScheduleICS godoc
// @Summary     Export a schedule as iCalendar
// @Description Resolves q like a chat message ("tomorrow", "Friday 3-4pm") and returns the events in that window.
// @Tags        Assistant
// @Produce     text/calendar
// @Security    ApiKeyAuth
// @Param       q query string false "Free-text date phrase (default: today)"
// @Success     200 {string} string "VCALENDAR document"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     503 {object} response.Resp "Calendar unavailable"
// @Router      /schedule.ics [GET]
func (h *handler) ScheduleICS(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Schedule(ctx, assistant.ScheduleInput{Query: c.Query("q")})
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	events := make([]ical.Event, 0, len(output.Events))
	for _, e := range output.Events {
		events = append(events, ical.Event{
			UID:         e.ID,
			Summary:     e.Summary,
			Description: e.Description,
			Location:    e.Location,
			Start:       e.Start,
			End:         e.End,
			AllDay:      e.AllDay,
		})
	}

	var buf bytes.Buffer
	if err := ical.Encode(&buf, output.Label, events, h.now()); err != nil {
		h.l.Errorf(ctx, "ical.Encode: %v", err)
		response.InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
