package http

import (
	"time"

	"calendar-assistant/internal/assistant"
)

// --- Request DTOs ---

type turnReq struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatReq struct {
	Content             string    `json:"content"              binding:"required"`
	ConversationID      string    `json:"conversation_id"`
	ConversationHistory []turnReq `json:"conversation_history"`
}

func (r chatReq) toInput() assistant.ChatInput {
	history := make([]assistant.Turn, 0, len(r.ConversationHistory))
	for _, t := range r.ConversationHistory {
		history = append(history, assistant.Turn{Role: assistant.Role(t.Role), Content: t.Content})
	}
	return assistant.ChatInput{
		Message:        r.Content,
		History:        history,
		ConversationID: r.ConversationID,
	}
}

// ---

type bookReq struct {
	Start       string   `json:"start"       binding:"required"`
	End         string   `json:"end"`
	Summary     string   `json:"summary"     binding:"max=255"`
	Description string   `json:"description" binding:"max=4000"`
	Location    string   `json:"location"`
	Attendees   []string `json:"attendees"   binding:"omitempty,dive,email"`
	Timezone    string   `json:"timezone"`

	start time.Time
	end   time.Time
}

// requestLayouts are tried in order; the offset-less ones are read in the request timezone.
var requestLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseRequestTime(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range requestLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (r *bookReq) validate(defaultLoc *time.Location) error {
	loc := defaultLoc
	if r.Timezone != "" {
		l, err := time.LoadLocation(r.Timezone)
		if err != nil {
			return errInvalidTimezone
		}
		loc = l
	}

	var ok bool
	if r.start, ok = parseRequestTime(r.Start, loc); !ok {
		return errInvalidStart
	}
	if r.End != "" {
		if r.end, ok = parseRequestTime(r.End, loc); !ok {
			return errInvalidEnd
		}
	}
	return nil
}

func (r bookReq) toInput() assistant.BookInput {
	return assistant.BookInput{
		Start:       r.start,
		End:         r.end,
		Summary:     r.Summary,
		Description: r.Description,
		Location:    r.Location,
		Attendees:   r.Attendees,
		Timezone:    r.Timezone,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string   `json:"id"`
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Status      string   `json:"status,omitempty"`
	HtmlLink    string   `json:"html_link,omitempty"`
	Attendees   []string `json:"attendees,omitempty"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	AllDay      bool     `json:"all_day,omitempty"`
}

func newEventResp(e assistant.Event) eventResp {
	return eventResp{
		ID:          e.ID,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		Status:      e.Status,
		HtmlLink:    e.HtmlLink,
		Attendees:   e.Attendees,
		Start:       e.Start.Format(time.RFC3339),
		End:         e.End.Format(time.RFC3339),
		AllDay:      e.AllDay,
	}
}

func newEventResps(events []assistant.Event) []eventResp {
	if events == nil {
		return nil
	}
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = newEventResp(e)
	}
	return out
}

func isoPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

type chatResp struct {
	Response           string      `json:"response"`
	Action             string      `json:"action"`
	Intent             string      `json:"intent"`
	Events             []eventResp `json:"events,omitempty"`
	Slots              []string    `json:"slots,omitempty"` // slot starts, ISO-8601
	Start              *string     `json:"start,omitempty"`
	End                *string     `json:"end,omitempty"`
	Summary            string      `json:"summary,omitempty"`
	Timezone           string      `json:"timezone"`
	ConversationID     string      `json:"conversation_id"`
	SuggestedResponses []string    `json:"suggested_responses,omitempty"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	var slots []string
	for _, s := range out.Slots {
		slots = append(slots, s.Start.Format(time.RFC3339))
	}
	return chatResp{
		Response:           out.Response,
		Action:             string(out.Action),
		Intent:             string(out.Intent),
		Events:             newEventResps(out.Events),
		Slots:              slots,
		Start:              isoPtr(out.Start),
		End:                isoPtr(out.End),
		Summary:            out.Summary,
		Timezone:           out.Timezone,
		ConversationID:     out.ConversationID,
		SuggestedResponses: out.SuggestedResponses,
	}
}

type bookResp struct {
	Response  string      `json:"response"`
	Action    string      `json:"action"`
	Booked    bool        `json:"booked"`
	EventID   string      `json:"event_id,omitempty"`
	HtmlLink  string      `json:"html_link,omitempty"`
	Start     string      `json:"start"`
	End       string      `json:"end"`
	Conflicts []eventResp `json:"conflicts,omitempty"`
	Timezone  string      `json:"timezone"`
}

func (h *handler) newBookResp(out assistant.BookOutput) bookResp {
	return bookResp{
		Response:  out.Response,
		Action:    string(out.Action),
		Booked:    out.Booked(),
		EventID:   out.EventID,
		HtmlLink:  out.HtmlLink,
		Start:     out.Start.Format(time.RFC3339),
		End:       out.End.Format(time.RFC3339),
		Conflicts: newEventResps(out.Conflicts),
		Timezone:  out.Timezone,
	}
}
