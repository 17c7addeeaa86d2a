package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateLayout = "2006-01-02"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
// tokenPath is only read for OAuth installed-app credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON bytes.
// Service account keys are used directly. OAuth client credentials need a token previously
// stored at tokenPath; refreshed tokens are written back to the same file.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Try service account first
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		return NewClientFromTokenSource(ctx, jwtConfig.TokenSource(ctx))
	}

	// Fallback: OAuth2 installed app credentials
	oauthConfig, err := OAuthConfigFromJSON(credentialsJSON)
	if err != nil {
		return nil, err
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	src := newFileTokenSource(tokenPath, tok, oauthConfig.TokenSource(ctx, tok))
	return NewClientFromTokenSource(ctx, src)
}

// OAuthConfigFromJSON parses installed or web OAuth client credentials.
func OAuthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCredentials, err)
	}
	return cfg, nil
}

// NewClientFromTokenSource creates a Calendar client authorized by ts.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents returns the events between TimeMin and TimeMax sorted by start time.
// Recurring events are expanded, cancelled events are dropped and duplicate ids are kept once.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}
	loc := req.Location
	if loc == nil {
		loc = req.TimeMin.Location()
	}

	call := c.service.Events.List(calendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	seen := make(map[string]struct{})
	var events []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Status == statusCancelled {
				continue
			}
			if _, dup := seen[item.Id]; dup {
				continue
			}
			ev, ok := toEvent(item, loc)
			if !ok {
				continue
			}
			seen[item.Id] = struct{}{}
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events, nil
}

// CreateEvent creates a new Google Calendar event. Attendees are notified only when present.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	for _, email := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	notify := NotifyNone
	if len(req.Attendees) > 0 {
		notify = NotifyAll
	}

	created, err := c.service.Events.Insert(calendarID, event).SendUpdates(notify).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		Status:      created.Status,
		Location:    created.Location,
		Attendees:   req.Attendees,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// Ping checks that the calendar list is reachable with the current credentials.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.service.CalendarList.List().MaxResults(1).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to reach calendar list: %w", err)
	}
	return nil
}

func toEvent(item *calendar.Event, loc *time.Location) (Event, bool) {
	start, allDay, ok := parseEventTime(item.Start, loc)
	if !ok {
		return Event{}, false
	}
	end, _, ok := parseEventTime(item.End, loc)
	if !ok {
		end = start
	}

	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Status:      item.Status,
		Location:    item.Location,
		StartTime:   start,
		EndTime:     end,
		AllDay:      allDay,
	}
	for _, a := range item.Attendees {
		ev.Attendees = append(ev.Attendees, a.Email)
	}
	return ev, true
}

func parseEventTime(dt *calendar.EventDateTime, loc *time.Location) (time.Time, bool, bool) {
	if dt == nil {
		return time.Time{}, false, false
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err != nil {
			return time.Time{}, false, false
		}
		return t.In(loc), false, true
	}
	if dt.Date != "" {
		t, err := time.ParseInLocation(dateLayout, dt.Date, loc)
		if err != nil {
			return time.Time{}, false, false
		}
		return t, true, true
	}
	return time.Time{}, false, false
}
