// Package ical renders calendar events as an iCalendar (RFC 5545) document.
package ical

import (
	"fmt"
	"io"
	"time"

	goical "github.com/emersion/go-ical"
)

// ProductID identifies documents produced by this package.
const ProductID = "-//calendar-assistant//schedule export//EN"

// Event is the subset of an event written to a VEVENT.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
}

// Encode writes events as a single VCALENDAR to w. stamp becomes every DTSTAMP.
func Encode(w io.Writer, name string, events []Event, stamp time.Time) error {
	// go-ical refuses a calendar without components.
	if len(events) == 0 {
		_, err := io.WriteString(w, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:"+ProductID+"\r\nEND:VCALENDAR\r\n")
		return err
	}

	cal := goical.NewCalendar()
	cal.Props.SetText(goical.PropVersion, "2.0")
	cal.Props.SetText(goical.PropProductID, ProductID)
	if name != "" {
		cal.Props.SetText("X-WR-CALNAME", name)
	}

	for _, ev := range events {
		cal.Children = append(cal.Children, newEvent(ev, stamp).Component)
	}

	if err := goical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func newEvent(ev Event, stamp time.Time) *goical.Event {
	e := goical.NewEvent()
	e.Props.SetText(goical.PropUID, ev.UID)
	e.Props.SetDateTime(goical.PropDateTimeStamp, stamp.UTC())
	if ev.AllDay {
		e.Props.SetDate(goical.PropDateTimeStart, ev.Start)
		e.Props.SetDate(goical.PropDateTimeEnd, ev.End)
	} else {
		e.Props.SetDateTime(goical.PropDateTimeStart, ev.Start)
		e.Props.SetDateTime(goical.PropDateTimeEnd, ev.End)
	}
	if ev.Summary != "" {
		e.Props.SetText(goical.PropSummary, ev.Summary)
	}
	if ev.Description != "" {
		e.Props.SetText(goical.PropDescription, ev.Description)
	}
	if ev.Location != "" {
		e.Props.SetText(goical.PropLocation, ev.Location)
	}
	return e
}
