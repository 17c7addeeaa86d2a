package ical

import (
	"bytes"
	"strings"
	"testing"
	"time"

	goical "github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	stamp := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	events := []Event{
		{
			UID:      "evt-1",
			Summary:  "Standup",
			Location: "Room 4",
			Start:    time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC),
			End:      time.Date(2024, 6, 11, 9, 30, 0, 0, time.UTC),
		},
		{
			UID:     "evt-2",
			Summary: "Offsite",
			Start:   time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			End:     time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
			AllDay:  true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "Tuesday", events, stamp))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "PRODID:"+ProductID)
	assert.Contains(t, out, "DTSTART:20240611T090000Z")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240612")

	cal, err := goical.NewDecoder(strings.NewReader(out)).Decode()
	require.NoError(t, err)
	evs := cal.Events()
	require.Len(t, evs, 2)

	summary, err := evs[0].Props.Text(goical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Standup", summary)

	start, err := evs[0].DateTimeStart(time.UTC)
	require.NoError(t, err)
	assert.True(t, start.Equal(events[0].Start))
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "", nil, time.Now()))
	assert.Contains(t, buf.String(), "END:VCALENDAR")
}
