package availability

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-assistant/pkg/datemath"
)

var nineToFive = datemath.Hours{Open: 9, Close: 17}

func hm(h, m int) time.Time {
	return time.Date(2024, 6, 11, h, m, 0, 0, time.UTC)
}

func span(sh, sm, eh, em int) Interval {
	return Interval{Start: hm(sh, sm), End: hm(eh, em)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{name: "inside", a: span(9, 30, 10, 0), b: span(9, 0, 10, 0), want: true},
		{name: "straddles start", a: span(8, 30, 9, 30), b: span(9, 0, 10, 0), want: true},
		{name: "touching end", a: span(10, 0, 11, 0), b: span(9, 0, 10, 0), want: false},
		{name: "touching start", a: span(8, 0, 9, 0), b: span(9, 0, 10, 0), want: false},
		{name: "disjoint", a: span(13, 0, 14, 0), b: span(9, 0, 10, 0), want: false},
		{name: "covers", a: span(8, 0, 12, 0), b: span(9, 0, 10, 0), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestIsWholeDay(t *testing.T) {
	assert.True(t, IsWholeDay(span(9, 0, 17, 0), nineToFive))
	assert.True(t, IsWholeDay(Interval{Start: hm(0, 0), End: time.Date(2024, 6, 11, 23, 59, 59, 0, time.UTC)}, nineToFive))
	assert.False(t, IsWholeDay(span(15, 0, 16, 0), nineToFive))
	assert.False(t, IsWholeDay(span(9, 0, 10, 0), nineToFive))
}

func TestComputeSpecificConflict(t *testing.T) {
	standup := Busy{ID: "evt-1", Summary: "Standup", Interval: span(9, 0, 10, 0)}

	res := Compute(span(9, 30, 10, 0), []Busy{standup}, time.Hour, nineToFive)

	assert.Equal(t, ModeSpecific, res.Mode)
	assert.Empty(t, res.Slots)
	assert.True(t, res.FullyBooked())
	require.Len(t, res.Conflicts, 1)
	assert.Equal(t, "Standup", res.Conflicts[0].Summary)
	assert.True(t, res.Conflicts[0].Start.Equal(hm(9, 0)))
}

func TestComputeSpecificFree(t *testing.T) {
	busy := []Busy{{ID: "evt-1", Summary: "Standup", Interval: span(9, 0, 10, 0)}}

	res := Compute(span(10, 0, 11, 0), busy, time.Hour, nineToFive)

	assert.Equal(t, ModeSpecific, res.Mode)
	assert.Equal(t, []Interval{span(10, 0, 11, 0)}, res.Slots)
	assert.Empty(t, res.Conflicts)
	assert.Equal(t, busy, res.Schedule)
}

func TestComputeWholeDay(t *testing.T) {
	busy := []Busy{
		{ID: "a", Summary: "Standup", Interval: span(9, 0, 10, 0)},
		{ID: "b", Summary: "Lunch", Interval: span(12, 30, 13, 30)},
	}

	res := Compute(span(9, 0, 17, 0), busy, time.Hour, nineToFive)

	assert.Equal(t, ModeWholeDay, res.Mode)
	want := []Interval{
		span(10, 0, 11, 0),
		span(11, 0, 12, 0),
		span(14, 0, 15, 0),
		span(15, 0, 16, 0),
		span(16, 0, 17, 0),
	}
	assert.Equal(t, want, res.Slots)
	assert.Equal(t, busy, res.Schedule, "busy set is returned verbatim")
	assert.Empty(t, res.Conflicts)
}

func TestComputeWholeDayFullyBooked(t *testing.T) {
	busy := []Busy{{ID: "offsite", Summary: "Offsite", Interval: span(8, 0, 18, 0)}}

	res := Compute(span(9, 0, 17, 0), busy, time.Hour, nineToFive)

	assert.True(t, res.FullyBooked())
	assert.Len(t, res.Schedule, 1)
}

func TestGridFullCalendarDay(t *testing.T) {
	day := Interval{Start: hm(0, 0), End: time.Date(2024, 6, 11, 23, 59, 59, 0, time.UTC)}

	grid := Grid(day, nil, 30*time.Minute, nineToFive)

	require.Len(t, grid, 8)
	assert.True(t, grid[0].Start.Equal(hm(9, 0)))
	assert.True(t, grid[7].End.Equal(hm(16, 30)))
	for _, s := range grid {
		assert.True(t, s.Available)
	}
}

func TestGridDegenerate(t *testing.T) {
	assert.Nil(t, Grid(span(9, 0, 17, 0), nil, 0, nineToFive))
	assert.Nil(t, Grid(span(17, 0, 9, 0), nil, time.Hour, nineToFive))
}

func TestConflictsWithBuffer(t *testing.T) {
	busy := []Busy{
		{ID: "a", Summary: "Standup", Interval: span(9, 0, 10, 0)},
		{ID: "b", Summary: "Review", Interval: span(11, 0, 11, 30)},
	}

	assert.Empty(t, Conflicts(hm(10, 0), hm(11, 0), 0, busy))

	got := Conflicts(hm(10, 0), hm(11, 0), 30*time.Minute, busy)
	require.Len(t, got, 2)
	assert.Equal(t, "Standup", got[0].Summary)
	assert.Equal(t, "Review", got[1].Summary)
}

// Available slots never overlap any busy interval and always sit inside business hours.
func TestComputeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var busy []Busy
		n := rng.Intn(6)
		for j := 0; j < n; j++ {
			start := hm(7+rng.Intn(12), rng.Intn(4)*15)
			busy = append(busy, Busy{
				ID:       "evt",
				Interval: Interval{Start: start, End: start.Add(time.Duration(15+rng.Intn(8)*15) * time.Minute)},
			})
		}

		res := Compute(span(9, 0, 17, 0), busy, time.Hour, nineToFive)
		for _, s := range res.Slots {
			open, closeAt := nineToFive.Span(s.Start)
			assert.False(t, s.Start.Before(open), "slot %v starts before open", s.Start)
			assert.False(t, s.End.After(closeAt), "slot %v ends after close", s.End)
			for _, b := range busy {
				assert.False(t, Overlaps(s, b.Interval), "slot %v overlaps busy %v", s, b.Interval)
			}
		}
	}
}
