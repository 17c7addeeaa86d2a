package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"calendar-assistant/internal/availability"
)

var busyFlags []string

// slotsCmd runs the availability engine against hand-written busy intervals.
var slotsCmd = &cobra.Command{
	Use:   "slots <text>",
	Short: "Show free slots for a date phrase",
	Long: `Resolve the phrase to a window and check it against busy intervals.

Busy intervals are HH:MM-HH:MM on the window's day, e.g. --busy 09:00-10:00 --busy 13:30-14:00`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSlots,
}

func init() {
	slotsCmd.Flags().StringArrayVar(&busyFlags, "busy", nil, "busy interval HH:MM-HH:MM (repeatable)")
}

func runSlots(cmd *cobra.Command, args []string) error {
	ext, err := newExtractor()
	if err != nil {
		return err
	}
	now, err := referenceTime()
	if err != nil {
		return err
	}
	w := ext.Extract(strings.Join(args, " "), now)

	busy := make([]availability.Busy, 0, len(busyFlags))
	for i, raw := range busyFlags {
		iv, err := parseBusy(raw, w.Start)
		if err != nil {
			return err
		}
		busy = append(busy, availability.Busy{ID: fmt.Sprintf("busy-%d", i+1), Summary: raw, Interval: iv})
	}

	window := availability.Interval{Start: w.Start, End: w.End}
	res := availability.Compute(window, busy, cfg.Assistant.SlotDuration, ext.BusinessHours())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "window: %s (%s)\n", w.Label, res.Mode)
	for _, c := range res.Conflicts {
		fmt.Fprintf(out, "conflict: %s\n", c.Summary)
	}
	if len(res.Slots) == 0 {
		fmt.Fprintln(out, "no free slots")
		return nil
	}
	for _, s := range res.Slots {
		fmt.Fprintf(out, "free: %s - %s\n", s.Start.Format("15:04"), s.End.Format("15:04"))
	}
	return nil
}

// parseBusy reads "HH:MM-HH:MM" on day's date.
func parseBusy(raw string, day time.Time) (availability.Interval, error) {
	from, to, ok := strings.Cut(raw, "-")
	if !ok {
		return availability.Interval{}, fmt.Errorf("--busy %q: want HH:MM-HH:MM", raw)
	}
	start, err := time.ParseInLocation("15:04", strings.TrimSpace(from), day.Location())
	if err != nil {
		return availability.Interval{}, fmt.Errorf("--busy %q: %w", raw, err)
	}
	end, err := time.ParseInLocation("15:04", strings.TrimSpace(to), day.Location())
	if err != nil {
		return availability.Interval{}, fmt.Errorf("--busy %q: %w", raw, err)
	}

	y, m, d := day.Date()
	return availability.Interval{
		Start: time.Date(y, m, d, start.Hour(), start.Minute(), 0, 0, day.Location()),
		End:   time.Date(y, m, d, end.Hour(), end.Minute(), 0, 0, day.Location()),
	}, nil
}
