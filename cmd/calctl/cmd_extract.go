package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// extractCmd prints the window a message resolves to.
var extractCmd = &cobra.Command{
	Use:   "extract <text>",
	Short: "Resolve a date phrase to a time window",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	ext, err := newExtractor()
	if err != nil {
		return err
	}
	now, err := referenceTime()
	if err != nil {
		return err
	}

	w := ext.Extract(strings.Join(args, " "), now)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rule:  %s\n", w.Rule)
	fmt.Fprintf(out, "label: %s\n", w.Label)
	fmt.Fprintf(out, "start: %s\n", w.Start.Format(time.RFC3339))
	fmt.Fprintf(out, "end:   %s\n", w.End.Format(time.RFC3339))
	return nil
}
