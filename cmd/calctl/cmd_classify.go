package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calendar-assistant/internal/router"
)

var firstTurn bool

// classifyCmd prints the intent the router picks for a message.
var classifyCmd = &cobra.Command{
	Use:   "classify <text>",
	Short: "Classify a chat message",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&firstTurn, "first", false, "treat the message as the opening turn")
}

func runClassify(cmd *cobra.Command, args []string) error {
	var history []string
	if !firstTurn {
		history = []string{"(previous turn)"}
	}

	out := router.New(logger).Classify(cmd.Context(), strings.Join(args, " "), history)
	fmt.Fprintf(cmd.OutOrStdout(), "intent:     %s\nconfidence: %d\nreason:     %s\n", out.Intent, out.Confidence, out.Reasoning)
	return nil
}
