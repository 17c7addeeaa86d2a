// Command calctl holds the offline tools of the calendar assistant: the one-time OAuth grant
// and dry runs of the extractor, the intent router and the availability engine.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"calendar-assistant/config"
	"calendar-assistant/internal/extractor"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/log"
)

var (
	cfg    *config.Config
	logger log.Logger = log.NewNop()

	// Flags shared by the dry-run commands. Empty or zero means "use config".
	timezone string
	nowFlag  string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:           "calctl",
	Short:         "Calendar assistant tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		if verbose {
			logger = log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true})
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "IANA timezone (default: assistant.timezone)")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "reference time, RFC 3339 (default: current time)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(authCmd, extractCmd, classifyCmd, slotsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newExtractor() (*extractor.Extractor, error) {
	tz := cfg.Assistant.Timezone
	if timezone != "" {
		tz = timezone
	}
	return extractor.New(extractor.Config{
		Timezone: tz,
		BusinessHours: datemath.Hours{
			Open:  cfg.Assistant.BusinessOpenHour,
			Close: cfg.Assistant.BusinessCloseHour,
		},
		DefaultDuration: cfg.Assistant.DefaultDuration,
	})
}

func referenceTime() (time.Time, error) {
	if nowFlag == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, nowFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now: %w", err)
	}
	return t, nil
}
