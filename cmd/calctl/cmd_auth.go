package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"calendar-assistant/pkg/gcalendar"
)

var (
	credentialsPath string
	tokenPath       string
)

// authCmd performs the one-time interactive OAuth grant.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authorize Google Calendar access and store the token",
	Long: `Authorize Google Calendar access for an OAuth desktop-app client.

This command:
1. Prints a consent URL to open in a browser
2. Reads the authorization code pasted back
3. Exchanges it and writes the token file used by the server`,
	RunE: runAuth,
}

func init() {
	authCmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth client credentials file (default: google_calendar.credentials_path)")
	authCmd.Flags().StringVar(&tokenPath, "token", "", "token file to write (default: google_calendar.token_path)")
}

func runAuth(cmd *cobra.Command, args []string) error {
	creds := credentialsPath
	if creds == "" {
		creds = cfg.GoogleCalendar.CredentialsPath
	}
	tok := tokenPath
	if tok == "" {
		tok = cfg.GoogleCalendar.TokenPath
	}

	data, err := os.ReadFile(creds)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", creds, err)
	}
	oauthCfg, err := gcalendar.OAuthConfigFromJSON(data)
	if err != nil {
		return fmt.Errorf("%q must be an OAuth desktop-app credentials file: %w", creds, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Step 1: open this URL and sign in with the calendar's Google account:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, gcalendar.AuthCodeURL(oauthCfg))
	fmt.Fprintln(out)
	fmt.Fprint(out, "Step 2: paste the authorization code here and press Enter: ")

	code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	code = strings.TrimSpace(code)
	if code == "" {
		if err != nil {
			return fmt.Errorf("read authorization code: %w", err)
		}
		return fmt.Errorf("empty authorization code")
	}

	if _, err := gcalendar.ExchangeAndSave(cmd.Context(), oauthCfg, code, tok); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nToken saved to %s. Restart the server to pick it up.\n", tok)
	return nil
}
