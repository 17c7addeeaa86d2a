package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// run executes calctl with args against default configuration.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("TZ", "")
	timezone, nowFlag, verbose, firstTurn = "", "", false, false
	busyFlags = nil
	credentialsPath, tokenPath = "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

const monday = "2024-06-10T10:00:00Z"

func TestExtractCmd(t *testing.T) {
	out, err := run(t, "", "extract", "--timezone", "UTC", "--now", monday, "Book a meeting Friday 3-4pm")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	for _, want := range []string{
		"rule:  explicit_range",
		"label: Friday 3:00pm to 4:00pm",
		"start: 2024-06-14T15:00:00Z",
		"end:   2024-06-14T16:00:00Z",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExtractCmdBadNow(t *testing.T) {
	if _, err := run(t, "", "extract", "--now", "yesterday", "today"); err == nil {
		t.Fatal("extract with a malformed --now should fail")
	}
}

func TestClassifyCmd(t *testing.T) {
	out, err := run(t, "", "classify", "am", "I", "free", "tomorrow?")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !strings.Contains(out, "intent:     CHECK_AVAILABILITY") {
		t.Errorf("unexpected output:\n%s", out)
	}

	out, err = run(t, "", "classify", "--first", "book a meeting")
	if err != nil {
		t.Fatalf("classify --first: %v", err)
	}
	if !strings.Contains(out, "intent:     GREETING") {
		t.Errorf("opening turn should greet:\n%s", out)
	}
}

func TestSlotsCmd(t *testing.T) {
	out, err := run(t, "", "slots", "--timezone", "UTC", "--now", monday,
		"--busy", "09:00-10:00", "--busy", "13:00-15:00", "tomorrow")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	for _, want := range []string{"(whole_day)", "free: 10:00 - 11:00", "free: 15:00 - 16:00", "free: 16:00 - 17:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, busy := range []string{"free: 09:00", "free: 13:00", "free: 14:00"} {
		if strings.Contains(out, busy) {
			t.Errorf("output lists busy slot %q:\n%s", busy, out)
		}
	}
}

func TestSlotsCmdConflict(t *testing.T) {
	out, err := run(t, "", "slots", "--timezone", "UTC", "--now", monday, "--busy", "09:00-10:00", "tomorrow 9:30-10am")
	if err != nil {
		t.Fatalf("slots: %v", err)
	}
	if !strings.Contains(out, "conflict: 09:00-10:00") || !strings.Contains(out, "no free slots") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSlotsCmdBadBusy(t *testing.T) {
	if _, err := run(t, "", "slots", "--busy", "nine-ten", "tomorrow"); err == nil {
		t.Fatal("malformed --busy should fail")
	}
}

func TestAuthCmdMissingCredentials(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	if _, err := run(t, "", "auth", "--credentials", missing); err == nil {
		t.Fatal("auth without a credentials file should fail")
	}
}

func TestAuthCmdRejectsServiceAccount(t *testing.T) {
	creds := filepath.Join(t.TempDir(), "sa.json")
	if err := os.WriteFile(creds, []byte(`{"type":"service_account"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "", "auth", "--credentials", creds); err == nil {
		t.Fatal("auth with service account credentials should fail")
	}
}
