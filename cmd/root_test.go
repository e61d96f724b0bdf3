package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/MuhammadAbdulBari/moon-phase/internal/exitcode"
	"github.com/MuhammadAbdulBari/moon-phase/internal/output"
	"github.com/spf13/cobra"
)

// resetFlags restores every flag variable to its default, since rootCmd
// and its flag values are shared by all tests in the package.
func resetFlags() {
	verbose = false
	outputFormat = ""
	timezoneFlag = ""
	randomSeed = 0
	phaseNoDisk = false
	phaseDiskRows = output.DefaultDiskRows
	calendarPhase = ""
	nextLimit = 4
	configDryRun = false
	glossaryWidth = 80
	current = settings{}

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		if f := c.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

// setupTestEnv isolates the config directory, clears MOON_* overrides and
// fixes the clock.
func setupTestEnv(t *testing.T, at time.Time) {
	t.Helper()
	resetFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("MOON_TIMEZONE", "UTC")
	t.Setenv("MOON_LATITUDE", "")
	t.Setenv("MOON_LONGITUDE", "")
	t.Setenv("NO_COLOR", "1")

	origNow := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = origNow })
}

// runMoon executes the command tree with args and returns stdout and stderr.
// Flag values are reset first so one call never inherits another's flags.
func runMoon(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := Execute()
	return stdout.String(), stderr.String(), err
}

var testNow = time.Date(2024, time.January, 25, 18, 0, 0, 0, time.UTC)

func TestRootHelp(t *testing.T) {
	setupTestEnv(t, testNow)
	out, _, err := runMoon(t, "--help")
	if err != nil {
		t.Fatalf("root --help returned error: %v", err)
	}

	if !strings.Contains(out, "moon") {
		t.Errorf("help output should mention moon, got: %s", out)
	}
	for _, flag := range []string{"--verbose", "--output", "--timezone"} {
		if !strings.Contains(out, flag) {
			t.Errorf("help output should mention %s flag", flag)
		}
	}
	for _, sub := range []string{"phase", "calendar", "next", "tui", "config"} {
		if !strings.Contains(out, sub) {
			t.Errorf("help output should list the %s command", sub)
		}
	}
}

func TestRootShowsToday(t *testing.T) {
	setupTestEnv(t, testNow)
	out, _, err := runMoon(t, "--no-disk")
	if err != nil {
		t.Fatalf("moon returned error: %v", err)
	}
	if !strings.Contains(out, "Thu Jan 25 2024") {
		t.Errorf("bare moon should show today's date, got:\n%s", out)
	}
	if strings.Contains(out, "DISK") {
		t.Error("--no-disk should omit the disk section")
	}
}

func TestVersionSubcommand(t *testing.T) {
	setupTestEnv(t, testNow)
	out, _, err := runMoon(t, "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if !strings.Contains(out, "moon version") {
		t.Errorf("version output should contain 'moon version', got: %s", out)
	}
	if !strings.Contains(out, "commit:") {
		t.Errorf("version output should contain 'commit:', got: %s", out)
	}
}

func TestVersionJSON(t *testing.T) {
	setupTestEnv(t, testNow)
	out, _, err := runMoon(t, "version", "-o", "json")
	if err != nil {
		t.Fatalf("version -o json returned error: %v", err)
	}
	if !strings.Contains(out, `"version": "dev"`) {
		t.Errorf("JSON version output should contain the version, got: %s", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	setupTestEnv(t, testNow)
	_, _, err := runMoon(t, "nonexistent")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if code := exitcode.ExitCode(err); code != exitcode.UsageError {
		t.Errorf("exit code = %d, want %d", code, exitcode.UsageError)
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	setupTestEnv(t, testNow)
	_, _, err := runMoon(t, "phase", "--bogus")
	if code := exitcode.ExitCode(err); code != exitcode.UsageError {
		t.Errorf("exit code = %d, want %d (err: %v)", code, exitcode.UsageError, err)
	}
}

func TestIsCobraUsageError(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{`accepts at most 1 arg(s), received 2`, true},
		{`unknown command "foo" for "moon"`, true},
		{`unknown flag: --bogus`, true},
		{`unknown shorthand flag: 'q' in -q`, true},
		{`invalid argument "x" for "--limit" flag: strconv.ParseInt: parsing "x": invalid syntax`, true},
		{`flag needs an argument: --seed`, true},
		{`reading date: invalid date`, false},
	}
	for _, tt := range tests {
		if got := isCobraUsageError(errString(tt.msg)); got != tt.want {
			t.Errorf("isCobraUsageError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func TestVerboseLogsToStderr(t *testing.T) {
	setupTestEnv(t, testNow)
	out, errOut, err := runMoon(t, "phase", "2000-01-21", "-v", "-o", "json")
	if err != nil {
		t.Fatalf("phase -v returned error: %v", err)
	}
	if !strings.Contains(errOut, "→ phase fraction:") {
		t.Errorf("verbose stderr should log the phase fraction, got: %s", errOut)
	}
	if !strings.Contains(errOut, "→ timezone: UTC") {
		t.Errorf("verbose stderr should log the timezone, got: %s", errOut)
	}
	if strings.Contains(out, "→") {
		t.Error("trace lines should not appear on stdout")
	}
}

func TestTimezoneFlagOverridesConfig(t *testing.T) {
	setupTestEnv(t, testNow)
	out, _, err := runMoon(t, "phase", "2000-01-21", "-z", "Asia/Tokyo", "-o", "json")
	if err != nil {
		t.Fatalf("phase -z returned error: %v", err)
	}
	if !strings.Contains(out, `"date": "2000-01-21T00:00:00+09:00"`) {
		t.Errorf("date should be midnight in Tokyo, got: %s", out)
	}
}

func TestInvalidTimezoneIsUsageError(t *testing.T) {
	setupTestEnv(t, testNow)
	t.Setenv("MOON_TIMEZONE", "Mars/Olympus_Mons")
	_, _, err := runMoon(t, "phase", "2000-01-21")
	if code := exitcode.ExitCode(err); code != exitcode.UsageError {
		t.Errorf("exit code = %d, want %d (err: %v)", code, exitcode.UsageError, err)
	}
}
