package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/MuhammadAbdulBari/moon-phase/internal/config"
	"github.com/MuhammadAbdulBari/moon-phase/internal/exitcode"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	outputFormat string
	timezoneFlag string
)

var rootCmd = &cobra.Command{
	Use:   "moon",
	Short: "Moon phase calculator",
	Long: `moon computes the phase of the moon for a calendar date: the phase name,
how much of the disk is lit, and how many days have passed since the last
new moon.

Run without a subcommand to see today's moon.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (log calculation steps to stderr)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: json")
	rootCmd.PersistentFlags().StringVarP(&timezoneFlag, "timezone", "z", "", "IANA timezone dates are read in (overrides config)")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		// Cobra's built-in validators (ExactArgs, MaximumNArgs, etc.) and
		// flag parsing errors return plain errors. Wrap them as usage errors
		// so they exit with code 2.
		if _, ok := err.(*exitcode.Error); !ok && isCobraUsageError(err) {
			return exitcode.Usage(err.Error())
		}
	}
	return err
}

// isCobraUsageError returns true if the error looks like a Cobra argument
// validation or flag parsing error.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "arg(s)") ||
		strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag") ||
		strings.HasPrefix(msg, "invalid argument") ||
		strings.HasPrefix(msg, "flag needs an argument")
}

// runRoot is the RunE for the bare `moon` command: today's phase.
func runRoot(cmd *cobra.Command, args []string) error {
	return runPhase(cmd, nil)
}

// settings is the resolved configuration for the running command.
type settings struct {
	cfg *config.Config
	loc *time.Location
}

var current settings

// loadSettings is installed as PersistentPreRunE on the root command. It
// loads and validates the config and resolves the timezone every date is
// read in. Commands that never read dates skip it, and the config commands
// only load the file so a broken setting can still be repaired.
func loadSettings(cmd *cobra.Command, args []string) error {
	path := cmd.CommandPath()
	for _, skip := range []string{"moon version", "moon help", "moon completion"} {
		if path == skip || strings.HasPrefix(path, skip+" ") {
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return exitcode.Usagef("loading config: %s", err)
	}
	if file := config.FileUsed(); file != "" {
		logf(cmd, "→ config: %s\n", file)
	}
	if timezoneFlag != "" {
		cfg.Timezone = timezoneFlag
	}
	current = settings{cfg: cfg}

	if strings.HasPrefix(path, "moon config") {
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return exitcode.Usagef("invalid config: %s", err)
	}
	loc, err := cfg.TimeLocation()
	if err != nil {
		return exitcode.Usage(err.Error())
	}
	current.loc = loc
	logf(cmd, "→ timezone: %s\n", loc)
	return nil
}

// location returns the timezone dates are read in.
func location() *time.Location {
	if current.loc == nil {
		return time.Local
	}
	return current.loc
}

// logf writes a trace line to stderr when --verbose is set.
func logf(cmd *cobra.Command, format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}
