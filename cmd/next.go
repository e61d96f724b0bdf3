package cmd

import (
	"fmt"
	"time"

	"github.com/MuhammadAbdulBari/moon-phase/internal/exitcode"
	"github.com/MuhammadAbdulBari/moon-phase/internal/moon"
	"github.com/MuhammadAbdulBari/moon-phase/internal/output"
	"github.com/spf13/cobra"
)

var nextLimit int

var nextCmd = &cobra.Command{
	Use:   "next [DATE]",
	Short: "List the upcoming new, quarter and full moons",
	Long: `List the instants of the principal phases (new moon, first quarter, full
moon, last quarter) after a date, computed with Meeus' algorithm for the
true phases. Without a date, phases after the current time are listed.`,
	Example: `  moon next
  moon next 2024-01-01 --limit 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNext,
}

func init() {
	output.AddLimitFlag(nextCmd, &nextLimit, 4)
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	if err := output.CheckLimit(nextLimit); err != nil {
		return exitcode.Usage(err.Error())
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	from, err := resolveDate(arg)
	if err != nil {
		return err
	}
	logf(cmd, "→ principal phases after %s (JD %.5f)\n", from.Format(time.RFC3339), moon.JulianDate(from))

	events := moon.UpcomingPhases(from, nextLimit)

	w := cmd.OutOrStdout()
	if output.IsJSON(outputFormat) {
		return output.JSON(w, events)
	}

	lw := output.NewListWriter(w, "PHASE", "DATE", "TIME", "IN")
	for _, e := range events {
		lw.Row(
			e.Phase.String(),
			moon.FormatLong(e.Time),
			e.Time.Format("15:04 MST"),
			formatUntil(e.Time.Sub(from)),
		)
	}
	lw.FlushWithFooter(output.Dim(fmt.Sprintf("%d phases after %s", len(events), output.FormatDateTime(from))))
	return nil
}

// formatUntil renders a positive duration as days and hours: "3d 14h".
func formatUntil(d time.Duration) string {
	d = d.Round(time.Hour)
	days := int(d / (24 * time.Hour))
	hours := int((d % (24 * time.Hour)) / time.Hour)
	if days == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dd %dh", days, hours)
}
