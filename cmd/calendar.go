package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/MuhammadAbdulBari/moon-phase/internal/exitcode"
	"github.com/MuhammadAbdulBari/moon-phase/internal/moon"
	"github.com/MuhammadAbdulBari/moon-phase/internal/output"
	"github.com/MuhammadAbdulBari/moon-phase/internal/sky"
	"github.com/spf13/cobra"
)

var calendarPhase string

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show the moon's phase for every day of a month",
	Long: `Show one row per day of a month with the phase, illumination and age of
the moon at local midnight. Defaults to the current month.`,
	Example: `  moon calendar 2024-02
  moon calendar --phase "full moon"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().StringVar(&calendarPhase, "phase", "", "Only show days with this phase (e.g. \"full moon\")")
	rootCmd.AddCommand(calendarCmd)
}

// parseMonth reads a YYYY-MM month and returns midnight on its first day.
func parseMonth(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM", moon.ErrInvalidDate, s)
	}
	return t, nil
}

// monthDays returns midnight of every day in the month starting at first.
func monthDays(first time.Time) []time.Time {
	var days []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func runCalendar(cmd *cobra.Command, args []string) error {
	loc := location()

	var first time.Time
	if len(args) > 0 {
		var err error
		first, err = parseMonth(args[0], loc)
		if err != nil {
			return dateError(err)
		}
	} else {
		today := now().In(loc)
		first = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	}

	var filter *moon.Phase
	if calendarPhase != "" {
		p, err := moon.ParsePhase(calendarPhase)
		if err != nil {
			return exitcode.Usage(err.Error())
		}
		filter = &p
	}

	days := monthDays(first)
	logf(cmd, "→ calendar: %s, %d days\n", first.Format("January 2006"), len(days))

	withSun := current.cfg != nil && current.cfg.HasPlace()
	rows := make([]calendarRow, 0, len(days))
	for _, d := range days {
		res := moon.Calculate(d)
		if filter != nil && res.Phase != *filter {
			continue
		}
		row := calendarRow{Result: res}
		if withSun {
			sun := sky.Sun(d, current.cfg.Place(loc))
			row.Sun = &sun
		}
		rows = append(rows, row)
	}

	w := cmd.OutOrStdout()
	if output.IsJSON(outputFormat) {
		return output.JSON(w, rows)
	}

	if len(rows) == 0 {
		fmt.Fprintf(w, "No %s days in %s.\n", strings.ToLower(filter.String()), first.Format("January 2006"))
		return nil
	}

	headers := []string{"DATE", "DAY", "PHASE", "ILLUMINATION", "AGE"}
	if withSun {
		headers = append(headers, "SUNRISE", "SUNSET")
	}
	lw := output.NewListWriter(w, headers...)
	for _, row := range rows {
		res := row.Result
		values := []string{
			moon.FormatInput(res.Date),
			res.Date.Format("Mon"),
			res.Phase.String(),
			output.FormatIllumination(res.Illumination),
			fmt.Sprintf("%d", res.DaysSinceNew),
		}
		if row.Sun != nil {
			values = append(values, sunClock(row.Sun.Rise), sunClock(row.Sun.Set))
		}
		lw.Row(values...)
	}

	span := output.FormatDateRange(days[0], days[len(days)-1])
	footer := fmt.Sprintf("%s · %d days", span, len(days))
	if filter != nil {
		footer = fmt.Sprintf("%s · %d of %d days", span, len(rows), len(days))
	}
	lw.FlushWithFooter(output.Dim(footer))
	return nil
}

// calendarRow is one day of the calendar.
type calendarRow struct {
	moon.Result
	Sun *sky.SunTimes `json:"sun,omitempty"`
}

// sunClock formats a sunrise or sunset, which is zero on polar days.
func sunClock(t time.Time) string {
	if t.IsZero() {
		return output.TableMissing
	}
	return output.FormatClock(t)
}
