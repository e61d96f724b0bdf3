package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/MuhammadAbdulBari/moon-phase/internal/exitcode"
	"github.com/MuhammadAbdulBari/moon-phase/internal/moon"
	"github.com/MuhammadAbdulBari/moon-phase/internal/output"
	"github.com/MuhammadAbdulBari/moon-phase/internal/sky"
	"github.com/spf13/cobra"
)

// now is the clock the "today" shortcuts read. Tests replace it.
var now = time.Now

// newRand returns the generator random dates are drawn from. A zero seed
// means an unseeded generator.
var newRand = func(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

var (
	randomSeed    uint64
	phaseNoDisk   bool
	phaseDiskRows int
)

var phaseCmd = &cobra.Command{
	Use:   "phase [DATE]",
	Short: "Show the moon's phase for a date",
	Long: `Show the moon's phase for a date given as YYYY-MM-DD, or "today".
Without a date, today's phase is shown.`,
	Example: `  moon phase 2000-01-21
  moon phase today -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPhase,
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the moon's phase right now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showPhase(cmd, now().In(location()))
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show the moon's phase on a random date",
	Long: `Pick a random date between the configured start and end years
(1900 to 2100 by default) and show the moon's phase on it.`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, phaseCmd, todayCmd, randomCmd} {
		c.Flags().BoolVar(&phaseNoDisk, "no-disk", false, "Omit the moon disk drawing")
		c.Flags().IntVar(&phaseDiskRows, "disk-rows", output.DefaultDiskRows, "Height of the moon disk in lines")
	}
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Seed for a reproducible random date")

	rootCmd.AddCommand(phaseCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(randomCmd)
}

func runPhase(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	t, err := resolveDate(arg)
	if err != nil {
		return err
	}
	return showPhase(cmd, t)
}

func runRandom(cmd *cobra.Command, args []string) error {
	t, err := randomDate(newRand(randomSeed))
	if err != nil {
		return err
	}
	logf(cmd, "→ random date: %s\n", t.Format(time.RFC3339))
	return showPhase(cmd, t)
}

// resolveDate reads a date argument. An empty argument or "today" is the
// current instant; anything else must be YYYY-MM-DD and resolves to local
// midnight.
func resolveDate(arg string) (time.Time, error) {
	loc := location()
	if arg == "" || strings.EqualFold(arg, "today") {
		return now().In(loc), nil
	}
	t, err := moon.ParseDate(arg, loc)
	if err != nil {
		return time.Time{}, dateError(err)
	}
	return t, nil
}

// dateError maps a date parsing failure to an exit code.
func dateError(err error) error {
	if errors.Is(err, moon.ErrInvalidDate) {
		return exitcode.Invalid("reading date", err)
	}
	return exitcode.General("reading date", err)
}

// randomDate draws a date from the configured year range.
func randomDate(r *rand.Rand) (time.Time, error) {
	loc := location()
	start, end := moon.DefaultRandomStart(loc), moon.DefaultRandomEnd(loc)
	if cfg := current.cfg; cfg != nil {
		start = moon.YearStart(cfg.Random.StartYear, loc)
		end = moon.YearEnd(cfg.Random.EndYear, loc)
	}
	if !end.After(start) {
		return time.Time{}, exitcode.Usagef("random date range %s to %s is empty", moon.FormatInput(start), moon.FormatInput(end))
	}
	return moon.RandomDate(r, start, end), nil
}

// phaseReport is the structured result of a phase command, with the
// extras shown next to the core values.
type phaseReport struct {
	moon.Result
	JulianDate float64       `json:"julian_date"`
	Shadow     moon.Mask     `json:"shadow"`
	Sun        *sky.SunTimes `json:"sun,omitempty"`
	NextPhases []moon.Event  `json:"next_phases"`
}

func buildReport(cmd *cobra.Command, t time.Time) phaseReport {
	res := moon.Calculate(t)
	logf(cmd, "→ elapsed days since reference new moon: %.6f\n", moon.ElapsedDays(t))
	logf(cmd, "→ phase fraction: %.6f\n", res.Fraction)

	report := phaseReport{
		Result:     res,
		JulianDate: moon.JulianDate(t),
		Shadow:     moon.Shadow(res.Fraction),
		NextPhases: moon.NextPrincipalPhases(t),
	}
	if cfg := current.cfg; cfg != nil && cfg.HasPlace() {
		sun := sky.Sun(t, cfg.Place(t.Location()))
		report.Sun = &sun
	}
	return report
}

func showPhase(cmd *cobra.Command, t time.Time) error {
	report := buildReport(cmd, t)
	w := cmd.OutOrStdout()

	if output.IsJSON(outputFormat) {
		return output.JSON(w, report)
	}

	res := report.Result
	d := output.NewDetailWriter(w, "MOON", res.Phase.String())

	fields := []output.KeyValue{
		output.KV("Date", moon.FormatLong(res.Date)),
		output.KV("Illumination", illuminationText(res)),
		output.KV("Days since new moon", fmt.Sprintf("%d", res.DaysSinceNew)),
		output.KV("Phase fraction", fmt.Sprintf("%.4f", res.Fraction)),
		output.KV("Julian date", output.Cyan(fmt.Sprintf("%.5f", report.JulianDate))),
	}
	if report.Sun != nil {
		if report.Sun.Polar() {
			fields = append(fields, output.KV("Sunrise", output.DetailMissing), output.KV("Sunset", output.DetailMissing))
		} else {
			fields = append(fields,
				output.KV("Sunrise", output.FormatClock(report.Sun.Rise)),
				output.KV("Sunset", output.FormatClock(report.Sun.Set)),
			)
		}
	}
	d.Fields(fields)

	d.Section("NEXT PRINCIPAL PHASES")
	next := make([]output.KeyValue, 0, len(report.NextPhases))
	for _, e := range report.NextPhases {
		next = append(next, output.KV(e.Phase.String(), output.FormatDateTime(e.Time)))
	}
	d.Fields(next)

	if !phaseNoDisk && phaseDiskRows > 0 {
		d.Section("DISK")
		fmt.Fprintln(w)
		fmt.Fprint(w, output.RenderDisk(report.Shadow, phaseDiskRows))
	}
	return nil
}

// illuminationText is the percentage and bar, followed by the direction
// the lit part is changing in. Exactly full has no direction.
func illuminationText(res moon.Result) string {
	text := output.FormatIllumination(res.Illumination)
	switch {
	case res.Waxing():
		text += "  " + output.Dim("waxing")
	case res.Waning():
		text += "  " + output.Dim("waning")
	}
	return text
}
