package cmd

import (
	"strings"
	"time"

	"github.com/MuhammadAbdulBari/moon-phase/internal/config"
	"github.com/MuhammadAbdulBari/moon-phase/internal/moon"
	"github.com/spf13/cobra"
)

// Dynamic shell completions for positional arguments and flag values.

func init() {
	phaseCmd.ValidArgsFunction = completeDates
	nextCmd.ValidArgsFunction = completeDates
	tuiCmd.ValidArgsFunction = completeDates
	calendarCmd.ValidArgsFunction = completeMonths

	configSetCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args)%2 == 0 {
			return config.Keys, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	configUnsetCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.Keys, cobra.ShellCompDirectiveNoFileComp
	}

	_ = rootCmd.RegisterFlagCompletionFunc("output", completeOutputFormats)
	_ = calendarCmd.RegisterFlagCompletionFunc("phase", completePhaseNames)
}

// completeDates offers "today" and the surrounding week as YYYY-MM-DD.
func completeDates(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	today := moon.StartOfDay(now())
	dates := []string{"today"}
	for i := -3; i <= 3; i++ {
		dates = append(dates, moon.FormatInput(today.AddDate(0, 0, i)))
	}
	return dates, cobra.ShellCompDirectiveNoFileComp
}

// completeMonths offers the months of the current year as YYYY-MM.
func completeMonths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	year := now().Year()
	months := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"))
	}
	return months, cobra.ShellCompDirectiveNoFileComp
}

// completePhaseNames offers the phase names in a shell-friendly
// lower-case dashed form, which ParsePhase accepts.
func completePhaseNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, p := range moon.Phases() {
		names = append(names, strings.ReplaceAll(strings.ToLower(p.String()), " ", "-"))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeOutputFormats returns valid output format values for shell completion.
func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"json"}, cobra.ShellCompDirectiveNoFileComp
}
