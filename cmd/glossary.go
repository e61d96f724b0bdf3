package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/MuhammadAbdulBari/moon-phase/internal/moon"
	"github.com/MuhammadAbdulBari/moon-phase/internal/output"
	"github.com/spf13/cobra"
)

var glossaryWidth int

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Explain the terms moon uses",
	Args:  cobra.NoArgs,
	RunE:  runGlossary,
}

func init() {
	glossaryCmd.Flags().IntVar(&glossaryWidth, "width", 80, "Wrap width for the rendered text")
	rootCmd.AddCommand(glossaryCmd)
}

type glossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

var glossary = []glossaryEntry{
	{"Synodic month", fmt.Sprintf("The average period between successive new moons, about %.2f days.", moon.SynodicMonth)},
	{"Phase fraction", "Position within the synodic month, from 0 at new moon through 0.5 at full moon and back towards 1."},
	{"Illumination", "Approximate share of the visible disk that is lit. It rises linearly from 0% at new moon to 100% at full moon."},
	{"Days since new moon", "The moon's age: the phase fraction times the synodic month, rounded to whole days."},
	{"Principal phases", "The instants of new moon, first quarter, full moon and last quarter."},
	{"Julian date", "A continuous count of days used by astronomical algorithms, starting at noon on 1 January 4713 BC."},
	{"Waxing", "The lit part of the disk is growing, between new moon and full moon."},
	{"Waning", "The lit part of the disk is shrinking, between full moon and the next new moon."},
}

// phaseRanges describes the fraction thresholds Classify uses.
var phaseRanges = []struct {
	phase moon.Phase
	span  string
}{
	{moon.NewMoon, "below 0.03 or from 0.97"},
	{moon.WaxingCrescent, "0.03 to 0.22"},
	{moon.FirstQuarter, "0.22 to 0.28"},
	{moon.WaxingGibbous, "0.28 to 0.47"},
	{moon.FullMoon, "0.47 to 0.53"},
	{moon.WaningGibbous, "0.53 to 0.72"},
	{moon.LastQuarter, "0.72 to 0.78"},
	{moon.WaningCrescent, "0.78 to 0.97"},
}

// glossaryMarkdown renders the glossary and the phase table as markdown.
func glossaryMarkdown() string {
	var b strings.Builder
	b.WriteString("# Glossary\n\n")
	for _, e := range glossary {
		fmt.Fprintf(&b, "**%s**: %s\n\n", e.Term, e.Definition)
	}
	b.WriteString("## Phase names\n\n")
	b.WriteString("| Phase | Fraction |\n|---|---|\n")
	for _, r := range phaseRanges {
		fmt.Fprintf(&b, "| %s | %s |\n", r.phase, r.span)
	}
	return b.String()
}

func runGlossary(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if output.IsJSON(outputFormat) {
		return output.JSON(w, glossary)
	}

	var buf bytes.Buffer
	if err := output.RenderMarkdown(&buf, glossaryMarkdown(), glossaryWidth); err != nil {
		// Fall back to the raw markdown rather than failing.
		logf(cmd, "→ rendering markdown: %v\n", err)
		_, err = fmt.Fprint(w, glossaryMarkdown())
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
