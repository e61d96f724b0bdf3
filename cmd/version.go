package cmd

import (
	"fmt"
	"runtime"

	"github.com/MuhammadAbdulBari/moon-phase/internal/output"
	"github.com/spf13/cobra"
)

// Build variables, set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
	Go      string `json:"go"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if output.IsJSON(outputFormat) {
			return output.JSON(w, versionInfo{Version, Commit, Date, runtime.Version()})
		}
		fmt.Fprintf(w, "moon version %s\n", Version)
		fmt.Fprintf(w, "commit: %s\n", Commit)
		fmt.Fprintf(w, "built:  %s\n", Date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
