package output

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MaxLimit is the largest accepted --limit.
const MaxLimit = 500

// AddLimitFlag registers a --limit flag on a Cobra command. The pointer is
// populated when the command runs.
func AddLimitFlag(cmd *cobra.Command, limit *int, def int) {
	cmd.Flags().IntVarP(limit, "limit", "n", def, fmt.Sprintf("Number of results to display (1-%d)", MaxLimit))
}

// CheckLimit validates a --limit value.
func CheckLimit(limit int) error {
	if limit < 1 || limit > MaxLimit {
		return fmt.Errorf("--limit must be between 1 and %d, got %d", MaxLimit, limit)
	}
	return nil
}
