package output

import (
	"fmt"
	"io"
)

// Change is one setting altered by a config command.
type Change struct {
	Key string // e.g. "location.latitude"
	Old string // e.g. "None"
	New string // e.g. "50.45"
}

// Confirm prints a single-line confirmation.
// Example: "Saved timezone = Europe/Kyiv"
func Confirm(w io.Writer, message string) {
	fmt.Fprintln(w, Green(message))
}

// ChangeList prints a header followed by an aligned list of changes.
//
// Example:
//
//	Updated ~/.config/moon/config.yml:
//
//	  timezone  Local → Europe/Kyiv
func ChangeList(w io.Writer, header string, changes []Change) {
	fmt.Fprintln(w, header)
	fmt.Fprintln(w)
	printChanges(w, changes, false)
}

// DryRun prints the changes a command would make, in yellow, using the
// "Would" phrasing in the header.
func DryRun(w io.Writer, header string, changes []Change) {
	fmt.Fprintln(w, Yellow(header))
	if len(changes) == 0 {
		return
	}
	fmt.Fprintln(w)
	printChanges(w, changes, true)
}

func printChanges(w io.Writer, changes []Change, dry bool) {
	maxKey := 0
	for _, c := range changes {
		maxKey = max(maxKey, len(c.Key))
	}
	for _, c := range changes {
		line := fmt.Sprintf("  %-*s  %s → %s", maxKey, c.Key, Dim(c.Old), c.New)
		if dry {
			line = Yellow(line)
		}
		fmt.Fprintln(w, line)
	}
}
