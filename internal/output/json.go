package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes v as indented JSON to w. HTML characters are left unescaped
// so date ranges and arrows read naturally.
// Returns an error if marshaling fails.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("formatting JSON output: %w", err)
	}
	return nil
}

// IsJSON reports whether the output format flag is set to "json".
func IsJSON(format string) bool {
	return format == "json"
}
