package output

import (
	"fmt"
	"strings"
)

const barWidth = 20

// FormatIllumination renders an illumination percentage with a bar:
//
//	96%  ███████████████████░
//
// The bar is fixed at 20 characters using █ for lit and ░ for dark.
// Percentages outside [0, 100] are clamped.
func FormatIllumination(percent int) string {
	percent = max(0, min(100, percent))
	return fmt.Sprintf("%d%%  %s", percent, IlluminationBar(percent))
}

// IlluminationBar renders only the bar part of FormatIllumination.
func IlluminationBar(percent int) string {
	percent = max(0, min(100, percent))
	filled := percent * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
