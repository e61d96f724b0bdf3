package output

import (
	"strings"

	"github.com/MuhammadAbdulBari/moon-phase/internal/moon"
)

const (
	litCell    = "█"
	shadowCell = "░"
)

// DefaultDiskRows is the height of the moon disk in the detail view.
const DefaultDiskRows = 9

// RenderDisk draws the moon as a block-character disk with the shadow mask
// laid over it. The disk is rows lines tall and twice as many cells wide,
// since terminal cells are roughly twice as tall as they are wide. Lit cells
// are yellow and shadowed cells dim. Each line ends in a newline.
func RenderDisk(mask moon.Mask, rows int) string {
	if rows < 1 {
		return ""
	}
	cols := rows * 2

	var b strings.Builder
	for i := 0; i < rows; i++ {
		v := (float64(i) + 0.5) / float64(rows)

		var line strings.Builder
		var run strings.Builder
		runKind := ""
		flush := func() {
			switch runKind {
			case litCell:
				line.WriteString(Yellow(run.String()))
			case shadowCell:
				line.WriteString(Dim(run.String()))
			default:
				line.WriteString(run.String())
			}
			run.Reset()
		}

		// Trailing blank cells are dropped, so stop after the disk's last cell.
		last := -1
		cells := make([]string, cols)
		for j := 0; j < cols; j++ {
			u := (float64(j) + 0.5) / float64(cols)
			cells[j] = diskCell(mask, u, v)
			if cells[j] != " " {
				last = j
			}
		}
		for j := 0; j <= last; j++ {
			if cells[j] != runKind {
				flush()
				runKind = cells[j]
			}
			run.WriteString(cells[j])
		}
		flush()

		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// diskCell returns the character for the cell centred on (u, v).
func diskCell(mask moon.Mask, u, v float64) string {
	du, dv := u-0.5, v-0.5
	if du*du+dv*dv > 0.25 {
		return " "
	}
	if mask.Covers(u, v) {
		return shadowCell
	}
	return litCell
}
