package moon

import "math"

// Side is the edge of the disk the shadow is anchored to.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Mask describes the shadow over the moon's disk as an ellipse centred on
// one vertical edge of the disk's bounding box. Percent is the ellipse's
// horizontal radius as a share of the box width; its vertical radius is
// always the full box height.
type Mask struct {
	Percent float64 `json:"percent"`
	Side    Side    `json:"side"`
}

// Shadow returns the shadow mask for a phase fraction. While waxing the
// shadow shrinks towards the left edge; while waning it grows from the
// right edge.
func Shadow(fraction float64) Mask {
	if fraction <= 0.5 {
		return Mask{Percent: clampPercent((1 - fraction*2) * 100), Side: Left}
	}
	return Mask{Percent: clampPercent((fraction - 0.5) * 2 * 100), Side: Right}
}

func clampPercent(p float64) float64 {
	return math.Max(0, math.Min(100, p))
}

// Covers reports whether the point (u, v) of the unit bounding box is in
// shadow. u runs left to right and v top to bottom, both in [0, 1].
func (m Mask) Covers(u, v float64) bool {
	rx := m.Percent / 100
	if rx <= 0 {
		return false
	}
	cx := 0.0
	if m.Side == Right {
		cx = 1
	}
	dx := (u - cx) / rx
	dy := v - 0.5
	return dx*dx+dy*dy <= 1
}
