// Package moon computes the moon's phase for a calendar date using a
// closed-form approximation: the elapsed time since a known new moon,
// folded into a single synodic month.
package moon

import (
	"math"
	"time"
)

// SynodicMonth is the mean length of a lunation in days.
const SynodicMonth = 29.5305882

const secondsPerDay = 86400

// ReferenceNewMoon returns the known new moon of Jan 6, 2000 18:14 read as
// a wall-clock time in loc.
func ReferenceNewMoon(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(2000, time.January, 6, 18, 14, 0, 0, loc)
}

// ElapsedDays returns the fractional number of days between the reference
// new moon and t. Dates before the reference give negative values.
// Seconds and nanoseconds are differenced separately, since a
// time.Duration only spans about 292 years.
func ElapsedDays(t time.Time) float64 {
	ref := ReferenceNewMoon(t.Location())
	secs := float64(t.Unix() - ref.Unix())
	nanos := float64(t.Nanosecond() - ref.Nanosecond())
	return secs/secondsPerDay + nanos/(secondsPerDay*1e9)
}

// Fraction returns the position of t within the synodic month, in [0, 1).
// 0 is new moon and 0.5 is full moon.
func Fraction(t time.Time) float64 {
	days := ElapsedDays(t)
	phaseDays := math.Mod(math.Mod(days, SynodicMonth)+SynodicMonth, SynodicMonth)
	f := phaseDays / SynodicMonth
	// Division can round a value just under the month up to exactly 1.
	if f >= 1 {
		return 0
	}
	return f
}

// Illumination returns the approximate lit percentage of the disk for a
// phase fraction. It rises linearly to 100 at full moon and falls back to 0.
func Illumination(fraction float64) int {
	if fraction <= 0.5 {
		return int(math.Round(fraction / 0.5 * 100))
	}
	return int(math.Round((1 - fraction) / 0.5 * 100))
}

// DaysSinceNew returns the moon's age in whole days.
func DaysSinceNew(fraction float64) int {
	return int(math.Round(fraction * SynodicMonth))
}

// Result holds the phase of the moon for one date.
type Result struct {
	Date         time.Time `json:"date"`
	Fraction     float64   `json:"phase_fraction"`
	Phase        Phase     `json:"phase_name"`
	Illumination int       `json:"illumination_percent"`
	DaysSinceNew int       `json:"days_since_new"`
}

// Calculate computes the phase fraction of t and every value derived
// from it.
func Calculate(t time.Time) Result {
	f := Fraction(t)
	return Result{
		Date:         t,
		Fraction:     f,
		Phase:        Classify(f),
		Illumination: Illumination(f),
		DaysSinceNew: DaysSinceNew(f),
	}
}

// Waxing reports whether the lit part of the disk is growing. New moon
// (fraction 0) counts as waxing.
func (r Result) Waxing() bool {
	return r.Fraction < 0.5
}

// Waning reports whether the lit part of the disk is shrinking. Exactly
// full (fraction 0.5) is neither waxing nor waning.
func (r Result) Waning() bool {
	return r.Fraction > 0.5
}
