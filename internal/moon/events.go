package moon

import (
	"math"
	"sort"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonphase"
)

// lunationsPerYear is the number of mean lunations in a Julian year, as used
// by Meeus' lunation number k.
const lunationsPerYear = 12.3685

// JulianDate returns the Julian day of t.
func JulianDate(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// Event is the instant of a principal phase.
type Event struct {
	Phase Phase     `json:"phase"`
	Time  time.Time `json:"time"`
}

var principal = []struct {
	phase Phase
	q     float64
	fn    func(year float64) float64
}{
	{NewMoon, 0, moonphase.New},
	{FirstQuarter, 0.25, moonphase.First},
	{FullMoon, 0.5, moonphase.Full},
	{LastQuarter, 0.75, moonphase.Last},
}

// NextPrincipalPhases returns the first new moon, first quarter, full moon
// and last quarter after t, ordered by time and reported in t's location.
//
// The instants come from Meeus' series for the true phases (Astronomical
// Algorithms, ch. 49) and are independent of the approximation Fraction
// uses, so a phase named by Classify may be a day or so off these times.
// Dynamical time is treated as UT; the difference is about a minute.
func NextPrincipalPhases(t time.Time) []Event {
	jd := JulianDate(t)
	// Lunation number of the most recent mean new moon at or before t.
	k0 := math.Floor((jd - 2451550.09766) / SynodicMonth)

	events := make([]Event, 0, len(principal))
	for _, p := range principal {
		best := math.Inf(1)
		for k := k0 - 1; k <= k0+2; k++ {
			// The series snaps its year argument to the nearest lunation
			// at quarter q; passing k+q exactly lands on lunation k.
			jde := p.fn(2000 + (k+p.q)/lunationsPerYear)
			if jde > jd && jde < best {
				best = jde
			}
		}
		events = append(events, Event{
			Phase: p.phase,
			Time:  julian.JDToTime(best).In(t.Location()),
		})
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events
}

// UpcomingPhases returns the first n principal phase instants after t.
func UpcomingPhases(t time.Time, n int) []Event {
	events := make([]Event, 0, max(n, 0)+len(principal))
	from := t
	for len(events) < n {
		batch := NextPrincipalPhases(from)
		events = append(events, batch...)
		// Step past the last instant so the round trip through Julian
		// days cannot return it again.
		from = batch[len(batch)-1].Time.Add(time.Minute)
	}
	return events[:max(n, 0)]
}
