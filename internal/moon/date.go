package moon

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// ErrInvalidDate is returned when date input text cannot be read as a
// calendar date.
var ErrInvalidDate = errors.New("invalid date")

const inputLayout = "2006-01-02"

// MinYear and MaxYear bound the years a YYYY-MM-DD date can name.
const (
	MinYear = 1
	MaxYear = 9999
)

// ParseDate reads a YYYY-MM-DD date and returns local midnight of that day
// in loc. Dates that do not exist on the calendar are rejected rather than
// rolled over into the next month.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(inputLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatInput formats t the way ParseDate reads it.
func FormatInput(t time.Time) string {
	return t.Format(inputLayout)
}

// FormatLong formats t as a weekday-first date: "Thu Jan 06 2000".
func FormatLong(t time.Time) string {
	return t.Format("Mon Jan 02 2006")
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DefaultRandomStart is the earliest date RandomDate picks by default.
func DefaultRandomStart(loc *time.Location) time.Time {
	return YearStart(1900, loc)
}

// DefaultRandomEnd is the exclusive upper bound RandomDate uses by default.
func DefaultRandomEnd(loc *time.Location) time.Time {
	return YearEnd(2100, loc)
}

// YearStart returns midnight on Jan 1 of year.
func YearStart(year int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
}

// YearEnd returns midnight on Dec 31 of year.
func YearEnd(year int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
}

// RandomDate picks a whole second uniformly from [start, end), reported in
// start's location. If end is not after start, start is returned.
func RandomDate(r *rand.Rand, start, end time.Time) time.Time {
	span := end.Unix() - start.Unix()
	if span <= 0 {
		return start
	}
	return time.Unix(start.Unix()+r.Int64N(span), 0).In(start.Location())
}
