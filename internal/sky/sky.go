// Package sky reports the sun's rising and setting for an observing place,
// to put a moon phase in the context of the night it belongs to.
package sky

import (
	"fmt"
	"math"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Place is an observing location.
type Place struct {
	Latitude  float64
	Longitude float64
	Location  *time.Location
}

// Validate checks that the coordinates are on the globe.
func (p Place) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %g out of range [-90, 90]", p.Latitude)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %g out of range [-180, 180]", p.Longitude)
	}
	return nil
}

// SunTimes holds sunrise and sunset for one day. Both are zero when the
// sun does not cross the horizon that day (polar day or night).
type SunTimes struct {
	Rise time.Time `json:"sunrise"`
	Set  time.Time `json:"sunset"`
}

// Polar reports whether the sun stays above or below the horizon all day.
func (s SunTimes) Polar() bool {
	return s.Rise.IsZero() && s.Set.IsZero()
}

// Sun returns sunrise and sunset on the calendar day of date at place,
// reported in the place's time location.
func Sun(date time.Time, place Place) SunTimes {
	loc := place.Location
	if loc == nil {
		loc = date.Location()
	}
	y, m, d := date.In(loc).Date()
	rise, set := sunrise.SunriseSunset(place.Latitude, place.Longitude, y, m, d)
	if rise.IsZero() && set.IsZero() {
		return SunTimes{}
	}
	return SunTimes{Rise: rise.In(loc), Set: set.In(loc)}
}
