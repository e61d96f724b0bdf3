package moon

import (
	"fmt"
	"strings"
)

// Phase is one of the eight conventional names for the moon's appearance.
type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	NewMoon:        "New Moon",
	WaxingCrescent: "Waxing Crescent",
	FirstQuarter:   "First Quarter",
	WaxingGibbous:  "Waxing Gibbous",
	FullMoon:       "Full Moon",
	WaningGibbous:  "Waning Gibbous",
	LastQuarter:    "Last Quarter",
	WaningCrescent: "Waning Crescent",
}

// Phases lists every phase in cycle order, starting at new moon.
func Phases() []Phase {
	return []Phase{
		NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous,
		FullMoon, WaningGibbous, LastQuarter, WaningCrescent,
	}
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// MarshalText encodes the phase as its display name.
func (p Phase) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("unknown phase %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}

// UnmarshalText accepts anything ParsePhase accepts.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePhase resolves a phase name. Matching ignores case and treats
// spaces, dashes and underscores alike, so "full-moon" and "Full Moon"
// are the same phase.
func ParsePhase(s string) (Phase, error) {
	key := normalizePhaseName(s)
	for i, name := range phaseNames {
		if normalizePhaseName(name) == key {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

func normalizePhaseName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", " ", "_", " ").Replace(s)
}

// Classify maps a phase fraction to its name. The quarter, new and full
// phases each cover a narrow window around their exact fraction.
func Classify(fraction float64) Phase {
	switch {
	case fraction < 0.03 || fraction >= 0.97:
		return NewMoon
	case fraction < 0.22:
		return WaxingCrescent
	case fraction < 0.28:
		return FirstQuarter
	case fraction < 0.47:
		return WaxingGibbous
	case fraction < 0.53:
		return FullMoon
	case fraction < 0.72:
		return WaningGibbous
	case fraction < 0.78:
		return LastQuarter
	default:
		return WaningCrescent
	}
}
