package decimal

import (
	"strings"

	"gopkg.in/inf.v0"
)

// RoundingMode selects how discarded digits affect the last kept digit.
type RoundingMode int

// Rounding modes.
const (
	// Up rounds away from zero.
	Up RoundingMode = iota
	// Down rounds toward zero (truncation).
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
	// HalfUp rounds to the nearest neighbor, ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest neighbor, ties toward zero.
	HalfDown
	// HalfEven rounds to the nearest neighbor, ties to the even neighbor.
	HalfEven
	// Unnecessary requires the result to be exact.
	Unnecessary
)

var roundingModes = []struct {
	name    string
	rounder inf.Rounder
}{
	Up:          {"UP", inf.RoundUp},
	Down:        {"DOWN", inf.RoundDown},
	Ceiling:     {"CEILING", inf.RoundCeil},
	Floor:       {"FLOOR", inf.RoundFloor},
	HalfUp:      {"HALF_UP", inf.RoundHalfUp},
	HalfDown:    {"HALF_DOWN", inf.RoundHalfDown},
	HalfEven:    {"HALF_EVEN", inf.RoundHalfEven},
	Unnecessary: {"UNNECESSARY", inf.RoundExact},
}

// Valid returns true if m is one of the declared rounding modes.
func (m RoundingMode) Valid() bool {
	return m >= 0 && int(m) < len(roundingModes)
}

func (m RoundingMode) String() string {
	if !m.Valid() {
		return "RoundingMode(invalid)"
	}

	return roundingModes[m].name
}

func (m RoundingMode) rounder() (inf.Rounder, error) {
	if !m.Valid() {
		return nil, Error.New("invalid rounding mode: %d", int(m))
	}

	return roundingModes[m].rounder, nil
}

// ParseRoundingMode returns the mode with the given name. Matching ignores
// case and accepts '-' in place of '_'.
func ParseRoundingMode(name string) (RoundingMode, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))

	for m, rm := range roundingModes {
		if rm.name == key {
			return RoundingMode(m), nil
		}
	}

	return 0, Error.New("unknown rounding mode: %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, Error.New("invalid rounding mode: %d", int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *RoundingMode) UnmarshalText(text []byte) (err error) {
	*m, err = ParseRoundingMode(string(text))

	return err
}
