// ABOUTME: Calendar unit enumeration and unit-name parsing
// ABOUTME: Normalizes case and plural forms into a closed set of units

package calendar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned when a required argument is missing or out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedUnit is returned when a unit name has no calendar operation.
	ErrUnsupportedUnit = errors.New("unsupported unit")
)

// Unit is a named calendar granularity.
// The zero value is not a valid unit.
type Unit int

const (
	Millisecond Unit = iota + 1
	Second
	Minute
	Hour
	Day
	Week
	ISOWeek
	Month
	Quarter
	Year
	ISOWeekYear
	Decade
)

var unitNames = map[Unit]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	ISOWeek:     "isoweek",
	Month:       "month",
	Quarter:     "quarter",
	Year:        "year",
	ISOWeekYear: "isoweekyear",
	Decade:      "decade",
}

var unitsByName = func() map[string]Unit {
	m := make(map[string]Unit, len(unitNames))
	for u, name := range unitNames {
		m[name] = u
	}
	return m
}()

// Units returns every known unit from finest to coarsest.
func Units() []Unit {
	return []Unit{
		Millisecond, Second, Minute, Hour, Day, Week, ISOWeek,
		Month, Quarter, Year, ISOWeekYear, Decade,
	}
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Bounded reports whether StartOf and EndOf are defined for u.
func (u Unit) Bounded() bool {
	return u != Millisecond && u.valid()
}

func (u Unit) valid() bool {
	_, ok := unitNames[u]
	return ok
}

// ParseUnit parses a unit name exactly as written, ignoring case.
// Plural forms are rejected; use ParsePluralUnit for add/sub style input.
func ParseUnit(name string) (Unit, error) {
	n := normalizeUnitName(name)
	if n == "" {
		return 0, fmt.Errorf("%w: unit is required", ErrInvalidArgument)
	}
	return lookupUnit(n, name)
}

// ParsePluralUnit parses a unit name, ignoring case and one trailing "s",
// so "Days" and "day" are the same unit.
func ParsePluralUnit(name string) (Unit, error) {
	n := normalizeUnitName(name)
	if n == "" {
		return 0, fmt.Errorf("%w: unit is required", ErrInvalidArgument)
	}
	n = strings.TrimSuffix(n, "s")
	return lookupUnit(n, name)
}

func normalizeUnitName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func lookupUnit(normalized, raw string) (Unit, error) {
	u, ok := unitsByName[normalized]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, raw)
	}
	return u, nil
}
