// ABOUTME: String-keyed entry points for calendar arithmetic
// ABOUTME: Parses a unit name once, then runs the matching unit operation

// Package calendar adds, subtracts and bounds points in time by named units
// such as "day", "week" or "decade".
//
// Add and Sub accept plural unit names ("days"); StartOf and EndOf do not.
// An empty unit name yields ErrInvalidArgument and an unknown one yields
// ErrUnsupportedUnit.
//
// Adding n decades moves 10n years, not a fixed 10.
package calendar

import "time"

// Add returns t shifted forward by amount of the named unit.
func Add(t time.Time, unit string, amount int) (time.Time, error) {
	u, err := ParsePluralUnit(unit)
	if err != nil {
		return time.Time{}, err
	}
	return u.AddTo(t, amount)
}

// Sub returns t shifted backward by amount of the named unit.
func Sub(t time.Time, unit string, amount int) (time.Time, error) {
	u, err := ParsePluralUnit(unit)
	if err != nil {
		return time.Time{}, err
	}
	return u.SubFrom(t, amount)
}

// StartOf returns the first instant of the named unit containing t.
func StartOf(t time.Time, unit string, opts ...Option) (time.Time, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return time.Time{}, err
	}
	return u.StartOf(t, opts...)
}

// EndOf returns the last instant of the named unit containing t.
func EndOf(t time.Time, unit string, opts ...Option) (time.Time, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return time.Time{}, err
	}
	return u.EndOf(t, opts...)
}
