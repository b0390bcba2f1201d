// ABOUTME: Pure derivation of a page interval from date, unit, multiplier and direction
// ABOUTME: Also expands an interval into its calendar days

package paginate

import (
	"fmt"
	"strings"
	"time"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/datestr"
)

// Direction decides whether a page extends backward or forward from its date.
type Direction int

const (
	// Back pages end with the unit containing the date.
	Back Direction = iota
	// Forward pages start with the unit containing the date.
	Forward
)

func (d Direction) String() string {
	switch d {
	case Back:
		return "back"
	case Forward:
		return "forward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "back" or "forward". Empty text means Back.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "back", "backward":
		return Back, nil
	case "forward":
		return Forward, nil
	}
	return Back, fmt.Errorf("%w: direction %q (want back or forward)", calendar.ErrInvalidArgument, s)
}

// State is everything a page is derived from.
type State struct {
	Date       time.Time
	Unit       calendar.Unit
	Multiplier int
	Direction  Direction
}

// String describes the page, e.g. "2 weeks back from 2019-02-06".
func (s State) String() string {
	unit := s.Unit.String()
	if s.Multiplier != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s %s from %s", s.Multiplier, unit, s.Direction, s.Date.Format(datestr.Layout))
}

// Interval is an inclusive span of time.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the interval.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.End)
}

// Equal reports whether both bounds are the same instants.
func (iv Interval) Equal(other Interval) bool {
	return iv.Start.Equal(other.Start) && iv.End.Equal(other.End)
}

// DeriveInterval computes the page for s. A back page ends at the end of the
// unit containing s.Date and reaches back over Multiplier units; a forward
// page starts at the beginning of that unit and reaches forward.
func DeriveInterval(s State, opts ...calendar.Option) (Interval, error) {
	if s.Multiplier < 1 {
		return Interval{}, fmt.Errorf("%w: multiplier must be at least 1, got %d", calendar.ErrInvalidArgument, s.Multiplier)
	}
	span := s.Multiplier - 1

	switch s.Direction {
	case Back:
		end, err := s.Unit.EndOf(s.Date, opts...)
		if err != nil {
			return Interval{}, err
		}
		first, err := s.Unit.SubFrom(s.Date, span)
		if err != nil {
			return Interval{}, err
		}
		start, err := s.Unit.StartOf(first, opts...)
		if err != nil {
			return Interval{}, err
		}
		return Interval{Start: start, End: end}, nil

	case Forward:
		start, err := s.Unit.StartOf(s.Date, opts...)
		if err != nil {
			return Interval{}, err
		}
		lastUnit, err := s.Unit.AddTo(s.Date, span)
		if err != nil {
			return Interval{}, err
		}
		end, err := s.Unit.EndOf(lastUnit, opts...)
		if err != nil {
			return Interval{}, err
		}
		return Interval{Start: start, End: end}, nil
	}

	return Interval{}, fmt.Errorf("%w: %v", calendar.ErrInvalidArgument, s.Direction)
}

// EachDay returns midnight of every calendar day touched by iv, in order.
func EachDay(iv Interval) []time.Time {
	if iv.End.Before(iv.Start) {
		return nil
	}

	y, m, d := iv.Start.Date()
	loc := iv.Start.Location()
	var days []time.Time
	for i := 0; ; i++ {
		day := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
		if day.After(iv.End) {
			break
		}
		days = append(days, day)
	}
	return days
}
