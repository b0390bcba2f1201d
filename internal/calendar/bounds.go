// ABOUTME: Start-of and end-of boundaries for calendar units
// ABOUTME: Delegates minute..year boundaries to jinzhu/now

package calendar

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// DefaultWeekStart is the first day of a plain "week".
const DefaultWeekStart = time.Sunday

// Option adjusts boundary calculations.
type Option func(*options)

type options struct {
	weekStart time.Weekday
}

// WithWeekStart sets the first day of a plain "week". ISO weeks always start on Monday.
func WithWeekStart(day time.Weekday) Option {
	return func(o *options) {
		o.weekStart = day
	}
}

func buildOptions(opts []Option) options {
	o := options{weekStart: DefaultWeekStart}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var isoConfig = &now.Config{WeekStartDay: time.Monday}

// StartOf returns the first instant of the unit containing t.
func (u Unit) StartOf(t time.Time, opts ...Option) (time.Time, error) {
	o := buildOptions(opts)
	cfg := &now.Config{WeekStartDay: o.weekStart}

	switch u {
	case Second:
		return startOfSecond(t), nil
	case Minute:
		return cfg.With(t).BeginningOfMinute(), nil
	case Hour:
		return cfg.With(t).BeginningOfHour(), nil
	case Day:
		return cfg.With(t).BeginningOfDay(), nil
	case Week:
		return cfg.With(t).BeginningOfWeek(), nil
	case ISOWeek:
		return isoConfig.With(t).BeginningOfWeek(), nil
	case Month:
		return cfg.With(t).BeginningOfMonth(), nil
	case Quarter:
		return cfg.With(t).BeginningOfQuarter(), nil
	case Year:
		return cfg.With(t).BeginningOfYear(), nil
	case ISOWeekYear:
		isoYear, _ := t.ISOWeek()
		return isoWeekYearStart(isoYear, t.Location()), nil
	case Decade:
		return time.Date(decadeOf(t.Year()), time.January, 1, 0, 0, 0, 0, t.Location()), nil
	case Millisecond:
	}
	return time.Time{}, fmt.Errorf("%w: no start of %v", ErrUnsupportedUnit, u)
}

// EndOf returns the last instant of the unit containing t.
func (u Unit) EndOf(t time.Time, opts ...Option) (time.Time, error) {
	o := buildOptions(opts)
	cfg := &now.Config{WeekStartDay: o.weekStart}

	switch u {
	case Second:
		return startOfSecond(t).Add(time.Second - time.Nanosecond), nil
	case Minute:
		return cfg.With(t).EndOfMinute(), nil
	case Hour:
		return cfg.With(t).EndOfHour(), nil
	case Day:
		return cfg.With(t).EndOfDay(), nil
	case Week:
		return cfg.With(t).EndOfWeek(), nil
	case ISOWeek:
		return isoConfig.With(t).EndOfWeek(), nil
	case Month:
		return cfg.With(t).EndOfMonth(), nil
	case Quarter:
		return cfg.With(t).EndOfQuarter(), nil
	case Year:
		return cfg.With(t).EndOfYear(), nil
	case ISOWeekYear:
		isoYear, _ := t.ISOWeek()
		return isoWeekYearStart(isoYear+1, t.Location()).Add(-time.Nanosecond), nil
	case Decade:
		next := time.Date(decadeOf(t.Year())+10, time.January, 1, 0, 0, 0, 0, t.Location())
		return next.Add(-time.Nanosecond), nil
	case Millisecond:
	}
	return time.Time{}, fmt.Errorf("%w: no end of %v", ErrUnsupportedUnit, u)
}

func startOfSecond(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

// isoWeekYearStart is the Monday of ISO week 1, the week holding January 4th.
func isoWeekYearStart(isoYear int, loc *time.Location) time.Time {
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, loc)
	return isoConfig.With(jan4).BeginningOfWeek()
}

func decadeOf(year int) int {
	return year - ((year%10)+10)%10
}
