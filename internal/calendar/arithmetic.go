// ABOUTME: Add and subtract calendar units from a point in time
// ABOUTME: Month-based units clamp to the last day of the target month

package calendar

import (
	"fmt"
	"math"
	"time"
)

// AddTo returns t shifted forward by amount units. Negative amounts shift backward.
func (u Unit) AddTo(t time.Time, amount int) (time.Time, error) {
	switch u {
	case Millisecond:
		return u.addDuration(t, amount, time.Millisecond)
	case Second:
		return u.addDuration(t, amount, time.Second)
	case Minute:
		return u.addDuration(t, amount, time.Minute)
	case Hour:
		return u.addDuration(t, amount, time.Hour)
	case Day:
		return t.AddDate(0, 0, amount), nil
	case Week, ISOWeek:
		return t.AddDate(0, 0, 7*amount), nil
	case Month:
		return addMonths(t, amount), nil
	case Quarter:
		return addMonths(t, 3*amount), nil
	case Year:
		return addMonths(t, 12*amount), nil
	case ISOWeekYear:
		return addISOWeekYears(t, amount), nil
	case Decade:
		return addMonths(t, 120*amount), nil
	}
	return time.Time{}, fmt.Errorf("%w: %v", ErrUnsupportedUnit, u)
}

// SubFrom returns t shifted backward by amount units.
func (u Unit) SubFrom(t time.Time, amount int) (time.Time, error) {
	return u.AddTo(t, -amount)
}

// addDuration adds amount fixed-length steps, rejecting amounts whose
// total does not fit in a time.Duration.
func (u Unit) addDuration(t time.Time, amount int, step time.Duration) (time.Time, error) {
	limit := int64(math.MaxInt64 / step)
	if n := int64(amount); n > limit || n < -limit {
		return time.Time{}, fmt.Errorf("%w: %d %ss is out of range (max %d)", ErrInvalidArgument, amount, u, limit)
	}
	return t.Add(time.Duration(amount) * step), nil
}

// addMonths keeps the wall clock and clamps the day to the target month,
// so Jan 31 + 1 month is the last day of February.
func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Month(), target.Year()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// addISOWeekYears moves t into another ISO week-numbering year while keeping
// its offset in days from the start of that year. Time of day is preserved.
func addISOWeekYears(t time.Time, years int) time.Time {
	isoYear, _ := t.ISOWeek()
	offset := calendarDaysBetween(isoWeekYearStart(isoYear, t.Location()), t)
	target := isoWeekYearStart(isoYear+years, t.Location())
	return time.Date(target.Year(), target.Month(), target.Day()+offset,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// calendarDaysBetween counts calendar days from a to b, ignoring time of day.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
