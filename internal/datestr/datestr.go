// ABOUTME: Canonical YYYY-MM-DD conversion between time.Time and string
// ABOUTME: Encodes in UTC and decodes as local midnight, mirroring form date inputs

// Package datestr converts dates to and from the canonical "YYYY-MM-DD" form
// used by date inputs, and binds a string field to a date field (or the
// reverse) through that conversion.
//
// Encoding and decoding are intentionally asymmetric: Encode renders the UTC
// calendar date while Decode builds midnight in the codec's location
// (time.Local by default). Outside UTC+0 a round trip can move the date by a
// day; callers that need identity should use a Codec pinned to time.UTC.
package datestr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical date layout.
const Layout = "2006-01-02"

// ErrMalformed is returned when text is not a YYYY-MM-DD date.
var ErrMalformed = errors.New("malformed date")

// Codec converts dates to and from canonical strings.
// A nil Location decodes into time.Local.
type Codec struct {
	Location *time.Location
}

// Default decodes into the local time zone.
var Default = Codec{}

func (c Codec) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// Encode returns the UTC calendar date of t, or "" for the zero time.
func (c Codec) Encode(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(Layout)
}

// Decode parses year-month-day into midnight in the codec's location.
// Empty text decodes to the zero time. Fields need not be zero padded, and a
// day past the end of the month rolls into the next month.
func (c Codec) Decode(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, nil
	}

	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad year in %q", ErrMalformed, text)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: bad month in %q", ErrMalformed, text)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: bad day in %q", ErrMalformed, text)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, c.location()), nil
}

// DateToString encodes t with the default codec.
func DateToString(t time.Time) string {
	return Default.Encode(t)
}

// StringToDate decodes text with the default codec.
func StringToDate(text string) (time.Time, error) {
	return Default.Decode(text)
}
