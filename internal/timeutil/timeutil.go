// ABOUTME: Parses date arguments given on the command line or to MCP tools
// ABOUTME: Accepts relative words, YYYY-MM-DD dates and RFC3339 timestamps

package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/datestr"
)

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	day, _ := calendar.Day.StartOf(t)
	return day
}

// ParseRelative resolves "now", "today", "yesterday" and "tomorrow" against now.
// Day words resolve to midnight in now's location.
func ParseRelative(word string, now time.Time) (time.Time, bool) {
	switch strings.ToLower(strings.TrimSpace(word)) {
	case "now":
		return now, true
	case "today":
		return StartOfDay(now), true
	case "yesterday":
		return StartOfDay(now).AddDate(0, 0, -1), true
	case "tomorrow":
		return StartOfDay(now).AddDate(0, 0, 1), true
	default:
		return time.Time{}, false
	}
}

// ParseDate parses a date argument. An empty string means now.
// YYYY-MM-DD dates are midnight in now's location.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}

	if t, ok := ParseRelative(s, now); ok {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	codec := datestr.Codec{Location: now.Location()}
	t, err := codec.Decode(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse date %q: use now, today, yesterday, tomorrow, YYYY-MM-DD or RFC3339: %w", s, err)
	}
	return t, nil
}
