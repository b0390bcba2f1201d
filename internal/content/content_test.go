// ABOUTME: Tests for page Markdown generation and terminal rendering
// ABOUTME: Checks table rows, markers and the month summary for long pages

package content

import (
	"strings"
	"testing"
	"time"

	"github.com/harper/datepage/internal/paginate"
)

var (
	ref   = time.Date(2019, 2, 6, 0, 0, 0, 0, time.UTC)
	today = time.Date(2019, 2, 8, 9, 0, 0, 0, time.UTC)
)

func newPager(t *testing.T, opts ...paginate.Option) *paginate.Pager {
	t.Helper()
	base := []paginate.Option{paginate.WithDate(ref), paginate.WithClock(func() time.Time { return today })}
	p, err := paginate.New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("paginate.New: %v", err)
	}
	return p
}

func TestPageMarkdown_Week(t *testing.T) {
	md := PageMarkdown(newPager(t), today)

	wants := []string{
		"# 1 week back from 2019-02-06",
		"**2019-02-03 00:00:00.000 UTC** → **2019-02-09 23:59:59.999 UTC** _(current)_",
		"| Sun | 2019-02-03 |  |",
		"| Wed | 2019-02-06 | reference |",
		"| Fri | 2019-02-08 | today |",
		"7 days",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestPageMarkdown_SameDayMarkers(t *testing.T) {
	md := PageMarkdown(newPager(t, paginate.WithUnit("day")), ref)
	if !strings.Contains(md, "| Wed | 2019-02-06 | reference, today |") {
		t.Errorf("expected both markers:\n%s", md)
	}
	if !strings.Contains(md, "1 days") {
		t.Errorf("expected day count:\n%s", md)
	}
}

func TestPageMarkdown_LongPageGroupsMonths(t *testing.T) {
	md := PageMarkdown(newPager(t, paginate.WithUnit("quarter"), paginate.WithMultiplier(2)), today)

	for _, want := range []string{"| Month | Days |", "| October 2018 | 31 |", "| February 2019 | 28 |", "| March 2019 | 31 |", "182 days"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "| Day | Date |") {
		t.Error("long page should not list days")
	}
}

func TestRender(t *testing.T) {
	out, err := Render("# Title\n\nbody text\n", "notty", 40)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Title") || !strings.Contains(out, "body text") {
		t.Errorf("rendered output missing content: %q", out)
	}
}

func TestRender_UnknownStyle(t *testing.T) {
	if _, err := Render("# x", "no-such-style", 0); err == nil {
		t.Error("expected error for unknown style")
	}
}
