// ABOUTME: Stateful date-range pager with next/previous navigation
// ABOUTME: Re-derives its interval on every change and notifies observers once per change

// Package paginate derives a visible date range ("page") from a reference
// date, a calendar unit, a multiplier and a direction, and provides a Pager
// that moves that page forward and backward while reporting changes.
package paginate

import (
	"time"

	"github.com/harper/datepage/internal/calendar"
	"github.com/harper/datepage/internal/datestr"
)

// Defaults for a new Pager.
const (
	DefaultUnit       = calendar.Week
	DefaultMultiplier = 1
	DefaultDirection  = Back
)

// Events receives change notifications. Nil callbacks are skipped.
// For one change the order is start date, end date, interval, date.
type Events struct {
	StartDateChanged func(time.Time)
	EndDateChanged   func(time.Time)
	IntervalChanged  func(Interval)
	DateChanged      func(time.Time)
}

// Option configures a Pager.
type Option func(*options)

type options struct {
	date       time.Time
	unit       string
	multiplier int
	direction  Direction
	weekStart  *time.Weekday
	clock      func() time.Time
	events     Events
}

// WithDate sets the reference date. The zero time means "now".
func WithDate(t time.Time) Option {
	return func(o *options) { o.date = t }
}

// WithUnit sets the page unit by name, e.g. "day" or "month".
func WithUnit(name string) Option {
	return func(o *options) { o.unit = name }
}

// WithMultiplier sets how many units one page spans.
func WithMultiplier(n int) Option {
	return func(o *options) { o.multiplier = n }
}

// WithDirection sets whether pages extend back or forward from the date.
func WithDirection(d Direction) Option {
	return func(o *options) { o.direction = d }
}

// WithWeekStart sets the first day of a "week" page.
func WithWeekStart(day time.Weekday) Option {
	return func(o *options) { o.weekStart = &day }
}

// WithClock replaces time.Now, for the default date and IsCurrentInterval.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// WithEvents registers change observers. The initial page is reported too.
func WithEvents(ev Events) Option {
	return func(o *options) { o.events = ev }
}

// Pager owns a page state and its derived interval.
// It is not safe for concurrent use.
type Pager struct {
	state    State
	interval Interval
	calOpts  []calendar.Option
	clock    func() time.Time
	events   Events
}

// New builds a Pager and derives its first page.
func New(opts ...Option) (*Pager, error) {
	o := options{
		unit:       DefaultUnit.String(),
		multiplier: DefaultMultiplier,
		direction:  DefaultDirection,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	unit, err := calendar.ParseUnit(o.unit)
	if err != nil {
		return nil, err
	}

	p := &Pager{
		clock:  o.clock,
		events: o.events,
	}
	if o.weekStart != nil {
		p.calOpts = append(p.calOpts, calendar.WithWeekStart(*o.weekStart))
	}

	date := o.date
	if date.IsZero() {
		date = p.clock()
	}

	next := State{Date: date, Unit: unit, Multiplier: o.multiplier, Direction: o.direction}
	if err := p.apply(next); err != nil {
		return nil, err
	}
	return p, nil
}

// State returns a copy of the current inputs.
func (p *Pager) State() State { return p.state }

// Date returns the reference date.
func (p *Pager) Date() time.Time { return p.state.Date }

// Unit returns the page unit.
func (p *Pager) Unit() calendar.Unit { return p.state.Unit }

// Multiplier returns how many units a page spans.
func (p *Pager) Multiplier() int { return p.state.Multiplier }

// Direction returns the page direction.
func (p *Pager) Direction() Direction { return p.state.Direction }

// StartDate returns the first instant of the page.
func (p *Pager) StartDate() time.Time { return p.interval.Start }

// EndDate returns the last instant of the page.
func (p *Pager) EndDate() time.Time { return p.interval.End }

// Interval returns the current page.
func (p *Pager) Interval() Interval { return p.interval }

// EachDay returns every day on the current page.
func (p *Pager) EachDay() []time.Time { return EachDay(p.interval) }

// IsCurrentInterval reports whether the clock's now falls on the page.
func (p *Pager) IsCurrentInterval() bool {
	return p.interval.Contains(p.clock())
}

// Update applies fn to a copy of the state and re-derives the page once.
// When derivation fails the pager is left unchanged.
func (p *Pager) Update(fn func(*State)) error {
	next := p.state
	fn(&next)
	return p.apply(next)
}

// SetDate jumps to the page containing t.
func (p *Pager) SetDate(t time.Time) error {
	return p.Update(func(s *State) { s.Date = t })
}

// SetUnit changes the page unit by name.
func (p *Pager) SetUnit(name string) error {
	unit, err := calendar.ParseUnit(name)
	if err != nil {
		return err
	}
	return p.Update(func(s *State) { s.Unit = unit })
}

// SetMultiplier changes how many units a page spans.
func (p *Pager) SetMultiplier(n int) error {
	return p.Update(func(s *State) { s.Multiplier = n })
}

// SetDirection changes the page direction.
func (p *Pager) SetDirection(d Direction) error {
	return p.Update(func(s *State) { s.Direction = d })
}

// Add moves the reference date forward by howMany units.
// A howMany of zero or less means one page (the multiplier) and an empty
// unit means the page unit. Plural unit names are accepted.
func (p *Pager) Add(howMany int, unit string) error {
	return p.shift(howMany, unit, 1)
}

// Sub moves the reference date backward, with the same defaults as Add.
func (p *Pager) Sub(howMany int, unit string) error {
	return p.shift(howMany, unit, -1)
}

func (p *Pager) shift(howMany int, unit string, sign int) error {
	if howMany <= 0 {
		howMany = p.state.Multiplier
	}
	u := p.state.Unit
	if unit != "" {
		parsed, err := calendar.ParsePluralUnit(unit)
		if err != nil {
			return err
		}
		u = parsed
	}
	date, err := u.AddTo(p.state.Date, sign*howMany)
	if err != nil {
		return err
	}
	return p.SetDate(date)
}

func (p *Pager) apply(next State) error {
	iv, err := DeriveInterval(next, p.calOpts...)
	if err != nil {
		return err
	}
	prevDate, prev := p.state.Date, p.interval
	p.state, p.interval = next, iv
	p.notify(prevDate, prev)
	return nil
}

func (p *Pager) notify(prevDate time.Time, prev Interval) {
	startChanged := !prev.Start.Equal(p.interval.Start)
	endChanged := !prev.End.Equal(p.interval.End)

	if startChanged && p.events.StartDateChanged != nil {
		p.events.StartDateChanged(p.interval.Start)
	}
	if endChanged && p.events.EndDateChanged != nil {
		p.events.EndDateChanged(p.interval.End)
	}
	if (startChanged || endChanged) && p.events.IntervalChanged != nil {
		p.events.IntervalChanged(p.interval)
	}
	if !prevDate.Equal(p.state.Date) && p.events.DateChanged != nil {
		p.events.DateChanged(p.state.Date)
	}
}

// Props is the view of a pager handed to a render callback.
type Props struct {
	Date              time.Time
	DateInput         datestr.Binding[string]
	StartDate         time.Time
	EndDate           time.Time
	Interval          Interval
	EachDay           []time.Time
	IsCurrentInterval bool
	SetDate           func(time.Time) error
	Add               func(howMany int, unit string) error
	Sub               func(howMany int, unit string) error
}

// Props snapshots the page for rendering. DateInput, SetDate, Add and Sub act
// on the live pager.
func (p *Pager) Props() Props {
	return Props{
		Date:              p.state.Date,
		DateInput:         datestr.Default.StringFromDateFunc(p.Date, p.SetDate),
		StartDate:         p.interval.Start,
		EndDate:           p.interval.End,
		Interval:          p.interval,
		EachDay:           p.EachDay(),
		IsCurrentInterval: p.IsCurrentInterval(),
		SetDate:           p.SetDate,
		Add:               p.Add,
		Sub:               p.Sub,
	}
}

// Render passes the current props to fn and returns its output.
func (p *Pager) Render(fn func(Props) string) string {
	return fn(p.Props())
}
