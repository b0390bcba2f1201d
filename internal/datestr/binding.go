// ABOUTME: Two-way bindings between string and date fields
// ABOUTME: Each getter reads current state, each setter writes one underlying field

package datestr

import "time"

// Binding exposes a value of type T that is stored elsewhere.
type Binding[T any] interface {
	Get() T
	Set(T) error
}

type funcBinding[T any] struct {
	get func() T
	set func(T) error
}

func (b funcBinding[T]) Get() T        { return b.get() }
func (b funcBinding[T]) Set(v T) error { return b.set(v) }

// StringFromDate presents the date stored in field as a canonical string.
func (c Codec) StringFromDate(field *time.Time) Binding[string] {
	return c.StringFromDateFunc(
		func() time.Time { return *field },
		func(t time.Time) error {
			*field = t
			return nil
		},
	)
}

// StringFromDateFunc presents a date behind get/set as a canonical string.
// A malformed string is rejected before set is called.
func (c Codec) StringFromDateFunc(get func() time.Time, set func(time.Time) error) Binding[string] {
	return funcBinding[string]{
		get: func() string { return c.Encode(get()) },
		set: func(text string) error {
			t, err := c.Decode(text)
			if err != nil {
				return err
			}
			return set(t)
		},
	}
}

// DateFromString presents the string stored in field as a date.
// Reading a malformed string yields the zero time.
func (c Codec) DateFromString(field *string) Binding[time.Time] {
	return funcBinding[time.Time]{
		get: func() time.Time {
			t, err := c.Decode(*field)
			if err != nil {
				return time.Time{}
			}
			return t
		},
		set: func(t time.Time) error {
			*field = c.Encode(t)
			return nil
		},
	}
}

// StringFromDate binds field with the default codec.
func StringFromDate(field *time.Time) Binding[string] {
	return Default.StringFromDate(field)
}

// DateFromString binds field with the default codec.
func DateFromString(field *string) Binding[time.Time] {
	return Default.DateFromString(field)
}
