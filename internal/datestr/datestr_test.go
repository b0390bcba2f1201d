// ABOUTME: Tests for the canonical date codec and field bindings
// ABOUTME: Pins codec locations so the UTC-encode/local-decode shift is deterministic

package datestr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mst = time.FixedZone("MST", -7*60*60)
	jst = time.FixedZone("JST", 9*60*60)
)

func TestEncode(t *testing.T) {
	c := Codec{Location: time.UTC}

	assert.Equal(t, "", c.Encode(time.Time{}))
	assert.Equal(t, "2019-02-07", c.Encode(time.Date(2019, time.February, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2019-02-07", c.Encode(time.Date(2019, time.February, 7, 23, 59, 0, 0, time.UTC)))

	// Late evening in MST is already the next day in UTC.
	assert.Equal(t, "2019-02-08", c.Encode(time.Date(2019, time.February, 7, 20, 0, 0, 0, mst)))
}

func TestDecode(t *testing.T) {
	c := Codec{Location: mst}

	got, err := c.Decode("2019-02-07")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2019, time.February, 7, 0, 0, 0, 0, mst)))
	assert.Equal(t, mst, got.Location())

	got, err = c.Decode("2019-2-7")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2019, time.February, 7, 0, 0, 0, 0, mst)))

	got, err = c.Decode("2019-02-30")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2019, time.March, 2, 0, 0, 0, 0, mst)), "day overflow rolls forward")
}

func TestDecode_Empty(t *testing.T) {
	got, err := Codec{}.Decode("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = Codec{}.Decode("   ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestDecode_Malformed(t *testing.T) {
	for _, text := range []string{"2019/02/07", "2019-02", "yyyy-02-07", "2019-13-01", "2019-00-10", "2019-02-32", "2019-02-x"} {
		_, err := Codec{}.Decode(text)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", text)
	}
}

func TestDefaultCodecUsesLocal(t *testing.T) {
	got, err := StringToDate("2019-02-07")
	require.NoError(t, err)
	assert.Equal(t, time.Local, got.Location())
	assert.Equal(t, 0, got.Hour())

	assert.Equal(t, "", DateToString(time.Time{}))
}

func TestRoundTrip_UTC(t *testing.T) {
	c := Codec{Location: time.UTC}
	date := time.Date(2019, time.February, 7, 0, 0, 0, 0, time.UTC)

	back, err := c.Decode(c.Encode(date))
	require.NoError(t, err)
	assert.True(t, back.Equal(date))
}

func TestRoundTrip_ShiftsEastOfUTC(t *testing.T) {
	c := Codec{Location: jst}
	date := time.Date(2019, time.February, 7, 0, 0, 0, 0, jst)

	text := c.Encode(date)
	assert.Equal(t, "2019-02-06", text)

	back, err := c.Decode(text)
	require.NoError(t, err)
	assert.True(t, back.Equal(date.AddDate(0, 0, -1)), "local midnight east of UTC decodes one day earlier")
}

func TestRoundTrip_WestOfUTCKeepsDay(t *testing.T) {
	c := Codec{Location: mst}
	date := time.Date(2019, time.February, 7, 0, 0, 0, 0, mst)

	back, err := c.Decode(c.Encode(date))
	require.NoError(t, err)
	assert.True(t, back.Equal(date))
}

func TestStringFromDate(t *testing.T) {
	c := Codec{Location: time.UTC}
	date := time.Date(2019, time.February, 7, 0, 0, 0, 0, time.UTC)
	b := c.StringFromDate(&date)

	assert.Equal(t, "2019-02-07", b.Get())

	require.NoError(t, b.Set("2020-03-04"))
	assert.True(t, date.Equal(time.Date(2020, time.March, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2020-03-04", b.Get())

	require.NoError(t, b.Set(""))
	assert.True(t, date.IsZero())
	assert.Equal(t, "", b.Get())
}

func TestStringFromDate_RejectsMalformed(t *testing.T) {
	c := Codec{Location: time.UTC}
	date := time.Date(2019, time.February, 7, 0, 0, 0, 0, time.UTC)
	b := c.StringFromDate(&date)

	err := b.Set("not-a-date")
	assert.ErrorIs(t, err, ErrMalformed)
	assert.True(t, date.Equal(time.Date(2019, time.February, 7, 0, 0, 0, 0, time.UTC)), "field untouched")
}

func TestDateFromString(t *testing.T) {
	c := Codec{Location: time.UTC}
	text := "2019-02-07"
	b := c.DateFromString(&text)

	assert.True(t, b.Get().Equal(time.Date(2019, time.February, 7, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, b.Set(time.Date(2021, time.December, 25, 18, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2021-12-25", text)

	require.NoError(t, b.Set(time.Time{}))
	assert.Equal(t, "", text)
	assert.True(t, b.Get().IsZero())

	text = "garbage"
	assert.True(t, b.Get().IsZero())
}

func TestStringFromDateFunc_PropagatesSetError(t *testing.T) {
	c := Codec{Location: time.UTC}
	wantErr := assert.AnError
	b := c.StringFromDateFunc(
		func() time.Time { return time.Time{} },
		func(time.Time) error { return wantErr },
	)
	assert.ErrorIs(t, b.Set("2019-02-07"), wantErr)
}

func TestPackageBindings(t *testing.T) {
	var date time.Time
	s := StringFromDate(&date)
	assert.Equal(t, "", s.Get())

	text := ""
	dt := DateFromString(&text)
	assert.True(t, dt.Get().IsZero())
}
