package ext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSupportedDateLayoutsUniqueness(t *testing.T) {
	layouts := make(map[string]struct{})
	for _, layout := range supportedDateLayouts {
		if _, ok := layouts[layout]; ok {
			t.Errorf("layout %q is duplicated", layout)
		}
		layouts[layout] = struct{}{}
	}
}

func TestParseTimeExactMatch(t *testing.T) {
	{
		ts, err := ParseTimeExactMatch(ISODateFormat, "2021-01-05")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2021, time.January, 5, 0, 0, 0, 0, time.UTC), ts)
	}
	{
		// Parses, but does not round trip.
		_, err := ParseTimeExactMatch("1/2/2006", "06/28/2022")
		assert.ErrorContains(t, err, `failed to parse "06/28/2022" with layout "1/2/2006"`)
	}
}

func TestParseDate(t *testing.T) {
	expected := time.Date(2022, time.June, 28, 0, 0, 0, 0, time.UTC)
	for _, value := range []string{
		"2022-06-28",
		"6/28/2022",
		"06/28/2022",
		"6-28-2022",
		"06-28-2022",
		"2022/06/28",
		"2022-06-28 00:00:00",
		"2022-06-28T00:00:00Z",
		" 6/28/2022 ",
	} {
		ts, err := ParseDate(value)
		assert.NoError(t, err, value)
		assert.Equal(t, expected, ts, value)
	}

	{
		// Already generalized to a month.
		ts, err := ParseDate("2022-06")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC), ts)
	}
	{
		_, err := ParseDate("")
		assert.True(t, IsParseError(err))
		assert.Equal(t, EmptyValue, err.(ParseError).Kind())
	}
	for _, value := range []string{"not a date", "13/45/2022", "2022-02-30"} {
		_, err := ParseDate(value)
		assert.True(t, IsParseError(err), value)
		assert.Equal(t, UnsupportedDateLayout, err.(ParseError).Kind(), value)
	}
}

func TestParseMonth(t *testing.T) {
	ts, err := ParseMonth("2021-12")
	assert.NoError(t, err)
	assert.Equal(t, 2021, ts.Year())
	assert.Equal(t, time.December, ts.Month())

	_, err = ParseMonth("2021-12-01")
	assert.True(t, IsParseError(err))
}
