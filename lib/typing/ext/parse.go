package ext

import (
	"fmt"
	"strings"
	"time"
)

// ParseTimeExactMatch will return an error if the value parses but does not round trip with the layout.
// We need this because things may parse correctly but actually truncate precision, or take a zero padded value for a layout that has none.
func ParseTimeExactMatch(layout, timeString string) (time.Time, error) {
	ts, err := time.Parse(layout, timeString)
	if err != nil {
		return time.Time{}, err
	}

	if ts.Format(layout) != timeString {
		return time.Time{}, fmt.Errorf("failed to parse %q with layout %q", timeString, layout)
	}

	return ts, nil
}

// ParseDate parses a calendar date using any of the supported layouts.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, NewParseError("value is empty", EmptyValue)
	}

	for _, layout := range supportedDateLayouts {
		if ts, err := ParseTimeExactMatch(layout, trimmed); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, NewParseError(fmt.Sprintf("unsupported date layout for value %q", value), UnsupportedDateLayout)
}

// ParseMonth parses a value that has already been truncated to [MonthFormat].
func ParseMonth(value string) (time.Time, error) {
	ts, err := ParseTimeExactMatch(MonthFormat, value)
	if err != nil {
		return time.Time{}, NewParseError(fmt.Sprintf("value %q is not a month: %v", value, err), UnsupportedDateLayout)
	}

	return ts, nil
}
