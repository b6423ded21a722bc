package ext

import "time"

const (
	ISODateFormat = "2006-01-02"
	// MonthFormat is what a date looks like once the day has been generalized away.
	MonthFormat = "2006-01"
)

// supportedDateLayouts are tried in order, the first exact match wins.
var supportedDateLayouts = []string{
	ISODateFormat,
	"1/2/2006",
	"01/02/2006",
	"1-2-2006",
	"01-02-2006",
	"2006/01/02",
	time.DateTime,
	time.RFC3339,
	time.RFC3339Nano,
	MonthFormat,
}
