package anonymizer

import (
	"log/slog"

	"github.com/artie-labs/anonymize/lib/typing/ext"
)

// GeneralizeDateLevel1 truncates every departure date to its month. Nothing is rewritten unless every date parses.
func (e *Engine) GeneralizeDateLevel1() error {
	if err := e.requireState("generalize dates to months", Suppressed); err != nil {
		return err
	}

	if !e.dataset.HasColumn(DepartureDateColumn) {
		return MissingColumnError{Columns: []string{DepartureDateColumn}}
	}

	records := e.dataset.Records()
	months := make([]string, len(records))
	for i, record := range records {
		value, _ := record.Get(DepartureDateColumn)
		ts, err := ext.ParseDate(value)
		if err != nil {
			return MalformedDateError{Row: i, Value: value, err: err}
		}

		months[i] = ts.Format(ext.MonthFormat)
	}

	for i, record := range records {
		record.Set(DepartureDateColumn, months[i])
	}

	if err := e.ledger.Debit(level1Cost); err != nil {
		return err
	}

	e.state = Level1Generalized
	slog.Debug("Generalized departure dates to months", slog.Int("rows", len(records)))
	return nil
}
