package utility

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/artie-labs/anonymize/lib/numbers"
)

// ReportedPlaces is how many decimal places [Ledger.Read] rounds to.
const ReportedPlaces = 2

// Ledger tracks how much utility is left after each lossy operation. It starts at 1 and has no floor.
type Ledger struct {
	value  *apd.Decimal
	debits int
}

func NewLedger() *Ledger {
	return &Ledger{value: apd.New(1, 0)}
}

func (l *Ledger) Debit(amount *apd.Decimal) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("debit amount must not be negative: %s", amount.Text('f'))
	}

	value, err := numbers.Subtract(l.value, amount)
	if err != nil {
		return fmt.Errorf("failed to debit %s: %w", amount.Text('f'), err)
	}

	l.value = value
	l.debits++
	return nil
}

// Read returns the current value rounded to [ReportedPlaces].
func (l *Ledger) Read() float64 {
	rounded, err := numbers.Round(l.value, ReportedPlaces)
	if err != nil {
		// Quantize only fails when the result does not fit the context's precision.
		panic(fmt.Sprintf("failed to round utility %s: %v", l.value.Text('f'), err))
	}

	value, err := rounded.Float64()
	if err != nil {
		panic(fmt.Sprintf("failed to convert utility %s: %v", rounded.Text('f'), err))
	}

	return value
}

// Exact returns the unrounded value.
func (l *Ledger) Exact() string {
	return l.value.Text('f')
}

func (l *Ledger) Debits() int {
	return l.debits
}
