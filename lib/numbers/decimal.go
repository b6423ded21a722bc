package numbers

import "github.com/cockroachdb/apd/v3"

// decimalContext has enough precision to hold every debit we'll ever sum without rounding.
var decimalContext = func() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}()

// MustParseDecimal parses a string to an [apd.Decimal] or panics -- used for tests.
func MustParseDecimal(value string) *apd.Decimal {
	decimal, _, err := apd.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return decimal
}

// Subtract returns x - y without mutating either operand.
func Subtract(x, y *apd.Decimal) (*apd.Decimal, error) {
	result := new(apd.Decimal)
	if _, err := decimalContext.Sub(result, x, y); err != nil {
		return nil, err
	}

	return result, nil
}

// Round rounds half up to [places] digits after the decimal point.
func Round(decimal *apd.Decimal, places int32) (*apd.Decimal, error) {
	result := new(apd.Decimal)
	if _, err := decimalContext.Quantize(result, decimal, -places); err != nil {
		return nil, err
	}

	return result, nil
}
