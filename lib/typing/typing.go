package typing

import (
	"iter"
	"math"
	"strconv"
)

type KindDetails struct {
	Kind string
}

var (
	Invalid = KindDetails{
		Kind: "invalid",
	}

	Integer = KindDetails{
		Kind: "int",
	}

	Float = KindDetails{
		Kind: "float",
	}

	String = KindDetails{
		Kind: "string",
	}
)

// ParseValue returns the narrowest kind [val] can be stored as without changing its text. Values are only numeric
// if formatting the parsed number gives back the exact same string, so "00501", "1e3", " 62" and "NaN" are [String].
// Empty values are [Invalid] since they carry no type.
func ParseValue(val string) KindDetails {
	if val == "" {
		return Invalid
	}

	if roundTripsAsInteger(val) {
		return Integer
	}

	if roundTripsAsFloat(val) {
		return Float
	}

	return String
}

func roundTripsAsInteger(val string) bool {
	parsed, err := strconv.ParseInt(val, 10, 64)
	return err == nil && strconv.FormatInt(parsed, 10) == val
}

func roundTripsAsFloat(val string) bool {
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return false
	}

	return strconv.FormatFloat(parsed, 'f', -1, 64) == val
}

func widen(current, next KindDetails) KindDetails {
	switch {
	case current == Invalid:
		return next
	case next == Invalid || current == next:
		return current
	case current == String || next == String:
		return String
	default:
		// Integer and Float
		return Float
	}
}

// InferColumnKind picks the narrowest kind that can hold every value unchanged, a column of only empty values is a [String].
func InferColumnKind(values iter.Seq[string]) KindDetails {
	kind := Invalid
	// Integers beyond 2^53 can't be stored as a float without losing digits.
	floatSafe := true
	for value := range values {
		valueKind := ParseValue(value)
		if valueKind == Integer && !roundTripsAsFloat(value) {
			floatSafe = false
		}

		kind = widen(kind, valueKind)
		if kind == String {
			break
		}
	}

	switch {
	case kind == Invalid:
		return String
	case kind == Float && !floatSafe:
		return String
	default:
		return kind
	}
}
