package anonymizer

import (
	"errors"
	"fmt"
	"strings"
)

type InvalidKError struct {
	K int
}

func (e InvalidKError) Error() string {
	return fmt.Sprintf("k must be a positive integer, received: %d", e.K)
}

func IsInvalidKError(err error) bool {
	return errors.As(err, &InvalidKError{})
}

type MissingColumnError struct {
	Columns []string
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Columns, ", "))
}

func IsMissingColumnError(err error) bool {
	return errors.As(err, &MissingColumnError{})
}

type MalformedDateError struct {
	Row   int
	Value string
	err   error
}

func (e MalformedDateError) Error() string {
	return fmt.Sprintf("row %d has a malformed %q value %q: %v", e.Row, DepartureDateColumn, e.Value, e.err)
}

func (e MalformedDateError) Unwrap() error {
	return e.err
}

func IsMalformedDateError(err error) bool {
	return errors.As(err, &MalformedDateError{})
}

type NotAnonymizedError struct{}

func (NotAnonymizedError) Error() string {
	return "dataset has not been anonymized yet"
}

func IsNotAnonymizedError(err error) bool {
	return errors.As(err, &NotAnonymizedError{})
}

// InvalidStateError is returned when an engine operation is called out of order.
type InvalidStateError struct {
	Operation string
	Current   State
	Allowed   []State
}

func (e InvalidStateError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, state := range e.Allowed {
		allowed[i] = string(state)
	}

	return fmt.Sprintf("cannot %s while engine is %q, expected one of: %s", e.Operation, e.Current, strings.Join(allowed, ", "))
}

func IsInvalidStateError(err error) bool {
	return errors.As(err, &InvalidStateError{})
}
