package ext

import "errors"

type ParseErrorKind string

const (
	UnsupportedDateLayout ParseErrorKind = "unsupported_date_layout"
	EmptyValue            ParseErrorKind = "empty_value"
)

type ParseError struct {
	message string
	kind    ParseErrorKind
}

func NewParseError(message string, kind ParseErrorKind) ParseError {
	return ParseError{message: message, kind: kind}
}

func (p ParseError) Error() string {
	return p.message
}

func (p ParseError) Kind() ParseErrorKind {
	return p.kind
}

func IsParseError(err error) bool {
	return errors.As(err, &ParseError{})
}
