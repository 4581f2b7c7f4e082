package core

// errors.go defines the failures reported while reading a cookie log.
//
// Every error carries the context known at the point of detection (the
// offending header or the 1-based line number and raw value), so callers can
// surface it as-is. Match them with errors.As:
//
//	var tsErr *core.MalformedTimestampError
//	if errors.As(err, &tsErr) {
//	    fmt.Println(tsErr.Line)
//	}

import (
	"errors"
	"fmt"
)

// ErrEmptyLog is returned when the input has no header row at all.
var ErrEmptyLog = errors.New("log is empty: no header row found")

// UnsupportedHeaderError reports a header name outside the known columns.
type UnsupportedHeaderError struct {
	Header string
}

func (e *UnsupportedHeaderError) Error() string {
	return fmt.Sprintf("unsupported header detected: '%s'", e.Header)
}

// MissingHeaderError reports a known column absent from the header row.
type MissingHeaderError struct {
	Header string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("missing required header: '%s'", e.Header)
}

// DuplicateHeaderError reports a known column listed more than once.
type DuplicateHeaderError struct {
	Header string
}

func (e *DuplicateHeaderError) Error() string {
	return fmt.Sprintf("duplicate header detected: '%s'", e.Header)
}

// MalformedCookieError reports an empty cookie field.
type MalformedCookieError struct {
	Line  int
	Value string
}

func (e *MalformedCookieError) Error() string {
	return fmt.Sprintf("cookie is not correctly formatted on line %d: '%s'", e.Line, e.Value)
}

// MalformedTimestampError reports a timestamp field that is not an ISO-8601 date-time.
type MalformedTimestampError struct {
	Line  int
	Value string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("timestamp is not correctly formatted on line %d: '%s'", e.Line, e.Value)
}

// ColumnCountMismatchError reports a data row whose field count differs from the header.
type ColumnCountMismatchError struct {
	Line int
	Want int
	Got  int
}

func (e *ColumnCountMismatchError) Error() string {
	return fmt.Sprintf("columns count is inconsistent on line %d", e.Line)
}

// InvalidDateInputError reports a target date that is not YYYY-MM-DD.
type InvalidDateInputError struct {
	Input string
}

func (e *InvalidDateInputError) Error() string {
	return fmt.Sprintf("date input is not correctly formatted: '%s'", e.Input)
}
