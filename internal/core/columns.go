package core

// columns.go binds header names to typed field parsers.
//
// A cookie log has exactly two columns. Each one is a Column variant carrying
// its own parser; the bindings built from a header row are an ordered slice of
// those variants, so data rows are decoded positionally in whatever order the
// file declares its headers.

import (
	"time"
)

// Header names recognized in the first line of a cookie log.
const (
	CookieHeader    = "cookie"
	TimestampHeader = "timestamp"
)

// Column identifies one supported log column.
type Column int

const (
	ColumnCookie Column = iota
	ColumnTimestamp
)

// requiredColumns lists every column a log must declare, in canonical order.
var requiredColumns = []Column{ColumnCookie, ColumnTimestamp}

// timestampLayouts are tried in order when parsing a timestamp field.
// Layouts without an offset parse as UTC. Fractional seconds are accepted
// after the seconds field by every layout that has one.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05-0700",
	DateLayout,
}

// Name returns the header name of the column.
func (c Column) Name() string {
	switch c {
	case ColumnCookie:
		return CookieHeader
	case ColumnTimestamp:
		return TimestampHeader
	default:
		return "unknown"
	}
}

func (c Column) String() string {
	return c.Name()
}

// ColumnFor returns the column for an exact header name.
func ColumnFor(header string) (Column, bool) {
	switch header {
	case CookieHeader:
		return ColumnCookie, true
	case TimestampHeader:
		return ColumnTimestamp, true
	default:
		return 0, false
	}
}

// decode parses raw with the column's parser and stores the result in entry.
func (c Column) decode(entry *LogEntry, raw string, line int) error {
	switch c {
	case ColumnCookie:
		cookie, err := ParseCookie(raw, line)
		if err != nil {
			return err
		}
		entry.Cookie = cookie
	case ColumnTimestamp:
		ts, err := ParseTimestamp(raw, line)
		if err != nil {
			return err
		}
		entry.Timestamp = ts
	}
	return nil
}

// BuildBindings returns one column per header, in header order.
//
// Every header must be a supported column name, each column must appear
// exactly once, and both columns must be present.
func BuildBindings(headers []string) ([]Column, error) {
	bindings := make([]Column, 0, len(headers))
	seen := make(map[Column]bool, len(requiredColumns))

	for _, h := range headers {
		col, ok := ColumnFor(h)
		if !ok {
			return nil, &UnsupportedHeaderError{Header: h}
		}
		if seen[col] {
			return nil, &DuplicateHeaderError{Header: h}
		}
		seen[col] = true
		bindings = append(bindings, col)
	}

	for _, col := range requiredColumns {
		if !seen[col] {
			return nil, &MissingHeaderError{Header: col.Name()}
		}
	}

	return bindings, nil
}

// ParseCookie validates a cookie field. The value is returned unchanged.
func ParseCookie(raw string, line int) (string, error) {
	if raw == "" {
		return "", &MalformedCookieError{Line: line, Value: raw}
	}
	return raw, nil
}

// ParseTimestamp parses an ISO-8601 date-time field, keeping its offset.
func ParseTimestamp(raw string, line int) (time.Time, error) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, &MalformedTimestampError{Line: line, Value: raw}
}
