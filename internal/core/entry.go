package core

import "time"

// LogEntry is one decoded row of a cookie log.
type LogEntry struct {
	Cookie    string
	Timestamp time.Time
}

// Date returns the calendar date of the entry in the offset its timestamp carries.
func (e LogEntry) Date() Date {
	return DateOf(e.Timestamp)
}

// DecodeRow turns a tokenized data row into a LogEntry using bindings.
//
// line is the 1-based line number of the row and is attached to any error.
// Decoding stops at the first invalid field.
func DecodeRow(fields []string, bindings []Column, line int) (LogEntry, error) {
	if len(fields) != len(bindings) {
		return LogEntry{}, &ColumnCountMismatchError{
			Line: line,
			Want: len(bindings),
			Got:  len(fields),
		}
	}

	var entry LogEntry
	for i, col := range bindings {
		if err := col.decode(&entry, fields[i], line); err != nil {
			return LogEntry{}, err
		}
	}
	return entry, nil
}
