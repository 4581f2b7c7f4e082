package core

import "strings"

// Delimiter separates fields within a log line. Quoting and escaping are not
// interpreted, so a field can never contain the delimiter.
const Delimiter = ","

// SplitLine splits one raw log line on Delimiter and trims surrounding
// whitespace (including a trailing carriage return) from every field.
// The field count is always one more than the number of delimiters.
func SplitLine(line string) []string {
	fields := strings.Split(line, Delimiter)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
