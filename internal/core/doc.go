// Package core finds the most active cookies of a cookie-activity log.
//
// A log is comma-separated text whose first line names the columns, cookie
// and timestamp in either order:
//
//	cookie,timestamp
//	AtY0laUfhglK3lC7,2018-12-09T14:19:00+00:00
//	SAZuXPGUrfbcn5UA,2018-12-09T10:13:00+00:00
//
// # Pipeline
//
// Data flows one way: raw line → fields ([SplitLine]) → typed entry
// ([DecodeRow], using the bindings from [BuildBindings]) → per-day counts
// ([Analyzer.Analyze]) → most active cookies ([Analysis.MostActive]).
//
// # Ordering
//
// Rows must be ordered newest first. The analyzer skips rows newer than the
// target date and stops reading at the first row older than it. This is not
// validated; an unordered log yields undefined results.
//
// # Errors
//
// Header and row failures are typed ([UnsupportedHeaderError],
// [MalformedCookieError], [MalformedTimestampError],
// [ColumnCountMismatchError], ...) and carry the line number and raw value.
// The package never logs or swallows them. [MapError] turns them into
// user-facing messages with support codes.
package core
