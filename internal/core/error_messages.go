package core

// # Error Codes Reference
//
// This file maps analysis failures to user-friendly messages with codes for
// support reference. The HTTP API returns these; the CLI prints raw errors.
//
// # Log Errors (LOG001-LOG099)
//
//	LOG001 - Unsupported header: The header row names an unknown column
//	         Action: Use only the headers cookie and timestamp
//	         Patterns: "unsupported header"
//
//	LOG002 - Missing header: A required column is missing from the header row
//	         Action: Add both cookie and timestamp to the header row
//	         Patterns: "missing required header"
//
//	LOG003 - Duplicate header: A column is listed more than once
//	         Action: List each column once in the header row
//	         Patterns: "duplicate header"
//
//	LOG004 - Invalid cookie: A row has an empty cookie
//	         Action: Check the line reported in the error
//	         Patterns: "cookie is not correctly formatted"
//
//	LOG005 - Invalid timestamp: A row has an unreadable timestamp
//	         Action: Use ISO-8601 timestamps such as 2021-12-09T14:19:00+00:00
//	         Patterns: "timestamp is not correctly formatted"
//
//	LOG006 - Column count: A row has a different number of fields than the header
//	         Action: Make every row match the header row
//	         Patterns: "columns count is inconsistent"
//
// # Input Errors (DATE001, FILE001-FILE099)
//
//	DATE001 - Invalid date: The requested date is not YYYY-MM-DD
//	FILE001 - Not found: The log file does not exist
//	FILE002 - Empty log: The log has no header row
//	FILE003 - Too large: The uploaded log exceeds the size limit
//	FILE004 - Invalid name: The log name is not a plain file name
//
// # Server Errors (SRV001-SRV099)
//
//	SRV001 - Busy: All analysis slots are taken
//	         Action: Retry after a short delay
//	         Patterns: "too many concurrent"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches. Check the application logs for
// the original technical error.
//
// Patterns are matched case-insensitively using strings.Contains and the
// first match wins, so more specific patterns come first.

import (
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// Log Errors (LOG001-LOG006)
	// =========================================================================
	{
		pattern: "unsupported header",
		msg: UserMessage{
			Message: "The header row names an unknown column",
			Action:  "Use only the headers cookie and timestamp",
			Code:    "LOG001",
		},
	},
	{
		pattern: "missing required header",
		msg: UserMessage{
			Message: "A required column is missing from the header row",
			Action:  "Add both cookie and timestamp to the header row",
			Code:    "LOG002",
		},
	},
	{
		pattern: "duplicate header",
		msg: UserMessage{
			Message: "A column is listed more than once",
			Action:  "List each column once in the header row",
			Code:    "LOG003",
		},
	},
	{
		pattern: "cookie is not correctly formatted",
		msg: UserMessage{
			Message: "A row has an empty cookie",
			Action:  "Check the line reported in the error",
			Code:    "LOG004",
		},
	},
	{
		pattern: "timestamp is not correctly formatted",
		msg: UserMessage{
			Message: "A row has an unreadable timestamp",
			Action:  "Use ISO-8601 timestamps such as 2021-12-09T14:19:00+00:00",
			Code:    "LOG005",
		},
	},
	{
		pattern: "columns count is inconsistent",
		msg: UserMessage{
			Message: "A row has a different number of fields than the header",
			Action:  "Make every row match the header row",
			Code:    "LOG006",
		},
	},

	// =========================================================================
	// Input Errors (DATE001, FILE001-FILE004)
	// =========================================================================
	{
		pattern: "date input is not correctly formatted",
		msg: UserMessage{
			Message: "The requested date is not valid",
			Action:  "Use the YYYY-MM-DD format, for example 2021-12-09",
			Code:    "DATE001",
		},
	},
	{
		pattern: "not found",
		msg: UserMessage{
			Message: "The log file does not exist",
			Action:  "Check the log name and try again",
			Code:    "FILE001",
		},
	},
	{
		pattern: "log is empty",
		msg: UserMessage{
			Message: "The log has no header row",
			Action:  "Upload a log that starts with a cookie,timestamp header",
			Code:    "FILE002",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The uploaded log exceeds the size limit",
			Action:  "Split the log into smaller files",
			Code:    "FILE003",
		},
	},
	{
		pattern: "invalid log name",
		msg: UserMessage{
			Message: "The log name is not a plain file name",
			Action:  "Use the file name only, without directories",
			Code:    "FILE004",
		},
	},

	// =========================================================================
	// Server Errors (SRV001)
	// =========================================================================
	{
		pattern: "too many concurrent",
		msg: UserMessage{
			Message: "The server is busy analyzing other logs",
			Action:  "Retry after a short delay",
			Code:    "SRV001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, the ERR000 fallback is returned. A nil error maps to
// the zero UserMessage.
//
// Example:
//
//	msg := MapError(&MalformedCookieError{Line: 3})
//	// msg.Code == "LOG004"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// IsUserFacing reports whether err matches a known pattern, i.e. it was caused
// by the input rather than by the server.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
