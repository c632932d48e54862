package parsers

import (
	"errors"
	"fmt"
)

// Reason classifies why a line was rejected. The set is closed so it can be used as a metric label.
type Reason string

const (
	ReasonTokenCount  Reason = "token_count"
	ReasonTimestamp   Reason = "timestamp"
	ReasonLevel       Reason = "level"
	ReasonSessionID   Reason = "session_id"
	ReasonBusinessID  Reason = "business_id"
	ReasonRequestID   Reason = "request_id"
	ReasonDescription Reason = "description"

	// ReasonUnknown marks failures from LineParser implementations that return plain errors.
	ReasonUnknown Reason = "unknown"
)

// ParseError reports a line that does not match the log grammar.
type ParseError struct {
	LineNumber int    // 1-based position in the ingested text
	Line       string // raw line as received
	Reason     Reason
	Cause      error
}

func newParseError(lineNumber int, line string, reason Reason, cause error) *ParseError {
	return &ParseError{LineNumber: lineNumber, Line: line, Reason: reason, Cause: cause}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("line %d: invalid %s: %v: %q", e.LineNumber, e.Reason, e.Cause, e.Line)
	}
	return fmt.Sprintf("line %d: invalid %s: %q", e.LineNumber, e.Reason, e.Line)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// AsParseError extracts a ParseError from the error chain.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}
