package parsers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"log-catalog/internal/models"
)

const (
	// TimestampLayout is the date and time portion of a log line.
	TimestampLayout = "2006-01-02 15:04:05"

	prefixSessionID  = "SID:"
	prefixBusinessID = "BID:"
	prefixRequestID  = "RID:"

	// date, time, level, SID, BID, RID, description
	lineTokenCount = 7
)

var (
	errEmptyValue    = errors.New("empty value")
	errNotAlnum      = errors.New("value must be alphanumeric")
	errMissingPrefix = errors.New("missing field prefix")
	errUnquoted      = errors.New("description must be wrapped in single quotes")
)

// LineParser converts single log lines of the form
//
//	2012-09-13 16:04:22 DEBUG SID:34523 BID:1329 RID:65d33 'Starting new session'
//
// into records. Parse is pure: calls never interact and a line either yields a complete record or
// a *ParseError, never a partial record.
type LineParser interface {
	Parse(lineNumber int, line string) (*models.Record, error)
	Format(record *models.Record) string
	// Location is the timezone timestamps without an offset are read in.
	Location() *time.Location
}

type lineParser struct {
	location *time.Location
}

// NewLineParser creates a parser reading timestamps in location. A nil location means UTC.
func NewLineParser(location *time.Location) LineParser {
	if location == nil {
		location = time.UTC
	}
	return &lineParser{location: location}
}

// NewLineParserFromTimezone resolves an IANA timezone name such as "UTC" or "Europe/Berlin".
func NewLineParserFromTimezone(timezone string) (LineParser, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return NewLineParser(location), nil
}

func (p *lineParser) Parse(lineNumber int, line string) (*models.Record, error) {
	tokens := strings.SplitN(line, " ", lineTokenCount)
	if len(tokens) != lineTokenCount {
		return nil, newParseError(lineNumber, line, ReasonTokenCount,
			fmt.Errorf("expected %d tokens, got %d", lineTokenCount, len(tokens)))
	}

	timestamp, err := time.ParseInLocation(TimestampLayout, tokens[0]+" "+tokens[1], p.location)
	if err != nil {
		return nil, newParseError(lineNumber, line, ReasonTimestamp, err)
	}

	level, err := models.NewLevelFromString(tokens[2])
	if err != nil {
		return nil, newParseError(lineNumber, line, ReasonLevel, err)
	}

	sessionID, err := prefixedValue(tokens[3], prefixSessionID)
	if err != nil {
		return nil, newParseError(lineNumber, line, ReasonSessionID, err)
	}
	businessID, err := prefixedValue(tokens[4], prefixBusinessID)
	if err != nil {
		return nil, newParseError(lineNumber, line, ReasonBusinessID, err)
	}
	requestID, err := prefixedValue(tokens[5], prefixRequestID)
	if err != nil {
		return nil, newParseError(lineNumber, line, ReasonRequestID, err)
	}

	description, err := unquote(tokens[6])
	if err != nil {
		return nil, newParseError(lineNumber, line, ReasonDescription, err)
	}

	return &models.Record{
		Timestamp:   timestamp.UTC(),
		Level:       level,
		SessionID:   sessionID,
		BusinessID:  businessID,
		RequestID:   requestID,
		Description: description,
	}, nil
}

// Format renders record back into the log grammar, in the parser's location.
func (p *lineParser) Location() *time.Location {
	return p.location
}

func (p *lineParser) Format(record *models.Record) string {
	return fmt.Sprintf("%s %s %s%s %s%s %s%s '%s'",
		record.Timestamp.In(p.location).Format(TimestampLayout),
		record.Level,
		prefixSessionID, record.SessionID,
		prefixBusinessID, record.BusinessID,
		prefixRequestID, record.RequestID,
		record.Description,
	)
}

func prefixedValue(token, prefix string) (string, error) {
	value, ok := strings.CutPrefix(token, prefix)
	if !ok {
		return "", fmt.Errorf("%w %q", errMissingPrefix, prefix)
	}
	if value == "" {
		return "", errEmptyValue
	}
	if !isAlnum(value) {
		return "", errNotAlnum
	}
	return value, nil
}

// unquote strips exactly one pair of enclosing single quotes; inner quotes are kept.
func unquote(token string) (string, error) {
	if len(token) < 2 || token[0] != '\'' || token[len(token)-1] != '\'' {
		return "", errUnquoted
	}
	return token[1 : len(token)-1], nil
}

func isAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
