package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"log-catalog/internal/indexes"
	"log-catalog/internal/models"
	"log-catalog/internal/parsers"
	"log-catalog/internal/shared/loggers"
	"log-catalog/internal/shared/metrics"
)

const (
	IndexLevel      = "level"
	IndexBusinessID = "business_id"
	IndexSessionID  = "session_id"

	queryDateRange = "date_range"
)

// IngestResult reports a best-effort ingestion: valid lines are stored even when other lines in
// the same text are rejected.
type IngestResult struct {
	Ingested     int
	SkippedBlank int
	Failures     []*parsers.ParseError
}

// DateRange is an inclusive time interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// LogCatalog stores parsed log records and answers equality queries by level, business and
// session through indexes, and date range queries through a scan. Query results keep ingestion
// order, which is not necessarily chronological.
//
//go:generate mockgen -source=catalog.go -destination=./mocks/catalog_mock.go -package=mocks
type LogCatalog interface {
	// Ingest parses rawText line by line, skipping blank lines and collecting parse failures.
	Ingest(ctx context.Context, rawText string) *IngestResult
	GetLogsByLogLevel(level string) []*models.Record
	GetLogsByBusiness(businessID string) []*models.Record
	GetLogsBySession(sessionID string) []*models.Record
	// GetLogsByDateRange returns records with start <= timestamp <= end.
	GetLogsByDateRange(start, end time.Time) ([]*models.Record, error)
	Len() int
}

type logCatalog struct {
	parser parsers.LineParser

	// store has no locking of its own; Ingest takes the write lock, queries the read lock.
	mu    sync.RWMutex
	store *indexes.Store[models.Record]
}

func NewLogCatalog(parser parsers.LineParser) (LogCatalog, error) {
	store, err := indexes.NewStore(
		indexes.Definition[models.Record]{Name: IndexLevel, Key: func(r *models.Record) string { return string(r.Level) }},
		indexes.Definition[models.Record]{Name: IndexBusinessID, Key: func(r *models.Record) string { return r.BusinessID }},
		indexes.Definition[models.Record]{Name: IndexSessionID, Key: func(r *models.Record) string { return r.SessionID }},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create record store: %w", err)
	}
	return &logCatalog{parser: parser, store: store}, nil
}

func (c *logCatalog) Ingest(ctx context.Context, rawText string) *IngestResult {
	logger := loggers.Ctx(ctx)
	result := &IngestResult{Failures: make([]*parsers.ParseError, 0)}

	// parse everything first so the write lock covers only the inserts
	var records []*models.Record
	for i, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			result.SkippedBlank++
			continue
		}

		record, err := c.parser.Parse(i+1, line)
		if err != nil {
			parseErr, ok := parsers.AsParseError(err)
			if !ok {
				parseErr = &parsers.ParseError{LineNumber: i + 1, Line: line, Reason: parsers.ReasonUnknown, Cause: err}
			}
			logger.Warn().
				Err(parseErr.Cause).
				Int(loggers.FieldLineNumber, parseErr.LineNumber).
				Str(loggers.FieldParseReason, string(parseErr.Reason)).
				Msg("skipping malformed log line")
			metricLinesIngestedTotal.WithLabelValues(string(parseErr.Reason)).Inc()
			result.Failures = append(result.Failures, parseErr)
			continue
		}
		records = append(records, record)
	}

	c.mu.Lock()
	for _, record := range records {
		c.store.Insert(record)
	}
	stored := c.store.Len()
	c.mu.Unlock()

	result.Ingested = len(records)
	metricLinesIngestedTotal.WithLabelValues(metrics.ValueNoError).Add(float64(len(records)))
	metricRecordsStored.Set(float64(stored))

	logger.Debug().
		Int(loggers.FieldRecordCount, result.Ingested).
		Int(loggers.FieldFailureCount, len(result.Failures)).
		Msgf("ingested %d lines, %d stored in catalog", result.Ingested, stored)
	return result
}

func (c *logCatalog) GetLogsByLogLevel(level string) []*models.Record {
	return c.mustLookup(IndexLevel, level)
}

func (c *logCatalog) GetLogsByBusiness(businessID string) []*models.Record {
	return c.mustLookup(IndexBusinessID, businessID)
}

func (c *logCatalog) GetLogsBySession(sessionID string) []*models.Record {
	return c.mustLookup(IndexSessionID, sessionID)
}

func (c *logCatalog) GetLogsByDateRange(start, end time.Time) ([]*models.Record, error) {
	metricQueriesTotal.WithLabelValues(queryDateRange).Inc()
	if start.After(end) {
		return nil, errInvalidRange(start, end)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Scan(func(r *models.Record) bool {
		return !r.Timestamp.Before(start) && !r.Timestamp.After(end)
	}), nil
}

func (c *logCatalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store.Len()
}

// mustLookup panics on an unknown index: the catalog defines its indexes at construction, so
// reaching that error is a programming mistake.
func (c *logCatalog) mustLookup(indexName, key string) []*models.Record {
	metricQueriesTotal.WithLabelValues(indexName).Inc()

	c.mu.RLock()
	defer c.mu.RUnlock()

	records, err := c.store.Lookup(indexName, key)
	if err != nil {
		panic(err)
	}
	return records
}
