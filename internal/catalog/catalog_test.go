package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-catalog/internal/models"
	"log-catalog/internal/parsers"
	"log-catalog/internal/shared/svcerrors"
)

var sampleLines = []string{
	"2012-09-13 16:04:22 DEBUG SID:34523 BID:1329 RID:65d33 'Starting new session'",
	"2012-09-13 16:04:30 DEBUG SID:34523 BID:1329 RID:54f22 'Authenticating User'",
	"2012-09-13 16:05:30 DEBUG SID:42111 BID:319 RID:65a23 'Starting new session'",
	"2012-09-13 16:04:50 ERROR SID:34523 BID:1329 RID:54ff3 'Missing Authentication token'",
	"2012-09-13 16:04:45 DEBUG SID:34523 BID:1329 RID:86472 'Retrying authentication'",
	"2012-09-13 16:05:31 DEBUG SID:42111 BID:319 RID:7a323 'Deleting asset with ID 543234'",
	"2012-09-13 16:05:32 WARN SID:42111 BID:319 RID:7a323 'Invalid asset ID'",
}

func newTestCatalog(t *testing.T) LogCatalog {
	t.Helper()
	c, err := NewLogCatalog(parsers.NewLineParser(time.UTC))
	require.NoError(t, err)
	return c
}

func newSampleCatalog(t *testing.T) LogCatalog {
	t.Helper()
	c := newTestCatalog(t)
	result := c.Ingest(context.Background(), strings.Join(sampleLines, "\n"))
	require.Equal(t, len(sampleLines), result.Ingested)
	require.Empty(t, result.Failures)
	return c
}

func at(clock string) time.Time {
	t, err := time.ParseInLocation(parsers.TimestampLayout, "2012-09-13 "+clock, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func descriptions(records []*models.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Description)
	}
	return out
}

func TestLogCatalog_SampleQueries(t *testing.T) {
	t.Parallel()

	c := newSampleCatalog(t)
	assert.Equal(t, 7, c.Len())

	warn := c.GetLogsByLogLevel("WARN")
	require.Len(t, warn, 1)
	assert.Equal(t, "Invalid asset ID", warn[0].Description)
	assert.Equal(t, "7a323", warn[0].RequestID)

	session := c.GetLogsBySession("42111")
	assert.Equal(t, []string{"Starting new session", "Deleting asset with ID 543234", "Invalid asset ID"}, descriptions(session))

	business := c.GetLogsByBusiness("1329")
	assert.Len(t, business, 4)

	debug := c.GetLogsByLogLevel("DEBUG")
	assert.Len(t, debug, 5)
}

func TestLogCatalog_DateRangeKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	c := newSampleCatalog(t)

	records, err := c.GetLogsByDateRange(at("16:04:22"), at("16:04:50"))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Starting new session",
		"Authenticating User",
		"Missing Authentication token",
		"Retrying authentication",
	}, descriptions(records))
}

func TestLogCatalog_DateRangeBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	c := newSampleCatalog(t)

	single, err := c.GetLogsByDateRange(at("16:05:32"), at("16:05:32"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Invalid asset ID"}, descriptions(single))

	none, err := c.GetLogsByDateRange(at("16:04:23"), at("16:04:29"))
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestLogCatalog_DateRangeRejectsInvertedRange(t *testing.T) {
	t.Parallel()

	c := newSampleCatalog(t)

	records, err := c.GetLogsByDateRange(at("16:05:00"), at("16:04:00"))

	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, ErrInvalidRange))
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidRange, svcErr.Code)
	assert.Equal(t, 400, svcErr.HttpStatusCode)
}

func TestLogCatalog_UnknownKeysReturnEmptySlices(t *testing.T) {
	t.Parallel()

	c := newSampleCatalog(t)

	for name, records := range map[string][]*models.Record{
		"level":    c.GetLogsByLogLevel("FATAL"),
		"business": c.GetLogsByBusiness("0"),
		"session":  c.GetLogsBySession("nope"),
	} {
		assert.NotNil(t, records, name)
		assert.Empty(t, records, name)
	}
}

func TestLogCatalog_EmptyCatalog(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.GetLogsByLogLevel("DEBUG"))
	records, err := c.GetLogsByDateRange(time.Time{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLogCatalog_IndexesAreCompleteAndSound(t *testing.T) {
	t.Parallel()

	c := newSampleCatalog(t)
	all, err := c.GetLogsByDateRange(time.Time{}, at("23:59:59"))
	require.NoError(t, err)
	require.Len(t, all, len(sampleLines))

	for _, r := range all {
		assert.Contains(t, c.GetLogsByLogLevel(string(r.Level)), r)
		assert.Contains(t, c.GetLogsByBusiness(r.BusinessID), r)
		assert.Contains(t, c.GetLogsBySession(r.SessionID), r)
	}
	for _, level := range models.Levels {
		for _, r := range c.GetLogsByLogLevel(string(level)) {
			assert.Equal(t, level, r.Level)
		}
	}
	for _, r := range c.GetLogsBySession("34523") {
		assert.Equal(t, "34523", r.SessionID)
	}
}

func TestLogCatalog_IngestSkipsBlankAndCollectsFailures(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	text := strings.Join([]string{
		sampleLines[0],
		"",
		"   ",
		"2012-09-13 16:04:30 TRACE SID:34523 BID:1329 RID:54f22 'Unknown level'",
		"not a log line",
		"  " + sampleLines[6] + "  ",
	}, "\n")

	result := c.Ingest(context.Background(), text)

	assert.Equal(t, 2, result.Ingested)
	assert.Equal(t, 2, result.SkippedBlank)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, 4, result.Failures[0].LineNumber)
	assert.Equal(t, parsers.ReasonLevel, result.Failures[0].Reason)
	assert.Equal(t, 5, result.Failures[1].LineNumber)
	assert.Equal(t, parsers.ReasonTokenCount, result.Failures[1].Reason)
	assert.Equal(t, 2, c.Len())
	assert.Len(t, c.GetLogsByLogLevel("WARN"), 1)
}

func TestLogCatalog_EmptyTextIngestsNothing(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	result := c.Ingest(context.Background(), "")

	assert.Equal(t, 0, result.Ingested)
	assert.Equal(t, 1, result.SkippedBlank)
	assert.NotNil(t, result.Failures)
	assert.Empty(t, result.Failures)
}

func TestLogCatalog_StoredRecordsFormatBackToInput(t *testing.T) {
	t.Parallel()

	parser := parsers.NewLineParser(time.UTC)
	c, err := NewLogCatalog(parser)
	require.NoError(t, err)
	c.Ingest(context.Background(), strings.Join(sampleLines, "\n"))

	all, err := c.GetLogsByDateRange(time.Time{}, at("23:59:59"))
	require.NoError(t, err)

	formatted := make([]string, 0, len(all))
	for _, r := range all {
		formatted = append(formatted, parser.Format(r))
	}
	assert.Equal(t, sampleLines, formatted)
}

func TestLogCatalog_RepeatedIngestKeepsDuplicates(t *testing.T) {
	t.Parallel()

	c := newSampleCatalog(t)

	c.Ingest(context.Background(), sampleLines[6])

	assert.Equal(t, 8, c.Len())
	assert.Len(t, c.GetLogsByLogLevel("WARN"), 2)
}

func TestLogCatalog_ConcurrentIngestAndQuery(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	const writers = 8
	const linesPerWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			lines := make([]string, 0, linesPerWriter)
			for i := 0; i < linesPerWriter; i++ {
				lines = append(lines, fmt.Sprintf("2012-09-13 16:04:22 INFO SID:s%d BID:b%d RID:r%d 'line %d'", w, w, i, i))
			}
			c.Ingest(context.Background(), strings.Join(lines, "\n"))
		}(w)
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < linesPerWriter; i++ {
				_ = c.GetLogsBySession(fmt.Sprintf("s%d", w))
				_, _ = c.GetLogsByDateRange(at("16:00:00"), at("17:00:00"))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, writers*linesPerWriter, c.Len())
	assert.Len(t, c.GetLogsByLogLevel("INFO"), writers*linesPerWriter)
	for w := 0; w < writers; w++ {
		assert.Len(t, c.GetLogsBySession(fmt.Sprintf("s%d", w)), linesPerWriter)
	}
}
