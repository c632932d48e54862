package catalog

import (
	"context"
	"time"

	"log-catalog/internal/models"
	"log-catalog/internal/profiling"
)

const (
	ProfileIngest             = "ingest"
	ProfileGetLogsByLogLevel  = "getLogsByLogLevel"
	ProfileGetLogsByBusiness  = "getLogsByBusiness"
	ProfileGetLogsBySession   = "getLogsBySession"
	ProfileGetLogsByDateRange = "getLogsByDateRange"
)

// ProfileSource exposes execution-time statistics of profiled operations.
type ProfileSource interface {
	Profiles() []profiling.Summary
}

type ingestRequest struct {
	ctx     context.Context
	rawText string
}

// ProfiledCatalog is a LogCatalog that times every operation of an inner catalog.
type ProfiledCatalog struct {
	inner LogCatalog

	ingest      *profiling.ProfiledFunc[ingestRequest, *IngestResult]
	byLevel     *profiling.ProfiledFunc[string, []*models.Record]
	byBusiness  *profiling.ProfiledFunc[string, []*models.Record]
	bySession   *profiling.ProfiledFunc[string, []*models.Record]
	byDateRange *profiling.ProfiledFunc[DateRange, []*models.Record]
}

func NewProfiledCatalog(inner LogCatalog, opts ...profiling.Option) *ProfiledCatalog {
	return &ProfiledCatalog{
		inner: inner,
		ingest: profiling.Wrap(ProfileIngest, func(req ingestRequest) (*IngestResult, error) {
			return inner.Ingest(req.ctx, req.rawText), nil
		}, opts...),
		byLevel:    profiling.Wrap(ProfileGetLogsByLogLevel, noError(inner.GetLogsByLogLevel), opts...),
		byBusiness: profiling.Wrap(ProfileGetLogsByBusiness, noError(inner.GetLogsByBusiness), opts...),
		bySession:  profiling.Wrap(ProfileGetLogsBySession, noError(inner.GetLogsBySession), opts...),
		byDateRange: profiling.Wrap(ProfileGetLogsByDateRange, func(r DateRange) ([]*models.Record, error) {
			return inner.GetLogsByDateRange(r.Start, r.End)
		}, opts...),
	}
}

func (c *ProfiledCatalog) Ingest(ctx context.Context, rawText string) *IngestResult {
	result, _ := c.ingest.Invoke(ingestRequest{ctx: ctx, rawText: rawText})
	return result
}

func (c *ProfiledCatalog) GetLogsByLogLevel(level string) []*models.Record {
	records, _ := c.byLevel.Invoke(level)
	return records
}

func (c *ProfiledCatalog) GetLogsByBusiness(businessID string) []*models.Record {
	records, _ := c.byBusiness.Invoke(businessID)
	return records
}

func (c *ProfiledCatalog) GetLogsBySession(sessionID string) []*models.Record {
	records, _ := c.bySession.Invoke(sessionID)
	return records
}

func (c *ProfiledCatalog) GetLogsByDateRange(start, end time.Time) ([]*models.Record, error) {
	return c.byDateRange.Invoke(DateRange{Start: start, End: end})
}

func (c *ProfiledCatalog) Len() int {
	return c.inner.Len()
}

// Profiles returns one summary per operation, in a fixed order.
func (c *ProfiledCatalog) Profiles() []profiling.Summary {
	return []profiling.Summary{
		c.ingest.Summary(),
		c.byLevel.Summary(),
		c.byBusiness.Summary(),
		c.bySession.Summary(),
		c.byDateRange.Summary(),
	}
}

func noError(lookup func(string) []*models.Record) func(string) ([]*models.Record, error) {
	return func(key string) ([]*models.Record, error) {
		return lookup(key), nil
	}
}
