package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"log-catalog/internal/catalog"
	"log-catalog/internal/parsers"
	"log-catalog/internal/shared/filestorages"
	"log-catalog/internal/shared/loggers"
	"log-catalog/internal/shared/metrics"
	"log-catalog/internal/shared/svcerrors"
	"log-catalog/internal/shared/ulid"
)

const (
	ContentTypeText = "text/plain"

	fileKeyPrefix = "file:"
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID      string
	Ingested     int
	SkippedBlank int
	Failures     []*parsers.ParseError
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestText reads a plain text batch of log lines from r and adds the valid ones to the catalog.
	// A non-empty idempotencyKey becomes the batch ID and may only be used once.
	IngestText(ctx context.Context, idempotencyKey string, contentType string, r io.Reader) (*IngestResult, error)
	// IngestFile loads a log file from the log source. Each key is ingested at most once.
	IngestFile(ctx context.Context, key string) (*IngestResult, error)
}

type ingestionService struct {
	logCatalog    catalog.LogCatalog
	logSource     filestorages.FileStorage
	maxBatchBytes int

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewIngestionService(logCatalog catalog.LogCatalog, logSource filestorages.FileStorage, maxBatchBytes int) IngestionService {
	return &ingestionService{
		logCatalog:    logCatalog,
		logSource:     logSource,
		maxBatchBytes: maxBatchBytes,
		seen:          make(map[string]struct{}),
	}
}

func (s *ingestionService) IngestText(ctx context.Context, idempotencyKey string, contentType string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting batch with idempotency key: %s, content type: %s", idempotencyKey, contentType)

	text, err := s.validateBatch(contentType, r)
	if err != nil {
		countBatch(err, sourceRequest)
		return nil, err
	}

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewBatchID()
	} else if err := s.reserve(batchID); err != nil {
		countBatch(err, sourceRequest)
		return nil, err
	}

	result := s.ingest(ctx, batchID, text)
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError, sourceRequest).Inc()
	return result, nil
}

func (s *ingestionService) IngestFile(ctx context.Context, key string) (*IngestResult, error) {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldSourceKey, key).Logger()

	batchID := fileKeyPrefix + key
	if err := s.reserve(batchID); err != nil {
		countBatch(err, sourceFile)
		return nil, err
	}

	text, err := s.readFile(ctx, key)
	if err != nil {
		s.release(batchID)
		countBatch(err, sourceFile)
		return nil, err
	}

	result := s.ingest(logger.WithContext(ctx), batchID, text)
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError, sourceFile).Inc()
	return result, nil
}

func (s *ingestionService) validateBatch(contentType string, r io.Reader) (string, error) {
	if !strings.Contains(strings.ToLower(contentType), ContentTypeText) {
		return "", errValidationFailed(fmt.Sprintf("unsupported content type: %q, expected %s", contentType, ContentTypeText), nil)
	}

	// Handle nil reader
	if r == nil {
		return "", errValidationFailed("empty request body", nil)
	}

	buf, err := s.readWithLimit(r, s.maxBatchBytes)
	if err != nil {
		return "", err
	}
	if len(buf) == 0 {
		return "", errValidationFailed("empty request body", nil)
	}
	return string(buf), nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}

	// If we read more than max bytes, the batch is too large
	if len(buf) > max {
		return nil, errBatchTooLarge(max)
	}
	return buf, nil
}

func (s *ingestionService) readFile(ctx context.Context, key string) (string, error) {
	rc, err := s.logSource.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) || errors.Is(err, filestorages.ErrInvalidKey) {
			return "", errLogFileNotFound(err)
		}
		return "", errInternalLogSourceFailed(err)
	}
	defer rc.Close()

	buf, err := io.ReadAll(rc)
	if err != nil {
		return "", errInternalLogSourceFailed(err)
	}
	return string(buf), nil
}

func (s *ingestionService) ingest(ctx context.Context, batchID string, text string) *IngestResult {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldBatchID, batchID).Logger()
	catalogResult := s.logCatalog.Ingest(logger.WithContext(ctx), text)

	logger.Info().
		Int(loggers.FieldRecordCount, catalogResult.Ingested).
		Int(loggers.FieldFailureCount, len(catalogResult.Failures)).
		Msg("ingested log batch")

	return &IngestResult{
		BatchID:      batchID,
		Ingested:     catalogResult.Ingested,
		SkippedBlank: catalogResult.SkippedBlank,
		Failures:     catalogResult.Failures,
	}
}

// reserve marks an idempotency key as used before its batch is ingested, so that two concurrent
// requests with the same key cannot both pass.
func (s *ingestionService) reserve(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[key]; ok {
		return errBatchAlreadyProcessed(key)
	}
	s.seen[key] = struct{}{}
	return nil
}

func (s *ingestionService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seen, key)
}

func countBatch(err error, source string) {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	metricBatchIngestedTotal.WithLabelValues(svcErr.Code, source).Inc()
}
