package ingestors_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"log-catalog/internal/catalog"
	catalogmocks "log-catalog/internal/catalog/mocks"
	"log-catalog/internal/ingestors"
	"log-catalog/internal/parsers"
	"log-catalog/internal/shared/filestorages"
	storagemocks "log-catalog/internal/shared/filestorages/mocks"
	"log-catalog/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testMaxBatchBytes = 1024
	warnLine          = "2012-09-13 16:05:32 WARN SID:42111 BID:319 RID:7a323 'Invalid asset ID'"
)

func newService(t *testing.T) (ingestors.IngestionService, *catalogmocks.MockLogCatalog, *storagemocks.MockFileStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logCatalog := catalogmocks.NewMockLogCatalog(ctrl)
	logSource := storagemocks.NewMockFileStorage(ctrl)
	return ingestors.NewIngestionService(logCatalog, logSource, testMaxBatchBytes), logCatalog, logSource
}

func requireServiceError(t *testing.T, err error, code string, status int) {
	t.Helper()
	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, code, svcErr.Code)
	assert.Equal(t, status, svcErr.HttpStatusCode)
}

func TestIngestText_ErrValidationFailed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        io.Reader
	}{
		{name: "unsupported content type", contentType: "application/json", body: strings.NewReader(warnLine)},
		{name: "missing content type", contentType: "", body: strings.NewReader(warnLine)},
		{name: "nil body", contentType: "text/plain", body: nil},
		{name: "empty body", contentType: "text/plain", body: strings.NewReader("")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, _, _ := newService(t)

			result, err := service.IngestText(context.Background(), "key1", tt.contentType, tt.body)

			requireServiceError(t, err, "ING_1000", 400)
			assert.Nil(t, result, "expected nil result on error")
		})
	}
}

func TestIngestText_ErrBatchTooLarge(t *testing.T) {
	t.Parallel()

	service, _, _ := newService(t)
	body := bytes.NewReader(make([]byte, testMaxBatchBytes+1))

	result, err := service.IngestText(context.Background(), "key1", "text/plain", body)

	requireServiceError(t, err, "ING_1002", 413)
	assert.Nil(t, result)
}

func TestIngestText_BatchAtLimitIsAccepted(t *testing.T) {
	t.Parallel()

	service, logCatalog, _ := newService(t)
	text := strings.Repeat("x", testMaxBatchBytes)
	logCatalog.EXPECT().Ingest(gomock.Any(), text).Return(&catalog.IngestResult{Failures: []*parsers.ParseError{}})

	_, err := service.IngestText(context.Background(), "", "text/plain", strings.NewReader(text))

	require.NoError(t, err)
}

func TestIngestText_Success(t *testing.T) {
	t.Parallel()

	service, logCatalog, _ := newService(t)
	failure := &parsers.ParseError{LineNumber: 2, Line: "garbage", Reason: parsers.ReasonTokenCount}
	logCatalog.EXPECT().
		Ingest(gomock.Any(), warnLine+"\ngarbage\n").
		Return(&catalog.IngestResult{Ingested: 1, SkippedBlank: 1, Failures: []*parsers.ParseError{failure}})

	result, err := service.IngestText(context.Background(), " key1 ", "text/plain; charset=utf-8", strings.NewReader(warnLine+"\ngarbage\n"))

	require.NoError(t, err)
	assert.Equal(t, "key1", result.BatchID)
	assert.Equal(t, 1, result.Ingested)
	assert.Equal(t, 1, result.SkippedBlank)
	assert.Equal(t, []*parsers.ParseError{failure}, result.Failures)
}

func TestIngestText_GeneratesBatchIDWithoutIdempotencyKey(t *testing.T) {
	t.Parallel()

	service, logCatalog, _ := newService(t)
	logCatalog.EXPECT().Ingest(gomock.Any(), warnLine).Return(&catalog.IngestResult{Ingested: 1}).Times(2)

	first, err := service.IngestText(context.Background(), "", "text/plain", strings.NewReader(warnLine))
	require.NoError(t, err)
	second, err := service.IngestText(context.Background(), "", "text/plain", strings.NewReader(warnLine))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.BatchID, "batch_"), first.BatchID)
	assert.NotEqual(t, first.BatchID, second.BatchID)
}

func TestIngestText_ErrBatchAlreadyProcessed(t *testing.T) {
	t.Parallel()

	service, logCatalog, _ := newService(t)
	logCatalog.EXPECT().Ingest(gomock.Any(), warnLine).Return(&catalog.IngestResult{Ingested: 1}).Times(1)

	_, err := service.IngestText(context.Background(), "key1", "text/plain", strings.NewReader(warnLine))
	require.NoError(t, err)

	result, err := service.IngestText(context.Background(), "key1", "text/plain", strings.NewReader(warnLine))

	requireServiceError(t, err, "ING_1001", 409)
	assert.Nil(t, result)
}

func TestIngestText_RejectedBatchDoesNotConsumeKey(t *testing.T) {
	t.Parallel()

	service, logCatalog, _ := newService(t)
	logCatalog.EXPECT().Ingest(gomock.Any(), warnLine).Return(&catalog.IngestResult{Ingested: 1})

	_, err := service.IngestText(context.Background(), "key1", "application/json", strings.NewReader(warnLine))
	requireServiceError(t, err, "ING_1000", 400)

	_, err = service.IngestText(context.Background(), "key1", "text/plain", strings.NewReader(warnLine))
	require.NoError(t, err)
}

func TestIngestText_ConcurrentDuplicateKeysIngestOnce(t *testing.T) {
	t.Parallel()

	service, logCatalog, _ := newService(t)
	logCatalog.EXPECT().Ingest(gomock.Any(), warnLine).Return(&catalog.IngestResult{Ingested: 1}).Times(1)

	var conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := service.IngestText(context.Background(), "same", "text/plain", strings.NewReader(warnLine)); err != nil {
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(9), conflicts.Load())
}

func TestIngestFile_Success(t *testing.T) {
	t.Parallel()

	service, logCatalog, logSource := newService(t)
	logSource.EXPECT().Get(gomock.Any(), "seed/sample.log").Return(io.NopCloser(strings.NewReader(warnLine)), nil)
	logCatalog.EXPECT().Ingest(gomock.Any(), warnLine).Return(&catalog.IngestResult{Ingested: 1})

	result, err := service.IngestFile(context.Background(), "seed/sample.log")

	require.NoError(t, err)
	assert.Equal(t, "file:seed/sample.log", result.BatchID)
	assert.Equal(t, 1, result.Ingested)
}

func TestIngestFile_IngestsEachKeyOnce(t *testing.T) {
	t.Parallel()

	service, logCatalog, logSource := newService(t)
	logSource.EXPECT().Get(gomock.Any(), "sample.log").Return(io.NopCloser(strings.NewReader(warnLine)), nil).Times(1)
	logCatalog.EXPECT().Ingest(gomock.Any(), warnLine).Return(&catalog.IngestResult{Ingested: 1}).Times(1)

	_, err := service.IngestFile(context.Background(), "sample.log")
	require.NoError(t, err)

	_, err = service.IngestFile(context.Background(), "sample.log")
	requireServiceError(t, err, "ING_1001", 409)
}

func TestIngestFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		getErr     error
		wantCode   string
		wantStatus int
	}{
		{name: "not found", getErr: fmt.Errorf("%w: %q", filestorages.ErrFileNotFound, "missing.log"), wantCode: "ING_1003", wantStatus: 400},
		{name: "invalid key", getErr: fmt.Errorf("%w: escapes root", filestorages.ErrInvalidKey), wantCode: "ING_1003", wantStatus: 400},
		{name: "io failure", getErr: errors.New("permission denied"), wantCode: "ING_9000", wantStatus: 500},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, _, logSource := newService(t)
			logSource.EXPECT().Get(gomock.Any(), "missing.log").Return(nil, tt.getErr).Times(2)

			result, err := service.IngestFile(context.Background(), "missing.log")
			requireServiceError(t, err, tt.wantCode, tt.wantStatus)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.getErr)

			// a failed read releases the key so the file can be retried
			_, err = service.IngestFile(context.Background(), "missing.log")
			requireServiceError(t, err, tt.wantCode, tt.wantStatus)
		})
	}
}
