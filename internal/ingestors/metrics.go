package ingestors

import (
	"log-catalog/internal/shared/metrics"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode, "source"},
	)
)

const (
	sourceRequest = "request"
	sourceFile    = "file"
)
