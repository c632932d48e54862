package profiling

import (
	"log-catalog/internal/shared/metrics"
)

var (
	metricProfiledCallDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProfiling,
			Name:      "call_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"function", "outcome"},
	)
)
