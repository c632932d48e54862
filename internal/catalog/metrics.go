package catalog

import (
	"log-catalog/internal/shared/metrics"
)

var (
	// metricLinesIngestedTotal counts ingested lines; reason is empty for stored lines and the
	// parse failure reason (token_count, timestamp, level, ...) for rejected ones.
	metricLinesIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCatalog,
			Name:      "lines_ingested_total",
		},
		[]string{"reason"},
	)

	metricRecordsStored = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCatalog,
			Name:      "records_stored",
		},
	)
)

var metricQueriesTotal = metrics.NewCounterVec(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubCatalog,
		Name:      "queries_total",
	},
	[]string{"query"},
)
