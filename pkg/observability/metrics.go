package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total number of HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payrecon_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "code"},
	)

	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payrecon_http_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// ActiveRequests tracks currently active requests
	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "payrecon_http_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"method"},
	)

	// ReportFiles tracks uploaded report files by processing outcome
	ReportFiles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payrecon_report_files_total",
			Help: "Report files processed, labelled by outcome",
		},
		[]string{"outcome"},
	)

	// RowsSkipped tracks transaction rows dropped during extraction
	RowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payrecon_rows_skipped_total",
			Help: "Transaction rows dropped during extraction, labelled by reason",
		},
		[]string{"reason"},
	)

	// UnknownStoreRows tracks rows that resolved to the Unknown bucket
	UnknownStoreRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payrecon_unknown_store_rows_total",
			Help: "Transaction rows whose store key resolved to the Unknown bucket",
		},
	)
)
