package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DocumentsIngested = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "legalease", Name: "documents_ingested_total", Help: "Number of documents successfully ingested."},
	)
	IngestFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "legalease", Name: "ingest_failures_total", Help: "Number of failed ingestions by pipeline stage."},
		[]string{"stage"},
	)
	StorageUploadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "legalease", Name: "storage_upload_failures_total", Help: "Number of best-effort storage uploads that returned no URL."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "legalease", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "legalease", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(DocumentsIngested)
	reg.MustRegister(IngestFailures)
	reg.MustRegister(StorageUploadFailures)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
