package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "divdex",
			Name:      "queries_total",
			Help:      "Total number of executed queries",
		},
		[]string{"direction", "diversity"},
	)

	AdmissionDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "divdex",
			Name:      "admission_decisions_total",
			Help:      "Candidate admission decisions by outcome",
		},
		[]string{"decision"}, // "accepted" / "rejected"
	)

	QuerySaturatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "divdex",
			Name:      "query_saturated_total",
			Help:      "Queries whose traversal stopped at the global cap",
		},
	)

	IndexDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "divdex",
			Name:      "index_documents",
			Help:      "Documents in the current index snapshot",
		},
	)
)

var queryMetricsRegistered bool

// RegisterQueryMetrics registers Prometheus query metrics. Must be called once from main.
func RegisterQueryMetrics() {
	if queryMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(AdmissionDecisionsTotal)
	prometheus.MustRegister(QuerySaturatedTotal)
	prometheus.MustRegister(IndexDocuments)
	queryMetricsRegistered = true
}
