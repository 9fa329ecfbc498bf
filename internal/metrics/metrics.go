package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "logistics_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "logistics_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	DatasetsIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logistics_datasets_ingested_total",
		Help: "Total datasets ingested",
	})
	AggregationDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "logistics_aggregation_duration_ms",
		Help:    "Order report computation duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	UnmatchedDistrictsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logistics_unmatched_districts_total",
		Help: "District names with no boundary feature across territory computations",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(DatasetsIngestedTotal)
	prometheus.MustRegister(AggregationDurationMs)
	prometheus.MustRegister(UnmatchedDistrictsTotal)
}

// Handler exposes the registered metrics for scraping; mounted on /metrics
func Handler() http.Handler { return promhttp.Handler() }
