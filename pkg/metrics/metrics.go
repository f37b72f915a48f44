// Package metrics exposes Prometheus collectors for the reasoning system.
// Collectors are created per Metrics value and registered on the caller's
// registerer, so independent systems (and tests) never collide.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors updated by the query façade.
type Metrics struct {
	InsertsTotal       prometheus.Counter
	RemovalsTotal      prometheus.Counter
	RejectedTotal      *prometheus.CounterVec
	QueriesTotal       *prometheus.CounterVec
	QueryErrorsTotal   *prometheus.CounterVec
	QueryDurationMicro prometheus.Histogram
	Regions            prometheus.Gauge
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered, which is convenient in tests.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		InsertsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "srs_inserts_total",
			Help: "Total number of regions inserted",
		}),
		RemovalsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "srs_removals_total",
			Help: "Total number of regions removed",
		}),
		RejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "srs_rejected_total",
			Help: "Inserts and removals rejected, by reason",
		}, []string{"reason"}),
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "srs_queries_total",
			Help: "Two-object queries answered, by query type",
		}, []string{"type"}),
		QueryErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "srs_query_errors_total",
			Help: "Two-object queries that failed, by reason",
		}, []string{"reason"}),
		QueryDurationMicro: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "srs_query_duration_us",
			Help:    "Two-object query duration in microseconds",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		}),
		Regions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "srs_regions",
			Help: "Number of regions currently stored",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range m.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.InsertsTotal,
		m.RemovalsTotal,
		m.RejectedTotal,
		m.QueriesTotal,
		m.QueryErrorsTotal,
		m.QueryDurationMicro,
		m.Regions,
	}
}
