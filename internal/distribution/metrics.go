package distribution

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	transfers     *prometheus.CounterVec
	batchDuration prometheus.Histogram
	inFlight      prometheus.Gauge
}

// NewMetrics registers the distribution collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		transfers: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "custodian",
				Subsystem: "distribution",
				Name:      "transfers_total",
				Help:      "Recipient transfers by outcome",
			},
			[]string{"status"},
		),
		batchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "custodian",
				Subsystem: "distribution",
				Name:      "batch_duration_seconds",
				Help:      "Wall time of a distribution batch",
				Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
			},
		),
		inFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "custodian",
				Subsystem: "distribution",
				Name:      "batches_in_flight",
				Help:      "Distribution batches currently running",
			},
		),
	}
}

func (m *Metrics) observeResult(result TransferResult) {
	status := StatusSuccess
	if !result.Success {
		status = StatusFailed
	}
	m.transfers.WithLabelValues(string(status)).Inc()
}
