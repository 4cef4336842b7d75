package metrics

import (
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tipRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tip_tracker",
		Name:      "refresh_total",
		Help:      "Count of chain tip refreshes.",
	}, []string{"network", "status"})

	tipRefreshDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tip_tracker",
		Name:      "refresh_duration_seconds",
		Help:      "Duration of chain tip refreshes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	tipBlueScore = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "tip_tracker",
		Name:      "blue_score",
		Help:      "Last observed virtual selected parent blue score.",
	}, []string{"network"})
)

type TipTracker struct {
	network model.Network
}

func NewTipTracker(network model.Network) *TipTracker {
	if network == "" {
		network = unknown
	}
	return &TipTracker{network: network}
}

// ObserveRefresh records one refresh; the gauge only moves on success.
func (m TipTracker) ObserveRefresh(err error, blueScore uint64, started time.Time) {
	s := status(err)
	tipRefreshTotal.WithLabelValues(string(m.network), s).Inc()
	tipRefreshDuration.WithLabelValues(string(m.network), s).Observe(time.Since(started).Seconds())
	if err == nil {
		tipBlueScore.WithLabelValues(string(m.network)).Set(float64(blueScore))
	}
}
