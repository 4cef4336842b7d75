package metrics

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "explorer",
		Name:      "requests_total",
		Help:      "Count of explorer queries by outcome.",
	}, []string{"operation", "network", "status"})

	explorerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "explorer",
		Name:      "request_duration_seconds",
		Help:      "Duration of explorer queries.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
	}, []string{"operation", "network", "status"})
)

// Explorer tracks the outcome of explorer queries. Rejected and missing lookups are counted
// apart from failures.
type Explorer struct {
	network model.Network
}

func NewExplorer(network model.Network) *Explorer {
	if network == "" {
		network = unknown
	}
	return &Explorer{network: network}
}

func (m Explorer) Observe(operation string, err error, started time.Time) {
	s := status(err)
	switch {
	case errors.Is(err, model.ErrInvalidRequest):
		s = "invalid"
	case errors.Is(err, model.ErrNotFound):
		s = "not_found"
	}

	explorerRequestsTotal.WithLabelValues(operation, string(m.network), s).Inc()
	explorerRequestDuration.WithLabelValues(operation, string(m.network), s).Observe(time.Since(started).Seconds())
}
