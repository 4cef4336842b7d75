package metrics

import (
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	kaspaRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "network", "status"})
	kaspaRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// RPCClient tracks metrics for RPC calls to the kaspad node.
type RPCClient struct {
	network model.Network
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(network model.Network) *RPCClient {
	if network == "" {
		network = unknown
	}
	return &RPCClient{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	s := status(err)

	kaspaRPCRequestsTotal.WithLabelValues(operation, string(m.network), s).Inc()
	kaspaRPCRequestDuration.WithLabelValues(operation, string(m.network), s).Observe(time.Since(started).Seconds())
}
