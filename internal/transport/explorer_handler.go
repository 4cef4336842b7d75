// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer

	database Pinger
	node     Pinger
	logger   *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler reporting the state of the database and the node.
func NewExplorerHandler(database, node Pinger, logger *zap.Logger) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{
		database: database,
		node:     node,
		logger:   logger.Named("health"),
	}
}

// Health reports server health. The database is required; an unreachable or unsynced node only
// degrades the node fallback and is reported in the description.
func (h *ExplorerHandler) Health(ctx context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	if err := h.database.Ping(ctx); err != nil {
		h.logger.Warn("database unreachable", zap.Error(err))
		return nil, status.Error(codes.Unavailable, "database unreachable")
	}

	description := ""
	if h.node != nil {
		if err := h.node.Ping(ctx); err != nil {
			h.logger.Warn("node unavailable", zap.Error(err))
			description = "node: " + err.Error()
		}
	}

	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: description,
	}, nil
}
