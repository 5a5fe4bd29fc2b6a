package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/kamil-urbanek/docpipe/internal/common"
)

// RequestIDInterceptor tags every RPC context with a request id and logs
// the call outcome with it.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := []any{
			"request_id", requestID,
			"method", info.FullMethod,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			attrs = append(attrs, "code", status.Code(err).String(), "error", err)
			logger.Error("rpc failed", attrs...)
		} else {
			logger.Info("rpc handled", attrs...)
		}
		return resp, err
	}
}
