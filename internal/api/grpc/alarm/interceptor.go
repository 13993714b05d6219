package alarm

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// AuditInterceptor logs every AlarmModule call with its caller, outcome and duration.
// The logger is taken from base so the server's name and fields are kept.
func AuditInterceptor(base context.Context) grpc.UnaryServerInterceptor {
	log := logger.FromContext(base)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		started := time.Now()
		ctx = logger.ToContext(ctx, log)

		resp, err := handler(ctx, req)

		kvs := []any{
			"method", info.FullMethod,
			"actor", ActorFromContext(ctx).String(),
			"duration", time.Since(started),
		}

		if err != nil {
			logger.WarnKV(ctx, "Alarm call failed", append(kvs, "code", status.Code(err).String(), "error", err)...)
		} else {
			logger.DebugKV(ctx, "Alarm call served", kvs...)
		}

		return resp, err
	}
}
