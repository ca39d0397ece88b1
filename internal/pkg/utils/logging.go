package utils

import (
	"cataractcare-service/internal/pkg/constvars"
	"context"
	"time"

	"go.uber.org/zap"
)

// RequestIDFromContext returns the request ID stored by the request ID
// middleware, or an empty string outside of a request.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBusinessEventKey, event),
		zap.Time(constvars.LoggingTimestampKey, time.Now()),
	}
	allFields = append(allFields, fields...)

	logger.Info("Business event occurred", allFields...)
}
