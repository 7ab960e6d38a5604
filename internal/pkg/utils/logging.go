package utils

import (
	"carebook-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogBusinessEvent records a domain-level fact (booking made, profile
// updated) separately from request plumbing logs.
func LogBusinessEvent(log *zap.Logger, event, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingBusinessTypeKey, event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
	}
	allFields = append(allFields, fields...)
	log.Info("Business event", allFields...)
}
