package notify

import (
	"context"

	"inventory-client/pkg/logger"

	"go.uber.org/zap"
)

// LogSink writes notifications to the application log.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(ctx context.Context, n Notification) {
	fields := []zap.Field{
		zap.String("operation", n.Operation),
		zap.String("title", n.Title),
		zap.String("description", n.Description),
	}
	if requestID := logger.RequestIDFromContext(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	if n.Level == LevelError {
		s.logger.Warn("Notification", fields...)
		return
	}
	s.logger.Info("Notification", fields...)
}
