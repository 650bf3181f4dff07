package logger

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	upstreamKey  contextKey = "upstream"
)

// New builds the process logger. Production logs JSON at info level,
// every other environment logs colored console output at debug level.
func New(environment string) *zap.Logger {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build(zap.Fields(zap.String("service", "inventory-dashboard")))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return logger
}

// WithRequestID stores the correlation id so outbound calls can forward it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the correlation id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// Upstream tallies the remote API calls made while serving one request.
type Upstream struct {
	mu       sync.Mutex
	calls    int
	failures int
	elapsed  time.Duration
}

// WithUpstream attaches a fresh tally to ctx.
func WithUpstream(ctx context.Context) (context.Context, *Upstream) {
	u := &Upstream{}
	return context.WithValue(ctx, upstreamKey, u), u
}

// RecordUpstream adds one remote call to the tally carried by ctx, if any.
func RecordUpstream(ctx context.Context, ok bool, latency time.Duration) {
	if ctx == nil {
		return
	}
	u, _ := ctx.Value(upstreamKey).(*Upstream)
	if u == nil {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls++
	if !ok {
		u.failures++
	}
	u.elapsed += latency
}

// Snapshot returns the calls, failed calls and total time spent upstream.
func (u *Upstream) Snapshot() (calls, failures int, elapsed time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls, u.failures, u.elapsed
}

// GinMiddleware logs one line per view request, including how many remote
// API calls it caused. Server errors log at error level, client errors at warn.
func GinMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		ctx, upstream := WithUpstream(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// Set by the request id middleware further down the chain
		requestID := c.GetString("request_id")
		if requestID == "" {
			requestID = c.GetHeader("X-Request-ID")
		}

		calls, failures, elapsed := upstream.Snapshot()
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("upstream_calls", calls),
			zap.Int("upstream_failures", failures),
			zap.Duration("upstream_latency", elapsed),
		}
		if requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}
		if errs := c.Errors.String(); errs != "" {
			fields = append(fields, zap.String("errors", errs))
		}

		switch {
		case status >= 500:
			logger.Error("HTTP Request", fields...)
		case status >= 400:
			logger.Warn("HTTP Request", fields...)
		default:
			logger.Info("HTTP Request", fields...)
		}
	}
}
