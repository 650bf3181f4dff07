package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Environments(t *testing.T) {
	dev := New("development")
	require.NotNil(t, dev)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))

	prod := New("production")
	require.NotNil(t, prod)
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))
	assert.True(t, prod.Core().Enabled(zap.InfoLevel))
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestGinMiddleware_LogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/ping", func(c *gin.Context) {
		c.Set("request_id", "abc")
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping?x=1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "HTTP Request", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, "x=1", fields["query"])
	assert.Equal(t, "abc", fields["request_id"])
	assert.Equal(t, int64(0), fields["upstream_calls"])
}

func TestGinMiddleware_TalliesUpstreamCalls(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/items/:id", func(c *gin.Context) {
		ctx := c.Request.Context()
		RecordUpstream(ctx, true, 20*time.Millisecond)
		RecordUpstream(ctx, false, 30*time.Millisecond)
		c.Status(http.StatusBadGateway)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/items/42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.ErrorLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "/items/:id", fields["route"])
	assert.Equal(t, int64(2), fields["upstream_calls"])
	assert.Equal(t, int64(1), fields["upstream_failures"])
	assert.Equal(t, 50*time.Millisecond, fields["upstream_latency"])
}

func TestRecordUpstream_WithoutTally(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordUpstream(context.Background(), true, time.Second)
	})

	ctx, tally := WithUpstream(context.Background())
	RecordUpstream(ctx, true, time.Second)
	calls, failures, elapsed := tally.Snapshot()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, failures)
	assert.Equal(t, time.Second, elapsed)
}
