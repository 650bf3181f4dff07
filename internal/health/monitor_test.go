package health

import (
	"context"
	"testing"
	"time"

	"inventory-client/internal/clock"
	"inventory-client/internal/gateway"
	"inventory-client/internal/models"
	apperrors "inventory-client/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockPinger is a mock implementation of Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Health(ctx context.Context) gateway.Response[models.HealthStatus] {
	args := m.Called(ctx)
	return args.Get(0).(gateway.Response[models.HealthStatus])
}

var epoch = time.Date(2024, 2, 2, 8, 0, 0, 0, time.UTC)

func TestCheck_Connected(t *testing.T) {
	pinger := new(MockPinger)
	pinger.On("Health", mock.Anything).Return(gateway.OK(models.HealthStatus{Status: "ok"})).Once()
	monitor := NewMonitor(pinger, clock.Fake(epoch), 30*time.Second, zap.NewNop())

	assert.Nil(t, monitor.Status().Connected)

	status := monitor.Check(context.Background())

	require.NotNil(t, status.Connected)
	assert.True(t, *status.Connected)
	assert.Equal(t, "ok", status.Server)
	assert.Equal(t, epoch, status.LastChecked)
	assert.Equal(t, status, monitor.Status())
}

func TestCheck_Disconnected(t *testing.T) {
	pinger := new(MockPinger)
	pinger.On("Health", mock.Anything).Return(gateway.Fail[models.HealthStatus](apperrors.NewNetworkError(nil))).Once()
	monitor := NewMonitor(pinger, clock.Fake(epoch), 30*time.Second, zap.NewNop())

	status := monitor.Check(context.Background())

	require.NotNil(t, status.Connected)
	assert.False(t, *status.Connected)
	assert.Equal(t, "network error occurred", status.Error)
}

func TestRun_PollsOnInterval(t *testing.T) {
	pinger := new(MockPinger)
	pinger.On("Health", mock.Anything).Return(gateway.OK(models.HealthStatus{Status: "ok"})).Once()
	pinger.On("Health", mock.Anything).Return(gateway.Fail[models.HealthStatus](apperrors.NewHTTPError(503, "maintenance")))

	clk := clock.Fake(epoch)
	monitor := NewMonitor(pinger, clk, 30*time.Second, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		monitor.Run(ctx)
		close(done)
	}()

	clk.WaitForTimers(1)
	require.Eventually(t, func() bool {
		s := monitor.Status()
		return s.Connected != nil && *s.Connected
	}, time.Second, 5*time.Millisecond)

	clk.Advance(30 * time.Second)
	require.Eventually(t, func() bool {
		s := monitor.Status()
		return s.Connected != nil && !*s.Connected
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "maintenance", monitor.Status().Error)

	cancel()
	<-done
}
