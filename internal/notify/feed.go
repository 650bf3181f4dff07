package notify

import (
	"context"
	"sync"

	"inventory-client/internal/clock"

	"github.com/google/uuid"
)

// Feed keeps the most recent notifications for the view to poll.
type Feed struct {
	mu       sync.RWMutex
	clock    clock.Clock
	capacity int
	entries  []Notification
}

func NewFeed(capacity int, clk clock.Clock) *Feed {
	if capacity < 1 {
		capacity = 1
	}
	return &Feed{clock: clk, capacity: capacity}
}

func (f *Feed) Notify(_ context.Context, n Notification) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.At.IsZero() {
		n.At = f.clock.Now()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, n)
	if len(f.entries) > f.capacity {
		f.entries = append([]Notification{}, f.entries[len(f.entries)-f.capacity:]...)
	}
}

// Recent returns up to limit notifications, newest first. A non-positive
// limit returns everything retained.
func (f *Feed) Recent(limit int) []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if limit <= 0 || limit > len(f.entries) {
		limit = len(f.entries)
	}
	out := make([]Notification, 0, limit)
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.entries[i])
	}
	return out
}
