// Package query keeps the product list and the inventory overview in
// sync with the server. Each stream carries a generation counter: only
// the response to the most recently issued request is ever applied.
package query

import (
	"context"
	"sync"
	"time"

	"inventory-client/internal/clock"
	"inventory-client/internal/gateway"
	"inventory-client/internal/models"
	"inventory-client/internal/notify"
	"inventory-client/internal/store"

	"go.uber.org/zap"
)

// Source is the part of the remote API the coordinator reads from.
type Source interface {
	ListProducts(ctx context.Context, spec models.QuerySpec) gateway.Response[[]models.Product]
	Categories(ctx context.Context) gateway.Response[[]string]
	InventoryOverview(ctx context.Context) gateway.Response[models.InventoryOverview]
	Alerts(ctx context.Context) gateway.Response[[]models.InventoryAlert]
}

// Outcome reports what happened to one fetch.
type Outcome struct {
	Generation uint64 `json:"generation"`
	Applied    bool   `json:"applied"`
}

type stream uint64

func (s *stream) next() uint64 {
	*s++
	return uint64(*s)
}

func (s stream) current(generation uint64) bool {
	return uint64(s) == generation
}

// Coordinator owns the current filter parameters and the fetch streams.
type Coordinator struct {
	source Source
	state  *store.Store
	sink   notify.Sink
	clock  clock.Clock
	window time.Duration
	logger *zap.Logger

	mu         sync.Mutex
	spec       models.QuerySpec
	products   stream
	categories stream
	inventory  stream
	alerts     stream
	pending    *clock.Timer
	closed     bool
}

// New creates a coordinator. window is the debounce applied by SetParams.
func New(source Source, state *store.Store, sink notify.Sink, clk clock.Clock, window time.Duration, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		source: source,
		state:  state,
		sink:   sink,
		clock:  clk,
		window: window,
		logger: logger,
	}
}

// Params returns the most recently requested filter parameters.
func (c *Coordinator) Params() models.QuerySpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spec
}

// SetParams records new filter parameters and schedules a fetch once no
// further change arrives within the debounce window.
func (c *Coordinator) SetParams(spec models.QuerySpec) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.spec = spec
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	if c.window <= 0 {
		c.mu.Unlock()
		c.Fetch(context.Background(), spec)
		return
	}

	var timer *clock.Timer
	timer = c.clock.AfterFunc(c.window, func() {
		c.mu.Lock()
		if c.pending != timer || c.closed {
			c.mu.Unlock()
			return
		}
		c.pending = nil
		c.mu.Unlock()

		c.Fetch(context.Background(), spec)
	})
	c.pending = timer
	c.mu.Unlock()
}

// Fetch immediately issues a product query for spec. A response that
// arrives after a newer fetch was issued is discarded without error.
func (c *Coordinator) Fetch(ctx context.Context, spec models.QuerySpec) (Outcome, error) {
	c.mu.Lock()
	c.spec = spec
	c.mu.Unlock()

	return run(ctx, c, &c.products, "fetchProducts", "Failed to fetch products",
		func(ctx context.Context) gateway.Response[[]models.Product] {
			return c.source.ListProducts(ctx, spec)
		},
		c.state.ReplaceProducts,
	)
}

// Refresh refetches the current parameters right away, cancelling any
// pending debounced fetch.
func (c *Coordinator) Refresh(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	spec := c.spec
	c.mu.Unlock()

	return c.Fetch(ctx, spec)
}

// RefreshCategories reloads the category list.
func (c *Coordinator) RefreshCategories(ctx context.Context) (Outcome, error) {
	return run(ctx, c, &c.categories, "fetchCategories", "Failed to fetch categories",
		c.source.Categories,
		c.state.ReplaceCategories,
	)
}

// RefreshInventory reloads the inventory overview. The summary is always
// recomputed locally from the received items.
func (c *Coordinator) RefreshInventory(ctx context.Context) (Outcome, error) {
	return run(ctx, c, &c.inventory, "fetchInventory", "Failed to fetch inventory data",
		c.source.InventoryOverview,
		func(overview models.InventoryOverview) {
			c.state.ReplaceInventory(overview.Items)
			if local := c.state.Summary(); overview.Summary != (models.Summary{}) && local != overview.Summary {
				c.logger.Debug("Server summary differs from local recompute",
					zap.Any("server", overview.Summary),
					zap.Any("local", local),
				)
			}
		},
	)
}

// RefreshAlerts reloads the alert list.
func (c *Coordinator) RefreshAlerts(ctx context.Context) (Outcome, error) {
	return run(ctx, c, &c.alerts, "fetchAlerts", "Failed to fetch alerts",
		c.source.Alerts,
		c.state.ReplaceAlerts,
	)
}

// Close cancels any pending debounced fetch. Later SetParams calls are ignored.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

// run issues one fetch on s. The generation check and the commit happen
// under the same lock, so a newer request can never be overwritten.
func run[T any](ctx context.Context, c *Coordinator, s *stream, operation, title string,
	fetch func(context.Context) gateway.Response[T], commit func(T)) (Outcome, error) {
	c.mu.Lock()
	generation := s.next()
	c.mu.Unlock()

	resp := fetch(ctx)

	c.mu.Lock()
	if !s.current(generation) {
		latest := uint64(*s)
		c.mu.Unlock()
		c.logger.Debug("Discarding stale response",
			zap.String("operation", operation),
			zap.Uint64("generation", generation),
			zap.Uint64("latest", latest),
		)
		return Outcome{Generation: generation}, nil
	}

	if !resp.Success {
		c.mu.Unlock()
		err := resp.Err()
		c.logger.Warn("Fetch failed",
			zap.String("operation", operation),
			zap.Uint64("generation", generation),
			zap.Error(err),
		)
		c.sink.Notify(ctx, notify.Failure(operation, title, err))
		return Outcome{Generation: generation}, err
	}

	commit(resp.Data)
	c.mu.Unlock()

	c.logger.Debug("Fetch applied",
		zap.String("operation", operation),
		zap.Uint64("generation", generation),
	)
	return Outcome{Generation: generation, Applied: true}, nil
}
