// Package store holds the locally displayed product and inventory view.
package store

import (
	"sync"

	"inventory-client/internal/aggregate"
	"inventory-client/internal/domain"
	"inventory-client/internal/models"

	"go.uber.org/zap"
)

// Store is the single writer of the client view. Derived fields are
// recomputed on every write, and reads hand out copies.
type Store struct {
	logger *zap.Logger
	mu     sync.RWMutex

	products   []models.Product
	categories []string
	items      []models.InventoryItem
	alerts     []models.InventoryAlert

	summary   models.Summary
	breakdown models.Breakdown
}

// ProductView is a consistent snapshot of the product list.
type ProductView struct {
	Products   []models.Product `json:"products"`
	Total      int              `json:"total"`
	Categories []string         `json:"categories"`
}

// InventoryView is a consistent snapshot of the inventory overview.
type InventoryView struct {
	Items     []models.InventoryItem  `json:"items"`
	Summary   models.Summary          `json:"summary"`
	Breakdown models.Breakdown        `json:"breakdown"`
	Alerts    []models.InventoryAlert `json:"alerts"`
}

func New(logger *zap.Logger) *Store {
	s := &Store{
		logger:     logger,
		products:   []models.Product{},
		categories: []string{},
		items:      []models.InventoryItem{},
		alerts:     []models.InventoryAlert{},
	}
	s.rederiveLocked()
	return s
}

// Products

func (s *Store) ReplaceProducts(products []models.Product) {
	next := make([]models.Product, len(products))
	for i, p := range products {
		p.Normalize()
		next[i] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = next
}

// PrependProduct shows a newly confirmed product first.
func (s *Store) PrependProduct(product models.Product) {
	product.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]models.Product{product}, s.products...)
}

// ReplaceProduct swaps the product with the same id. It reports false
// when the product is not in the current list.
func (s *Store) ReplaceProduct(product models.Product) bool {
	product.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product
			return true
		}
	}
	return false
}

// SetProductStock mirrors a confirmed stock change onto the product list.
func (s *Store) SetProductStock(id string, stock int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock = stock
			s.products[i].Normalize()
			return true
		}
	}
	return false
}

func (s *Store) RemoveProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) Products() ProductView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ProductView{
		Products:   append([]models.Product{}, s.products...),
		Total:      len(s.products),
		Categories: append([]string{}, s.categories...),
	}
}

// Categories

func (s *Store) ReplaceCategories(categories []string) {
	next := append([]string{}, categories...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = next
}

func (s *Store) HasCategory(category string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c == category {
			return true
		}
	}
	return false
}

// Inventory

func (s *Store) ReplaceInventory(items []models.InventoryItem) {
	next := make([]models.InventoryItem, len(items))
	for i, item := range items {
		item.Normalize()
		next[i] = item
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = next
	s.rederiveLocked()
}

// ReplaceItem swaps the item with the same id and returns the previous
// value. Unknown items are left alone.
func (s *Store) ReplaceItem(item models.InventoryItem) (models.InventoryItem, bool) {
	item.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			previous := s.items[i]
			s.items[i] = item
			s.rederiveLocked()
			return previous, true
		}
	}
	return models.InventoryItem{}, false
}

func (s *Store) RemoveItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			s.rederiveLocked()
			return true
		}
	}
	return false
}

func (s *Store) Summary() models.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

func (s *Store) Inventory() InventoryView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return InventoryView{
		Items:     append([]models.InventoryItem{}, s.items...),
		Summary:   s.summary,
		Breakdown: copyBreakdown(s.breakdown),
		Alerts:    append([]models.InventoryAlert{}, s.alerts...),
	}
}

// Alerts

func (s *Store) ReplaceAlerts(alerts []models.InventoryAlert) {
	next := make([]models.InventoryAlert, len(alerts))
	for i, a := range alerts {
		a.Normalize()
		next[i] = a
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = next
}

func (s *Store) RemoveAlert(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts = append(s.alerts[:i:i], s.alerts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Alerts() []models.InventoryAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.InventoryAlert{}, s.alerts...)
}

// rederiveLocked must be called with s.mu held for writing.
func (s *Store) rederiveLocked() {
	s.summary = aggregate.Summarize(s.items)
	s.breakdown = aggregate.Break(s.items)
	if s.logger != nil {
		s.logger.Debug("Inventory summary recomputed",
			zap.Int("total_items", s.summary.TotalItems),
			zap.Int("low_stock_items", s.summary.LowStockItems),
			zap.Float64("total_value", s.summary.TotalValue),
		)
	}
}

func copyBreakdown(b models.Breakdown) models.Breakdown {
	byStatus := make(map[domain.ItemStatus]int, len(b.ByStatus))
	for k, v := range b.ByStatus {
		byStatus[k] = v
	}
	return models.Breakdown{
		ByStatus:   byStatus,
		ByCategory: append([]models.CategoryShare{}, b.ByCategory...),
	}
}
