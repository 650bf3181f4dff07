package models

import (
	"inventory-client/internal/domain"
)

// InventoryItem is the stock view of a product.
type InventoryItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	SKU          string            `json:"sku"`
	Category     string            `json:"category"`
	CurrentStock int               `json:"currentStock"`
	MinStock     int               `json:"minStock"`
	MaxStock     int               `json:"maxStock"`
	Price        float64           `json:"price"`
	Value        float64           `json:"value"`
	LastUpdated  string            `json:"lastUpdated"`
	Status       domain.ItemStatus `json:"status"`
}

// Normalize recomputes value and status so they never go stale.
func (i *InventoryItem) Normalize() {
	i.Value = i.Price * float64(i.CurrentStock)
	i.Status = domain.ClassifyItem(i.CurrentStock, i.MinStock, i.MaxStock)
}

// InventoryAlert is a server-issued alert about an item.
type InventoryAlert struct {
	ID        string           `json:"id"`
	Type      domain.AlertKind `json:"type"`
	Message   string           `json:"message"`
	ProductID string           `json:"product_id"`
	Severity  domain.Severity  `json:"severity"`
	CreatedAt string           `json:"created_at"`
}

// Normalize fills a missing severity from the alert kind.
func (a *InventoryAlert) Normalize() {
	if a.Severity == "" {
		a.Severity = domain.SeverityFor(a.Type)
	}
}

// Summary aggregates the current inventory item set.
type Summary struct {
	TotalValue    float64 `json:"totalValue"`
	TotalItems    int     `json:"totalItems"` // units in stock, not rows
	LowStockItems int     `json:"lowStockItems"`
	Categories    int     `json:"categories"`
}

// InventoryOverview is the payload of GET /inventory.
type InventoryOverview struct {
	Items   []InventoryItem `json:"items"`
	Summary Summary         `json:"summary"`
}

// CategoryShare is the stock value held in one category.
type CategoryShare struct {
	Category   string  `json:"category"`
	Items      int     `json:"items"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// Breakdown distributes the item set by status and by category.
type Breakdown struct {
	ByStatus   map[domain.ItemStatus]int `json:"byStatus"`
	ByCategory []CategoryShare           `json:"byCategory"`
}

// StockUpdate is the body of PATCH /inventory/stock/{id}.
type StockUpdate struct {
	Quantity  int                   `json:"quantity" validate:"gte=0"`
	Operation domain.StockOperation `json:"operation" validate:"required,oneof=add subtract set"`
}
