// Package aggregate derives inventory totals from an item set. Every
// function here is pure: equal input always yields equal output.
package aggregate

import (
	"sort"

	"inventory-client/internal/domain"
	"inventory-client/internal/models"
)

// Summarize computes totals over items. Value and status are derived
// from each item's stock and price, never read from stored fields.
func Summarize(items []models.InventoryItem) models.Summary {
	var summary models.Summary
	categories := make(map[string]struct{})

	for _, item := range items {
		summary.TotalValue += item.Price * float64(item.CurrentStock)
		summary.TotalItems += item.CurrentStock
		if domain.ClassifyItem(item.CurrentStock, item.MinStock, item.MaxStock).NeedsAttention() {
			summary.LowStockItems++
		}
		categories[item.Category] = struct{}{}
	}

	summary.Categories = len(categories)
	return summary
}

// Break distributes items by status and by category. Category shares
// are sorted by name; percentages are of the total stock value.
func Break(items []models.InventoryItem) models.Breakdown {
	breakdown := models.Breakdown{
		ByStatus: map[domain.ItemStatus]int{
			domain.ItemHealthy:   0,
			domain.ItemLow:       0,
			domain.ItemCritical:  0,
			domain.ItemOverstock: 0,
		},
	}

	shares := make(map[string]*models.CategoryShare)
	var total float64
	for _, item := range items {
		status := domain.ClassifyItem(item.CurrentStock, item.MinStock, item.MaxStock)
		breakdown.ByStatus[status]++

		value := item.Price * float64(item.CurrentStock)
		total += value

		share, ok := shares[item.Category]
		if !ok {
			share = &models.CategoryShare{Category: item.Category}
			shares[item.Category] = share
		}
		share.Items++
		share.Value += value
	}

	breakdown.ByCategory = make([]models.CategoryShare, 0, len(shares))
	for _, share := range shares {
		if total > 0 {
			share.Percentage = share.Value / total * 100
		}
		breakdown.ByCategory = append(breakdown.ByCategory, *share)
	}
	sort.Slice(breakdown.ByCategory, func(i, j int) bool {
		return breakdown.ByCategory[i].Category < breakdown.ByCategory[j].Category
	})

	return breakdown
}
