package aggregate

import (
	"testing"

	"inventory-client/internal/domain"
	"inventory-client/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, category string, stock, min, max int, price float64) models.InventoryItem {
	it := models.InventoryItem{ID: id, Category: category, CurrentStock: stock, MinStock: min, MaxStock: max, Price: price}
	it.Normalize()
	return it
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, models.Summary{}, Summarize(nil))
}

func TestSummarize(t *testing.T) {
	items := []models.InventoryItem{
		item("1", "Dairy", 0, 5, 50, 1.5),    // critical
		item("2", "Dairy", 3, 5, 50, 2.0),    // low
		item("3", "Bakery", 10, 5, 50, 0.5),  // healthy
		item("4", "Produce", 80, 5, 50, 1.0), // overstock
	}

	summary := Summarize(items)

	assert.Equal(t, 0+3+10+80, summary.TotalItems)
	assert.Equal(t, 6.0+5.0+80.0, summary.TotalValue)
	assert.Equal(t, 2, summary.LowStockItems)
	assert.Equal(t, 3, summary.Categories)
}

func TestSummarize_TotalItemsCountsUnits(t *testing.T) {
	items := []models.InventoryItem{
		item("1", "Dairy", 30, 5, 50, 2),
		item("2", "Dairy", 7, 5, 50, 3),
	}

	summary := Summarize(items)

	assert.Equal(t, 37, summary.TotalItems)
	assert.Equal(t, 81.0, summary.TotalValue)
	assert.Equal(t, 1, summary.Categories)
}

func TestSummarize_IgnoresStaleDerivedFields(t *testing.T) {
	stale := models.InventoryItem{ID: "1", Category: "Dairy", CurrentStock: 2, MinStock: 5, MaxStock: 10, Price: 4, Value: 1000, Status: domain.ItemHealthy}

	summary := Summarize([]models.InventoryItem{stale})

	assert.Equal(t, 8.0, summary.TotalValue)
	assert.Equal(t, 1, summary.LowStockItems)
}

func TestSummarize_Deterministic(t *testing.T) {
	items := []models.InventoryItem{
		item("1", "A", 7, 5, 50, 0.25),
		item("2", "B", 9, 5, 50, 0.75),
	}
	assert.Equal(t, Summarize(items), Summarize(items))
}

func TestBreak(t *testing.T) {
	items := []models.InventoryItem{
		item("1", "Dairy", 10, 5, 50, 3.0),
		item("2", "Bakery", 10, 5, 50, 1.0),
		item("3", "Dairy", 0, 5, 50, 9.0),
	}

	breakdown := Break(items)

	assert.Equal(t, 2, breakdown.ByStatus[domain.ItemHealthy])
	assert.Equal(t, 1, breakdown.ByStatus[domain.ItemCritical])
	assert.Equal(t, 0, breakdown.ByStatus[domain.ItemOverstock])

	require.Len(t, breakdown.ByCategory, 2)
	assert.Equal(t, "Bakery", breakdown.ByCategory[0].Category)
	assert.Equal(t, 10.0, breakdown.ByCategory[0].Value)
	assert.InDelta(t, 25.0, breakdown.ByCategory[0].Percentage, 1e-9)
	assert.Equal(t, "Dairy", breakdown.ByCategory[1].Category)
	assert.Equal(t, 2, breakdown.ByCategory[1].Items)
	assert.InDelta(t, 75.0, breakdown.ByCategory[1].Percentage, 1e-9)
}

func TestBreak_ZeroValue(t *testing.T) {
	breakdown := Break([]models.InventoryItem{item("1", "Dairy", 0, 5, 50, 3.0)})

	require.Len(t, breakdown.ByCategory, 1)
	assert.Equal(t, 0.0, breakdown.ByCategory[0].Percentage)
}
