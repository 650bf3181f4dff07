package query

import (
	"sort"
	"strings"

	"inventory-client/internal/models"
)

// Narrow filters an already fetched product list without a round trip.
// term matches name, SKU or barcode case-insensitively; an empty or "all"
// category keeps every category.
func Narrow(products []models.Product, term, category string) []models.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != models.AllCategories && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.SKU), term) &&
			!strings.Contains(strings.ToLower(p.Barcode), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Order sorts products in place by name, category, price, stock or
// status. Unknown keys leave the order unchanged.
func Order(products []models.Product, by, order string) {
	var less func(a, b models.Product) bool
	switch by {
	case "name":
		less = func(a, b models.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case "category":
		less = func(a, b models.Product) bool { return a.Category < b.Category }
	case "price":
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case "stock":
		less = func(a, b models.Product) bool { return a.Stock < b.Stock }
	case "status":
		less = func(a, b models.Product) bool { return a.Status < b.Status }
	default:
		return
	}

	desc := order == "desc"
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
