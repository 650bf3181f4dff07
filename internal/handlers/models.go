package handlers

import (
	"inventory-client/internal/models"
	"inventory-client/internal/query"
	"inventory-client/internal/store"
)

// MaxUploadSize caps import uploads accepted from the view.
const MaxUploadSize = 50 << 20

// ProductListResponse is the product view plus the active filters.
type ProductListResponse struct {
	store.ProductView
	Params models.QuerySpec `json:"params"`
}

// QueryAcceptedResponse is returned when new filters are scheduled.
type QueryAcceptedResponse struct {
	Params models.QuerySpec `json:"params"`
}

// RefreshResponse reports which generation a refresh ran as and whether
// it reached the view.
type RefreshResponse struct {
	Generation uint64 `json:"generation"`
	Applied    bool   `json:"applied"`
}

func refreshResponse(outcome query.Outcome) RefreshResponse {
	return RefreshResponse{Generation: outcome.Generation, Applied: outcome.Applied}
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

type AlertsResponse struct {
	Alerts []models.InventoryAlert `json:"alerts"`
}

// StockUpdateRequest is the body of PATCH /inventory/stock/:id.
type StockUpdateRequest struct {
	Quantity  int    `json:"quantity"`
	Operation string `json:"operation"`
}
