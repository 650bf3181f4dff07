package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-client/internal/domain"
	"inventory-client/internal/models"
	"inventory-client/internal/mutation"
	"inventory-client/internal/query"
	"inventory-client/internal/store"
	apperrors "inventory-client/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedInventory(f *fixture) {
	f.state.ReplaceInventory([]models.InventoryItem{
		{ID: "i1", Name: "Whole Milk", Category: "Dairy", CurrentStock: 30, MinStock: 10, MaxStock: 100, Price: 2},
		{ID: "i2", Name: "Sourdough", Category: "Bakery", CurrentStock: 4, MinStock: 10, MaxStock: 50, Price: 5},
	})
	f.state.ReplaceAlerts([]models.InventoryAlert{
		{ID: "a1", Type: domain.AlertLowStock, Message: "Sourdough is low", ProductID: "i2"},
	})
}

func TestInventory_Success(t *testing.T) {
	f := newFixture(t)
	seedInventory(f)

	w := f.do(http.MethodGet, "/api/v1/inventory", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp store.InventoryView
	decode(t, w, &resp)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 80.0, resp.Summary.TotalValue)
	assert.Equal(t, 34, resp.Summary.TotalItems)
	assert.Equal(t, 1, resp.Summary.LowStockItems)
	assert.Equal(t, 2, resp.Summary.Categories)
	assert.Equal(t, domain.ItemLow, resp.Items[1].Status)
	require.Len(t, resp.Alerts, 1)
}

func TestRefreshInventory_Success(t *testing.T) {
	f := newFixture(t)
	f.queries.On("RefreshInventory", mock.Anything).Return(query.Outcome{Generation: 3, Applied: true}, nil)
	f.queries.On("RefreshAlerts", mock.Anything).Return(query.Outcome{Generation: 3, Applied: true}, nil)

	w := f.do(http.MethodPost, "/api/v1/inventory/refresh", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshInventory_Failure(t *testing.T) {
	f := newFixture(t)
	f.queries.On("RefreshInventory", mock.Anything).
		Return(query.Outcome{Generation: 1}, apperrors.NewHTTPError(http.StatusInternalServerError, "database unavailable"))

	w := f.do(http.MethodPost, "/api/v1/inventory/refresh", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	f.queries.AssertNotCalled(t, "RefreshAlerts", mock.Anything)
}

func TestUpdateStock_Success(t *testing.T) {
	f := newFixture(t)
	item := models.InventoryItem{ID: "i1", CurrentStock: 35, Status: domain.ItemHealthy}
	f.mutations.On("UpdateStock", mock.Anything, "i1", 5, domain.StockAdd).Return(item, nil)

	w := f.do(http.MethodPatch, "/api/v1/inventory/stock/i1", StockUpdateRequest{Quantity: 5, Operation: "add"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.InventoryItem
	decode(t, w, &resp)
	assert.Equal(t, 35, resp.CurrentStock)
}

func TestUpdateStock_ValidationError(t *testing.T) {
	f := newFixture(t)
	f.mutations.On("UpdateStock", mock.Anything, "i1", -1, domain.StockOperation("add")).
		Return(models.InventoryItem{}, apperrors.NewValidationError("quantity must be 0 or greater", "quantity"))

	w := f.do(http.MethodPatch, "/api/v1/inventory/stock/i1", StockUpdateRequest{Quantity: -1, Operation: "add"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAlerts_Success(t *testing.T) {
	f := newFixture(t)
	seedInventory(f)

	w := f.do(http.MethodGet, "/api/v1/inventory/alerts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertsResponse
	decode(t, w, &resp)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, domain.SeverityMedium, resp.Alerts[0].Severity)
}

func TestDismissAlert_Success(t *testing.T) {
	f := newFixture(t)
	f.mutations.On("DismissAlert", mock.Anything, "a1").Return(nil)

	w := f.do(http.MethodDelete, "/api/v1/inventory/alerts/a1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDismissAlert_Failure(t *testing.T) {
	f := newFixture(t)
	f.mutations.On("DismissAlert", mock.Anything, "a1").Return(apperrors.NewNetworkError(assert.AnError))

	w := f.do(http.MethodDelete, "/api/v1/inventory/alerts/a1", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestImportInventory_Success(t *testing.T) {
	f := newFixture(t)
	body, contentType := multipartBody(t, "file", "stock.json", `[{"sku":"DAI-001","stock":12}]`)
	f.mutations.On("ImportInventory", mock.Anything, "stock.json", `[{"sku":"DAI-001","stock":12}]`).
		Return("Inventory imported", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Inventory imported")
}

func TestExportInventory_Failure(t *testing.T) {
	f := newFixture(t)
	f.mutations.On("ExportInventory", mock.Anything).
		Return(mutation.Artifact{}, apperrors.NewHTTPError(http.StatusInternalServerError, "export failed"))

	w := f.do(http.MethodPost, "/api/v1/inventory/export", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestExportInventory_Success(t *testing.T) {
	f := newFixture(t)
	artifact := mutation.Artifact{Name: "inventory-export-2024-03-01.csv", ContentType: "text/csv", Data: []byte("sku,stock\n")}
	f.mutations.On("ExportInventory", mock.Anything).Return(artifact, nil)

	w := f.do(http.MethodPost, "/api/v1/inventory/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inventory-export-2024-03-01.csv")
}
