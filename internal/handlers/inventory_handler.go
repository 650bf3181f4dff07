package handlers

import (
	"net/http"

	"inventory-client/internal/domain"

	"github.com/gin-gonic/gin"
)

// Inventory handles GET /api/v1/inventory
//
// @Summary      Current inventory view
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Success      200 {object} store.InventoryView
// @Router       /inventory [get]
func (h *DashboardHandler) Inventory(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Inventory())
}

// RefreshInventory handles POST /api/v1/inventory/refresh. Items and
// alerts are reloaded together.
//
// @Summary      Refetch inventory and alerts
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Success      200 {object} RefreshResponse
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /inventory/refresh [post]
func (h *DashboardHandler) RefreshInventory(c *gin.Context) {
	ctx := c.Request.Context()

	outcome, err := h.queries.RefreshInventory(ctx)
	if err != nil {
		c.Error(err)
		return
	}
	if _, err := h.queries.RefreshAlerts(ctx); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, refreshResponse(outcome))
}

// UpdateStock handles PATCH /api/v1/inventory/stock/:id
//
// @Summary      Add, subtract or set stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID"
// @Param        request body StockUpdateRequest true "Quantity and operation"
// @Success      200 {object} models.InventoryItem
// @Failure      400 {object} errors.StandardError
// @Failure      404 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /inventory/stock/{id} [patch]
func (h *DashboardHandler) UpdateStock(c *gin.Context) {
	var req StockUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.mutations.UpdateStock(c.Request.Context(), c.Param("id"), req.Quantity, domain.StockOperation(req.Operation))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Alerts handles GET /api/v1/inventory/alerts
//
// @Summary      Active alerts
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Success      200 {object} AlertsResponse
// @Router       /inventory/alerts [get]
func (h *DashboardHandler) Alerts(c *gin.Context) {
	c.JSON(http.StatusOK, AlertsResponse{Alerts: h.state.Alerts()})
}

// DismissAlert handles DELETE /api/v1/inventory/alerts/:id
//
// @Summary      Dismiss an alert
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Alert ID"
// @Success      204
// @Failure      404 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /inventory/alerts/{id} [delete]
func (h *DashboardHandler) DismissAlert(c *gin.Context) {
	if err := h.mutations.DismissAlert(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportInventory handles POST /api/v1/inventory/import (multipart field "file")
//
// @Summary      Import stock levels
// @Tags         inventory
// @Accept       mpfd
// @Produce      json
// @Param        file formData file true "CSV or JSON file"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} errors.StandardError
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /inventory/import [post]
func (h *DashboardHandler) ImportInventory(c *gin.Context) {
	upload(c, h.mutations.ImportInventory)
}

// ExportInventory handles POST /api/v1/inventory/export
//
// @Summary      Export an inventory report
// @Tags         inventory
// @Accept       json
// @Produce      octet-stream
// @Success      200 {file} file
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /inventory/export [post]
func (h *DashboardHandler) ExportInventory(c *gin.Context) {
	artifact, err := h.mutations.ExportInventory(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	attachment(c, artifact)
}
