package handlers

import (
	"context"
	"net/http"

	"inventory-client/internal/gateway"
	"inventory-client/internal/models"
	apperrors "inventory-client/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Lookups are one-off remote reads. Their results are shown as returned
// and never enter the local view.
type Lookups interface {
	GetProduct(ctx context.Context, id string) gateway.Response[models.Product]
	SearchProducts(ctx context.Context, query string) gateway.Response[[]models.Product]
	LowStock(ctx context.Context) gateway.Response[[]models.Product]
	OutOfStock(ctx context.Context) gateway.Response[[]models.Product]
}

// WithLookups enables the /products/search, /products/:id and stock
// report endpoints.
func (h *DashboardHandler) WithLookups(lookups Lookups) *DashboardHandler {
	h.lookups = lookups
	return h
}

func (h *DashboardHandler) registerLookups(products, inventory *gin.RouterGroup) {
	if h.lookups == nil {
		return
	}
	products.GET("/search", h.SearchProducts)
	products.GET("/:id", h.GetProduct)
	inventory.GET("/low-stock", h.LowStock)
	inventory.GET("/out-of-stock", h.OutOfStock)
}

// respond writes resp.Data on success and attaches the failure otherwise.
func respond[T any](c *gin.Context, resp gateway.Response[T]) {
	if err := resp.Err(); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp.Data)
}

// GetProduct handles GET /api/v1/products/:id
//
// @Summary      Fetch one product from the remote API
// @Tags         lookups
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} models.Product
// @Failure      404 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products/{id} [get]
func (h *DashboardHandler) GetProduct(c *gin.Context) {
	respond(c, h.lookups.GetProduct(c.Request.Context(), c.Param("id")))
}

// SearchProducts handles GET /api/v1/products/search?q=term
//
// @Summary      Search the remote catalogue
// @Tags         lookups
// @Accept       json
// @Produce      json
// @Param        q query string true "Search term"
// @Success      200 {array} models.Product
// @Failure      400 {object} errors.StandardError
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products/search [get]
func (h *DashboardHandler) SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.Error(apperrors.NewValidationError("search term is required", "q"))
		return
	}
	respond(c, h.lookups.SearchProducts(c.Request.Context(), q))
}

// LowStock handles GET /api/v1/inventory/low-stock
//
// @Summary      Products below their threshold
// @Tags         lookups
// @Accept       json
// @Produce      json
// @Success      200 {array} models.Product
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /inventory/low-stock [get]
func (h *DashboardHandler) LowStock(c *gin.Context) {
	respond(c, h.lookups.LowStock(c.Request.Context()))
}

// OutOfStock handles GET /api/v1/inventory/out-of-stock
//
// @Summary      Products with no stock
// @Tags         lookups
// @Accept       json
// @Produce      json
// @Success      200 {array} models.Product
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /inventory/out-of-stock [get]
func (h *DashboardHandler) OutOfStock(c *gin.Context) {
	respond(c, h.lookups.OutOfStock(c.Request.Context()))
}
