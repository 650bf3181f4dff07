// Package handlers exposes the client core over HTTP for a browser view.
package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"inventory-client/internal/domain"
	"inventory-client/internal/health"
	"inventory-client/internal/models"
	"inventory-client/internal/mutation"
	"inventory-client/internal/notify"
	"inventory-client/internal/query"
	"inventory-client/internal/store"
	apperrors "inventory-client/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Queries is the read side of the client core.
type Queries interface {
	Params() models.QuerySpec
	SetParams(spec models.QuerySpec)
	Refresh(ctx context.Context) (query.Outcome, error)
	RefreshCategories(ctx context.Context) (query.Outcome, error)
	RefreshInventory(ctx context.Context) (query.Outcome, error)
	RefreshAlerts(ctx context.Context) (query.Outcome, error)
}

// Mutations is the write side of the client core.
type Mutations interface {
	CreateProduct(ctx context.Context, input mutation.CreateProductInput) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ScanBarcode(ctx context.Context, barcode string) (models.Product, error)
	ImportProducts(ctx context.Context, filename string, r io.Reader) (string, error)
	ExportProducts(ctx context.Context) (mutation.Artifact, error)
	UpdateStock(ctx context.Context, id string, quantity int, operation domain.StockOperation) (models.InventoryItem, error)
	DismissAlert(ctx context.Context, id string) error
	ImportInventory(ctx context.Context, filename string, r io.Reader) (string, error)
	ExportInventory(ctx context.Context) (mutation.Artifact, error)
}

type Connectivity interface {
	Status() health.Status
}

type NotificationFeed interface {
	Recent(limit int) []notify.Notification
}

type DashboardHandler struct {
	logger    *zap.Logger
	queries   Queries
	mutations Mutations
	state     *store.Store
	health    Connectivity
	feed      NotificationFeed
	lookups   Lookups
}

func NewDashboardHandler(logger *zap.Logger, queries Queries, mutations Mutations, state *store.Store, health Connectivity, feed NotificationFeed) *DashboardHandler {
	return &DashboardHandler{
		logger:    logger,
		queries:   queries,
		mutations: mutations,
		state:     state,
		health:    health,
		feed:      feed,
	}
}

// RegisterRoutes mounts every view endpoint on rg.
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/connection", h.Connection)
	rg.GET("/notifications", h.Notifications)

	products := rg.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.PUT("/query", h.SetQuery)
		products.POST("/refresh", h.RefreshProducts)
		products.GET("/categories", h.Categories)
		products.POST("/categories/refresh", h.RefreshCategories)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
		products.GET("/scan/:barcode", h.ScanBarcode)
		products.POST("/import", h.ImportProducts)
		products.GET("/export", h.ExportProducts)
	}

	inventory := rg.Group("/inventory")
	{
		inventory.GET("", h.Inventory)
		inventory.POST("/refresh", h.RefreshInventory)
		inventory.PATCH("/stock/:id", h.UpdateStock)
		inventory.GET("/alerts", h.Alerts)
		inventory.DELETE("/alerts/:id", h.DismissAlert)
		inventory.POST("/import", h.ImportInventory)
		inventory.POST("/export", h.ExportInventory)
	}

	h.registerLookups(products, inventory)
}

// Health handles GET /api/v1/health
//
// @Summary      Health check
// @Tags         system
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "inventory-client",
	})
}

// Connection handles GET /api/v1/connection and reports whether the
// remote API answered its last health check.
//
// @Summary      Remote API connectivity
// @Tags         system
// @Accept       json
// @Produce      json
// @Success      200 {object} health.Status
// @Router       /connection [get]
func (h *DashboardHandler) Connection(c *gin.Context) {
	c.JSON(http.StatusOK, h.health.Status())
}

// Notifications handles GET /api/v1/notifications?limit=N
//
// @Summary      Recent notifications
// @Tags         system
// @Accept       json
// @Produce      json
// @Param        limit query int false "Maximum entries (0 = all retained)"
// @Success      200 {object} map[string][]notify.Notification
// @Failure      400 {object} errors.StandardError
// @Router       /notifications [get]
func (h *DashboardHandler) Notifications(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.Error(apperrors.NewValidationError("limit must be a non-negative integer", "limit"))
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"notifications": h.feed.Recent(limit)})
}

// bindJSON reports a malformed body as an invalid request.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.Error(apperrors.NewInvalidRequest("invalid request body", err.Error()))
		return false
	}
	return true
}

// attachment writes an exported artifact as a download.
func attachment(c *gin.Context, artifact mutation.Artifact) {
	c.Header("Content-Disposition", `attachment; filename="`+artifact.Name+`"`)
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// upload streams the "file" part of a multipart request into fn without
// buffering it. Other parts are skipped.
func upload(c *gin.Context, fn func(ctx context.Context, filename string, r io.Reader) (string, error)) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize)

	reader, err := c.Request.MultipartReader()
	if err != nil {
		c.Error(apperrors.NewInvalidRequest("multipart form expected", err.Error()))
		return
	}

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			c.Error(apperrors.NewValidationError("file is required", "file"))
			return
		}
		if err != nil {
			c.Error(apperrors.NewInvalidRequest("failed to read upload", err.Error()))
			return
		}
		if part.FormName() != "file" {
			part.Close()
			continue
		}

		message, err := fn(c.Request.Context(), part.FileName(), part)
		part.Close()
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, models.MessageResponse{Message: message})
		return
	}
}
