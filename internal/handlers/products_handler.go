package handlers

import (
	"net/http"

	"inventory-client/internal/models"
	"inventory-client/internal/mutation"
	"inventory-client/internal/query"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListProducts handles GET /api/v1/products
//
// Returns the current product view. The optional search, category, sortBy
// and sortOrder query parameters narrow and order the already loaded list
// locally; PUT /products/query changes what is fetched from the server.
//
// @Summary      Current product view
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        search query string false "Match name, SKU or barcode"
// @Param        category query string false "Category, or all"
// @Param        sortBy query string false "name, category, price, stock or status"
// @Param        sortOrder query string false "asc or desc"
// @Success      200 {object} ProductListResponse
// @Router       /products [get]
func (h *DashboardHandler) ListProducts(c *gin.Context) {
	view := h.state.Products()

	term, category := c.Query("search"), c.Query("category")
	if term != "" || category != "" {
		view.Products = query.Narrow(view.Products, term, category)
	}
	if by := c.Query("sortBy"); by != "" {
		query.Order(view.Products, by, c.Query("sortOrder"))
	}

	c.JSON(http.StatusOK, ProductListResponse{
		ProductView: view,
		Params:      h.queries.Params(),
	})
}

// SetQuery handles PUT /api/v1/products/query
//
// The fetch is debounced, so the response only acknowledges the new filters.
//
// @Summary      Schedule a product query
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body models.QuerySpec true "Filter parameters"
// @Success      202 {object} QueryAcceptedResponse
// @Failure      400 {object} errors.StandardError
// @Router       /products/query [put]
func (h *DashboardHandler) SetQuery(c *gin.Context) {
	var spec models.QuerySpec
	if !bindJSON(c, &spec) {
		return
	}

	h.queries.SetParams(spec)
	h.logger.Debug("Query parameters scheduled",
		zap.String("search", spec.Search),
		zap.String("category", spec.Category),
	)
	c.JSON(http.StatusAccepted, QueryAcceptedResponse{Params: spec})
}

// RefreshProducts handles POST /api/v1/products/refresh
//
// @Summary      Refetch products now
// @Tags         products
// @Accept       json
// @Produce      json
// @Success      200 {object} RefreshResponse
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products/refresh [post]
func (h *DashboardHandler) RefreshProducts(c *gin.Context) {
	outcome, err := h.queries.Refresh(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, refreshResponse(outcome))
}

// Categories handles GET /api/v1/products/categories
//
// @Summary      Known categories
// @Tags         products
// @Accept       json
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Router       /products/categories [get]
func (h *DashboardHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{Categories: h.state.Products().Categories})
}

// RefreshCategories handles POST /api/v1/products/categories/refresh
//
// @Summary      Refetch categories
// @Tags         products
// @Accept       json
// @Produce      json
// @Success      200 {object} RefreshResponse
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products/categories/refresh [post]
func (h *DashboardHandler) RefreshCategories(c *gin.Context) {
	outcome, err := h.queries.RefreshCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, refreshResponse(outcome))
}

// CreateProduct handles POST /api/v1/products
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body mutation.CreateProductInput true "New product; threshold defaults to 5"
// @Success      201 {object} models.Product
// @Failure      400 {object} errors.StandardError
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products [post]
func (h *DashboardHandler) CreateProduct(c *gin.Context) {
	var input mutation.CreateProductInput
	if !bindJSON(c, &input) {
		return
	}

	product, err := h.mutations.CreateProduct(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/v1/products/:id
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body models.ProductPatch true "Fields to change"
// @Success      200 {object} models.Product
// @Failure      400 {object} errors.StandardError
// @Failure      404 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products/{id} [put]
func (h *DashboardHandler) UpdateProduct(c *gin.Context) {
	var patch models.ProductPatch
	if !bindJSON(c, &patch) {
		return
	}

	product, err := h.mutations.UpdateProduct(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
//
// @Summary      Delete a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} models.MessageResponse
// @Failure      404 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products/{id} [delete]
func (h *DashboardHandler) DeleteProduct(c *gin.Context) {
	if err := h.mutations.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "product deleted"})
}

// ScanBarcode handles GET /api/v1/products/scan/:barcode
//
// @Summary      Look up a product by barcode
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        barcode path string true "Barcode"
// @Success      200 {object} models.Product
// @Failure      404 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products/scan/{barcode} [get]
func (h *DashboardHandler) ScanBarcode(c *gin.Context) {
	product, err := h.mutations.ScanBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ImportProducts handles POST /api/v1/products/import (multipart field "file")
//
// @Summary      Import products
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Param        file formData file true "CSV or JSON file"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} errors.StandardError
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products/import [post]
func (h *DashboardHandler) ImportProducts(c *gin.Context) {
	upload(c, h.mutations.ImportProducts)
}

// ExportProducts handles GET /api/v1/products/export
//
// @Summary      Export products
// @Tags         products
// @Accept       json
// @Produce      octet-stream
// @Success      200 {file} file
// @Failure      502 {object} errors.StandardError
// @Failure      503 {object} errors.StandardError
// @Router       /products/export [get]
func (h *DashboardHandler) ExportProducts(c *gin.Context) {
	artifact, err := h.mutations.ExportProducts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	attachment(c, artifact)
}
