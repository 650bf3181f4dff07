package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-client/internal/models"
	"inventory-client/internal/mutation"
	"inventory-client/internal/query"
	apperrors "inventory-client/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedProducts(f *fixture) {
	f.state.ReplaceProducts([]models.Product{
		{ID: "p1", Name: "Whole Milk", SKU: "DAI-001", Barcode: "7501001", Category: "Dairy", Price: 1.5, Stock: 30, Threshold: 5},
		{ID: "p2", Name: "Sourdough", SKU: "BAK-001", Barcode: "7502001", Category: "Bakery", Price: 4, Stock: 3, Threshold: 5},
		{ID: "p3", Name: "Butter", SKU: "DAI-002", Barcode: "7501002", Category: "Dairy", Price: 3, Stock: 0, Threshold: 5},
	})
	f.state.ReplaceCategories([]string{"Bakery", "Dairy"})
}

func TestListProducts_Success(t *testing.T) {
	f := newFixture(t)
	seedProducts(f)
	f.queries.On("Params").Return(models.QuerySpec{Search: "milk"})

	w := f.do(http.MethodGet, "/api/v1/products", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ProductListResponse
	decode(t, w, &resp)
	assert.Len(t, resp.Products, 3)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, []string{"Bakery", "Dairy"}, resp.Categories)
	assert.Equal(t, "milk", resp.Params.Search)
	assert.Equal(t, "out-of-stock", string(resp.Products[2].Status))
}

func TestListProducts_LocalFilterAndSort(t *testing.T) {
	f := newFixture(t)
	seedProducts(f)
	f.queries.On("Params").Return(models.QuerySpec{})

	w := f.do(http.MethodGet, "/api/v1/products?category=Dairy&sortBy=price&sortOrder=desc", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ProductListResponse
	decode(t, w, &resp)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "p3", resp.Products[0].ID)
	assert.Equal(t, "p1", resp.Products[1].ID)
}

func TestSetQuery_Success(t *testing.T) {
	f := newFixture(t)
	spec := models.QuerySpec{Search: "milk", Category: "Dairy", SortBy: "name", SortOrder: "asc"}
	f.queries.On("SetParams", spec).Return()

	w := f.do(http.MethodPut, "/api/v1/products/query", spec)

	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp QueryAcceptedResponse
	decode(t, w, &resp)
	assert.Equal(t, spec, resp.Params)
}

func TestSetQuery_InvalidSortOrder(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPut, "/api/v1/products/query", map[string]interface{}{"sortOrder": "sideways"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.queries.AssertNotCalled(t, "SetParams", mock.Anything)
}

func TestRefreshProducts_Success(t *testing.T) {
	f := newFixture(t)
	f.queries.On("Refresh", mock.Anything).Return(query.Outcome{Generation: 4, Applied: true}, nil)

	w := f.do(http.MethodPost, "/api/v1/products/refresh", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RefreshResponse
	decode(t, w, &resp)
	assert.Equal(t, RefreshResponse{Generation: 4, Applied: true}, resp)
}

func TestRefreshProducts_NetworkError(t *testing.T) {
	f := newFixture(t)
	f.queries.On("Refresh", mock.Anything).
		Return(query.Outcome{Generation: 1}, apperrors.NewNetworkError(assert.AnError))

	w := f.do(http.MethodPost, "/api/v1/products/refresh", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp apperrors.StandardError
	decode(t, w, &resp)
	assert.Equal(t, apperrors.CodeNetwork, resp.Code)
}

func TestCategories_Success(t *testing.T) {
	f := newFixture(t)
	seedProducts(f)

	w := f.do(http.MethodGet, "/api/v1/products/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CategoriesResponse
	decode(t, w, &resp)
	assert.Equal(t, []string{"Bakery", "Dairy"}, resp.Categories)
}

func TestRefreshCategories_Success(t *testing.T) {
	f := newFixture(t)
	f.queries.On("RefreshCategories", mock.Anything).Return(query.Outcome{Generation: 2, Applied: true}, nil)

	w := f.do(http.MethodPost, "/api/v1/products/categories/refresh", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateProduct_Success(t *testing.T) {
	f := newFixture(t)
	threshold := 10
	input := mutation.CreateProductInput{
		Name: "Yogurt", SKU: "DAI-003", Barcode: "7501003", Category: "Dairy",
		Price: 0.9, Stock: 40, Threshold: &threshold,
	}
	created := models.Product{ID: "p9", Name: "Yogurt", SKU: "DAI-003", Stock: 40, Threshold: 10, Status: "in-stock"}
	f.mutations.On("CreateProduct", mock.Anything, input).Return(created, nil)

	w := f.do(http.MethodPost, "/api/v1/products", input)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Product
	decode(t, w, &resp)
	assert.Equal(t, created, resp)
}

func TestCreateProduct_InvalidBody(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp apperrors.StandardError
	decode(t, w, &resp)
	assert.Equal(t, apperrors.CodeInvalidRequest, resp.Code)
}

func TestCreateProduct_ServerRejects(t *testing.T) {
	f := newFixture(t)
	f.mutations.On("CreateProduct", mock.Anything, mock.Anything).
		Return(models.Product{}, apperrors.NewHTTPError(http.StatusConflict, "SKU already exists"))

	w := f.do(http.MethodPost, "/api/v1/products", map[string]interface{}{"name": "Dup"})

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp apperrors.StandardError
	decode(t, w, &resp)
	assert.Equal(t, "SKU already exists", resp.Message)
}

func TestUpdateProduct_Success(t *testing.T) {
	f := newFixture(t)
	price := 2.25
	patch := models.ProductPatch{Price: &price}
	updated := models.Product{ID: "p1", Name: "Whole Milk", Price: 2.25}
	f.mutations.On("UpdateProduct", mock.Anything, "p1", patch).Return(updated, nil)

	w := f.do(http.MethodPut, "/api/v1/products/p1", patch)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Product
	decode(t, w, &resp)
	assert.Equal(t, 2.25, resp.Price)
}

func TestDeleteProduct_Success(t *testing.T) {
	f := newFixture(t)
	f.mutations.On("DeleteProduct", mock.Anything, "p1").Return(nil)

	w := f.do(http.MethodDelete, "/api/v1/products/p1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "product deleted")
}

func TestDeleteProduct_NotFound(t *testing.T) {
	f := newFixture(t)
	f.mutations.On("DeleteProduct", mock.Anything, "missing").
		Return(apperrors.NewHTTPError(http.StatusNotFound, "Product not found"))

	w := f.do(http.MethodDelete, "/api/v1/products/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScanBarcode_Success(t *testing.T) {
	f := newFixture(t)
	f.mutations.On("ScanBarcode", mock.Anything, "7501001").Return(models.Product{ID: "p1", Barcode: "7501001"}, nil)

	w := f.do(http.MethodGet, "/api/v1/products/scan/7501001", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"p1"`)
}

func TestScanBarcode_NotFound(t *testing.T) {
	f := newFixture(t)
	f.mutations.On("ScanBarcode", mock.Anything, "000").
		Return(models.Product{}, apperrors.NewNotFound("product", "000"))

	w := f.do(http.MethodGet, "/api/v1/products/scan/000", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp apperrors.StandardError
	decode(t, w, &resp)
	assert.Equal(t, apperrors.CodeNotFound, resp.Code)
}

func TestImportProducts_Success(t *testing.T) {
	f := newFixture(t)
	body, contentType := multipartBody(t, "file", "products.csv", "name,sku\nMilk,DAI-001\n")
	f.mutations.On("ImportProducts", mock.Anything, "products.csv", "name,sku\nMilk,DAI-001\n").
		Return("Imported 1 products", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.MessageResponse
	decode(t, w, &resp)
	assert.Equal(t, "Imported 1 products", resp.Message)
}

func TestImportProducts_MissingFile(t *testing.T) {
	f := newFixture(t)
	body, contentType := multipartBody(t, "", "", "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp apperrors.StandardError
	decode(t, w, &resp)
	assert.Equal(t, apperrors.CodeValidation, resp.Code)
}

func TestImportProducts_NotMultipart(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/v1/products/import", map[string]string{"file": "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportProducts_Success(t *testing.T) {
	f := newFixture(t)
	artifact := mutation.Artifact{Name: "products-export-2024-03-01.csv", ContentType: "text/csv", Data: []byte("id,name\n")}
	f.mutations.On("ExportProducts", mock.Anything).Return(artifact, nil)

	w := f.do(http.MethodGet, "/api/v1/products/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="products-export-2024-03-01.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "id,name\n", w.Body.String())
}
