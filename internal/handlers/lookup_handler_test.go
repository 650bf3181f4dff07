package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-client/internal/gateway"
	"inventory-client/internal/models"
	apperrors "inventory-client/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockLookups is a mock implementation of Lookups
type MockLookups struct {
	mock.Mock
}

func (m *MockLookups) GetProduct(ctx context.Context, id string) gateway.Response[models.Product] {
	return m.Called(ctx, id).Get(0).(gateway.Response[models.Product])
}

func (m *MockLookups) SearchProducts(ctx context.Context, query string) gateway.Response[[]models.Product] {
	return m.Called(ctx, query).Get(0).(gateway.Response[[]models.Product])
}

func (m *MockLookups) LowStock(ctx context.Context) gateway.Response[[]models.Product] {
	return m.Called(ctx).Get(0).(gateway.Response[[]models.Product])
}

func (m *MockLookups) OutOfStock(ctx context.Context) gateway.Response[[]models.Product] {
	return m.Called(ctx).Get(0).(gateway.Response[[]models.Product])
}

func newLookupFixture(t *testing.T) (*fixture, *MockLookups) {
	t.Helper()
	f := newFixture(t)
	lookups := new(MockLookups)
	handler := NewDashboardHandler(zap.NewNop(), f.queries, f.mutations, f.state, staticConnectivity{}, f.feed).
		WithLookups(lookups)
	f.router = setupTestRouter(handler)
	t.Cleanup(func() { lookups.AssertExpectations(t) })
	return f, lookups
}

func TestGetProduct_Success(t *testing.T) {
	f, lookups := newLookupFixture(t)
	lookups.On("GetProduct", mock.Anything, "p1").Return(gateway.OK(models.Product{ID: "p1", Name: "Whole Milk"}))

	w := f.do(http.MethodGet, "/api/v1/products/p1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Product
	decode(t, w, &resp)
	assert.Equal(t, "Whole Milk", resp.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	f, lookups := newLookupFixture(t)
	lookups.On("GetProduct", mock.Anything, "nope").
		Return(gateway.Fail[models.Product](apperrors.NewHTTPError(http.StatusNotFound, "Product not found")))

	w := f.do(http.MethodGet, "/api/v1/products/nope", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp apperrors.StandardError
	decode(t, w, &resp)
	assert.Equal(t, "Product not found", resp.Message)
}

func TestSearchProducts_Success(t *testing.T) {
	f, lookups := newLookupFixture(t)
	lookups.On("SearchProducts", mock.Anything, "milk").
		Return(gateway.OK([]models.Product{{ID: "p1"}, {ID: "p7"}}))

	w := f.do(http.MethodGet, "/api/v1/products/search?q=milk", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Product
	decode(t, w, &resp)
	assert.Len(t, resp, 2)
	assert.Empty(t, f.state.Products().Products)
}

func TestSearchProducts_MissingTerm(t *testing.T) {
	f, _ := newLookupFixture(t)

	w := f.do(http.MethodGet, "/api/v1/products/search", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStockReports_Success(t *testing.T) {
	f, lookups := newLookupFixture(t)
	lookups.On("LowStock", mock.Anything).Return(gateway.OK([]models.Product{{ID: "p2", Stock: 3}}))
	lookups.On("OutOfStock", mock.Anything).Return(gateway.OK([]models.Product{{ID: "p3"}}))

	w := f.do(http.MethodGet, "/api/v1/inventory/low-stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"p2"`)

	w = f.do(http.MethodGet, "/api/v1/inventory/out-of-stock", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"p3"`)
}

func TestStockReports_NetworkError(t *testing.T) {
	f, lookups := newLookupFixture(t)
	lookups.On("LowStock", mock.Anything).
		Return(gateway.Fail[[]models.Product](apperrors.NewNetworkError(assert.AnError)))

	w := f.do(http.MethodGet, "/api/v1/inventory/low-stock", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLookupRoutes_DisabledWithoutLookups(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory/low-stock", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
