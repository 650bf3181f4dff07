package gateway

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"inventory-client/internal/models"
)

// API exposes the remote endpoints as typed calls.
type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// Products

func (a *API) ListProducts(ctx context.Context, spec models.QuerySpec) Response[[]models.Product] {
	resp := Call[[]models.Product](ctx, a.client, Request{Method: http.MethodGet, Path: "/products", Query: spec.Values()})
	normalizeProducts(resp.Data)
	return resp
}

func (a *API) GetProduct(ctx context.Context, id string) Response[models.Product] {
	resp := Call[models.Product](ctx, a.client, Request{Method: http.MethodGet, Path: "/products/" + url.PathEscape(id)})
	if resp.Success {
		resp.Data.Normalize()
	}
	return resp
}

func (a *API) CreateProduct(ctx context.Context, req models.CreateProductRequest) Response[models.Product] {
	resp := Call[models.Product](ctx, a.client, Request{Method: http.MethodPost, Path: "/products", Body: req})
	if resp.Success {
		resp.Data.Normalize()
	}
	return resp
}

func (a *API) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) Response[models.Product] {
	resp := Call[models.Product](ctx, a.client, Request{Method: http.MethodPut, Path: "/products/" + url.PathEscape(id), Body: patch})
	if resp.Success {
		resp.Data.Normalize()
	}
	return resp
}

func (a *API) DeleteProduct(ctx context.Context, id string) Response[models.MessageResponse] {
	return Call[models.MessageResponse](ctx, a.client, Request{Method: http.MethodDelete, Path: "/products/" + url.PathEscape(id)})
}

func (a *API) SearchProducts(ctx context.Context, query string) Response[[]models.Product] {
	resp := Call[[]models.Product](ctx, a.client, Request{Method: http.MethodGet, Path: "/products/search", Query: url.Values{"q": {query}}})
	normalizeProducts(resp.Data)
	return resp
}

func (a *API) ScanBarcode(ctx context.Context, barcode string) Response[models.Product] {
	resp := Call[models.Product](ctx, a.client, Request{Method: http.MethodGet, Path: "/products/scan/" + url.PathEscape(barcode)})
	if resp.Success {
		resp.Data.Normalize()
	}
	return resp
}

func (a *API) Categories(ctx context.Context) Response[[]string] {
	return Call[[]string](ctx, a.client, Request{Method: http.MethodGet, Path: "/products/categories"})
}

func (a *API) ImportProducts(ctx context.Context, filename string, r io.Reader) Response[models.MessageResponse] {
	return Call[models.MessageResponse](ctx, a.client, Request{
		Method: http.MethodPost,
		Path:   "/products/import",
		Upload: &Upload{Field: "file", Filename: filename, Reader: r},
	})
}

func (a *API) ExportProducts(ctx context.Context) Response[Blob] {
	return Call[Blob](ctx, a.client, Request{Method: http.MethodGet, Path: "/products/export", ExpectBlob: true})
}

// Inventory

func (a *API) InventoryOverview(ctx context.Context) Response[models.InventoryOverview] {
	resp := Call[models.InventoryOverview](ctx, a.client, Request{Method: http.MethodGet, Path: "/inventory"})
	for i := range resp.Data.Items {
		resp.Data.Items[i].Normalize()
	}
	return resp
}

func (a *API) Alerts(ctx context.Context) Response[[]models.InventoryAlert] {
	resp := Call[[]models.InventoryAlert](ctx, a.client, Request{Method: http.MethodGet, Path: "/inventory/alerts"})
	for i := range resp.Data {
		resp.Data[i].Normalize()
	}
	return resp
}

func (a *API) DismissAlert(ctx context.Context, id string) Response[models.MessageResponse] {
	return Call[models.MessageResponse](ctx, a.client, Request{Method: http.MethodDelete, Path: "/inventory/alerts/" + url.PathEscape(id)})
}

func (a *API) UpdateStock(ctx context.Context, id string, update models.StockUpdate) Response[models.InventoryItem] {
	resp := Call[models.InventoryItem](ctx, a.client, Request{Method: http.MethodPatch, Path: "/inventory/stock/" + url.PathEscape(id), Body: update})
	if resp.Success {
		resp.Data.Normalize()
	}
	return resp
}

func (a *API) ImportInventory(ctx context.Context, filename string, r io.Reader) Response[models.MessageResponse] {
	return Call[models.MessageResponse](ctx, a.client, Request{
		Method: http.MethodPost,
		Path:   "/inventory/import",
		Upload: &Upload{Field: "file", Filename: filename, Reader: r},
	})
}

func (a *API) ExportInventory(ctx context.Context) Response[Blob] {
	return Call[Blob](ctx, a.client, Request{Method: http.MethodPost, Path: "/inventory/export", ExpectBlob: true})
}

func (a *API) LowStock(ctx context.Context) Response[[]models.Product] {
	resp := Call[[]models.Product](ctx, a.client, Request{Method: http.MethodGet, Path: "/inventory/low-stock"})
	normalizeProducts(resp.Data)
	return resp
}

func (a *API) OutOfStock(ctx context.Context) Response[[]models.Product] {
	resp := Call[[]models.Product](ctx, a.client, Request{Method: http.MethodGet, Path: "/inventory/out-of-stock"})
	normalizeProducts(resp.Data)
	return resp
}

// Health

func (a *API) Health(ctx context.Context) Response[models.HealthStatus] {
	return Call[models.HealthStatus](ctx, a.client, Request{Method: http.MethodGet, Path: "/health"})
}

func normalizeProducts(products []models.Product) {
	for i := range products {
		products[i].Normalize()
	}
}
