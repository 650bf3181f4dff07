// Package mutation performs writes against the remote API. Local state
// changes only after the server confirms a write; a failed write leaves
// it untouched and reports the server's reason.
package mutation

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"inventory-client/internal/clock"
	"inventory-client/internal/gateway"
	"inventory-client/internal/models"
	"inventory-client/internal/notify"
	"inventory-client/internal/query"
	"inventory-client/internal/store"
	apperrors "inventory-client/pkg/errors"

	"go.uber.org/zap"
)

// DefaultThreshold is used when a new product does not set one.
const DefaultThreshold = 5

// Remote is the part of the API the orchestrator writes through.
type Remote interface {
	CreateProduct(ctx context.Context, req models.CreateProductRequest) gateway.Response[models.Product]
	UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) gateway.Response[models.Product]
	DeleteProduct(ctx context.Context, id string) gateway.Response[models.MessageResponse]
	ScanBarcode(ctx context.Context, barcode string) gateway.Response[models.Product]
	ImportProducts(ctx context.Context, filename string, r io.Reader) gateway.Response[models.MessageResponse]
	ExportProducts(ctx context.Context) gateway.Response[gateway.Blob]
	UpdateStock(ctx context.Context, id string, update models.StockUpdate) gateway.Response[models.InventoryItem]
	DismissAlert(ctx context.Context, id string) gateway.Response[models.MessageResponse]
	ImportInventory(ctx context.Context, filename string, r io.Reader) gateway.Response[models.MessageResponse]
	ExportInventory(ctx context.Context) gateway.Response[gateway.Blob]
}

// Refresher reloads server state after writes whose result is not
// returned in full.
type Refresher interface {
	Refresh(ctx context.Context) (query.Outcome, error)
	RefreshCategories(ctx context.Context) (query.Outcome, error)
	RefreshInventory(ctx context.Context) (query.Outcome, error)
	RefreshAlerts(ctx context.Context) (query.Outcome, error)
}

type Orchestrator struct {
	remote           Remote
	refresher        Refresher
	state            *store.Store
	sink             notify.Sink
	artifacts        ArtifactSink
	clock            clock.Clock
	validator        *inputValidator
	defaultThreshold int
	logger           *zap.Logger
}

type Option func(*Orchestrator)

// WithArtifactSink delivers exports somewhere besides the caller.
func WithArtifactSink(artifacts ArtifactSink) Option {
	return func(o *Orchestrator) {
		o.artifacts = artifacts
	}
}

func WithClock(clk clock.Clock) Option {
	return func(o *Orchestrator) {
		o.clock = clk
	}
}

func WithDefaultThreshold(threshold int) Option {
	return func(o *Orchestrator) {
		if threshold >= 0 {
			o.defaultThreshold = threshold
		}
	}
}

func New(remote Remote, refresher Refresher, state *store.Store, sink notify.Sink, logger *zap.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		remote:           remote,
		refresher:        refresher,
		state:            state,
		sink:             sink,
		clock:            clock.Real(),
		validator:        newInputValidator(),
		defaultThreshold: DefaultThreshold,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CreateProductInput is what the user fills in. A nil Threshold falls
// back to the default.
type CreateProductInput struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Barcode     string  `json:"barcode"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description"`
	Threshold   *int    `json:"threshold"`
}

// CreateProduct adds a product and shows it first once the server confirms it.
func (o *Orchestrator) CreateProduct(ctx context.Context, input CreateProductInput) (models.Product, error) {
	const operation = "createProduct"

	req := models.CreateProductRequest{
		Name:        input.Name,
		SKU:         input.SKU,
		Barcode:     input.Barcode,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		Description: input.Description,
		Threshold:   o.defaultThreshold,
	}
	if input.Threshold != nil {
		req.Threshold = *input.Threshold
	}

	if verr := o.validator.Struct(req); verr != nil {
		return models.Product{}, o.fail(ctx, operation, "Invalid product", verr)
	}

	resp := o.remote.CreateProduct(ctx, req)
	if !resp.Success {
		return models.Product{}, o.fail(ctx, operation, "Failed to create product", resp.Err())
	}

	product := resp.Data
	if product.ID == "" {
		// Confirmed without a record: reload rather than invent one.
		o.refreshProducts(ctx)
		o.refreshCategories(ctx)
	} else {
		o.state.PrependProduct(product)
		if !o.state.HasCategory(product.Category) {
			o.refreshCategories(ctx)
		}
	}

	o.logger.Info("Product created", zap.String("product_id", product.ID), zap.String("sku", req.SKU))
	o.sink.Notify(ctx, notify.Success(operation, "Product created", fmt.Sprintf("%s has been added to inventory", req.Name)))
	return product, nil
}

// UpdateProduct applies a partial update and replaces the displayed product.
func (o *Orchestrator) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	const operation = "updateProduct"

	if verr := o.validator.ID("id", id); verr != nil {
		return models.Product{}, o.fail(ctx, operation, "Invalid product", verr)
	}
	if patch.Empty() {
		return models.Product{}, o.fail(ctx, operation, "Invalid product", apperrors.NewInvalidRequest("nothing to update", "empty patch"))
	}
	if verr := o.validator.Struct(patch); verr != nil {
		return models.Product{}, o.fail(ctx, operation, "Invalid product", verr)
	}

	resp := o.remote.UpdateProduct(ctx, id, patch)
	if !resp.Success {
		return models.Product{}, o.fail(ctx, operation, "Failed to update product", resp.Err())
	}

	product := resp.Data
	if product.ID == "" {
		o.refreshProducts(ctx)
	} else {
		o.state.ReplaceProduct(product)
		if product.Category != "" && !o.state.HasCategory(product.Category) {
			o.refreshCategories(ctx)
		}
	}

	o.logger.Info("Product updated", zap.String("product_id", id))
	o.sink.Notify(ctx, notify.Success(operation, "Product updated", "Product has been updated successfully"))
	return product, nil
}

// DeleteProduct removes the product, and its inventory row, once confirmed.
func (o *Orchestrator) DeleteProduct(ctx context.Context, id string) error {
	const operation = "deleteProduct"

	if verr := o.validator.ID("id", id); verr != nil {
		return o.fail(ctx, operation, "Invalid product", verr)
	}

	resp := o.remote.DeleteProduct(ctx, id)
	if !resp.Success {
		return o.fail(ctx, operation, "Failed to delete product", resp.Err())
	}

	o.state.RemoveProduct(id)
	o.state.RemoveItem(id)

	o.logger.Info("Product deleted", zap.String("product_id", id))
	o.sink.Notify(ctx, notify.Success(operation, "Product deleted", "Product has been removed from inventory"))
	return nil
}

// ScanBarcode looks up a product by barcode. It does not change local state.
func (o *Orchestrator) ScanBarcode(ctx context.Context, barcode string) (models.Product, error) {
	const operation = "scanBarcode"

	if verr := o.validator.ID("barcode", barcode); verr != nil {
		return models.Product{}, o.fail(ctx, operation, "Invalid barcode", verr)
	}

	resp := o.remote.ScanBarcode(ctx, barcode)
	if !resp.Success {
		err := resp.Err()
		if resp.StatusCode == http.StatusNotFound {
			err = apperrors.NewNotFound("product", fmt.Sprintf("Barcode: %s", barcode))
		}
		return models.Product{}, o.fail(ctx, operation, "Product not found", err)
	}

	product := resp.Data
	o.sink.Notify(ctx, notify.Success(operation, "Product found", fmt.Sprintf("%s - Stock: %d", product.Name, product.Stock)))
	return product, nil
}

// ImportProducts streams a bulk file to the server, then reloads the
// product list and categories.
func (o *Orchestrator) ImportProducts(ctx context.Context, filename string, r io.Reader) (string, error) {
	const operation = "importProducts"

	if verr := o.validator.Import(filename, r); verr != nil {
		return "", o.fail(ctx, operation, "Import failed", verr)
	}

	resp := o.remote.ImportProducts(ctx, filename, r)
	if !resp.Success {
		return "", o.fail(ctx, operation, "Import failed", resp.Err())
	}

	o.refreshProducts(ctx)
	o.refreshCategories(ctx)

	message := confirmation(resp, "Products imported successfully")
	o.logger.Info("Products imported", zap.String("filename", filename), zap.String("message", message))
	o.sink.Notify(ctx, notify.Success(operation, "Import successful", message))
	return message, nil
}

// ExportProducts downloads the product export.
func (o *Orchestrator) ExportProducts(ctx context.Context) (Artifact, error) {
	return o.export(ctx, "exportProducts", "products-export", "Products exported successfully", o.remote.ExportProducts)
}

func (o *Orchestrator) export(ctx context.Context, operation, prefix, done string, fetch func(context.Context) gateway.Response[gateway.Blob]) (Artifact, error) {
	resp := fetch(ctx)
	if !resp.Success {
		return Artifact{}, o.fail(ctx, operation, "Export failed", resp.Err())
	}

	contentType := resp.Data.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	artifact := Artifact{
		Name:        exportName(prefix, o.clock.Now()),
		ContentType: contentType,
		Data:        resp.Data.Data,
	}

	if o.artifacts != nil {
		path, err := o.artifacts.Save(ctx, artifact)
		if err != nil {
			return Artifact{}, o.fail(ctx, operation, "Export failed", apperrors.NewArtifactError(artifact.Name, err))
		}
		o.logger.Info("Export saved", zap.String("path", path), zap.Int("bytes", len(artifact.Data)))
	}

	o.sink.Notify(ctx, notify.Success(operation, "Export successful", done))
	return artifact, nil
}

func (o *Orchestrator) refreshProducts(ctx context.Context) {
	if _, err := o.refresher.Refresh(ctx); err != nil {
		o.logger.Warn("Product reload after write failed", zap.Error(err))
	}
}

func (o *Orchestrator) refreshCategories(ctx context.Context) {
	if _, err := o.refresher.RefreshCategories(ctx); err != nil {
		o.logger.Warn("Category reload after write failed", zap.Error(err))
	}
}

// fail reports err to the sink and returns it as a *StandardError.
func (o *Orchestrator) fail(ctx context.Context, operation, title string, err error) error {
	stdErr, ok := apperrors.As(err)
	if !ok {
		stdErr = apperrors.NewInternalError(title, err)
	}
	o.logger.Warn("Mutation failed",
		zap.String("operation", operation),
		zap.String("error_code", stdErr.Code),
		zap.String("message", stdErr.Message),
	)
	o.sink.Notify(ctx, notify.Failure(operation, title, stdErr))
	return stdErr
}

func confirmation(resp gateway.Response[models.MessageResponse], fallback string) string {
	if resp.Data.Message != "" {
		return resp.Data.Message
	}
	if resp.Message != "" {
		return resp.Message
	}
	return fallback
}
