package models

import (
	"inventory-client/internal/domain"
)

// Product is a catalogue entry as exchanged with the remote API.
type Product struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	SKU         string               `json:"sku"`
	Barcode     string               `json:"barcode"`
	Category    string               `json:"category"`
	Price       float64              `json:"price"`
	Stock       int                  `json:"stock"`
	Description string               `json:"description"`
	Threshold   int                  `json:"threshold"`
	Status      domain.ProductStatus `json:"status"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// Normalize recomputes the derived status from stock and threshold.
func (p *Product) Normalize() {
	p.Status = domain.ClassifyProduct(p.Stock, p.Threshold)
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	SKU         string  `json:"sku" validate:"required"`
	Barcode     string  `json:"barcode" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Description string  `json:"description,omitempty"`
	Threshold   int     `json:"threshold" validate:"gte=0"`
}

// ProductPatch is a partial update for PUT /products/{id}. Nil fields are not sent.
type ProductPatch struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	SKU         *string  `json:"sku,omitempty" validate:"omitempty,min=1"`
	Barcode     *string  `json:"barcode,omitempty" validate:"omitempty,min=1"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Description *string  `json:"description,omitempty"`
	Threshold   *int     `json:"threshold,omitempty" validate:"omitempty,gte=0"`
}

// Empty reports whether the patch carries no field.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.SKU == nil && p.Barcode == nil && p.Category == nil &&
		p.Price == nil && p.Stock == nil && p.Description == nil && p.Threshold == nil
}

// MessageResponse is returned by endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthStatus is the payload of GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
