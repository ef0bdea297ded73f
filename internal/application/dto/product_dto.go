package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=255"`
	Description   string          `json:"description"`
	Category      string          `json:"category" validate:"omitempty,max=100"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	SKUCode       string          `json:"sku_code"`
	Unit          string          `json:"unit" validate:"omitempty,max=20"`
	ImageURL      string          `json:"image_url"`
}

// UpdateProductRequest entrada para actualizar un producto. Version es
// obligatorio: una escritura con versión obsoleta se rechaza.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	SKUCode       *string          `json:"sku_code"`
	Unit          *string          `json:"unit"`
	ImageURL      *string          `json:"image_url"`
	Version       int              `json:"version"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	WholesalerID  string          `json:"wholesaler_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	SKUCode       string          `json:"sku_code"`
	Unit          string          `json:"unit"`
	ImageURL      string          `json:"image_url,omitempty"`
	IsActive      bool            `json:"is_active"`
	Version       int             `json:"version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductPageResponse lista paginada de productos con metadatos de página.
type ProductPageResponse struct {
	Products    []ProductResponse `json:"products"`
	CurrentPage int               `json:"current_page"`
	TotalItems  int64             `json:"total_items"`
	TotalPages  int               `json:"total_pages"`
}
