package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar un producto. El costo original
// se convierte a MXN con la tasa del día si viene en otra divisa.
type CreateProductRequest struct {
	SKU                  string          `json:"sku" validate:"required"`
	Name                 string          `json:"name" validate:"required"`
	Description          string          `json:"description"`
	MinStock             int             `json:"min_stock"`
	TaxRate              decimal.Decimal `json:"tax_rate"` // default 0.16
	OriginalCostPrice    decimal.Decimal `json:"original_cost_price"`
	OriginalCurrencyCode string          `json:"original_currency_code"` // default MXN
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	MinStock    *int             `json:"min_stock"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                   string          `json:"id"`
	SKU                  string          `json:"sku"`
	Name                 string          `json:"name"`
	Description          string          `json:"description,omitempty"`
	MinStock             int             `json:"min_stock"`
	TaxRate              decimal.Decimal `json:"tax_rate"`
	CostPriceMXN         decimal.Decimal `json:"cost_price_mxn"`
	OriginalCostPrice    decimal.Decimal `json:"original_cost_price"`
	OriginalCurrencyCode string          `json:"original_currency_code"`
	ExchangeRate         decimal.Decimal `json:"exchange_rate"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
