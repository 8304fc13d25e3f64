package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto de catálogo. El costo se guarda en MXN; si el costo
// original venía en otra divisa se conserva junto con la tasa aplicada.
type Product struct {
	ID                   string
	SKU                  string
	Name                 string
	Description          string
	MinStock             int
	TaxRate              decimal.Decimal // IVA, 0.16 por defecto
	CostPriceMXN         decimal.Decimal
	OriginalCostPrice    decimal.Decimal
	OriginalCurrencyCode string
	ExchangeRate         decimal.Decimal
	ImagePath            string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
