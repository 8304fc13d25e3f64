package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock existencia de un producto en una ubicación.
type Stock struct {
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}

// StockMovement asiento del libro de movimientos de inventario.
// FromLocationID vacío = entrada; ToLocationID vacío = salida.
type StockMovement struct {
	ID             string
	ProductID      string
	FromLocationID string
	ToLocationID   string
	Quantity       decimal.Decimal
	UserID         string
	CreatedAt      time.Time
}
