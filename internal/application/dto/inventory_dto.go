package dto

import "github.com/shopspring/decimal"

// MoveInventoryRequest entrada para mover inventario entre ubicaciones.
// FromLocationID vacío = entrada de mercancía; ToLocationID vacío = salida.
type MoveInventoryRequest struct {
	ProductID      string          `json:"product_id" validate:"required"`
	FromLocationID string          `json:"from_location_id"`
	ToLocationID   string          `json:"to_location_id"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// MoveInventoryResponse existencias resultantes tras el movimiento.
type MoveInventoryResponse struct {
	MovementID   string           `json:"movement_id"`
	FromQuantity *decimal.Decimal `json:"from_quantity,omitempty"`
	ToQuantity   *decimal.Decimal `json:"to_quantity,omitempty"`
}
