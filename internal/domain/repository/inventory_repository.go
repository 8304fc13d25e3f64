package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// StockMovementRepository libro de movimientos de inventario (append-only).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}

// StockRepository existencias por producto y ubicación.
type StockRepository interface {
	Get(productID, locationID string) (*entity.Stock, error)
	// Adjust suma delta (puede ser negativo) a la existencia, creando la fila
	// si no existe. Devuelve la cantidad resultante.
	Adjust(productID, locationID string, delta decimal.Decimal) (decimal.Decimal, error)
	ListByProduct(productID string) ([]*entity.Stock, error)
}
