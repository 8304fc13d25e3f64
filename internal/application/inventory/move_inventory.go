package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// El adaptador de postgres provee la implementación real; los tests usan
// una que pasa los fakes directamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movements repository.StockMovementRepository,
		stock repository.StockRepository,
	) error) error
}

// MoveUseCase movimiento de inventario: entrada, salida o traslado entre
// ubicaciones. Asiento en el libro + ajuste de existencias, atómico.
type MoveUseCase struct {
	stock    repository.StockRepository
	products repository.ProductRepository
	tx       TxRunner
}

// NewMoveUseCase construye el caso de uso.
func NewMoveUseCase(stock repository.StockRepository, products repository.ProductRepository, tx TxRunner) *MoveUseCase {
	return &MoveUseCase{stock: stock, products: products, tx: tx}
}

// Execute registra el movimiento. FromLocationID vacío = entrada de
// mercancía; ToLocationID vacío = salida. La salida no puede dejar la
// existencia en negativo.
func (uc *MoveUseCase) Execute(ctx context.Context, user *entity.UserProfile, in dto.MoveInventoryRequest) (*dto.MoveInventoryResponse, error) {
	if user == nil || !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	if !purchase.CanMoveInventory(user.Role) {
		return nil, domain.ErrCannotMoveStock
	}
	if in.ProductID == "" || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.FromLocationID == "" && in.ToLocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID && in.FromLocationID != "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.FromLocationID != "" {
		current, err := uc.stock.Get(in.ProductID, in.FromLocationID)
		if err != nil {
			return nil, err
		}
		if current == nil || current.Quantity.LessThan(in.Quantity) {
			return nil, domain.ErrInsufficientStock
		}
	}

	movement := &entity.StockMovement{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
		UserID:         user.ID,
		CreatedAt:      time.Now(),
	}

	resp := &dto.MoveInventoryResponse{MovementID: movement.ID}
	err = uc.tx.Run(ctx, func(movements repository.StockMovementRepository, stock repository.StockRepository) error {
		if err := movements.Create(movement); err != nil {
			return err
		}
		if in.FromLocationID != "" {
			qty, err := stock.Adjust(in.ProductID, in.FromLocationID, in.Quantity.Neg())
			if err != nil {
				return err
			}
			resp.FromQuantity = &qty
		}
		if in.ToLocationID != "" {
			qty, err := stock.Adjust(in.ProductID, in.ToLocationID, in.Quantity)
			if err != nil {
				return err
			}
			resp.ToQuantity = &qty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
