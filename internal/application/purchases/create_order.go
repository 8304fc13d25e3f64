package purchases

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// CreateOrderUseCase convierte una solicitud APPROVED en orden de compra.
// La conversión es terminal: la solicitud pasa a CONVERTED_TO_PO y no puede
// convertirse dos veces.
type CreateOrderUseCase struct {
	repo repository.PurchasesRepository
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(repo repository.PurchasesRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{repo: repo}
}

// Execute genera el folio PO, crea la orden con los items de la solicitud
// copiados como snapshot (cambios posteriores a la solicitud no afectan a la
// orden) y marca la solicitud como convertida.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req *entity.PurchaseRequest, buyer *entity.UserProfile) (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, error) {
	if req.Status != entity.StatusApproved {
		return nil, nil, domain.ErrRequestNotApproved
	}
	if buyer == nil || !buyer.IsActive {
		return nil, nil, domain.ErrInactiveUser
	}
	if !purchase.CanCreateOrder(buyer.Role) {
		return nil, nil, domain.ErrCannotCreateOrder
	}
	if req.SupplierID == "" {
		return nil, nil, domain.ErrMissingSupplier
	}

	// Items frescos del almacén, no del estado del caller.
	_, items, err := uc.repo.GetPurchaseRequestWithItems(ctx, req.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(items) == 0 {
		return nil, nil, domain.ErrNoItemsToConvert
	}

	poNumber, err := uc.repo.GenerateNextPONumber(ctx)
	if err != nil {
		return nil, nil, err
	}

	order, orderItems, err := uc.repo.CreatePurchaseOrderFromRequest(ctx, req, buyer.ID, poNumber, items)
	if err != nil {
		return nil, nil, err
	}

	if _, err := uc.repo.UpdatePurchaseRequestStatus(ctx, req.ID, entity.StatusConvertedToPO); err != nil {
		return nil, nil, err
	}
	return order, orderItems, nil
}
