package purchases

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// QueryUseCase lecturas del flujo de compras para la capa de presentación.
type QueryUseCase struct {
	repo         repository.PurchasesRepository
	supplierRepo repository.SupplierRepository
}

// NewQueryUseCase construye el caso de uso de lecturas.
func NewQueryUseCase(repo repository.PurchasesRepository, supplierRepo repository.SupplierRepository) *QueryUseCase {
	return &QueryUseCase{repo: repo, supplierRepo: supplierRepo}
}

// GetRequestDetail devuelve la solicitud con items e historial de aprobaciones.
func (uc *QueryUseCase) GetRequestDetail(ctx context.Context, id string) (*entity.PurchaseRequest, []*entity.PurchaseRequestItem, []*entity.PurchaseRequestApproval, error) {
	req, items, err := uc.repo.GetPurchaseRequestWithItems(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if req == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	approvals, err := uc.repo.ListApprovalsForRequest(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	return req, items, approvals, nil
}

// ListRequestsForUser solicitudes visibles para el usuario: todas para
// admin, solo las propias para el resto.
func (uc *QueryUseCase) ListRequestsForUser(ctx context.Context, user *entity.UserProfile) ([]*entity.PurchaseRequest, error) {
	return uc.repo.ListPurchaseRequestsForUser(ctx, user)
}

// ListOrders todas las órdenes de compra, más recientes primero.
func (uc *QueryUseCase) ListOrders(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	return uc.repo.ListPurchaseOrders(ctx)
}

// GetOrderDetail orden con sus items.
func (uc *QueryUseCase) GetOrderDetail(ctx context.Context, id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, error) {
	order, items, err := uc.repo.GetPurchaseOrderWithItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, domain.ErrNotFound
	}
	return order, items, nil
}

// ListActiveSuppliers proveedores activos para el formulario de solicitudes.
func (uc *QueryUseCase) ListActiveSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	_ = ctx
	return uc.supplierRepo.ListActive()
}
