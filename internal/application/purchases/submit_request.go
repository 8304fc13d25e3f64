package purchases

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// SubmitRequestUseCase envía una solicitud DRAFT o REJECTED a aprobación.
// Reenviar una solicitud rechazada conserva el historial de aprobaciones.
type SubmitRequestUseCase struct {
	repo repository.PurchasesRepository
}

// NewSubmitRequestUseCase construye el caso de uso.
func NewSubmitRequestUseCase(repo repository.PurchasesRepository) *SubmitRequestUseCase {
	return &SubmitRequestUseCase{repo: repo}
}

// Execute transiciona la solicitud a PENDING_APPROVAL. Los items se leen
// frescos del almacén, no del estado que traiga el caller: una solicitud
// vacía no puede enviarse.
func (uc *SubmitRequestUseCase) Execute(ctx context.Context, req *entity.PurchaseRequest, user *entity.UserProfile) (*entity.PurchaseRequest, error) {
	if user == nil || !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	if user.Role != entity.RoleAdmin && !purchase.Can(user, purchase.ActionRequestPurchase) {
		return nil, domain.ErrCannotSubmit
	}
	if user.ID != req.RequesterID && user.Role != entity.RoleAdmin {
		return nil, domain.ErrNotSubmitOwner
	}
	if !purchase.IsSubmittable(req.Status) {
		return nil, domain.ErrRequestNotSubmittable
	}

	_, items, err := uc.repo.GetPurchaseRequestWithItems(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrRequestEmpty
	}

	return uc.repo.UpdatePurchaseRequestStatus(ctx, req.ID, entity.StatusPendingApproval)
}
