package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// DecideRequestUseCase aprueba o rechaza una solicitud pendiente. Aprobar y
// rechazar comparten contrato: cambia únicamente el estado terminal escrito
// y el estado del registro de aprobación.
type DecideRequestUseCase struct {
	repo repository.PurchasesRepository
}

// NewDecideRequestUseCase construye el caso de uso.
func NewDecideRequestUseCase(repo repository.PurchasesRepository) *DecideRequestUseCase {
	return &DecideRequestUseCase{repo: repo}
}

// Approve aprueba la solicitud: registro APPROVED + transición a APPROVED.
func (uc *DecideRequestUseCase) Approve(ctx context.Context, req *entity.PurchaseRequest, approver *entity.UserProfile, comments string) (*entity.PurchaseRequestApproval, *entity.PurchaseRequest, error) {
	return uc.decide(ctx, req, approver, entity.ApprovalApproved, entity.StatusApproved, comments)
}

// Reject rechaza la solicitud: registro REJECTED + transición a REJECTED.
// La solicitud rechazada puede editarse y reenviarse.
func (uc *DecideRequestUseCase) Reject(ctx context.Context, req *entity.PurchaseRequest, approver *entity.UserProfile, comments string) (*entity.PurchaseRequestApproval, *entity.PurchaseRequest, error) {
	return uc.decide(ctx, req, approver, entity.ApprovalRejected, entity.StatusRejected, comments)
}

// decide valida al aprobador y escribe la decisión. La segregación de
// funciones es invariante dura: el solicitante jamás decide su propia
// solicitud, sin importar sus banderas de permiso.
func (uc *DecideRequestUseCase) decide(ctx context.Context, req *entity.PurchaseRequest, approver *entity.UserProfile, decision entity.ApprovalStatus, target entity.RequestStatus, comments string) (*entity.PurchaseRequestApproval, *entity.PurchaseRequest, error) {
	if approver == nil || !approver.IsActive {
		return nil, nil, domain.ErrInactiveUser
	}
	if !purchase.Can(approver, purchase.ActionApprovePurchase) {
		return nil, nil, domain.ErrCannotApprove
	}
	if approver.ID == req.RequesterID {
		return nil, nil, domain.ErrSelfApproval
	}
	if req.Status != entity.StatusPendingApproval {
		return nil, nil, domain.ErrRequestNotPending
	}

	now := time.Now()
	approval := &entity.PurchaseRequestApproval{
		ID:                uuid.New().String(),
		PurchaseRequestID: req.ID,
		ApproverID:        approver.ID,
		Level:             1,
		Status:            decision,
		Comments:          comments,
		DecisionAt:        &now,
		CreatedAt:         now,
	}
	if err := uc.repo.CreateApproval(ctx, approval); err != nil {
		return nil, nil, err
	}

	updated, err := uc.repo.UpdatePurchaseRequestStatus(ctx, req.ID, target)
	if err != nil {
		return nil, nil, err
	}
	return approval, updated, nil
}
