package purchases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// CreateRequestInput datos para crear una solicitud de compra.
type CreateRequestInput struct {
	SupplierID   string
	Priority     string
	CurrencyCode string
	RequiredDate *time.Time
	Notes        string
}

// CreateRequestUseCase crea una solicitud de compra en estado DRAFT con
// folio secuencial y total en cero.
type CreateRequestUseCase struct {
	repo repository.PurchasesRepository
}

// NewCreateRequestUseCase construye el caso de uso con el puerto de persistencia.
func NewCreateRequestUseCase(repo repository.PurchasesRepository) *CreateRequestUseCase {
	return &CreateRequestUseCase{repo: repo}
}

// Execute valida al solicitante, genera el folio y persiste la solicitud.
func (uc *CreateRequestUseCase) Execute(ctx context.Context, requester *entity.UserProfile, in CreateRequestInput) (*entity.PurchaseRequest, error) {
	if requester == nil || !requester.IsActive {
		return nil, domain.ErrInactiveUser
	}
	if !purchase.Can(requester, purchase.ActionRequestPurchase) {
		return nil, domain.ErrCannotRequest
	}

	code := in.CurrencyCode
	if code == "" {
		code = "MXN"
	}
	if _, err := currency.ParseISO(code); err != nil {
		return nil, fmt.Errorf("divisa %q: %w", code, domain.ErrInvalidInput)
	}

	number, err := uc.repo.GenerateNextRequestNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	req := &entity.PurchaseRequest{
		ID:            uuid.New().String(),
		RequestNumber: number,
		RequesterID:   requester.ID,
		SupplierID:    in.SupplierID,
		Priority:      entity.ParsePriority(in.Priority),
		Status:        entity.StatusDraft,
		CurrencyCode:  code,
		TotalAmount:   decimal.Zero,
		RequiredDate:  in.RequiredDate,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.CreatePurchaseRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
