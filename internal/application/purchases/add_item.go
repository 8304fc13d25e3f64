package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// AddItemInput datos del item a agregar.
type AddItemInput struct {
	ProductID          string
	Description        string
	Quantity           decimal.Decimal
	UnitOfMeasure      string // default EA
	UnitPriceEstimated decimal.Decimal
	CurrencyCode       string // default: divisa de la solicitud
	NeededDate         *time.Time
}

// AddItemUseCase agrega un item a una solicitud editable y recalcula el
// total por re-agregación completa de los line_total.
type AddItemUseCase struct {
	repo repository.PurchasesRepository
}

// NewAddItemUseCase construye el caso de uso.
func NewAddItemUseCase(repo repository.PurchasesRepository) *AddItemUseCase {
	return &AddItemUseCase{repo: repo}
}

// Execute valida en orden (la primera falla gana): usuario activo, dueño o
// admin, estado editable. Luego inserta el item con line_total calculado y
// recalcula el total de la solicitud desde las filas fuente.
func (uc *AddItemUseCase) Execute(ctx context.Context, req *entity.PurchaseRequest, user *entity.UserProfile, in AddItemInput) (*entity.PurchaseRequestItem, decimal.Decimal, error) {
	if user == nil || !user.IsActive {
		return nil, decimal.Zero, domain.ErrInactiveUser
	}
	isOwner := user.ID == req.RequesterID
	if !isOwner && user.Role != entity.RoleAdmin {
		return nil, decimal.Zero, domain.ErrNotRequestOwner
	}
	if !purchase.IsEditable(req.Status) {
		return nil, decimal.Zero, domain.ErrRequestNotEditable
	}
	if in.Description == "" || !in.Quantity.IsPositive() || in.UnitPriceEstimated.IsNegative() {
		return nil, decimal.Zero, domain.ErrInvalidInput
	}

	unit := in.UnitOfMeasure
	if unit == "" {
		unit = "EA"
	}
	code := in.CurrencyCode
	if code == "" {
		code = req.CurrencyCode
	}

	item := &entity.PurchaseRequestItem{
		ID:                 uuid.New().String(),
		PurchaseRequestID:  req.ID,
		ProductID:          in.ProductID,
		Description:        in.Description,
		Quantity:           in.Quantity,
		UnitOfMeasure:      unit,
		UnitPriceEstimated: in.UnitPriceEstimated,
		CurrencyCode:       code,
		LineTotal:          in.Quantity.Mul(in.UnitPriceEstimated),
		NeededDate:         in.NeededDate,
		CreatedAt:          time.Now(),
	}
	if err := uc.repo.AddPurchaseRequestItem(ctx, item); err != nil {
		return nil, decimal.Zero, err
	}

	total, err := uc.repo.RecalculatePurchaseRequestTotal(ctx, req.ID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return item, total, nil
}
