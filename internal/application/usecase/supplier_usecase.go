package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. Nace activo.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.CompanyName == "" || in.RFC == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentTerms == "" {
		in.PaymentTerms = "Net 30"
	}
	if in.DeliveryTimeDays <= 0 {
		in.DeliveryTimeDays = 7
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:               uuid.New().String(),
		CompanyName:      in.CompanyName,
		RFC:              in.RFC,
		Email:            in.Email,
		Phone:            in.Phone,
		ContactPerson:    in.ContactPerson,
		PaymentTerms:     in.PaymentTerms,
		DeliveryTimeDays: in.DeliveryTimeDays,
		AddressStreet:    in.AddressStreet,
		AddressCity:      in.AddressCity,
		AddressState:     in.AddressState,
		AddressZipCode:   in.AddressZipCode,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor. La baja es lógica vía is_active.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	if in.CompanyName != nil {
		supplier.CompanyName = *in.CompanyName
	}
	if in.RFC != nil {
		supplier.RFC = *in.RFC
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.ContactPerson != nil {
		supplier.ContactPerson = *in.ContactPerson
	}
	if in.PaymentTerms != nil {
		supplier.PaymentTerms = *in.PaymentTerms
	}
	if in.DeliveryTimeDays != nil {
		supplier.DeliveryTimeDays = *in.DeliveryTimeDays
	}
	if in.AddressStreet != nil {
		supplier.AddressStreet = *in.AddressStreet
	}
	if in.AddressCity != nil {
		supplier.AddressCity = *in.AddressCity
	}
	if in.AddressState != nil {
		supplier.AddressState = *in.AddressState
	}
	if in.AddressZipCode != nil {
		supplier.AddressZipCode = *in.AddressZipCode
	}
	if in.IsActive != nil {
		supplier.IsActive = *in.IsActive
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(limit, offset int) (*dto.SupplierListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:               s.ID,
		CompanyName:      s.CompanyName,
		RFC:              s.RFC,
		Email:            s.Email,
		Phone:            s.Phone,
		ContactPerson:    s.ContactPerson,
		PaymentTerms:     s.PaymentTerms,
		DeliveryTimeDays: s.DeliveryTimeDays,
		AddressStreet:    s.AddressStreet,
		AddressCity:      s.AddressCity,
		AddressState:     s.AddressState,
		AddressZipCode:   s.AddressZipCode,
		IsActive:         s.IsActive,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
