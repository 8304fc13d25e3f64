package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// ExchangeRateProvider puerto para la tasa de cambio del día hacia MXN.
type ExchangeRateProvider interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// ProductUseCase casos de uso CRUD para productos del catálogo. El costo se
// normaliza a MXN al registrar; la divisa y la tasa originales se conservan.
type ProductUseCase struct {
	repo  repository.ProductRepository
	rates ExchangeRateProvider
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, rates ExchangeRateProvider) *ProductUseCase {
	return &ProductUseCase{repo: repo, rates: rates}
}

// Create crea un producto. TaxRate por defecto 0.16 (IVA); si el costo viene
// en otra divisa se convierte a MXN con la tasa del día.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.TaxRate.IsZero() {
		in.TaxRate = decimal.RequireFromString("0.16")
	}
	if in.TaxRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.OriginalCurrencyCode == "" {
		in.OriginalCurrencyCode = "MXN"
	}
	if _, err := currency.ParseISO(in.OriginalCurrencyCode); err != nil {
		return nil, domain.ErrInvalidCurrency
	}

	rate := decimal.NewFromInt(1)
	costMXN := in.OriginalCostPrice
	if in.OriginalCurrencyCode != "MXN" && in.OriginalCostPrice.IsPositive() {
		rate, err = uc.rates.Rate(ctx, in.OriginalCurrencyCode, "MXN")
		if err != nil {
			return nil, err
		}
		costMXN = in.OriginalCostPrice.Mul(rate)
	}

	now := time.Now()
	product := &entity.Product{
		ID:                   uuid.New().String(),
		SKU:                  in.SKU,
		Name:                 in.Name,
		Description:          in.Description,
		MinStock:             in.MinStock,
		TaxRate:              in.TaxRate,
		CostPriceMXN:         costMXN,
		OriginalCostPrice:    in.OriginalCostPrice,
		OriginalCurrencyCode: in.OriginalCurrencyCode,
		ExchangeRate:         rate,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El costo no se edita aquí: se recalcula
// en los registros de compra.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.TaxRate = *in.TaxRate
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                   p.ID,
		SKU:                  p.SKU,
		Name:                 p.Name,
		Description:          p.Description,
		MinStock:             p.MinStock,
		TaxRate:              p.TaxRate,
		CostPriceMXN:         p.CostPriceMXN,
		OriginalCostPrice:    p.OriginalCostPrice,
		OriginalCurrencyCode: p.OriginalCurrencyCode,
		ExchangeRate:         p.ExchangeRate,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
