package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// UserUseCase administración de perfiles (solo admin). Las banderas de
// compra se editan aquí y surten efecto en la siguiente operación, no al
// renovar el token.
type UserUseCase struct {
	repo repository.UserProfileRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserProfileRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un perfil por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return toUserResponse(profile), nil
}

// Update actualiza un perfil campo por campo.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	profile, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	if in.FullName != nil {
		profile.FullName = *in.FullName
	}
	if in.Role != nil {
		role := entity.ParseRole(*in.Role)
		if role == entity.RoleUnknown {
			return nil, domain.ErrInvalidInput
		}
		profile.Role = role
	}
	if in.IsActive != nil {
		profile.IsActive = *in.IsActive
	}
	if in.CanRequestPurchases != nil {
		profile.CanRequestPurchases = *in.CanRequestPurchases
	}
	if in.CanApprovePurchases != nil {
		profile.CanApprovePurchases = *in.CanApprovePurchases
	}
	profile.UpdatedAt = time.Now()
	if err := uc.repo.Update(profile); err != nil {
		return nil, err
	}
	return toUserResponse(profile), nil
}

// List lista perfiles con paginación.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toUserResponse(p))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toUserResponse(p *entity.UserProfile) *dto.UserResponse {
	if p == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                  p.ID,
		Email:               p.Email,
		FullName:            p.FullName,
		Role:                string(p.Role),
		IsActive:            p.IsActive,
		CanRequestPurchases: p.CanRequestPurchases,
		CanApprovePurchases: p.CanApprovePurchases,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}
