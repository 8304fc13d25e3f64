package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// UserProfileRepository define el puerto de persistencia para UserProfile.
// El perfil se lee fresco en cada operación del flujo de compras porque las
// banderas de permiso pueden cambiar entre llamadas.
type UserProfileRepository interface {
	Create(profile *entity.UserProfile) error
	GetByID(id string) (*entity.UserProfile, error)
	GetByEmail(email string) (*entity.UserProfile, error)
	Update(profile *entity.UserProfile) error
	List(limit, offset int) ([]*entity.UserProfile, error)
}
