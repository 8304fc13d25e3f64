package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetByCode(code string) (*entity.Location, error)
	List() ([]*entity.Location, error)
	Delete(id string) error
}
