package repository

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	// ListActive proveedores activos ordenados por razón social, para el
	// formulario de solicitudes de compra.
	ListActive() ([]*entity.Supplier, error)
}
