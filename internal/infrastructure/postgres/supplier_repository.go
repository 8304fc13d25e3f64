package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, company_name, rfc, email, phone, contact_person, payment_terms, delivery_time_days, address_street, address_city, address_state, address_zip_code, is_active, created_at, updated_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.CompanyName, &s.RFC, &s.Email, &s.Phone, &s.ContactPerson,
		&s.PaymentTerms, &s.DeliveryTimeDays, &s.AddressStreet, &s.AddressCity,
		&s.AddressState, &s.AddressZipCode, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, company_name, rfc, email, phone, contact_person, payment_terms, delivery_time_days, address_street, address_city, address_state, address_zip_code, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyName, supplier.RFC, supplier.Email, supplier.Phone,
		supplier.ContactPerson, supplier.PaymentTerms, supplier.DeliveryTimeDays,
		supplier.AddressStreet, supplier.AddressCity, supplier.AddressState,
		supplier.AddressZipCode, supplier.IsActive, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	supplier, err := scanSupplier(r.q.QueryRow(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return supplier, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET company_name = $2, rfc = $3, email = $4, phone = $5, contact_person = $6, payment_terms = $7, delivery_time_days = $8, address_street = $9, address_city = $10, address_state = $11, address_zip_code = $12, is_active = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.CompanyName, supplier.RFC, supplier.Email, supplier.Phone,
		supplier.ContactPerson, supplier.PaymentTerms, supplier.DeliveryTimeDays,
		supplier.AddressStreet, supplier.AddressCity, supplier.AddressState,
		supplier.AddressZipCode, supplier.IsActive, supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY company_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	return collectSuppliers(rows)
}

// ListActive proveedores activos ordenados por razón social.
func (r *SupplierRepo) ListActive() ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+supplierColumns+` FROM suppliers WHERE is_active ORDER BY company_name`)
	if err != nil {
		return nil, fmt.Errorf("list active suppliers: %w", err)
	}
	defer rows.Close()
	return collectSuppliers(rows)
}

func collectSuppliers(rows pgx.Rows) ([]*entity.Supplier, error) {
	var list []*entity.Supplier
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, supplier)
	}
	return list, rows.Err()
}
