package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	CompanyName      string `json:"company_name" validate:"required"`
	RFC              string `json:"rfc" validate:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ContactPerson    string `json:"contact_person"`
	PaymentTerms     string `json:"payment_terms"`      // default "Net 30"
	DeliveryTimeDays int    `json:"delivery_time_days"` // default 7
	AddressStreet    string `json:"address_street"`
	AddressCity      string `json:"address_city"`
	AddressState     string `json:"address_state"`
	AddressZipCode   string `json:"address_zip_code"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	CompanyName      *string `json:"company_name"`
	RFC              *string `json:"rfc"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	ContactPerson    *string `json:"contact_person"`
	PaymentTerms     *string `json:"payment_terms"`
	DeliveryTimeDays *int    `json:"delivery_time_days"`
	AddressStreet    *string `json:"address_street"`
	AddressCity      *string `json:"address_city"`
	AddressState     *string `json:"address_state"`
	AddressZipCode   *string `json:"address_zip_code"`
	IsActive         *bool   `json:"is_active"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID               string    `json:"id"`
	CompanyName      string    `json:"company_name"`
	RFC              string    `json:"rfc"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	ContactPerson    string    `json:"contact_person,omitempty"`
	PaymentTerms     string    `json:"payment_terms"`
	DeliveryTimeDays int       `json:"delivery_time_days"`
	AddressStreet    string    `json:"address_street,omitempty"`
	AddressCity      string    `json:"address_city,omitempty"`
	AddressState     string    `json:"address_state,omitempty"`
	AddressZipCode   string    `json:"address_zip_code,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SupplierListResponse listado de proveedores.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
