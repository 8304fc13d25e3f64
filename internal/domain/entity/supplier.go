package entity

import "time"

// Supplier proveedor de compras.
type Supplier struct {
	ID               string
	CompanyName      string
	RFC              string
	Email            string
	Phone            string
	ContactPerson    string
	PaymentTerms     string // ej. "Net 30"
	DeliveryTimeDays int
	AddressStreet    string
	AddressCity      string
	AddressState     string
	AddressZipCode   string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
