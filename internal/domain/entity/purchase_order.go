package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
type OrderStatus string

const (
	OrderOpen              OrderStatus = "OPEN"
	OrderPartiallyReceived OrderStatus = "PARTIALLY_RECEIVED"
	OrderClosed            OrderStatus = "CLOSED"
	OrderCancelled         OrderStatus = "CANCELLED"
)

// PurchaseOrder orden de compra creada a partir de una solicitud APPROVED.
// CurrencyCode y TotalAmount se copian de la solicitud al momento de crearla.
type PurchaseOrder struct {
	ID                   string
	PONumber             string // folio PO-<año>-<secuencia de 5 dígitos>
	PurchaseRequestID    string // vacío para futuras órdenes sin solicitud de origen
	BuyerID              string
	SupplierID           string
	Status               OrderStatus
	CurrencyCode         string
	TotalAmount          decimal.Decimal
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PurchaseOrderItem línea de la orden: snapshot del item de la solicitud al
// momento de la conversión, no una referencia viva.
type PurchaseOrderItem struct {
	ID              string
	PurchaseOrderID string
	ProductID       string
	Description     string
	Quantity        decimal.Decimal
	UnitOfMeasure   string
	UnitPrice       decimal.Decimal
	CurrencyCode    string
	LineTotal       decimal.Decimal
	CreatedAt       time.Time
}
