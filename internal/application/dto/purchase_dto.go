package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequestRequest entrada para crear una solicitud de compra.
type CreatePurchaseRequestRequest struct {
	SupplierID   string `json:"supplier_id"`
	Priority     string `json:"priority"`      // LOW, NORMAL, HIGH, URGENT (default NORMAL)
	CurrencyCode string `json:"currency_code"` // default MXN
	RequiredDate string `json:"required_date"` // YYYY-MM-DD
	Notes        string `json:"notes"`
}

// AddRequestItemRequest entrada para agregar un item a la solicitud.
type AddRequestItemRequest struct {
	ProductID          string          `json:"product_id"`
	Description        string          `json:"description" validate:"required"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitOfMeasure      string          `json:"unit_of_measure"` // default EA
	UnitPriceEstimated decimal.Decimal `json:"unit_price_estimated"`
	CurrencyCode       string          `json:"currency_code"` // default: divisa de la solicitud
	NeededDate         string          `json:"needed_date"`   // YYYY-MM-DD
}

// DecisionRequest entrada para aprobar o rechazar.
type DecisionRequest struct {
	Comments string `json:"comments"`
}

// PurchaseRequestResponse salida de una solicitud de compra.
type PurchaseRequestResponse struct {
	ID            string          `json:"id"`
	RequestNumber string          `json:"request_number"`
	RequesterID   string          `json:"requester_id"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	Priority      string          `json:"priority"`
	Status        string          `json:"status"`
	CurrencyCode  string          `json:"currency_code"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	RequiredDate  *time.Time      `json:"required_date,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PurchaseRequestItemResponse salida de un item de solicitud.
type PurchaseRequestItemResponse struct {
	ID                 string          `json:"id"`
	PurchaseRequestID  string          `json:"purchase_request_id"`
	ProductID          string          `json:"product_id,omitempty"`
	Description        string          `json:"description"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitOfMeasure      string          `json:"unit_of_measure"`
	UnitPriceEstimated decimal.Decimal `json:"unit_price_estimated"`
	CurrencyCode       string          `json:"currency_code"`
	LineTotal          decimal.Decimal `json:"line_total"`
	NeededDate         *time.Time      `json:"needed_date,omitempty"`
}

// ApprovalResponse salida de un registro de aprobación.
type ApprovalResponse struct {
	ID                string     `json:"id"`
	PurchaseRequestID string     `json:"purchase_request_id"`
	ApproverID        string     `json:"approver_id"`
	Level             int        `json:"level"`
	Status            string     `json:"status"`
	Comments          string     `json:"comments,omitempty"`
	DecisionAt        *time.Time `json:"decision_at,omitempty"`
}

// PurchaseRequestDetailResponse solicitud con items e historial de aprobaciones.
type PurchaseRequestDetailResponse struct {
	Request   PurchaseRequestResponse       `json:"request"`
	Items     []PurchaseRequestItemResponse `json:"items"`
	Approvals []ApprovalResponse            `json:"approvals"`
}

// AddItemResponse item creado y total recalculado de la solicitud.
type AddItemResponse struct {
	Item        PurchaseRequestItemResponse `json:"item"`
	TotalAmount decimal.Decimal             `json:"total_amount"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID                   string          `json:"id"`
	PONumber             string          `json:"po_number"`
	PurchaseRequestID    string          `json:"purchase_request_id,omitempty"`
	BuyerID              string          `json:"buyer_id"`
	SupplierID           string          `json:"supplier_id"`
	Status               string          `json:"status"`
	CurrencyCode         string          `json:"currency_code"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	OrderDate            time.Time       `json:"order_date"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date,omitempty"`
	Notes                string          `json:"notes,omitempty"`
}

// PurchaseOrderItemResponse salida de un item de orden.
type PurchaseOrderItemResponse struct {
	ID              string          `json:"id"`
	PurchaseOrderID string          `json:"purchase_order_id"`
	ProductID       string          `json:"product_id,omitempty"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitOfMeasure   string          `json:"unit_of_measure"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	CurrencyCode    string          `json:"currency_code"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// PurchaseOrderDetailResponse orden con sus items.
type PurchaseOrderDetailResponse struct {
	Order PurchaseOrderResponse       `json:"order"`
	Items []PurchaseOrderItemResponse `json:"items"`
}

// PurchaseRequestListResponse listado de solicitudes.
type PurchaseRequestListResponse struct {
	Items []PurchaseRequestResponse `json:"items"`
}

// PurchaseOrderListResponse listado de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
}
