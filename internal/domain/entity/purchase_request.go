package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prioridades de una solicitud de compra.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// ParsePriority normaliza el valor almacenado; desconocido cae a NORMAL.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return Priority(s)
	default:
		return PriorityNormal
	}
}

// Estados de una solicitud de compra.
type RequestStatus string

const (
	StatusDraft           RequestStatus = "DRAFT"
	StatusPendingApproval RequestStatus = "PENDING_APPROVAL"
	StatusApproved        RequestStatus = "APPROVED"
	StatusRejected        RequestStatus = "REJECTED"
	StatusCancelled       RequestStatus = "CANCELLED"
	StatusConvertedToPO   RequestStatus = "CONVERTED_TO_PO"
)

// PurchaseRequest es la requisición de compra. TotalAmount es derivado:
// siempre se recalcula desde los line_total de sus items, nunca se escribe
// directamente.
type PurchaseRequest struct {
	ID            string
	RequestNumber string // folio PR-<año>-<secuencia de 5 dígitos>
	RequesterID   string
	SupplierID    string // vacío = sin proveedor asignado
	Priority      Priority
	Status        RequestStatus
	CurrencyCode  string
	TotalAmount   decimal.Decimal
	RequiredDate  *time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PurchaseRequestItem línea de la solicitud. LineTotal = Quantity ×
// UnitPriceEstimated, calculado al insertar.
type PurchaseRequestItem struct {
	ID                 string
	PurchaseRequestID  string
	ProductID          string // vacío = item libre sin producto de catálogo
	Description        string
	Quantity           decimal.Decimal
	UnitOfMeasure      string
	UnitPriceEstimated decimal.Decimal
	CurrencyCode       string
	LineTotal          decimal.Decimal
	NeededDate         *time.Time
	CreatedAt          time.Time
}

// Estados de un registro de aprobación.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// PurchaseRequestApproval registro de decisión, append-only. Una solicitud
// acumula varios registros a través de ciclos de rechazo y reenvío; el
// historial se conserva, nunca se sobreescribe.
type PurchaseRequestApproval struct {
	ID                string
	PurchaseRequestID string
	ApproverID        string
	Level             int
	Status            ApprovalStatus
	Comments          string
	DecisionAt        *time.Time
	CreatedAt         time.Time
}
