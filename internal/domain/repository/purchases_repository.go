package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// PurchasesRepository define el puerto de persistencia del flujo de compras.
// El adaptador debe distinguir fallas (not-found vs. violación de constraint
// vs. conectividad) para que los casos de uso reporten errores precisos.
type PurchasesRepository interface {
	// GenerateNextRequestNumber calcula el siguiente folio PR-<año>-NNNNN.
	// El folio reinicia en 00001 con cada año. No es seguro ante dos
	// generaciones concurrentes; el índice único sobre request_number
	// convierte la colisión en error de duplicado.
	GenerateNextRequestNumber(ctx context.Context) (string, error)
	// GenerateNextPONumber igual que el anterior, con espacio PO-<año>-%.
	GenerateNextPONumber(ctx context.Context) (string, error)

	CreatePurchaseRequest(ctx context.Context, req *entity.PurchaseRequest) error
	AddPurchaseRequestItem(ctx context.Context, item *entity.PurchaseRequestItem) error
	// RecalculatePurchaseRequestTotal fija total_amount a la suma de los
	// line_total de todos los items (re-agregación completa desde las filas
	// fuente, no suma incremental) y devuelve el total resultante.
	RecalculatePurchaseRequestTotal(ctx context.Context, requestID string) (decimal.Decimal, error)
	UpdatePurchaseRequestStatus(ctx context.Context, id string, status entity.RequestStatus) (*entity.PurchaseRequest, error)
	GetPurchaseRequestWithItems(ctx context.Context, id string) (*entity.PurchaseRequest, []*entity.PurchaseRequestItem, error)

	CreateApproval(ctx context.Context, approval *entity.PurchaseRequestApproval) error
	ListApprovalsForRequest(ctx context.Context, requestID string) ([]*entity.PurchaseRequestApproval, error)

	// CreatePurchaseOrderFromRequest inserta la cabecera de la orden y copia
	// los items de la solicitud como snapshot, atómicamente.
	CreatePurchaseOrderFromRequest(ctx context.Context, req *entity.PurchaseRequest, buyerID, poNumber string, items []*entity.PurchaseRequestItem) (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, error)
	GetPurchaseOrderWithItems(ctx context.Context, id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, error)

	// ListPurchaseRequestsForUser devuelve todas las solicitudes para admin
	// y solo las propias para el resto.
	ListPurchaseRequestsForUser(ctx context.Context, user *entity.UserProfile) ([]*entity.PurchaseRequest, error)
	ListPurchaseOrders(ctx context.Context) ([]*entity.PurchaseOrder, error)
}
