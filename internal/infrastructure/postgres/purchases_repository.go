package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/folio"
)

var _ repository.PurchasesRepository = (*PurchasesRepo)(nil)

// PurchasesRepo implementación del puerto PurchasesRepository sobre
// PostgreSQL. Recibe el pool (no un Querier) porque la conversión a orden
// de compra abre su propia transacción.
type PurchasesRepo struct {
	pool *pgxpool.Pool
}

// NewPurchasesRepository construye el adaptador del flujo de compras.
func NewPurchasesRepository(pool *pgxpool.Pool) *PurchasesRepo {
	return &PurchasesRepo{pool: pool}
}

// GenerateNextRequestNumber lee el folio más alto del año y devuelve el
// siguiente. Dos llamadas concurrentes pueden devolver el mismo folio; el
// índice único sobre request_number convierte esa colisión en ErrDuplicate
// al insertar.
func (r *PurchasesRepo) GenerateNextRequestNumber(ctx context.Context) (string, error) {
	return r.nextNumber(ctx, "PR", `
		SELECT request_number FROM purchase_requests
		WHERE request_number LIKE $1 ORDER BY request_number DESC LIMIT 1`)
}

// GenerateNextPONumber igual que el anterior, sobre purchase_orders.
func (r *PurchasesRepo) GenerateNextPONumber(ctx context.Context) (string, error) {
	return r.nextNumber(ctx, "PO", `
		SELECT po_number FROM purchase_orders
		WHERE po_number LIKE $1 ORDER BY po_number DESC LIMIT 1`)
}

func (r *PurchasesRepo) nextNumber(ctx context.Context, kind, query string) (string, error) {
	year := time.Now().Year()
	var latest string
	err := r.pool.QueryRow(ctx, query, folio.Prefix(kind, year)+"%").Scan(&latest)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("ultimo folio %s: %w", kind, err)
	}
	return folio.Next(kind, year, latest), nil
}

// CreatePurchaseRequest persiste una nueva solicitud.
func (r *PurchasesRepo) CreatePurchaseRequest(ctx context.Context, req *entity.PurchaseRequest) error {
	query := `
		INSERT INTO purchase_requests (id, request_number, requester_id, supplier_id, priority, status, currency_code, total_amount, required_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		req.ID, req.RequestNumber, req.RequesterID, textOrNil(req.SupplierID),
		string(req.Priority), string(req.Status), req.CurrencyCode, req.TotalAmount,
		req.RequiredDate, req.Notes, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase request: %w", err)
	}
	return nil
}

// AddPurchaseRequestItem persiste una línea de la solicitud.
func (r *PurchasesRepo) AddPurchaseRequestItem(ctx context.Context, item *entity.PurchaseRequestItem) error {
	query := `
		INSERT INTO purchase_request_items (id, purchase_request_id, product_id, description, quantity, unit_of_measure, unit_price_estimated, currency_code, line_total, needed_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.PurchaseRequestID, textOrNil(item.ProductID), item.Description,
		item.Quantity, item.UnitOfMeasure, item.UnitPriceEstimated, item.CurrencyCode,
		item.LineTotal, item.NeededDate, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert request item: %w", err)
	}
	return nil
}

// RecalculatePurchaseRequestTotal fija total_amount a la suma de line_total
// de todos los items en un solo UPDATE con subconsulta: re-agregación
// completa desde las filas fuente, nunca suma incremental.
func (r *PurchasesRepo) RecalculatePurchaseRequestTotal(ctx context.Context, requestID string) (decimal.Decimal, error) {
	query := `
		UPDATE purchase_requests SET
			total_amount = COALESCE((SELECT SUM(line_total) FROM purchase_request_items WHERE purchase_request_id = $1), 0),
			updated_at = now()
		WHERE id = $1
		RETURNING total_amount`
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, requestID).Scan(&total)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("recalcular total: %w", err)
	}
	return total, nil
}

const requestColumns = `id, request_number, requester_id, COALESCE(supplier_id, ''), priority, status, currency_code, total_amount, required_date, notes, created_at, updated_at`

func scanRequest(row pgx.Row) (*entity.PurchaseRequest, error) {
	var req entity.PurchaseRequest
	var priority, status string
	err := row.Scan(
		&req.ID, &req.RequestNumber, &req.RequesterID, &req.SupplierID,
		&priority, &status, &req.CurrencyCode, &req.TotalAmount,
		&req.RequiredDate, &req.Notes, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	req.Priority = entity.ParsePriority(priority)
	req.Status = entity.RequestStatus(status)
	return &req, nil
}

// UpdatePurchaseRequestStatus cambia el estado y devuelve la fila actualizada.
func (r *PurchasesRepo) UpdatePurchaseRequestStatus(ctx context.Context, id string, status entity.RequestStatus) (*entity.PurchaseRequest, error) {
	query := `
		UPDATE purchase_requests SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + requestColumns
	req, err := scanRequest(r.pool.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update request status: %w", err)
	}
	return req, nil
}

// GetPurchaseRequestWithItems devuelve la solicitud y sus items. (nil, nil,
// nil) si no existe.
func (r *PurchasesRepo) GetPurchaseRequestWithItems(ctx context.Context, id string) (*entity.PurchaseRequest, []*entity.PurchaseRequestItem, error) {
	req, err := scanRequest(r.pool.QueryRow(ctx,
		`SELECT `+requestColumns+` FROM purchase_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get purchase request: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, purchase_request_id, COALESCE(product_id, ''), description, quantity, unit_of_measure, unit_price_estimated, currency_code, line_total, needed_date, created_at
		FROM purchase_request_items WHERE purchase_request_id = $1 ORDER BY created_at`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list request items: %w", err)
	}
	defer rows.Close()

	var items []*entity.PurchaseRequestItem
	for rows.Next() {
		var it entity.PurchaseRequestItem
		if err := rows.Scan(&it.ID, &it.PurchaseRequestID, &it.ProductID, &it.Description,
			&it.Quantity, &it.UnitOfMeasure, &it.UnitPriceEstimated, &it.CurrencyCode,
			&it.LineTotal, &it.NeededDate, &it.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("scan request item: %w", err)
		}
		items = append(items, &it)
	}
	return req, items, rows.Err()
}

// CreateApproval inserta un registro de decisión. La tabla es append-only:
// nunca se actualizan ni borran registros previos.
func (r *PurchasesRepo) CreateApproval(ctx context.Context, approval *entity.PurchaseRequestApproval) error {
	query := `
		INSERT INTO purchase_request_approvals (id, purchase_request_id, approver_id, level, status, comments, decision_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		approval.ID, approval.PurchaseRequestID, approval.ApproverID, approval.Level,
		string(approval.Status), approval.Comments, approval.DecisionAt, approval.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert approval: %w", err)
	}
	return nil
}

// ListApprovalsForRequest historial de decisiones, más antiguas primero.
func (r *PurchasesRepo) ListApprovalsForRequest(ctx context.Context, requestID string) ([]*entity.PurchaseRequestApproval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, purchase_request_id, approver_id, level, status, comments, decision_at, created_at
		FROM purchase_request_approvals WHERE purchase_request_id = $1 ORDER BY created_at`, requestID)
	if err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseRequestApproval
	for rows.Next() {
		var a entity.PurchaseRequestApproval
		var status string
		if err := rows.Scan(&a.ID, &a.PurchaseRequestID, &a.ApproverID, &a.Level,
			&status, &a.Comments, &a.DecisionAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan approval: %w", err)
		}
		a.Status = entity.ApprovalStatus(status)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CreatePurchaseOrderFromRequest inserta la cabecera y copia los items de la
// solicitud como snapshot, en una sola transacción. El cambio de estado de
// la solicitud corre aparte, en el caso de uso.
func (r *PurchasesRepo) CreatePurchaseOrderFromRequest(ctx context.Context, req *entity.PurchaseRequest, buyerID, poNumber string, items []*entity.PurchaseRequestItem) (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, error) {
	if req.SupplierID == "" {
		return nil, nil, domain.ErrMissingSupplier
	}
	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:                   uuid.New().String(),
		PONumber:             poNumber,
		PurchaseRequestID:    req.ID,
		BuyerID:              buyerID,
		SupplierID:           req.SupplierID,
		Status:               entity.OrderOpen,
		CurrencyCode:         req.CurrencyCode,
		TotalAmount:          req.TotalAmount,
		OrderDate:            now,
		ExpectedDeliveryDate: req.RequiredDate,
		Notes:                req.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO purchase_orders (id, po_number, purchase_request_id, buyer_id, supplier_id, status, currency_code, total_amount, order_date, expected_delivery_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		order.ID, order.PONumber, textOrNil(order.PurchaseRequestID), order.BuyerID,
		order.SupplierID, string(order.Status), order.CurrencyCode, order.TotalAmount,
		order.OrderDate, order.ExpectedDeliveryDate, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, domain.ErrDuplicate
		}
		return nil, nil, fmt.Errorf("insert purchase order: %w", err)
	}

	var copied []*entity.PurchaseOrderItem
	for _, it := range items {
		oi := &entity.PurchaseOrderItem{
			ID:              uuid.New().String(),
			PurchaseOrderID: order.ID,
			ProductID:       it.ProductID,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitOfMeasure:   it.UnitOfMeasure,
			UnitPrice:       it.UnitPriceEstimated,
			CurrencyCode:    it.CurrencyCode,
			LineTotal:       it.LineTotal,
			CreatedAt:       now,
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO purchase_order_items (id, purchase_order_id, product_id, description, quantity, unit_of_measure, unit_price, currency_code, line_total, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			oi.ID, oi.PurchaseOrderID, textOrNil(oi.ProductID), oi.Description,
			oi.Quantity, oi.UnitOfMeasure, oi.UnitPrice, oi.CurrencyCode, oi.LineTotal, oi.CreatedAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("insert order item: %w", err)
		}
		copied = append(copied, oi)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit transaction: %w", err)
	}
	return order, copied, nil
}

const orderColumns = `id, po_number, COALESCE(purchase_request_id, ''), buyer_id, supplier_id, status, currency_code, total_amount, order_date, expected_delivery_date, notes, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var status string
	err := row.Scan(
		&o.ID, &o.PONumber, &o.PurchaseRequestID, &o.BuyerID, &o.SupplierID,
		&status, &o.CurrencyCode, &o.TotalAmount, &o.OrderDate,
		&o.ExpectedDeliveryDate, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}

// GetPurchaseOrderWithItems devuelve la orden y sus items. (nil, nil, nil)
// si no existe.
func (r *PurchasesRepo) GetPurchaseOrderWithItems(ctx context.Context, id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get purchase order: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, purchase_order_id, COALESCE(product_id, ''), description, quantity, unit_of_measure, unit_price, currency_code, line_total, created_at
		FROM purchase_order_items WHERE purchase_order_id = $1 ORDER BY created_at`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []*entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.ID, &it.PurchaseOrderID, &it.ProductID, &it.Description,
			&it.Quantity, &it.UnitOfMeasure, &it.UnitPrice, &it.CurrencyCode,
			&it.LineTotal, &it.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, &it)
	}
	return order, items, rows.Err()
}

// ListPurchaseRequestsForUser todas para admin, solo las propias para el
// resto. Más recientes primero.
func (r *PurchasesRepo) ListPurchaseRequestsForUser(ctx context.Context, user *entity.UserProfile) ([]*entity.PurchaseRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM purchase_requests`
	args := []any{}
	if user.Role != entity.RoleAdmin {
		query += ` WHERE requester_id = $1`
		args = append(args, user.ID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase requests: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// ListPurchaseOrders todas las órdenes, más recientes primero.
func (r *PurchasesRepo) ListPurchaseOrders(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM purchase_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// textOrNil convierte cadena vacía a NULL para columnas opcionales.
func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
