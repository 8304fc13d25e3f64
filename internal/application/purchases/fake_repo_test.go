package purchases_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/folio"
)

// fakePurchasesRepo implementación en memoria del puerto de compras para
// probar los casos de uso sin PostgreSQL. Reproduce la semántica del
// adaptador real: folios por escaneo del máximo existente, re-agregación
// completa del total, not-found como error.
type fakePurchasesRepo struct {
	year       int
	requests   map[string]*entity.PurchaseRequest
	items      map[string][]*entity.PurchaseRequestItem
	approvals  map[string][]*entity.PurchaseRequestApproval
	orders     map[string]*entity.PurchaseOrder
	orderItems map[string][]*entity.PurchaseOrderItem
}

var _ repository.PurchasesRepository = (*fakePurchasesRepo)(nil)

func newFakeRepo() *fakePurchasesRepo {
	return &fakePurchasesRepo{
		year:       time.Now().Year(),
		requests:   map[string]*entity.PurchaseRequest{},
		items:      map[string][]*entity.PurchaseRequestItem{},
		approvals:  map[string][]*entity.PurchaseRequestApproval{},
		orders:     map[string]*entity.PurchaseOrder{},
		orderItems: map[string][]*entity.PurchaseOrderItem{},
	}
}

func (f *fakePurchasesRepo) latestWithPrefix(prefix string, numbers []string) string {
	latest := ""
	for _, n := range numbers {
		if strings.HasPrefix(n, prefix) && n > latest {
			latest = n
		}
	}
	return latest
}

func (f *fakePurchasesRepo) GenerateNextRequestNumber(_ context.Context) (string, error) {
	var nums []string
	for _, r := range f.requests {
		nums = append(nums, r.RequestNumber)
	}
	return folio.Next("PR", f.year, f.latestWithPrefix(folio.Prefix("PR", f.year), nums)), nil
}

func (f *fakePurchasesRepo) GenerateNextPONumber(_ context.Context) (string, error) {
	var nums []string
	for _, o := range f.orders {
		nums = append(nums, o.PONumber)
	}
	return folio.Next("PO", f.year, f.latestWithPrefix(folio.Prefix("PO", f.year), nums)), nil
}

func (f *fakePurchasesRepo) CreatePurchaseRequest(_ context.Context, req *entity.PurchaseRequest) error {
	cp := *req
	f.requests[req.ID] = &cp
	return nil
}

func (f *fakePurchasesRepo) AddPurchaseRequestItem(_ context.Context, item *entity.PurchaseRequestItem) error {
	if _, ok := f.requests[item.PurchaseRequestID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	f.items[item.PurchaseRequestID] = append(f.items[item.PurchaseRequestID], &cp)
	return nil
}

func (f *fakePurchasesRepo) RecalculatePurchaseRequestTotal(_ context.Context, requestID string) (decimal.Decimal, error) {
	req, ok := f.requests[requestID]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	total := decimal.Zero
	for _, it := range f.items[requestID] {
		total = total.Add(it.LineTotal)
	}
	req.TotalAmount = total
	return total, nil
}

func (f *fakePurchasesRepo) UpdatePurchaseRequestStatus(_ context.Context, id string, status entity.RequestStatus) (*entity.PurchaseRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	cp := *req
	return &cp, nil
}

func (f *fakePurchasesRepo) GetPurchaseRequestWithItems(_ context.Context, id string) (*entity.PurchaseRequest, []*entity.PurchaseRequestItem, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	cp := *req
	items := make([]*entity.PurchaseRequestItem, len(f.items[id]))
	copy(items, f.items[id])
	return &cp, items, nil
}

func (f *fakePurchasesRepo) CreateApproval(_ context.Context, approval *entity.PurchaseRequestApproval) error {
	cp := *approval
	f.approvals[approval.PurchaseRequestID] = append(f.approvals[approval.PurchaseRequestID], &cp)
	return nil
}

func (f *fakePurchasesRepo) ListApprovalsForRequest(_ context.Context, requestID string) ([]*entity.PurchaseRequestApproval, error) {
	return f.approvals[requestID], nil
}

func (f *fakePurchasesRepo) CreatePurchaseOrderFromRequest(_ context.Context, req *entity.PurchaseRequest, buyerID, poNumber string, items []*entity.PurchaseRequestItem) (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, error) {
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
	f.orders[order.ID] = order

	var copied []*entity.PurchaseOrderItem
	for _, it := range items {
		copied = append(copied, &entity.PurchaseOrderItem{
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
		})
	}
	f.orderItems[order.ID] = copied
	return order, copied, nil
}

func (f *fakePurchasesRepo) GetPurchaseOrderWithItems(_ context.Context, id string) (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil, domain.ErrNotFound
	}
	return order, f.orderItems[id], nil
}

func (f *fakePurchasesRepo) ListPurchaseRequestsForUser(_ context.Context, user *entity.UserProfile) ([]*entity.PurchaseRequest, error) {
	var out []*entity.PurchaseRequest
	for _, r := range f.requests {
		if user.Role == entity.RoleAdmin || r.RequesterID == user.ID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePurchasesRepo) ListPurchaseOrders(_ context.Context) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range f.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
