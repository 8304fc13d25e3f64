package purchases_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/purchases"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func solicitante() *entity.UserProfile {
	return &entity.UserProfile{
		ID:                  "u1",
		Role:                entity.RoleOperador,
		IsActive:            true,
		CanRequestPurchases: true,
	}
}

func aprobadorAdmin() *entity.UserProfile {
	return &entity.UserProfile{ID: "u2", Role: entity.RoleAdmin, IsActive: true}
}

type workflow struct {
	repo    *fakePurchasesRepo
	create  *purchases.CreateRequestUseCase
	addItem *purchases.AddItemUseCase
	submit  *purchases.SubmitRequestUseCase
	decide  *purchases.DecideRequestUseCase
	convert *purchases.CreateOrderUseCase
}

func newWorkflow() *workflow {
	repo := newFakeRepo()
	return &workflow{
		repo:    repo,
		create:  purchases.NewCreateRequestUseCase(repo),
		addItem: purchases.NewAddItemUseCase(repo),
		submit:  purchases.NewSubmitRequestUseCase(repo),
		decide:  purchases.NewDecideRequestUseCase(repo),
		convert: purchases.NewCreateOrderUseCase(repo),
	}
}

// crea una solicitud con proveedor y un item, lista para enviar.
func (w *workflow) solicitudConItem(t *testing.T, requester *entity.UserProfile) *entity.PurchaseRequest {
	t.Helper()
	ctx := context.Background()
	req, err := w.create.Execute(ctx, requester, purchases.CreateRequestInput{SupplierID: "prov-1"})
	require.NoError(t, err)
	_, _, err = w.addItem.Execute(ctx, req, requester, purchases.AddItemInput{
		Description:        "Tarimas de madera",
		Quantity:           decimal.NewFromInt(2),
		UnitPriceEstimated: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	fresh, _, err := w.repo.GetPurchaseRequestWithItems(ctx, req.ID)
	require.NoError(t, err)
	return fresh
}

func (w *workflow) refrescar(t *testing.T, id string) *entity.PurchaseRequest {
	t.Helper()
	req, _, err := w.repo.GetPurchaseRequestWithItems(context.Background(), id)
	require.NoError(t, err)
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: borrador → item → envío → aprobación → orden
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoCompleto_DeBorradorAOrden(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()
	u2 := aprobadorAdmin()

	req, err := w.create.Execute(ctx, u1, purchases.CreateRequestInput{SupplierID: "prov-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDraft, req.Status, "la solicitud nace en DRAFT")
	assert.True(t, req.TotalAmount.IsZero(), "sin items el total es cero")
	assert.Equal(t, entity.PriorityNormal, req.Priority, "prioridad por defecto NORMAL")
	assert.Equal(t, "MXN", req.CurrencyCode, "divisa por defecto MXN")
	assert.Equal(t, fmt.Sprintf("PR-%d-00001", time.Now().Year()), req.RequestNumber)

	item, total, err := w.addItem.Execute(ctx, req, u1, purchases.AddItemInput{
		Description:        "Tarimas de madera",
		Quantity:           decimal.NewFromInt(2),
		UnitPriceEstimated: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	assert.True(t, item.LineTotal.Equal(decimal.RequireFromString("20.00")),
		"line_total = cantidad × precio estimado")
	assert.Equal(t, "EA", item.UnitOfMeasure, "unidad por defecto EA")
	assert.Equal(t, "MXN", item.CurrencyCode, "el item hereda la divisa de la solicitud")
	assert.True(t, total.Equal(decimal.RequireFromString("20.00")))

	submitted, err := w.submit.Execute(ctx, w.refrescar(t, req.ID), u1)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendingApproval, submitted.Status)

	approval, approved, err := w.decide.Approve(ctx, submitted, u2, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, approved.Status)
	assert.Equal(t, entity.ApprovalApproved, approval.Status)
	require.NotNil(t, approval.DecisionAt)

	historial, err := w.repo.ListApprovalsForRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, historial, 1, "debe existir exactamente un registro de aprobación")

	order, orderItems, err := w.convert.Execute(ctx, approved, u2)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderOpen, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("20.00")),
		"el total de la orden se copia de la solicitud")
	assert.Equal(t, "prov-1", order.SupplierID)
	assert.Equal(t, fmt.Sprintf("PO-%d-00001", time.Now().Year()), order.PONumber)

	require.Len(t, orderItems, 1)
	assert.Equal(t, "Tarimas de madera", orderItems[0].Description)
	assert.True(t, orderItems[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, orderItems[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, orderItems[0].LineTotal.Equal(decimal.RequireFromString("20.00")))

	assert.Equal(t, entity.StatusConvertedToPO, w.refrescar(t, req.ID).Status,
		"la solicitud queda convertida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Segregación de funciones
// ──────────────────────────────────────────────────────────────────────────────

// El solicitante no decide su propia solicitud aunque tenga todas las banderas.
func TestAutoAprobacionProhibida(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()
	u1.CanApprovePurchases = true

	req := w.solicitudConItem(t, u1)
	pendiente, err := w.submit.Execute(ctx, req, u1)
	require.NoError(t, err)

	_, _, err = w.decide.Approve(ctx, pendiente, u1, "")
	assert.ErrorIs(t, err, domain.ErrSelfApproval)

	_, _, err = w.decide.Reject(ctx, pendiente, u1, "")
	assert.ErrorIs(t, err, domain.ErrSelfApproval)

	assert.Equal(t, entity.StatusPendingApproval, w.refrescar(t, req.ID).Status,
		"el estado no debe cambiar tras el intento de auto-aprobación")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consistencia del total
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalConsistenteTrasVariosItems(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()

	req, err := w.create.Execute(ctx, u1, purchases.CreateRequestInput{})
	require.NoError(t, err)

	esperado := decimal.Zero
	for i := 1; i <= 5; i++ {
		qty := decimal.NewFromInt(int64(i))
		price := decimal.RequireFromString("3.25")
		_, total, err := w.addItem.Execute(ctx, req, u1, purchases.AddItemInput{
			Description:        fmt.Sprintf("item %d", i),
			Quantity:           qty,
			UnitPriceEstimated: price,
		})
		require.NoError(t, err)
		esperado = esperado.Add(qty.Mul(price))
		assert.True(t, total.Equal(esperado),
			"tras cada alta el total debe igualar la suma de line_total")
	}
	assert.True(t, w.refrescar(t, req.ID).TotalAmount.Equal(esperado),
		"el total persistido debe coincidir con la suma en reposo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión terminal
// ──────────────────────────────────────────────────────────────────────────────

func TestConversionEsTerminal(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()
	u2 := aprobadorAdmin()

	req := w.solicitudConItem(t, u1)
	pendiente, err := w.submit.Execute(ctx, req, u1)
	require.NoError(t, err)
	_, aprobada, err := w.decide.Approve(ctx, pendiente, u2, "")
	require.NoError(t, err)

	_, _, err = w.convert.Execute(ctx, aprobada, u2)
	require.NoError(t, err)

	// Segunda conversión: el estado ya no es APPROVED.
	_, _, err = w.convert.Execute(ctx, w.refrescar(t, req.ID), u2)
	assert.ErrorIs(t, err, domain.ErrRequestNotApproved,
		"una solicitud convertida no puede convertirse otra vez")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de edición
// ──────────────────────────────────────────────────────────────────────────────

func TestVentanaDeEdicionPorEstado(t *testing.T) {
	ctx := context.Background()
	u1 := solicitante()

	editables := []entity.RequestStatus{entity.StatusDraft, entity.StatusRejected}
	bloqueados := []entity.RequestStatus{
		entity.StatusPendingApproval, entity.StatusApproved,
		entity.StatusConvertedToPO, entity.StatusCancelled,
	}

	for _, status := range editables {
		w := newWorkflow()
		req, err := w.create.Execute(ctx, u1, purchases.CreateRequestInput{})
		require.NoError(t, err)
		req.Status = status
		w.repo.requests[req.ID].Status = status

		_, _, err = w.addItem.Execute(ctx, req, u1, purchases.AddItemInput{
			Description:        "caja",
			Quantity:           decimal.NewFromInt(1),
			UnitPriceEstimated: decimal.NewFromInt(5),
		})
		assert.NoError(t, err, "en %s debe permitirse agregar items", status)
	}

	for _, status := range bloqueados {
		w := newWorkflow()
		req, err := w.create.Execute(ctx, u1, purchases.CreateRequestInput{})
		require.NoError(t, err)
		req.Status = status
		w.repo.requests[req.ID].Status = status

		_, _, err = w.addItem.Execute(ctx, req, u1, purchases.AddItemInput{
			Description:        "caja",
			Quantity:           decimal.NewFromInt(1),
			UnitPriceEstimated: decimal.NewFromInt(5),
		})
		assert.ErrorIs(t, err, domain.ErrRequestNotEditable,
			"en %s no debe permitirse agregar items", status)
	}
}

// Solo el dueño o un admin editan la solicitud.
func TestAgregarItem_SoloDuenioOAdmin(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()
	req := w.solicitudConItem(t, u1)

	otro := &entity.UserProfile{ID: "u9", Role: entity.RoleOperador, IsActive: true, CanRequestPurchases: true}
	_, _, err := w.addItem.Execute(ctx, req, otro, purchases.AddItemInput{
		Description:        "caja",
		Quantity:           decimal.NewFromInt(1),
		UnitPriceEstimated: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotRequestOwner)

	admin := aprobadorAdmin()
	_, _, err = w.addItem.Execute(ctx, req, admin, purchases.AddItemInput{
		Description:        "caja",
		Quantity:           decimal.NewFromInt(1),
		UnitPriceEstimated: decimal.NewFromInt(5),
	})
	assert.NoError(t, err, "un admin sí puede editar solicitudes ajenas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Guardas de envío
// ──────────────────────────────────────────────────────────────────────────────

func TestEnvioDeSolicitudVaciaFalla(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()

	req, err := w.create.Execute(ctx, u1, purchases.CreateRequestInput{})
	require.NoError(t, err)

	_, err = w.submit.Execute(ctx, req, u1)
	assert.ErrorIs(t, err, domain.ErrRequestEmpty)
	assert.Equal(t, entity.StatusDraft, w.refrescar(t, req.ID).Status)
}

// Envío de una solicitud ajena por un no-admin: error de autorización,
// estado sin cambios.
func TestEnvioPorNoPropietarioFalla(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u3 := &entity.UserProfile{ID: "u3", Role: entity.RoleOperador, IsActive: true, CanRequestPurchases: true}
	req := w.solicitudConItem(t, u3)

	u1 := solicitante()
	_, err := w.submit.Execute(ctx, req, u1)
	assert.ErrorIs(t, err, domain.ErrNotSubmitOwner)
	assert.Equal(t, entity.StatusDraft, w.refrescar(t, req.ID).Status,
		"el estado no debe cambiar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazo y reenvío
// ──────────────────────────────────────────────────────────────────────────────

func TestRechazoEdicionYReenvio(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()
	u2 := aprobadorAdmin()

	req := w.solicitudConItem(t, u1)
	pendiente, err := w.submit.Execute(ctx, req, u1)
	require.NoError(t, err)

	rechazo, rechazada, err := w.decide.Reject(ctx, pendiente, u2, "precio alto")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, rechazada.Status)
	assert.Equal(t, entity.ApprovalRejected, rechazo.Status)
	assert.Equal(t, "precio alto", rechazo.Comments)

	// La solicitud rechazada vuelve a ser editable.
	_, _, err = w.addItem.Execute(ctx, rechazada, u1, purchases.AddItemInput{
		Description:        "flejes",
		Quantity:           decimal.NewFromInt(3),
		UnitPriceEstimated: decimal.RequireFromString("4.50"),
	})
	require.NoError(t, err, "agregar items a una solicitud REJECTED es el camino de reenvío")

	reenviada, err := w.submit.Execute(ctx, w.refrescar(t, req.ID), u1)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendingApproval, reenviada.Status)

	_, _, err = w.decide.Approve(ctx, reenviada, u2, "ajustado")
	require.NoError(t, err)

	historial, err := w.repo.ListApprovalsForRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, historial, 2, "el historial conserva rechazo y aprobación")
	assert.Equal(t, entity.ApprovalRejected, historial[0].Status)
	assert.Equal(t, entity.ApprovalApproved, historial[1].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Folios
// ──────────────────────────────────────────────────────────────────────────────

func TestFoliosEstrictamenteCrecientes(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()
	year := time.Now().Year()

	r1, err := w.create.Execute(ctx, u1, purchases.CreateRequestInput{})
	require.NoError(t, err)
	r2, err := w.create.Execute(ctx, u1, purchases.CreateRequestInput{})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("PR-%d-00001", year), r1.RequestNumber)
	assert.Equal(t, fmt.Sprintf("PR-%d-00002", year), r2.RequestNumber)
	assert.True(t, r1.RequestNumber < r2.RequestNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización de creación y conversión
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearRequiereActivoYPermiso(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()

	inactivo := solicitante()
	inactivo.IsActive = false
	_, err := w.create.Execute(ctx, inactivo, purchases.CreateRequestInput{})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)

	sinPermiso := solicitante()
	sinPermiso.CanRequestPurchases = false
	_, err = w.create.Execute(ctx, sinPermiso, purchases.CreateRequestInput{})
	assert.ErrorIs(t, err, domain.ErrCannotRequest)

	admin := aprobadorAdmin()
	_, err = w.create.Execute(ctx, admin, purchases.CreateRequestInput{})
	assert.NoError(t, err, "admin crea sin bandera de solicitud")
}

func TestConvertirRequiereProveedorYRol(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()
	u2 := aprobadorAdmin()

	// Solicitud aprobada sin proveedor.
	req, err := w.create.Execute(ctx, u1, purchases.CreateRequestInput{})
	require.NoError(t, err)
	_, _, err = w.addItem.Execute(ctx, req, u1, purchases.AddItemInput{
		Description:        "caja",
		Quantity:           decimal.NewFromInt(1),
		UnitPriceEstimated: decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	pendiente, err := w.submit.Execute(ctx, w.refrescar(t, req.ID), u1)
	require.NoError(t, err)
	_, aprobada, err := w.decide.Approve(ctx, pendiente, u2, "")
	require.NoError(t, err)

	_, _, err = w.convert.Execute(ctx, aprobada, u2)
	assert.ErrorIs(t, err, domain.ErrMissingSupplier)

	// Un auditor no convierte.
	auditor := &entity.UserProfile{ID: "u4", Role: entity.RoleAuditor, IsActive: true}
	conProveedor := w.solicitudConItem(t, u1)
	pendiente2, err := w.submit.Execute(ctx, conProveedor, u1)
	require.NoError(t, err)
	_, aprobada2, err := w.decide.Approve(ctx, pendiente2, u2, "")
	require.NoError(t, err)

	_, _, err = w.convert.Execute(ctx, aprobada2, auditor)
	assert.ErrorIs(t, err, domain.ErrCannotCreateOrder)
}

func TestAprobarSoloPendientes(t *testing.T) {
	ctx := context.Background()
	w := newWorkflow()
	u1 := solicitante()
	u2 := aprobadorAdmin()

	req := w.solicitudConItem(t, u1)
	_, _, err := w.decide.Approve(ctx, req, u2, "")
	assert.ErrorIs(t, err, domain.ErrRequestNotPending,
		"una solicitud DRAFT no puede aprobarse")

	aprobadorInactivo := &entity.UserProfile{ID: "u5", Role: entity.RoleOperador, IsActive: false, CanApprovePurchases: true}
	pendiente, err := w.submit.Execute(ctx, w.refrescar(t, req.ID), u1)
	require.NoError(t, err)
	_, _, err = w.decide.Approve(ctx, pendiente, aprobadorInactivo, "")
	assert.ErrorIs(t, err, domain.ErrInactiveUser)

	sinBandera := &entity.UserProfile{ID: "u6", Role: entity.RoleAuditor, IsActive: true}
	_, _, err = w.decide.Approve(ctx, pendiente, sinBandera, "")
	assert.ErrorIs(t, err, domain.ErrCannotApprove)
}
