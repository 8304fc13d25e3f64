package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/purchases"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// PurchaseHandler maneja el flujo de solicitudes de compra (protegido).
// El perfil del usuario se carga fresco de la base en cada petición: las
// banderas de permiso del token podrían estar desactualizadas.
type PurchaseHandler struct {
	userRepo repository.UserProfileRepository
	create   *purchases.CreateRequestUseCase
	addItem  *purchases.AddItemUseCase
	submit   *purchases.SubmitRequestUseCase
	decide   *purchases.DecideRequestUseCase
	queries  *purchases.QueryUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(
	userRepo repository.UserProfileRepository,
	create *purchases.CreateRequestUseCase,
	addItem *purchases.AddItemUseCase,
	submit *purchases.SubmitRequestUseCase,
	decide *purchases.DecideRequestUseCase,
	queries *purchases.QueryUseCase,
) *PurchaseHandler {
	return &PurchaseHandler{
		userRepo: userRepo,
		create:   create,
		addItem:  addItem,
		submit:   submit,
		decide:   decide,
		queries:  queries,
	}
}

// loadProfile carga el perfil fresco del usuario autenticado.
func (h *PurchaseHandler) loadProfile(c *fiber.Ctx) (*entity.UserProfile, error) {
	profile, err := h.userRepo.GetByID(GetUserID(c))
	if err != nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if profile == nil {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	return profile, nil
}

// loadRequest carga la solicitud del path param :id.
func (h *PurchaseHandler) loadRequest(c *fiber.Ctx) (*entity.PurchaseRequest, error) {
	req, _, _, err := h.queries.GetRequestDetail(c.Context(), c.Params("id"))
	if err != nil {
		return nil, purchaseError(c, err)
	}
	return req, nil
}

// parseDate interpreta YYYY-MM-DD; cadena vacía devuelve nil.
func parseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// CreateRequest godoc
// @Summary      Crear solicitud de compra (DRAFT)
// @Tags         purchase-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequestRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.PurchaseRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/purchases/requests [post]
func (h *PurchaseHandler) CreateRequest(c *fiber.Ctx) error {
	profile, err := h.loadProfile(c)
	if err != nil {
		return err
	}
	var in dto.CreatePurchaseRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	requiredDate, ok := parseDate(in.RequiredDate)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "required_date debe ser YYYY-MM-DD"})
	}
	req, err := h.create.Execute(c.Context(), profile, purchases.CreateRequestInput{
		SupplierID:   in.SupplierID,
		Priority:     in.Priority,
		CurrencyCode: in.CurrencyCode,
		RequiredDate: requiredDate,
		Notes:        in.Notes,
	})
	if err != nil {
		return purchaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRequestResponse(req))
}

// AddItem godoc
// @Summary      Agregar item a una solicitud
// @Tags         purchase-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.AddRequestItemRequest  true  "Datos del item"
// @Success      201   {object}  dto.AddItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/requests/{id}/items [post]
func (h *PurchaseHandler) AddItem(c *fiber.Ctx) error {
	profile, err := h.loadProfile(c)
	if err != nil {
		return err
	}
	req, err := h.loadRequest(c)
	if err != nil {
		return err
	}
	var in dto.AddRequestItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	neededDate, ok := parseDate(in.NeededDate)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "needed_date debe ser YYYY-MM-DD"})
	}
	item, total, err := h.addItem.Execute(c.Context(), req, profile, purchases.AddItemInput{
		ProductID:          in.ProductID,
		Description:        in.Description,
		Quantity:           in.Quantity,
		UnitOfMeasure:      in.UnitOfMeasure,
		UnitPriceEstimated: in.UnitPriceEstimated,
		CurrencyCode:       in.CurrencyCode,
		NeededDate:         neededDate,
	})
	if err != nil {
		return purchaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AddItemResponse{
		Item:        toRequestItemResponse(item),
		TotalAmount: total,
	})
}

// Submit godoc
// @Summary      Enviar solicitud a aprobación
// @Tags         purchase-requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.PurchaseRequestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/requests/{id}/submit [post]
func (h *PurchaseHandler) Submit(c *fiber.Ctx) error {
	profile, err := h.loadProfile(c)
	if err != nil {
		return err
	}
	req, err := h.loadRequest(c)
	if err != nil {
		return err
	}
	updated, err := h.submit.Execute(c.Context(), req, profile)
	if err != nil {
		return purchaseError(c, err)
	}
	return c.JSON(toRequestResponse(updated))
}

// Approve godoc
// @Summary      Aprobar solicitud pendiente
// @Tags         purchase-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.DecisionRequest  false  "Comentarios"
// @Success      200   {object}  dto.PurchaseRequestDetailResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/requests/{id}/approve [post]
func (h *PurchaseHandler) Approve(c *fiber.Ctx) error {
	return h.handleDecision(c, true)
}

// Reject godoc
// @Summary      Rechazar solicitud pendiente
// @Tags         purchase-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.DecisionRequest  false  "Comentarios"
// @Success      200   {object}  dto.PurchaseRequestDetailResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/requests/{id}/reject [post]
func (h *PurchaseHandler) Reject(c *fiber.Ctx) error {
	return h.handleDecision(c, false)
}

func (h *PurchaseHandler) handleDecision(c *fiber.Ctx, approve bool) error {
	profile, err := h.loadProfile(c)
	if err != nil {
		return err
	}
	req, err := h.loadRequest(c)
	if err != nil {
		return err
	}
	var in dto.DecisionRequest
	_ = c.BodyParser(&in) // comments es opcional; cuerpo vacío es válido

	var approval *entity.PurchaseRequestApproval
	var updated *entity.PurchaseRequest
	if approve {
		approval, updated, err = h.decide.Approve(c.Context(), req, profile, in.Comments)
	} else {
		approval, updated, err = h.decide.Reject(c.Context(), req, profile, in.Comments)
	}
	if err != nil {
		return purchaseError(c, err)
	}
	return c.JSON(fiber.Map{
		"request":  toRequestResponse(updated),
		"approval": toApprovalResponse(approval),
	})
}

// GetDetail godoc
// @Summary      Solicitud con items e historial de aprobaciones
// @Tags         purchase-requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.PurchaseRequestDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/requests/{id} [get]
func (h *PurchaseHandler) GetDetail(c *fiber.Ctx) error {
	req, items, approvals, err := h.queries.GetRequestDetail(c.Context(), c.Params("id"))
	if err != nil {
		return purchaseError(c, err)
	}
	out := dto.PurchaseRequestDetailResponse{
		Request:   toRequestResponse(req),
		Items:     make([]dto.PurchaseRequestItemResponse, 0, len(items)),
		Approvals: make([]dto.ApprovalResponse, 0, len(approvals)),
	}
	for _, it := range items {
		out.Items = append(out.Items, toRequestItemResponse(it))
	}
	for _, a := range approvals {
		out.Approvals = append(out.Approvals, toApprovalResponse(a))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitudes (todas para admin, propias para el resto)
// @Tags         purchase-requests
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurchaseRequestListResponse
// @Router       /api/purchases/requests [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	profile, err := h.loadProfile(c)
	if err != nil {
		return err
	}
	list, err := h.queries.ListRequestsForUser(c.Context(), profile)
	if err != nil {
		return purchaseError(c, err)
	}
	out := dto.PurchaseRequestListResponse{Items: make([]dto.PurchaseRequestResponse, 0, len(list))}
	for _, req := range list {
		out.Items = append(out.Items, toRequestResponse(req))
	}
	return c.JSON(out)
}

// ListSuppliers godoc
// @Summary      Proveedores activos para el formulario de solicitudes
// @Tags         purchase-requests
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplierListResponse
// @Router       /api/purchases/suppliers [get]
func (h *PurchaseHandler) ListSuppliers(c *fiber.Ctx) error {
	list, err := h.queries.ListActiveSuppliers(c.Context())
	if err != nil {
		return purchaseError(c, err)
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SupplierResponse{
			ID:               s.ID,
			CompanyName:      s.CompanyName,
			RFC:              s.RFC,
			PaymentTerms:     s.PaymentTerms,
			DeliveryTimeDays: s.DeliveryTimeDays,
			IsActive:         s.IsActive,
			CreatedAt:        s.CreatedAt,
			UpdatedAt:        s.UpdatedAt,
		})
	}
	return c.JSON(dto.SupplierListResponse{Items: items})
}
