package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/purchases"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// OrderHandler maneja las órdenes de compra (protegido).
type OrderHandler struct {
	userRepo  repository.UserProfileRepository
	convert   *purchases.CreateOrderUseCase
	queries   *purchases.QueryUseCase
	documents *purchases.DocumentUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	userRepo repository.UserProfileRepository,
	convert *purchases.CreateOrderUseCase,
	queries *purchases.QueryUseCase,
	documents *purchases.DocumentUseCase,
) *OrderHandler {
	return &OrderHandler{userRepo: userRepo, convert: convert, queries: queries, documents: documents}
}

// Convert godoc
// @Summary      Convertir solicitud aprobada en orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      201  {object}  dto.PurchaseOrderDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/requests/{id}/convert [post]
func (h *OrderHandler) Convert(c *fiber.Ctx) error {
	profile, err := h.userRepo.GetByID(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if profile == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	req, _, _, err := h.queries.GetRequestDetail(c.Context(), c.Params("id"))
	if err != nil {
		return purchaseError(c, err)
	}
	order, items, err := h.convert.Execute(c.Context(), req, profile)
	if err != nil {
		return purchaseError(c, err)
	}
	out := dto.PurchaseOrderDetailResponse{
		Order: toOrderResponse(order),
		Items: make([]dto.PurchaseOrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, toOrderItemResponse(it))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Router       /api/purchases/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.queries.ListOrders(c.Context())
	if err != nil {
		return purchaseError(c, err)
	}
	out := dto.PurchaseOrderListResponse{Items: make([]dto.PurchaseOrderResponse, 0, len(list))}
	for _, o := range list {
		out.Items = append(out.Items, toOrderResponse(o))
	}
	return c.JSON(out)
}

// GetDetail godoc
// @Summary      Orden de compra con sus items
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/orders/{id} [get]
func (h *OrderHandler) GetDetail(c *fiber.Ctx) error {
	order, items, err := h.queries.GetOrderDetail(c.Context(), c.Params("id"))
	if err != nil {
		return purchaseError(c, err)
	}
	out := dto.PurchaseOrderDetailResponse{
		Order: toOrderResponse(order),
		Items: make([]dto.PurchaseOrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, toOrderItemResponse(it))
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      PDF de la orden para el proveedor
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/orders/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	out, err := h.documents.OrderPDF(c.Context(), c.Params("id"))
	if err != nil {
		return purchaseError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orden-de-compra.pdf"`)
	return c.Send(out)
}

// CXML godoc
// @Summary      Documento cXML OrderRequest de la orden
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      application/xml
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/orders/{id}/cxml [get]
func (h *OrderHandler) CXML(c *fiber.Ctx) error {
	out, err := h.documents.OrderCXML(c.Context(), c.Params("id"))
	if err != nil {
		return purchaseError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(out)
}
