package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// InventoryHandler maneja los movimientos de inventario (protegido).
type InventoryHandler struct {
	userRepo  repository.UserProfileRepository
	move      *inventory.MoveUseCase
	movements repository.StockMovementRepository
	stock     repository.StockRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	userRepo repository.UserProfileRepository,
	move *inventory.MoveUseCase,
	movements repository.StockMovementRepository,
	stock repository.StockRepository,
) *InventoryHandler {
	return &InventoryHandler{userRepo: userRepo, move: move, movements: movements, stock: stock}
}

// Move godoc
// @Summary      Registrar movimiento de inventario
// @Description  FromLocationID vacío = entrada; ToLocationID vacío = salida.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveInventoryRequest  true  "Movimiento"
// @Success      201   {object}  dto.MoveInventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) Move(c *fiber.Ctx) error {
	profile, err := h.userRepo.GetByID(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if profile == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no encontrado"})
	}
	var in dto.MoveInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.move.Execute(c.Context(), profile, in)
	if err != nil {
		return purchaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  path   string  true   "ID del producto"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {array}  entity.StockMovement
// @Router       /api/inventory/movements/{product_id} [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.movements.ListByProduct(c.Params("product_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Stock godoc
// @Summary      Existencias de un producto por ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200  {array}  entity.Stock
// @Router       /api/inventory/stock/{product_id} [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	list, err := h.stock.ListByProduct(c.Params("product_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
