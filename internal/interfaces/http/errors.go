package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
)

// purchaseError mapea los errores de dominio del flujo de compras a HTTP:
// 403 autorización, 409 estado, 400 precondición, 404 no encontrado,
// 500 el resto.
func purchaseError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInactiveUser),
		errors.Is(err, domain.ErrCannotRequest),
		errors.Is(err, domain.ErrCannotSubmit),
		errors.Is(err, domain.ErrCannotApprove),
		errors.Is(err, domain.ErrCannotCreateOrder),
		errors.Is(err, domain.ErrNotRequestOwner),
		errors.Is(err, domain.ErrNotSubmitOwner),
		errors.Is(err, domain.ErrSelfApproval),
		errors.Is(err, domain.ErrCannotMoveStock):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})

	case errors.Is(err, domain.ErrRequestNotEditable),
		errors.Is(err, domain.ErrRequestNotSubmittable),
		errors.Is(err, domain.ErrRequestNotPending),
		errors.Is(err, domain.ErrRequestNotApproved),
		errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})

	case errors.Is(err, domain.ErrRequestEmpty),
		errors.Is(err, domain.ErrNoItemsToConvert),
		errors.Is(err, domain.ErrMissingSupplier),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})

	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
