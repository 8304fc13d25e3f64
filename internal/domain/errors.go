package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCurrency    = errors.New("código de divisa inválido (ISO 4217)")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// Errores de autorización del flujo de compras.
var (
	ErrInactiveUser      = errors.New("el usuario no está activo")
	ErrCannotRequest     = errors.New("sin permiso para crear solicitudes de compra")
	ErrCannotSubmit      = errors.New("sin permiso para enviar solicitudes a aprobación")
	ErrCannotApprove     = errors.New("sin permiso para aprobar compras")
	ErrCannotCreateOrder = errors.New("sin permiso para crear órdenes de compra")
	ErrNotRequestOwner   = errors.New("solo el solicitante o un admin pueden editar la solicitud")
	ErrNotSubmitOwner    = errors.New("no puedes enviar esta solicitud")
	ErrSelfApproval      = errors.New("no puedes aprobar tu propia solicitud")
	ErrCannotMoveStock   = errors.New("rol sin permiso para mover inventario")
)

// Errores de estado y precondición del flujo de compras.
var (
	ErrRequestNotEditable    = errors.New("la solicitud no es editable en su estado actual")
	ErrRequestNotSubmittable = errors.New("solo se pueden enviar solicitudes en borrador o rechazadas")
	ErrRequestNotPending     = errors.New("la solicitud no está pendiente de aprobación")
	ErrRequestNotApproved    = errors.New("solo solicitudes aprobadas pueden convertirse en orden de compra")
	ErrRequestEmpty          = errors.New("agrega al menos un item antes de enviar a aprobación")
	ErrNoItemsToConvert      = errors.New("no hay items para convertir a orden de compra")
	ErrMissingSupplier       = errors.New("la solicitud no tiene proveedor asignado")
	ErrInsufficientStock     = errors.New("existencias insuficientes en la ubicación de origen")
)
