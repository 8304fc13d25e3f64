package purchase

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// Transiciones de la solicitud de compra:
//
//	DRAFT    --submit--> PENDING_APPROVAL
//	REJECTED --submit--> PENDING_APPROVAL
//	PENDING_APPROVAL --approve--> APPROVED
//	PENDING_APPROVAL --reject---> REJECTED
//	APPROVED --convert--> CONVERTED_TO_PO (terminal)
//
// CANCELLED existe en el tipo pero ninguna transición actual lo alcanza.

// IsEditable indica si se pueden agregar items a la solicitud. Una solicitud
// rechazada vuelve a ser editable: ese es el camino de reenvío.
func IsEditable(status entity.RequestStatus) bool {
	return status == entity.StatusDraft || status == entity.StatusRejected
}

// IsSubmittable indica si la solicitud puede enviarse a aprobación.
func IsSubmittable(status entity.RequestStatus) bool {
	return status == entity.StatusDraft || status == entity.StatusRejected
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(status entity.RequestStatus) bool {
	return status == entity.StatusConvertedToPO || status == entity.StatusCancelled
}

// CanTransition valida una arista de la máquina de estados.
func CanTransition(from, to entity.RequestStatus) bool {
	switch to {
	case entity.StatusPendingApproval:
		return IsSubmittable(from)
	case entity.StatusApproved, entity.StatusRejected:
		return from == entity.StatusPendingApproval
	case entity.StatusConvertedToPO:
		return from == entity.StatusApproved
	default:
		return false
	}
}
