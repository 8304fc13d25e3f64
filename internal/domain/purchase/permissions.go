// Package purchase contiene las reglas puras del flujo de compras:
// predicado de autorización y máquina de estados. Sin dependencias de
// infraestructura.
package purchase

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// Action acción autorizable del flujo de compras.
type Action string

const (
	ActionRequestPurchase Action = "REQUEST_PURCHASE"
	ActionApprovePurchase Action = "APPROVE_PURCHASE"
)

// Can decide si el usuario puede ejecutar la acción. Mundo cerrado: admin
// siempre puede; para el resto deciden las banderas del perfil y cualquier
// acción no reconocida es false. Se evalúa fresco en cada caso de uso porque
// las banderas pueden cambiar entre llamadas.
func Can(user *entity.UserProfile, action Action) bool {
	if user == nil {
		return false
	}
	if user.Role == entity.RoleAdmin {
		return true
	}
	switch action {
	case ActionRequestPurchase:
		return user.CanRequestPurchases
	case ActionApprovePurchase:
		return user.CanApprovePurchases
	default:
		return false
	}
}

// CanMoveInventory roles con permiso para mover inventario.
func CanMoveInventory(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleOperador
}

// CanCreateOrder roles con permiso para convertir solicitudes en órdenes.
func CanCreateOrder(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleOperador
}
