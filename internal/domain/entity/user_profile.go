package entity

import "time"

// Role rol de un usuario. Cualquier valor no reconocido se normaliza a
// RoleUnknown en la frontera de persistencia: un rol desconocido nunca
// otorga privilegios.
type Role string

// Roles válidos para UserProfile.
const (
	RoleAdmin    Role = "admin"
	RoleOperador Role = "operador"
	RoleAuditor  Role = "auditor"
	RoleUnknown  Role = ""
)

// ParseRole convierte el string almacenado en DB a Role.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleOperador, RoleAuditor:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// UserProfile representa al actor del sistema: identidad, rol y banderas de
// permisos de compras. Las banderas se consultan frescas en cada operación
// del flujo, nunca se cachean.
type UserProfile struct {
	ID                  string
	Email               string
	PasswordHash        string // bcrypt, nunca plano después de persistir
	FullName            string
	Role                Role
	IsActive            bool
	CanRequestPurchases bool
	CanApprovePurchases bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
