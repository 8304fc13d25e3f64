package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
)

func profile(role entity.Role, canRequest, canApprove bool) *entity.UserProfile {
	return &entity.UserProfile{
		ID:                  "u-1",
		Role:                role,
		IsActive:            true,
		CanRequestPurchases: canRequest,
		CanApprovePurchases: canApprove,
	}
}

// Admin pasa cualquier acción sin importar sus banderas.
func TestCan_AdminSiemprePuede(t *testing.T) {
	admin := profile(entity.RoleAdmin, false, false)

	assert.True(t, purchase.Can(admin, purchase.ActionRequestPurchase),
		"admin debe poder solicitar aunque la bandera esté apagada")
	assert.True(t, purchase.Can(admin, purchase.ActionApprovePurchase),
		"admin debe poder aprobar aunque la bandera esté apagada")
	assert.True(t, purchase.Can(admin, purchase.Action("CUALQUIER_COSA")),
		"admin pasa incluso acciones desconocidas")
}

// Las banderas del perfil deciden para roles no-admin.
func TestCan_BanderasDecidenParaNoAdmin(t *testing.T) {
	op := profile(entity.RoleOperador, true, false)
	assert.True(t, purchase.Can(op, purchase.ActionRequestPurchase))
	assert.False(t, purchase.Can(op, purchase.ActionApprovePurchase))

	aprobador := profile(entity.RoleOperador, false, true)
	assert.False(t, purchase.Can(aprobador, purchase.ActionRequestPurchase))
	assert.True(t, purchase.Can(aprobador, purchase.ActionApprovePurchase))
}

// Mundo cerrado: acción desconocida es false para no-admin.
func TestCan_AccionDesconocidaEsFalse(t *testing.T) {
	op := profile(entity.RoleOperador, true, true)
	assert.False(t, purchase.Can(op, purchase.Action("BORRAR_TODO")))
}

// Un rol no reconocido nunca otorga privilegios especiales.
func TestCan_RolDesconocidoNoEsAdmin(t *testing.T) {
	raro := profile(entity.ParseRole("superadmin"), false, false)
	assert.Equal(t, entity.RoleUnknown, raro.Role)
	assert.False(t, purchase.Can(raro, purchase.ActionRequestPurchase))
	assert.False(t, purchase.Can(raro, purchase.ActionApprovePurchase))
}

func TestCan_UsuarioNilEsFalse(t *testing.T) {
	assert.False(t, purchase.Can(nil, purchase.ActionRequestPurchase))
}

func TestCanMoveInventory(t *testing.T) {
	assert.True(t, purchase.CanMoveInventory(entity.RoleAdmin))
	assert.True(t, purchase.CanMoveInventory(entity.RoleOperador))
	assert.False(t, purchase.CanMoveInventory(entity.RoleAuditor))
	assert.False(t, purchase.CanMoveInventory(entity.RoleUnknown))
}
