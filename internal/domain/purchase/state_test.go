package purchase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
)

// Solo DRAFT y REJECTED admiten agregar items.
func TestIsEditable(t *testing.T) {
	assert.True(t, purchase.IsEditable(entity.StatusDraft))
	assert.True(t, purchase.IsEditable(entity.StatusRejected))

	assert.False(t, purchase.IsEditable(entity.StatusPendingApproval))
	assert.False(t, purchase.IsEditable(entity.StatusApproved))
	assert.False(t, purchase.IsEditable(entity.StatusConvertedToPO))
	assert.False(t, purchase.IsEditable(entity.StatusCancelled))
}

func TestCanTransition_AristasValidas(t *testing.T) {
	assert.True(t, purchase.CanTransition(entity.StatusDraft, entity.StatusPendingApproval))
	assert.True(t, purchase.CanTransition(entity.StatusRejected, entity.StatusPendingApproval),
		"una solicitud rechazada puede reenviarse")
	assert.True(t, purchase.CanTransition(entity.StatusPendingApproval, entity.StatusApproved))
	assert.True(t, purchase.CanTransition(entity.StatusPendingApproval, entity.StatusRejected))
	assert.True(t, purchase.CanTransition(entity.StatusApproved, entity.StatusConvertedToPO))
}

func TestCanTransition_AristasInvalidas(t *testing.T) {
	assert.False(t, purchase.CanTransition(entity.StatusApproved, entity.StatusPendingApproval),
		"una solicitud aprobada no se reenvía")
	assert.False(t, purchase.CanTransition(entity.StatusDraft, entity.StatusApproved),
		"no se aprueba sin pasar por pendiente")
	assert.False(t, purchase.CanTransition(entity.StatusConvertedToPO, entity.StatusApproved),
		"CONVERTED_TO_PO es terminal")
	assert.False(t, purchase.CanTransition(entity.StatusDraft, entity.StatusCancelled),
		"ninguna transición actual alcanza CANCELLED")
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, purchase.IsTerminal(entity.StatusConvertedToPO))
	assert.True(t, purchase.IsTerminal(entity.StatusCancelled))
	assert.False(t, purchase.IsTerminal(entity.StatusApproved))
}
