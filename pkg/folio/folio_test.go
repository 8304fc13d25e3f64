package folio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/almacen-pro/pkg/folio"
)

// Sin folio previo la secuencia arranca en 00001.
func TestNext_SinFolioPrevio(t *testing.T) {
	assert.Equal(t, "PR-2024-00001", folio.Next("PR", 2024, ""))
}

// Con folio previo del mismo año incrementa en uno.
func TestNext_Incrementa(t *testing.T) {
	assert.Equal(t, "PR-2024-00002", folio.Next("PR", 2024, "PR-2024-00001"))
	assert.Equal(t, "PO-2024-00100", folio.Next("PO", 2024, "PO-2024-00099"))
}

// Un folio del año anterior no coincide con el prefijo: reinicio anual.
func TestNext_ReiniciaPorAño(t *testing.T) {
	assert.Equal(t, "PR-2025-00001", folio.Next("PR", 2025, "PR-2024-00087"),
		"el primer folio de un año nuevo debe arrancar en 00001")
}

// Los espacios PR y PO son contadores independientes.
func TestNext_EspaciosIndependientes(t *testing.T) {
	assert.Equal(t, "PO-2024-00001", folio.Next("PO", 2024, "PR-2024-00042"))
}

// Sufijo corrupto (no numérico) arranca en 1 en lugar de fallar.
func TestNext_SufijoNoNumerico(t *testing.T) {
	assert.Equal(t, "PR-2024-00001", folio.Next("PR", 2024, "PR-2024-ABCDE"))
}

// El relleno con ceros preserva el orden lexicográfico hasta 99999.
func TestNext_PadPreservaOrden(t *testing.T) {
	assert.Equal(t, "PR-2024-10000", folio.Next("PR", 2024, "PR-2024-09999"))
	assert.True(t, "PR-2024-09999" < "PR-2024-10000")
}
