// Package folio genera folios secuenciales legibles con reinicio anual:
// PR-2024-00001, PO-2024-00001. El sufijo va con ceros a la izquierda para
// que el orden lexicográfico coincida con el numérico.
package folio

import (
	"fmt"
	"strconv"
	"strings"
)

// Width dígitos del sufijo secuencial.
const Width = 5

// Prefix arma el prefijo "<TYPE>-<año>-" de un espacio de folios.
func Prefix(kind string, year int) string {
	return fmt.Sprintf("%s-%d-", kind, year)
}

// Next calcula el siguiente folio a partir del mayor folio existente del año
// (latest, o "" si no hay ninguno). Un latest de otro año o con sufijo no
// numérico arranca la secuencia en 1.
func Next(kind string, year int, latest string) string {
	base := Prefix(kind, year)
	last := 0
	if strings.HasPrefix(latest, base) {
		if n, err := strconv.Atoi(strings.TrimPrefix(latest, base)); err == nil && n > 0 {
			last = n
		}
	}
	return fmt.Sprintf("%s%0*d", base, Width, last+1)
}
