// Package pdf implementa la representación impresa de una orden de compra:
// el documento que se envía al proveedor.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón social del comprador │ Folio PO + Fecha      │
//	│  ───────────────────────────────────────────────────────────│
//	│  PROVEEDOR: Razón social + RFC + contacto + dirección       │
//	│  ───────────────────────────────────────────────────────────│
//	│  TABLA: Cant | Descripción | Unidad | P.Unit | Importe      │
//	│  ───────────────────────────────────────────────────────────│
//	│  TOTAL + condiciones de pago + fecha esperada de entrega    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/almacen-pro/internal/application/purchases"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ purchases.OrderPDFGenerator = (*MarotoPOGenerator)(nil)

// MarotoPOGenerator implementa purchases.OrderPDFGenerator usando Maroto v2.
type MarotoPOGenerator struct {
	companyName string
}

// NewMarotoPOGenerator construye el generador. companyName es la razón
// social del comprador que encabeza el documento.
func NewMarotoPOGenerator(companyName string) *MarotoPOGenerator {
	return &MarotoPOGenerator{companyName: companyName}
}

// Generate genera el PDF de la orden y devuelve sus bytes.
func (g *MarotoPOGenerator) Generate(order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem, supplier *entity.Supplier) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Compra "+order.PONumber, true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, g.companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(order))
	m.AddRows(line.NewRow(3))
	m.AddRows(termsRow(order, supplier))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: comprador (izq) y folio + fecha (der).
func headerRow(order *entity.PurchaseOrder, companyName string) core.Row {
	fecha := order.OrderDate.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Departamento de Compras", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.PONumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// supplierRow: datos del proveedor.
func supplierRow(supplier *entity.Supplier) core.Row {
	direccion := strings.TrimSpace(strings.Join([]string{
		supplier.AddressStreet, supplier.AddressCity, supplier.AddressState, supplier.AddressZipCode,
	}, " "))
	return row.New(18).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(supplier.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RFC: %s   |   Contacto: %s   |   Tel: %s",
				supplier.RFC,
				nonEmpty(supplier.ContactPerson, "—"),
				nonEmpty(supplier.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
			text.New("Dirección: "+nonEmpty(direccion, "—"), props.Text{
				Size: 8, Top: 16, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de items.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Unidad", 1, align.Center),
		h("P. Unitario", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la orden.
func tableItemRows(items []*entity.PurchaseOrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				it.UnitOfMeasure,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(it.UnitPrice.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(it.LineTotal.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de la orden con su divisa.
func totalRow(order *entity.PurchaseOrder) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("$%s %s", formatMoney(order.TotalAmount.StringFixed(2)), order.CurrencyCode), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 2,
			}),
		),
	)
}

// termsRow: condiciones de pago, entrega esperada y notas.
func termsRow(order *entity.PurchaseOrder, supplier *entity.Supplier) core.Row {
	entrega := "—"
	if order.ExpectedDeliveryDate != nil {
		entrega = order.ExpectedDeliveryDate.Format("02/01/2006")
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Condiciones de pago: %s   |   Entrega esperada: %s",
				nonEmpty(supplier.PaymentTerms, "—"), entrega,
			), props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New("Notas: "+nonEmpty(order.Notes, "—"), props.Text{
				Size: 8, Color: colorGray, Top: 6,
			}),
			text.New("Favor de confirmar recepción de esta orden citando el folio.", props.Text{
				Size: 6.5, Color: colorGray, Top: 12,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta comas de miles en un string numérico con decimales.
// Ej: "25000.00" → "25,000.00"
func formatMoney(s string) string {
	intPart := s
	decPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, decPart = s[:i], s[i:]
	}
	n := len(intPart)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3+len(decPart))
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf) + decPart
}
