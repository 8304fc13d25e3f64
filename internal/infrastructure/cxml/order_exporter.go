// Package cxml exporta órdenes de compra como documentos cXML OrderRequest
// (el formato que consumen los sistemas de procuremento de los proveedores).
package cxml

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/tu-usuario/almacen-pro/internal/application/purchases"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

const cxmlDoctype = `cXML SYSTEM "http://xml.cxml.org/schemas/cXML/1.2.014/cXML.dtd"`

var _ purchases.OrderExporter = (*OrderExporter)(nil)

// OrderExporter implementa purchases.OrderExporter construyendo el XML con
// etree.
type OrderExporter struct {
	senderIdentity string
}

// NewOrderExporter construye el exportador. senderIdentity identifica al
// comprador en la cabecera cXML.
func NewOrderExporter(senderIdentity string) *OrderExporter {
	return &OrderExporter{senderIdentity: senderIdentity}
}

// Export genera el documento cXML OrderRequest de la orden.
func (e *OrderExporter) Export(order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem, supplier *entity.Supplier) ([]byte, error) {
	now := time.Now()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective("DOCTYPE " + cxmlDoctype)

	root := doc.CreateElement("cXML")
	root.CreateAttr("payloadID", fmt.Sprintf("%d.%s@almacen-pro", now.Unix(), order.ID))
	root.CreateAttr("timestamp", now.Format(time.RFC3339))
	root.CreateAttr("xml:lang", "es-MX")

	e.writeHeader(root, supplier)
	e.writeOrderRequest(root, order, items, supplier)

	doc.Indent(2)
	return doc.WriteToBytes()
}

func (e *OrderExporter) writeHeader(root *etree.Element, supplier *entity.Supplier) {
	header := root.CreateElement("Header")

	from := header.CreateElement("From").CreateElement("Credential")
	from.CreateAttr("domain", "NetworkID")
	from.CreateElement("Identity").SetText(e.senderIdentity)

	// El RFC identifica al proveedor en el circuito mexicano.
	to := header.CreateElement("To").CreateElement("Credential")
	to.CreateAttr("domain", "RFC")
	to.CreateElement("Identity").SetText(supplier.RFC)

	sender := header.CreateElement("Sender")
	cred := sender.CreateElement("Credential")
	cred.CreateAttr("domain", "NetworkID")
	cred.CreateElement("Identity").SetText(e.senderIdentity)
	sender.CreateElement("UserAgent").SetText("almacen-pro")
}

func (e *OrderExporter) writeOrderRequest(root *etree.Element, order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem, supplier *entity.Supplier) {
	request := root.CreateElement("Request")
	request.CreateAttr("deploymentMode", "production")
	orderRequest := request.CreateElement("OrderRequest")

	h := orderRequest.CreateElement("OrderRequestHeader")
	h.CreateAttr("orderID", order.PONumber)
	h.CreateAttr("orderDate", order.OrderDate.Format(time.RFC3339))
	h.CreateAttr("type", "new")

	money := h.CreateElement("Total").CreateElement("Money")
	money.CreateAttr("currency", order.CurrencyCode)
	money.SetText(order.TotalAmount.StringFixed(2))

	shipTo := h.CreateElement("ShipTo").CreateElement("Address")
	shipTo.CreateElement("Name").SetText("Almacén central")

	if order.ExpectedDeliveryDate != nil {
		h.CreateAttr("requestedDeliveryDate", order.ExpectedDeliveryDate.Format("2006-01-02"))
	}
	if order.Notes != "" {
		comments := h.CreateElement("Comments")
		comments.CreateAttr("xml:lang", "es-MX")
		comments.SetText(order.Notes)
	}

	for i, it := range items {
		itemOut := orderRequest.CreateElement("ItemOut")
		itemOut.CreateAttr("lineNumber", strconv.Itoa(i+1))
		itemOut.CreateAttr("quantity", it.Quantity.String())

		itemID := itemOut.CreateElement("ItemID")
		partID := it.ProductID
		if partID == "" {
			partID = "FREE-TEXT"
		}
		itemID.CreateElement("SupplierPartID").SetText(partID)

		detail := itemOut.CreateElement("ItemDetail")
		unitPrice := detail.CreateElement("UnitPrice").CreateElement("Money")
		unitPrice.CreateAttr("currency", it.CurrencyCode)
		unitPrice.SetText(it.UnitPrice.StringFixed(2))

		desc := detail.CreateElement("Description")
		desc.CreateAttr("xml:lang", "es-MX")
		desc.SetText(it.Description)

		detail.CreateElement("UnitOfMeasure").SetText(it.UnitOfMeasure)
	}
}
