package cxml_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/cxml"
)

func ordenDePrueba() (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, *entity.Supplier) {
	entrega := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	order := &entity.PurchaseOrder{
		ID:                   "ord-1",
		PONumber:             "PO-2024-00001",
		SupplierID:           "prov-1",
		Status:               entity.OrderOpen,
		CurrencyCode:         "MXN",
		TotalAmount:          decimal.RequireFromString("20.00"),
		OrderDate:            time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
		ExpectedDeliveryDate: &entrega,
		Notes:                "entregar en andén 3",
	}
	items := []*entity.PurchaseOrderItem{
		{
			ID:              "oi-1",
			PurchaseOrderID: "ord-1",
			Description:     "Tarimas de madera",
			Quantity:        decimal.NewFromInt(2),
			UnitOfMeasure:   "EA",
			UnitPrice:       decimal.RequireFromString("10.00"),
			CurrencyCode:    "MXN",
			LineTotal:       decimal.RequireFromString("20.00"),
		},
	}
	supplier := &entity.Supplier{
		ID:          "prov-1",
		CompanyName: "Maderas del Norte SA de CV",
		RFC:         "MNO010101ABC",
	}
	return order, items, supplier
}

func TestExport_GeneraOrderRequestValido(t *testing.T) {
	order, items, supplier := ordenDePrueba()
	exporter := cxml.NewOrderExporter("almacen-pro.example.com")

	out, err := exporter.Export(order, items, supplier)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	header := doc.FindElement("/cXML/Request/OrderRequest/OrderRequestHeader")
	require.NotNil(t, header)
	assert.Equal(t, "PO-2024-00001", header.SelectAttrValue("orderID", ""))
	assert.Equal(t, "new", header.SelectAttrValue("type", ""))
	assert.Equal(t, "2024-07-15", header.SelectAttrValue("requestedDeliveryDate", ""))

	total := header.FindElement("Total/Money")
	require.NotNil(t, total)
	assert.Equal(t, "MXN", total.SelectAttrValue("currency", ""))
	assert.Equal(t, "20.00", total.Text())

	toIdentity := doc.FindElement("/cXML/Header/To/Credential/Identity")
	require.NotNil(t, toIdentity)
	assert.Equal(t, "MNO010101ABC", toIdentity.Text(), "el RFC del proveedor identifica al destinatario")

	itemsOut := doc.FindElements("/cXML/Request/OrderRequest/ItemOut")
	require.Len(t, itemsOut, 1)
	assert.Equal(t, "1", itemsOut[0].SelectAttrValue("lineNumber", ""))
	assert.Equal(t, "2", itemsOut[0].SelectAttrValue("quantity", ""))

	price := itemsOut[0].FindElement("ItemDetail/UnitPrice/Money")
	require.NotNil(t, price)
	assert.Equal(t, "10.00", price.Text())

	desc := itemsOut[0].FindElement("ItemDetail/Description")
	require.NotNil(t, desc)
	assert.Equal(t, "Tarimas de madera", desc.Text())
}

func TestExport_ItemSinProductoUsaMarcadorLibre(t *testing.T) {
	order, items, supplier := ordenDePrueba()
	items[0].ProductID = ""
	exporter := cxml.NewOrderExporter("almacen-pro.example.com")

	out, err := exporter.Export(order, items, supplier)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	partID := doc.FindElement("/cXML/Request/OrderRequest/ItemOut/ItemID/SupplierPartID")
	require.NotNil(t, partID)
	assert.Equal(t, "FREE-TEXT", partID.Text())
}
