package purchases

import "github.com/tu-usuario/almacen-pro/internal/domain/entity"

// OrderPDFGenerator puerto para la representación PDF de una orden de compra
// (documento frente al proveedor).
type OrderPDFGenerator interface {
	Generate(order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem, supplier *entity.Supplier) ([]byte, error)
}

// OrderExporter puerto para la exportación cXML de una orden de compra
// (integración con sistemas del proveedor).
type OrderExporter interface {
	Export(order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem, supplier *entity.Supplier) ([]byte, error)
}
