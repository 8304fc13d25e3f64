package purchases

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// DocumentUseCase genera los documentos de una orden de compra: PDF para
// impresión y cXML para integración con el proveedor.
type DocumentUseCase struct {
	repo         repository.PurchasesRepository
	supplierRepo repository.SupplierRepository
	pdf          OrderPDFGenerator
	exporter     OrderExporter
}

// NewDocumentUseCase construye el caso de uso de documentos.
func NewDocumentUseCase(repo repository.PurchasesRepository, supplierRepo repository.SupplierRepository, pdf OrderPDFGenerator, exporter OrderExporter) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, supplierRepo: supplierRepo, pdf: pdf, exporter: exporter}
}

// OrderPDF devuelve el PDF de la orden.
func (uc *DocumentUseCase) OrderPDF(ctx context.Context, orderID string) ([]byte, error) {
	order, items, supplier, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(order, items, supplier)
}

// OrderCXML devuelve el documento cXML OrderRequest de la orden.
func (uc *DocumentUseCase) OrderCXML(ctx context.Context, orderID string) ([]byte, error) {
	order, items, supplier, err := uc.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(order, items, supplier)
}

func (uc *DocumentUseCase) load(ctx context.Context, orderID string) (*entity.PurchaseOrder, []*entity.PurchaseOrderItem, *entity.Supplier, error) {
	order, items, err := uc.repo.GetPurchaseOrderWithItems(ctx, orderID)
	if err != nil {
		return nil, nil, nil, err
	}
	if order == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(order.SupplierID)
	if err != nil {
		return nil, nil, nil, err
	}
	if supplier == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	return order, items, supplier, nil
}
