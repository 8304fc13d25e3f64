package http

import (
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

func toRequestResponse(req *entity.PurchaseRequest) dto.PurchaseRequestResponse {
	return dto.PurchaseRequestResponse{
		ID:            req.ID,
		RequestNumber: req.RequestNumber,
		RequesterID:   req.RequesterID,
		SupplierID:    req.SupplierID,
		Priority:      string(req.Priority),
		Status:        string(req.Status),
		CurrencyCode:  req.CurrencyCode,
		TotalAmount:   req.TotalAmount,
		RequiredDate:  req.RequiredDate,
		Notes:         req.Notes,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func toRequestItemResponse(item *entity.PurchaseRequestItem) dto.PurchaseRequestItemResponse {
	return dto.PurchaseRequestItemResponse{
		ID:                 item.ID,
		PurchaseRequestID:  item.PurchaseRequestID,
		ProductID:          item.ProductID,
		Description:        item.Description,
		Quantity:           item.Quantity,
		UnitOfMeasure:      item.UnitOfMeasure,
		UnitPriceEstimated: item.UnitPriceEstimated,
		CurrencyCode:       item.CurrencyCode,
		LineTotal:          item.LineTotal,
		NeededDate:         item.NeededDate,
	}
}

func toApprovalResponse(a *entity.PurchaseRequestApproval) dto.ApprovalResponse {
	return dto.ApprovalResponse{
		ID:                a.ID,
		PurchaseRequestID: a.PurchaseRequestID,
		ApproverID:        a.ApproverID,
		Level:             a.Level,
		Status:            string(a.Status),
		Comments:          a.Comments,
		DecisionAt:        a.DecisionAt,
	}
}

func toOrderResponse(o *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	return dto.PurchaseOrderResponse{
		ID:                   o.ID,
		PONumber:             o.PONumber,
		PurchaseRequestID:    o.PurchaseRequestID,
		BuyerID:              o.BuyerID,
		SupplierID:           o.SupplierID,
		Status:               string(o.Status),
		CurrencyCode:         o.CurrencyCode,
		TotalAmount:          o.TotalAmount,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Notes:                o.Notes,
	}
}

func toOrderItemResponse(item *entity.PurchaseOrderItem) dto.PurchaseOrderItemResponse {
	return dto.PurchaseOrderItemResponse{
		ID:              item.ID,
		PurchaseOrderID: item.PurchaseOrderID,
		ProductID:       item.ProductID,
		Description:     item.Description,
		Quantity:        item.Quantity,
		UnitOfMeasure:   item.UnitOfMeasure,
		UnitPrice:       item.UnitPrice,
		CurrencyCode:    item.CurrencyCode,
		LineTotal:       item.LineTotal,
	}
}
