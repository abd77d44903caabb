// Copyright 2024 combiphar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/errs"
	"github.com/combiphar/remarket/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 管理端入口: 质检工作台、转账验证、发货管理
type AdminHandler struct {
	itemSvc        service.ItemService
	paymentSvc     service.PaymentService
	shipmentSvc    service.ShipmentService
	fulfillmentSvc service.FulfillmentService
}

func NewAdminHandler(
	itemSvc service.ItemService,
	paymentSvc service.PaymentService,
	shipmentSvc service.ShipmentService,
	fulfillmentSvc service.FulfillmentService,
) *AdminHandler {
	return &AdminHandler{
		itemSvc:        itemSvc,
		paymentSvc:     paymentSvc,
		shipmentSvc:    shipmentSvc,
		fulfillmentSvc: fulfillmentSvc,
	}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	qc := server.Group("/admin/qc")
	qc.POST("/list", ginx.B[ListQCItemsReq](h.ListQCItems))
	qc.GET("/statistics", ginx.W(h.QCStatistics))
	qc.POST("/perform", ginx.B[PerformQCReq](h.PerformQC))
	qc.POST("/batch/approve", ginx.B[BatchQCReq](h.BatchApprove))
	qc.POST("/batch/reject", ginx.B[BatchQCReq](h.BatchReject))

	payment := server.Group("/admin/payment")
	payment.POST("/verify", ginx.B[VerifyPaymentReq](h.VerifyPayment))

	order := server.Group("/admin/order")
	order.POST("/list", ginx.B[ListAdminOrdersReq](h.ListOrders))

	shipment := server.Group("/admin/shipment")
	shipment.POST("/list", ginx.B[ListShipmentsReq](h.ListShipments))
	shipment.POST("/create", ginx.B[CreateShipmentReq](h.CreateShipment))
	shipment.POST("/tracking", ginx.B[UpdateTrackingReq](h.UpdateTracking))
	shipment.POST("/status", ginx.B[UpdateShipmentStatusReq](h.UpdateShipmentStatus))
}

func (h *AdminHandler) ListQCItems(ctx *ginx.Context, req ListQCItemsReq) (ginx.Result, error) {
	items, err := h.itemSvc.ListByEligibility(ctx.Request.Context(), domain.ItemEligibility(req.Eligibility))
	if errors.Is(err, service.ErrInvalidEligibility) {
		return errResult(errs.InvalidInput), err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListQCItemsResp{
			Items: slice.Map(items, func(idx int, src domain.Item) Item {
				return toItemVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) QCStatistics(ctx *ginx.Context) (ginx.Result, error) {
	stats, err := h.itemSvc.Statistics(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: QCStatisticsResp{
			NeedsQC:     stats.NeedsQC,
			Eligible:    stats.Eligible,
			NeedsRepair: stats.NeedsRepair,
		},
	}, nil
}

func (h *AdminHandler) PerformQC(ctx *ginx.Context, req PerformQCReq) (ginx.Result, error) {
	err := h.itemSvc.PerformQualityCheck(ctx.Request.Context(),
		req.ItemID, domain.ItemEligibility(req.Eligibility), req.Notes)
	switch {
	case errors.Is(err, service.ErrInvalidEligibility):
		return errResult(errs.InvalidInput), err
	case errors.Is(err, service.ErrItemNotFound):
		return errResult(errs.ItemNotFound), err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) BatchApprove(ctx *ginx.Context, req BatchQCReq) (ginx.Result, error) {
	succeeded, err := h.itemSvc.BatchApprove(ctx.Request.Context(), req.ItemIDs, req.Notes)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: BatchQCResp{Succeeded: succeeded}}, nil
}

func (h *AdminHandler) BatchReject(ctx *ginx.Context, req BatchQCReq) (ginx.Result, error) {
	succeeded, err := h.itemSvc.BatchReject(ctx.Request.Context(), req.ItemIDs, req.Notes)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: BatchQCResp{Succeeded: succeeded}}, nil
}

func (h *AdminHandler) VerifyPayment(ctx *ginx.Context, req VerifyPaymentReq) (ginx.Result, error) {
	err := h.paymentSvc.VerifyPayment(ctx.Request.Context(), req.OrderID, req.Approved)
	switch {
	case errors.Is(err, service.ErrStateConflict):
		return errResult(errs.StateConflict), err
	case errors.Is(err, service.ErrPaymentNotFound):
		return errResult(errs.PaymentNotFound), err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) ListOrders(ctx *ginx.Context, req ListAdminOrdersReq) (ginx.Result, error) {
	entries, err := h.fulfillmentSvc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Orders: slice.Map(entries, func(idx int, src service.OrderHistoryEntry) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) ListShipments(ctx *ginx.Context, req ListShipmentsReq) (ginx.Result, error) {
	shipments, err := h.shipmentSvc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListShipmentsResp{
			Shipments: slice.Map(shipments, func(idx int, src domain.Shipment) Shipment {
				return toShipmentVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) CreateShipment(ctx *ginx.Context, req CreateShipmentReq) (ginx.Result, error) {
	shipment, err := h.shipmentSvc.CreateShipment(ctx.Request.Context(), req.OrderID, req.CourierName)
	switch {
	case errors.Is(err, service.ErrOrderNotPaid):
		return errResult(errs.OrderNotPaid), err
	case errors.Is(err, service.ErrShipmentDuplicate):
		return errResult(errs.ShipmentDuplicate), err
	case errors.Is(err, service.ErrShipmentNotFound):
		return errResult(errs.OrderNotFound), err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: CreateShipmentResp{Shipment: toShipmentVO(shipment)}}, nil
}

func (h *AdminHandler) UpdateTracking(ctx *ginx.Context, req UpdateTrackingReq) (ginx.Result, error) {
	err := h.shipmentSvc.UpdateTrackingNumber(ctx.Request.Context(), req.ShipmentID, req.TrackingNumber)
	switch {
	case errors.Is(err, service.ErrTrackingNumberEmpty):
		return errResult(errs.TrackingNumberEmpty), err
	case errors.Is(err, service.ErrInvalidStateTransition):
		return errResult(errs.InvalidTransition), err
	case errors.Is(err, service.ErrShipmentNotFound):
		return errResult(errs.ShipmentNotFound), err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) UpdateShipmentStatus(ctx *ginx.Context, req UpdateShipmentStatusReq) (ginx.Result, error) {
	err := h.shipmentSvc.UpdateStatus(ctx.Request.Context(), req.ShipmentID, domain.ShipmentStatus(req.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStateTransition):
		return errResult(errs.InvalidTransition), err
	case errors.Is(err, service.ErrTrackingNumberEmpty):
		return errResult(errs.TrackingNumberEmpty), err
	case errors.Is(err, service.ErrShipmentNotFound):
		return errResult(errs.ShipmentNotFound), err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
