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
	"context"
	"errors"
	"fmt"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/errs"
	"github.com/combiphar/remarket/internal/service"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 买家侧入口: 目录、购物车、结算、订单历史、转账凭证
type Handler struct {
	itemSvc        service.ItemService
	cartSvc        service.CartService
	checkoutSvc    service.CheckoutService
	paymentSvc     service.PaymentService
	shipmentSvc    service.ShipmentService
	fulfillmentSvc service.FulfillmentService
	addressSvc     service.AddressService
	cache          ecache.Cache
}

func NewHandler(
	itemSvc service.ItemService,
	cartSvc service.CartService,
	checkoutSvc service.CheckoutService,
	paymentSvc service.PaymentService,
	shipmentSvc service.ShipmentService,
	fulfillmentSvc service.FulfillmentService,
	addressSvc service.AddressService,
	cache ecache.Cache,
) *Handler {
	return &Handler{
		itemSvc:        itemSvc,
		cartSvc:        cartSvc,
		checkoutSvc:    checkoutSvc,
		paymentSvc:     paymentSvc,
		shipmentSvc:    shipmentSvc,
		fulfillmentSvc: fulfillmentSvc,
		addressSvc:     addressSvc,
		cache:          cache,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	item := server.Group("/item")
	item.POST("/list", ginx.B[SearchItemsReq](h.SearchItems))
	item.POST("/detail", ginx.B[ItemDetailReq](h.ItemDetail))
	server.GET("/checkout/couriers", ginx.W(h.Couriers))
	server.GET("/payment/banks", ginx.W(h.Banks))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	address := server.Group("/address")
	address.POST("/list", ginx.S(h.ListAddresses))
	address.POST("/create", ginx.BS[CreateAddressReq](h.CreateAddress))

	cart := server.Group("/cart")
	cart.POST("/detail", ginx.S(h.RetrieveCart))
	cart.POST("/add", ginx.BS[AddCartItemReq](h.AddCartItem))
	cart.POST("/update", ginx.BS[UpdateCartItemReq](h.UpdateCartItem))
	cart.POST("/remove", ginx.BS[RemoveCartItemReq](h.RemoveCartItem))
	cart.POST("/clear", ginx.S(h.ClearCart))

	checkout := server.Group("/checkout")
	checkout.POST("/preview", ginx.BS[PreviewOrderReq](h.PreviewOrder))
	checkout.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))

	order := server.Group("/order")
	order.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	order.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	order.POST("/receive", ginx.BS[ConfirmReceiptReq](h.ConfirmReceipt))

	server.POST("/payment/proof", ginx.S(h.SubmitProof))
}

func (h *Handler) SearchItems(ctx *ginx.Context, req SearchItemsReq) (ginx.Result, error) {
	items, err := h.itemSvc.SearchPublished(ctx.Request.Context(), req.Keyword, req.CategoryID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SearchItemsResp{
			Total: int64(len(items)),
			Items: slice.Map(items, func(idx int, src domain.Item) Item {
				return toItemVO(src)
			}),
		},
	}, nil
}

func (h *Handler) ItemDetail(ctx *ginx.Context, req ItemDetailReq) (ginx.Result, error) {
	item, err := h.itemSvc.FindPublishedByID(ctx.Request.Context(), req.ItemID)
	if errors.Is(err, service.ErrItemNotFound) {
		return errResult(errs.ItemNotFound), err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ItemDetailResp{Item: toItemVO(item)}}, nil
}

func (h *Handler) ListAddresses(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	addresses, err := h.addressSvc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListAddressesResp{
			Addresses: slice.Map(addresses, func(idx int, src domain.Address) Address {
				return toAddressVO(src)
			}),
		},
	}, nil
}

func (h *Handler) CreateAddress(ctx *ginx.Context, req CreateAddressReq, sess session.Session) (ginx.Result, error) {
	id, err := h.addressSvc.Create(ctx.Request.Context(), domain.Address{
		UserID:        sess.Claims().Uid,
		RecipientName: req.RecipientName,
		FullAddress:   req.FullAddress,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Phone:         req.Phone,
	})
	if errors.Is(err, service.ErrAddressInvalid) {
		return errResult(errs.InvalidInput), err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CreateAddressResp{AddressID: id}}, nil
}

func (h *Handler) Couriers(ctx *ginx.Context) (ginx.Result, error) {
	couriers := h.checkoutSvc.Couriers(ctx.Request.Context())
	return ginx.Result{
		Data: CourierListResp{
			Couriers: slice.Map(couriers, func(idx int, src domain.Courier) Courier {
				return Courier{Name: src.Name, Rate: src.Rate}
			}),
		},
	}, nil
}

func (h *Handler) Banks(ctx *ginx.Context) (ginx.Result, error) {
	banks := h.paymentSvc.Banks(ctx.Request.Context())
	return ginx.Result{
		Data: BankListResp{
			Banks: slice.Map(banks, func(idx int, src domain.BankAccount) BankAccount {
				return BankAccount{
					BankName:      src.BankName,
					AccountNumber: src.AccountNumber,
					AccountHolder: src.AccountHolder,
				}
			}),
		},
	}, nil
}

func (h *Handler) RetrieveCart(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cart, err := h.cartSvc.FindCart(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCartResp(cart)}, nil
}

func (h *Handler) AddCartItem(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.cartSvc.AddItem(ctx.Request.Context(), sess.Claims().Uid, req.ItemID, req.Quantity)
	if err != nil {
		return h.cartErrorResult(err)
	}
	return ginx.Result{Data: toCartResp(cart)}, nil
}

func (h *Handler) UpdateCartItem(ctx *ginx.Context, req UpdateCartItemReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.cartSvc.UpdateQuantity(ctx.Request.Context(), sess.Claims().Uid, req.ItemID, req.Quantity)
	if err != nil {
		return h.cartErrorResult(err)
	}
	return ginx.Result{Data: toCartResp(cart)}, nil
}

func (h *Handler) RemoveCartItem(ctx *ginx.Context, req RemoveCartItemReq, sess session.Session) (ginx.Result, error) {
	cart, err := h.cartSvc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, req.ItemID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCartResp(cart)}, nil
}

func (h *Handler) ClearCart(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.cartSvc.ClearCart(ctx.Request.Context(), sess.Claims().Uid); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) cartErrorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return errResult(errs.ItemNotFound), err
	case errors.Is(err, service.ErrItemNotSellable):
		return errResult(errs.ItemNotSellable), err
	case errors.Is(err, service.ErrInsufficientStock):
		return errResult(errs.InsufficientStock), err
	case errors.Is(err, service.ErrInvalidQuantity):
		return errResult(errs.InvalidInput), err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) PreviewOrder(ctx *ginx.Context, req PreviewOrderReq, sess session.Session) (ginx.Result, error) {
	preview, err := h.checkoutSvc.PreviewOrder(ctx.Request.Context(),
		sess.Claims().Uid, req.CourierName, domain.PickupMethod(req.PickupMethod))
	if err != nil {
		return h.checkoutErrorResult(err)
	}
	return ginx.Result{
		Data: PreviewOrderResp{
			Items: slice.Map(preview.Items, func(idx int, src domain.CartItem) CartItem {
				return toCartItemVO(src)
			}),
			SubtotalPrice: preview.SubtotalPrice,
			ShippingFee:   preview.ShippingFee,
			TotalPrice:    preview.TotalPrice,
		},
	}, nil
}

func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}
	order, _, err := h.checkoutSvc.CreateOrder(ctx.Request.Context(), service.CheckoutRequest{
		BuyerID:      sess.Claims().Uid,
		AddressID:    req.AddressID,
		CourierName:  req.CourierName,
		PickupMethod: domain.PickupMethod(req.PickupMethod),
		Note:         req.Note,
	})
	if err != nil {
		return h.checkoutErrorResult(err)
	}
	banks := h.paymentSvc.Banks(ctx.Request.Context())
	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN:    order.SN,
			TotalPrice: order.TotalPrice,
			Banks: slice.Map(banks, func(idx int, src domain.BankAccount) BankAccount {
				return BankAccount{
					BankName:      src.BankName,
					AccountNumber: src.AccountNumber,
					AccountHolder: src.AccountHolder,
				}
			}),
		},
	}, nil
}

func (h *Handler) checkoutErrorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrCartEmpty):
		return errResult(errs.CartEmpty), err
	case errors.Is(err, service.ErrUnknownCourier):
		return errResult(errs.CourierNotFound), err
	case errors.Is(err, service.ErrAddressNotFound):
		return errResult(errs.AddressNotFound), err
	case errors.Is(err, service.ErrItemNotSellable):
		return errResult(errs.ItemNotSellable), err
	case errors.Is(err, service.ErrInsufficientStock):
		return errResult(errs.InsufficientStock), err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("order:create:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	entries, total, err := h.fulfillmentSvc.OrderHistory(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(entries, func(idx int, src service.OrderHistoryEntry) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	entry, err := h.fulfillmentSvc.OrderDetail(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if errors.Is(err, service.ErrPaymentNotFound) {
		return errResult(errs.OrderNotFound), err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: RetrieveOrderDetailResp{Order: toOrderVO(entry)}}, nil
}

// ConfirmReceipt 买家确认收货, 订单随之闭环
func (h *Handler) ConfirmReceipt(ctx *ginx.Context, req ConfirmReceiptReq, sess session.Session) (ginx.Result, error) {
	entry, err := h.fulfillmentSvc.OrderDetail(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if err != nil {
		return errResult(errs.OrderNotFound), err
	}
	if entry.Shipment == nil {
		return errResult(errs.ShipmentNotFound), service.ErrShipmentNotFound
	}
	err = h.shipmentSvc.UpdateStatus(ctx.Request.Context(), entry.Shipment.ID, domain.ShipmentStatusReceived)
	if errors.Is(err, service.ErrInvalidStateTransition) {
		return errResult(errs.InvalidTransition), err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// SubmitProof 上传转账凭证, multipart 表单: sn + bank + proof 文件
func (h *Handler) SubmitProof(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	orderSN := ctx.PostForm("sn")
	bank := ctx.PostForm("bank")
	file, err := ctx.FormFile("proof")
	if err != nil {
		return errResult(errs.InvalidInput), fmt.Errorf("读取凭证文件失败: %w", err)
	}
	f, err := file.Open()
	if err != nil {
		return systemErrorResult, fmt.Errorf("打开凭证文件失败: %w", err)
	}
	defer f.Close()
	pmt, err := h.paymentSvc.SubmitProof(ctx.Request.Context(), orderSN, sess.Claims().Uid, service.ProofUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Content:     f,
		Bank:        bank,
	})
	switch {
	case errors.Is(err, service.ErrPaymentNotFound):
		return errResult(errs.OrderNotFound), err
	case err != nil:
		return errResult(errs.ProofInvalid), err
	}
	return ginx.Result{Data: SubmitProofResp{Payment: toPaymentVO(pmt)}}, nil
}
