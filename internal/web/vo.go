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
	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/service"
	"github.com/ecodeclub/ekit/slice"
)

// AddCartItemReq 加入购物车
type AddCartItemReq struct {
	ItemID   int64 `json:"itemID"`
	Quantity int64 `json:"quantity"`
}

// UpdateCartItemReq 修改购物车行数量
type UpdateCartItemReq struct {
	ItemID   int64 `json:"itemID"`
	Quantity int64 `json:"quantity"`
}

// RemoveCartItemReq 删除购物车行
type RemoveCartItemReq struct {
	ItemID int64 `json:"itemID"`
}

type CartItem struct {
	ItemID   int64  `json:"itemID"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
}

type CartResp struct {
	Items      []CartItem `json:"items"`
	TotalPrice int64      `json:"totalPrice"`
}

// PreviewOrderReq 结算前试算
type PreviewOrderReq struct {
	CourierName  string `json:"courierName,omitempty"`
	PickupMethod uint8  `json:"pickupMethod"`
}

type PreviewOrderResp struct {
	Items         []CartItem `json:"items"`
	SubtotalPrice int64      `json:"subtotalPrice"`
	ShippingFee   int64      `json:"shippingFee"`
	TotalPrice    int64      `json:"totalPrice"`
}

// CreateOrderReq 创建订单
type CreateOrderReq struct {
	RequestID    string `json:"requestID"` // 请求去重, 防止订单重复提交
	AddressID    int64  `json:"addressID,omitempty"`
	CourierName  string `json:"courierName,omitempty"`
	PickupMethod uint8  `json:"pickupMethod"`
	Note         string `json:"note,omitempty"`
}

type CreateOrderResp struct {
	OrderSN    string        `json:"orderSN"`
	TotalPrice int64         `json:"totalPrice"`
	Banks      []BankAccount `json:"banks"`
}

type Courier struct {
	Name string `json:"name"`
	Rate int64  `json:"rate"`
}

type CourierListResp struct {
	Couriers []Courier `json:"couriers"`
}

type BankAccount struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
}

type BankListResp struct {
	Banks []BankAccount `json:"banks"`
}

// ListOrdersReq 买家订单历史
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// RetrieveOrderDetailReq 订单详情
type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type Order struct {
	SN            string      `json:"sn"`
	SubtotalPrice int64       `json:"subtotalPrice"`
	ShippingFee   int64       `json:"shippingFee"`
	TotalPrice    int64       `json:"totalPrice"`
	PaymentMethod string      `json:"paymentMethod"`
	PickupMethod  uint8       `json:"pickupMethod"`
	PaymentStatus uint8       `json:"paymentStatus"`
	Status        uint8       `json:"status"`
	// State 支付与发货两轴推导出的综合状态
	State    uint8       `json:"state"`
	Note     string      `json:"note,omitempty"`
	Items    []OrderItem `json:"items"`
	Payment  Payment     `json:"payment"`
	Shipment *Shipment   `json:"shipment,omitempty"`
	Ctime    int64       `json:"ctime"`
}

type OrderItem struct {
	ItemID    int64  `json:"itemID"`
	ItemName  string `json:"itemName"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Subtotal  int64  `json:"subtotal"`
}

type Payment struct {
	OrderID   int64  `json:"orderID"`
	Type      string `json:"type"`
	Bank      string `json:"bank,omitempty"`
	Amount    int64  `json:"amount"`
	Status    uint8  `json:"status"`
	ProofPath string `json:"proofPath,omitempty"`
	PaidAt    int64  `json:"paidAt,omitempty"`
}

type Shipment struct {
	ID             int64  `json:"id"`
	OrderID        int64  `json:"orderID"`
	CourierName    string `json:"courierName"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Status         uint8  `json:"status"`
	ShippedAt      int64  `json:"shippedAt,omitempty"`
	DeliveredAt    int64  `json:"deliveredAt,omitempty"`
}

// SearchItemsReq 买家目录检索, categoryID 为 0 表示全部分类
type SearchItemsReq struct {
	Keyword    string `json:"keyword,omitempty"`
	CategoryID int64  `json:"categoryID,omitempty"`
}

type SearchItemsResp struct {
	Total int64  `json:"total"`
	Items []Item `json:"items"`
}

// ItemDetailReq 商品详情
type ItemDetailReq struct {
	ItemID int64 `json:"itemID"`
}

type ItemDetailResp struct {
	Item Item `json:"item"`
}

// CreateAddressReq 新增收货地址
type CreateAddressReq struct {
	RecipientName string `json:"recipientName"`
	FullAddress   string `json:"fullAddress"`
	City          string `json:"city,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

type CreateAddressResp struct {
	AddressID int64 `json:"addressID"`
}

type Address struct {
	ID            int64  `json:"id"`
	RecipientName string `json:"recipientName"`
	FullAddress   string `json:"fullAddress"`
	City          string `json:"city,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

type ListAddressesResp struct {
	Addresses []Address `json:"addresses"`
}

// SubmitProofResp 上传转账凭证结果
type SubmitProofResp struct {
	Payment Payment `json:"payment"`
}

// ConfirmReceiptReq 买家确认收货
type ConfirmReceiptReq struct {
	OrderSN string `json:"sn"`
}

// ===== 管理端 =====

// ListQCItemsReq 按质检状态过滤商品
type ListQCItemsReq struct {
	Eligibility uint8 `json:"eligibility"`
}

type Item struct {
	ID          int64  `json:"id"`
	CategoryID  int64  `json:"categoryID"`
	Name        string `json:"name"`
	Condition   string `json:"condition"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageURL,omitempty"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	Eligibility uint8  `json:"eligibility"`
	Published   bool   `json:"published"`
	QCNotes     string `json:"qcNotes,omitempty"`
}

type ListQCItemsResp struct {
	Items []Item `json:"items"`
}

type QCStatisticsResp struct {
	NeedsQC     int64 `json:"needsQC"`
	Eligible    int64 `json:"eligible"`
	NeedsRepair int64 `json:"needsRepair"`
}

// PerformQCReq 录入单件质检结论
type PerformQCReq struct {
	ItemID      int64  `json:"itemID"`
	Eligibility uint8  `json:"eligibility"`
	Notes       string `json:"notes,omitempty"`
}

// BatchQCReq 批量质检
type BatchQCReq struct {
	ItemIDs []int64 `json:"itemIDs"`
	Notes   string  `json:"notes,omitempty"`
}

type BatchQCResp struct {
	Succeeded int64 `json:"succeeded"`
}

// VerifyPaymentReq 管理员验证转账
type VerifyPaymentReq struct {
	OrderID  int64 `json:"orderID"`
	Approved bool  `json:"approved"`
}

// ListAdminOrdersReq 管理端订单列表
type ListAdminOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

// CreateShipmentReq 为已支付订单创建发货单
type CreateShipmentReq struct {
	OrderID     int64  `json:"orderID"`
	CourierName string `json:"courierName"`
}

type CreateShipmentResp struct {
	Shipment Shipment `json:"shipment"`
}

// UpdateTrackingReq 录入运单号
type UpdateTrackingReq struct {
	ShipmentID     int64  `json:"shipmentID"`
	TrackingNumber string `json:"trackingNumber"`
}

// UpdateShipmentStatusReq 推进发货状态
type UpdateShipmentStatusReq struct {
	ShipmentID int64 `json:"shipmentID"`
	Status     uint8 `json:"status"`
}

// ListShipmentsReq 发货单列表
type ListShipmentsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListShipmentsResp struct {
	Shipments []Shipment `json:"shipments"`
}

func toCartResp(cart domain.Cart) CartResp {
	return CartResp{
		Items: slice.Map(cart.Items, func(idx int, src domain.CartItem) CartItem {
			return toCartItemVO(src)
		}),
		TotalPrice: cart.TotalPrice(),
	}
}

func toCartItemVO(ci domain.CartItem) CartItem {
	return CartItem{
		ItemID:   ci.ItemID,
		Name:     ci.Name,
		Image:    ci.Image,
		Price:    ci.Price,
		Quantity: ci.Quantity,
		Subtotal: ci.Subtotal(),
	}
}

func toOrderVO(entry service.OrderHistoryEntry) Order {
	o := entry.Order
	vo := Order{
		SN:            o.SN,
		SubtotalPrice: o.SubtotalPrice,
		ShippingFee:   o.ShippingFee,
		TotalPrice:    o.TotalPrice,
		PaymentMethod: o.PaymentMethod,
		PickupMethod:  o.PickupMethod.ToUint8(),
		PaymentStatus: o.PaymentStatus.ToUint8(),
		Status:        o.Status.ToUint8(),
		State:         entry.State.ToUint8(),
		Note:          o.Note,
		Items: slice.Map(o.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ItemID:    src.ItemID,
				ItemName:  src.ItemName,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
				Subtotal:  src.Subtotal,
			}
		}),
		Payment: toPaymentVO(entry.Payment),
		Ctime:   o.Ctime,
	}
	if entry.Shipment != nil {
		s := toShipmentVO(*entry.Shipment)
		vo.Shipment = &s
	}
	return vo
}

func toPaymentVO(p domain.Payment) Payment {
	return Payment{
		OrderID:   p.OrderID,
		Type:      p.Type,
		Bank:      p.Bank,
		Amount:    p.Amount,
		Status:    p.Status.ToUint8(),
		ProofPath: p.ProofPath,
		PaidAt:    p.PaidAt,
	}
}

func toShipmentVO(s domain.Shipment) Shipment {
	return Shipment{
		ID:             s.ID,
		OrderID:        s.OrderID,
		CourierName:    s.CourierName,
		TrackingNumber: s.TrackingNumber,
		Status:         s.Status.ToUint8(),
		ShippedAt:      s.ShippedAt,
		DeliveredAt:    s.DeliveredAt,
	}
}

func toAddressVO(a domain.Address) Address {
	return Address{
		ID:            a.ID,
		RecipientName: a.RecipientName,
		FullAddress:   a.FullAddress,
		City:          a.City,
		PostalCode:    a.PostalCode,
		Phone:         a.Phone,
	}
}

func toItemVO(it domain.Item) Item {
	return Item{
		ID:          it.ID,
		CategoryID:  it.CategoryID,
		Name:        it.Name,
		Condition:   it.Condition,
		Description: it.Description,
		ImageURL:    it.ImageURL,
		Price:       it.Price,
		Stock:       it.Stock,
		Eligibility: it.Eligibility.ToUint8(),
		Published:   it.Published,
		QCNotes:     it.QCNotes,
	}
}
