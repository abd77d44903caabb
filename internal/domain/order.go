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

package domain

// OrderPaymentStatus 订单上的支付状态轴, 由支付验证结果级联写入
type OrderPaymentStatus uint8

func (s OrderPaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	OrderPaymentStatusPending OrderPaymentStatus = 1 // 待支付
	OrderPaymentStatusPaid    OrderPaymentStatus = 2 // 已支付
	OrderPaymentStatusFailed  OrderPaymentStatus = 3 // 支付失败
)

// OrderStatus 订单履约状态轴, 由发货进度或管理员驱动
type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	OrderStatusNew        OrderStatus = 1 // 新订单
	OrderStatusProcessing OrderStatus = 2 // 处理中
	OrderStatusReady      OrderStatus = 3 // 待发货/待自提
	OrderStatusCompleted  OrderStatus = 4 // 已完成
	OrderStatusCancelled  OrderStatus = 5 // 已取消
)

type PickupMethod uint8

func (m PickupMethod) ToUint8() uint8 {
	return uint8(m)
}

const (
	PickupMethodDelivery PickupMethod = 1 // 快递配送
	PickupMethodSelf     PickupMethod = 2 // 到店自提
)

// 当前仅支持银行转账
const PaymentMethodTransfer = "TRANSFER"

// Order 创建后除两条状态轴和备注外不可变
type Order struct {
	ID            int64
	SN            string
	BuyerID       int64
	AddressID     int64
	SubtotalPrice int64
	ShippingFee   int64
	TotalPrice    int64
	PaymentMethod string
	PickupMethod  PickupMethod
	PaymentStatus OrderPaymentStatus
	Status        OrderStatus
	Note          string
	Items         []OrderItem
	Ctime         int64
	Utime         int64
}

// OrderItem 单价是下单时的快照, 与商品后续调价无关
type OrderItem struct {
	OrderID   int64
	ItemID    int64
	ItemName  string
	Quantity  int64
	UnitPrice int64
	Subtotal  int64
}
