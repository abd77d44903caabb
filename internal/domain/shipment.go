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

// ShipmentStatus 只允许单向推进:
// Pending -> Processing -> Shipped -> Delivered -> Received
type ShipmentStatus uint8

func (s ShipmentStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s ShipmentStatus) Valid() bool {
	return s >= ShipmentStatusPending && s <= ShipmentStatusReceived
}

// CanAdvanceTo 回退和原地踏步都不是合法迁移
func (s ShipmentStatus) CanAdvanceTo(next ShipmentStatus) bool {
	return next.Valid() && next > s
}

const (
	ShipmentStatusPending    ShipmentStatus = 1 // 待处理
	ShipmentStatusProcessing ShipmentStatus = 2 // 打包中
	ShipmentStatusShipped    ShipmentStatus = 3 // 已发货
	ShipmentStatusDelivered  ShipmentStatus = 4 // 已送达
	ShipmentStatusReceived   ShipmentStatus = 5 // 买家已确认收货
)

// Shipment 支付确认后才会懒创建, 与订单一一对应
type Shipment struct {
	ID             int64
	OrderID        int64
	AddressID      int64
	CourierName    string
	TrackingNumber string
	Status         ShipmentStatus
	ShippedAt      int64
	DeliveredAt    int64
	Ctime          int64
	Utime          int64
}

func (s Shipment) HasTrackingNumber() bool {
	return s.TrackingNumber != ""
}
