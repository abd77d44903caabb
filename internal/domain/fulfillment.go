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

// FulfillmentState 面向买家展示的订单综合状态,
// 由支付状态和发货进度推导, 全站只允许通过 DeriveFulfillmentState 计算
type FulfillmentState uint8

func (s FulfillmentState) ToUint8() uint8 {
	return uint8(s)
}

const (
	FulfillmentStateAwaitingConfirm FulfillmentState = 1 // 等待支付确认
	FulfillmentStateRejected        FulfillmentState = 2 // 支付被拒
	FulfillmentStateProcessing      FulfillmentState = 3 // 处理中
	FulfillmentStateInTransit       FulfillmentState = 4 // 运输中
	FulfillmentStateDelivered       FulfillmentState = 5 // 已送达
	FulfillmentStateCompleted       FulfillmentState = 6 // 已完成
)

// DeriveFulfillmentState 决策表, 从上到下首个命中生效。
// shipment 为 nil 表示尚未创建发货单
func DeriveFulfillmentState(paymentStatus PaymentStatus, shipment *Shipment) FulfillmentState {
	switch paymentStatus {
	case PaymentStatusPending:
		return FulfillmentStateAwaitingConfirm
	case PaymentStatusFailed:
		return FulfillmentStateRejected
	}
	if shipment == nil {
		return FulfillmentStateProcessing
	}
	switch shipment.Status {
	case ShipmentStatusShipped:
		return FulfillmentStateInTransit
	case ShipmentStatusDelivered:
		return FulfillmentStateDelivered
	case ShipmentStatusReceived:
		return FulfillmentStateCompleted
	default:
		// Pending / Processing 仍然展示为处理中
		return FulfillmentStateProcessing
	}
}
