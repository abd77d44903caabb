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

package event

const (
	OrderCompletedEventName = "order_completed_events"
)

// OrderCompletedEvent 买家确认收货、订单闭环后发出,
// 下游用于结算、通知等
type OrderCompletedEvent struct {
	OrderSN     string `json:"orderSN"`
	BuyerID     int64  `json:"buyerID"`
	TotalPrice  int64  `json:"totalPrice"`
	CompletedAt int64  `json:"completedAt"`
}
