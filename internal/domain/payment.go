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

// PaymentStatus 状态机: Pending -> Success 或 Pending -> Failed, 终态不可再迁移
type PaymentStatus uint8

func (s PaymentStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusPending PaymentStatus = 1 // 待验证
	PaymentStatusSuccess PaymentStatus = 2 // 验证通过
	PaymentStatusFailed  PaymentStatus = 3 // 验证拒绝
)

// Payment 与订单一一对应, 金额恒等于订单总价
type Payment struct {
	ID        int64
	OrderID   int64
	Type      string
	Bank      string
	Amount    int64
	Status    PaymentStatus
	ProofPath string
	PaidAt    int64
	Ctime     int64
	Utime     int64
}
