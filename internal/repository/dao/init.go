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

package dao

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrDataNotFound = gorm.ErrRecordNotFound
	// ErrInsufficientStock 条件扣减库存未命中任何行
	ErrInsufficientStock = errors.New("库存不足")
	// ErrShipmentDuplicate 同一订单重复创建发货单, 由唯一索引兜底
	ErrShipmentDuplicate = errors.New("该订单已存在发货单")
	// ErrStateConflict 条件更新的状态前置条件在写入时不再成立
	ErrStateConflict = errors.New("状态已变更, 拒绝本次迁移")
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Item{},
		&Cart{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&Payment{},
		&Shipment{},
		&Address{},
	)
}
