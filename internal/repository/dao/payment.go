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
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PaymentDAO interface {
	FindByOrderID(ctx context.Context, orderID int64) (Payment, error)
	UpdateProof(ctx context.Context, orderID int64, proof, bank string) error
	// UpdateStatusIfPending 条件迁移: 仅当当前状态仍为待验证时生效,
	// 防止并发重复验证。终态重放返回 ErrStateConflict
	UpdateStatusIfPending(ctx context.Context, orderID int64, status uint8, paidAt int64) error
}

type Payment struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:支付自增ID"`
	OrderId int64  `gorm:"not null;uniqueIndex:uniq_payment_order_id;comment:订单自增ID"`
	Type    string `gorm:"type:varchar(32);not null;comment:支付类型, 目前只有TRANSFER"`
	Bank    string `gorm:"type:varchar(64);comment:转账银行"`
	Amount  int64  `gorm:"not null;comment:支付金额, 恒等于订单总价"`
	Status  uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=待验证 2=通过 3=拒绝"`
	Proof   string `gorm:"type:varchar(512);comment:转账凭证文件路径"`
	PaidAt  int64  `gorm:"comment:支付确认时间"`
	Ctime   int64
	Utime   int64
}

type GORMPaymentDAO struct {
	db *gorm.DB
}

func NewGORMPaymentDAO(db *gorm.DB) PaymentDAO {
	return &GORMPaymentDAO{db: db}
}

func (g *GORMPaymentDAO) FindByOrderID(ctx context.Context, orderID int64) (Payment, error) {
	var p Payment
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error
	return p, err
}

func (g *GORMPaymentDAO) UpdateProof(ctx context.Context, orderID int64, proof, bank string) error {
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{
			"proof": proof,
			"bank":  bank,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (g *GORMPaymentDAO) UpdateStatusIfPending(ctx context.Context, orderID int64, status uint8, paidAt int64) error {
	const statusPending uint8 = 1
	updates := map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}
	if paidAt > 0 {
		updates["paid_at"] = paidAt
	}
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("order_id = ? AND status = ?", orderID, statusPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// 区分不存在与已处于终态
		var p Payment
		err := g.db.WithContext(ctx).Where("order_id = ?", orderID).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDataNotFound
		}
		if err != nil {
			return err
		}
		return ErrStateConflict
	}
	return nil
}
