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
	"fmt"
	"time"

	"gorm.io/gorm"
)

type CartDAO interface {
	FindByUserID(ctx context.Context, uid int64) (Cart, []CartItem, error)
	// Save 整体覆盖写: 删除已持久化的全部行后重新插入, 单事务
	Save(ctx context.Context, uid int64, items []CartItem) error
	Clear(ctx context.Context, uid int64) error
}

type Cart struct {
	Id     int64 `gorm:"primaryKey;autoIncrement;comment:购物车自增ID"`
	UserId int64 `gorm:"not null;uniqueIndex:uniq_cart_user_id;comment:买家ID"`
	Ctime  int64
	Utime  int64
}

type CartItem struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:购物车行自增ID"`
	CartId   int64  `gorm:"not null;index:idx_cart_id;comment:购物车自增ID"`
	ItemId   int64  `gorm:"not null;comment:商品自增ID"`
	Name     string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Image    string `gorm:"type:varchar(512);comment:商品图片快照"`
	Price    int64  `gorm:"not null;comment:加入时单价快照"`
	Quantity int64  `gorm:"not null;comment:数量"`
	Ctime    int64
	Utime    int64
}

type GORMCartDAO struct {
	db *gorm.DB
}

func NewGORMCartDAO(db *gorm.DB) CartDAO {
	return &GORMCartDAO{db: db}
}

func (g *GORMCartDAO) FindByUserID(ctx context.Context, uid int64) (Cart, []CartItem, error) {
	var c Cart
	err := g.db.WithContext(ctx).Where("user_id = ?", uid).First(&c).Error
	if err != nil {
		return Cart{}, nil, err
	}
	var items []CartItem
	err = g.db.WithContext(ctx).Where("cart_id = ?", c.Id).Find(&items).Error
	return c, items, err
}

func (g *GORMCartDAO) Save(ctx context.Context, uid int64, items []CartItem) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		c := Cart{UserId: uid, Ctime: now, Utime: now}
		if err := tx.Where("user_id = ?", uid).FirstOrCreate(&c).Error; err != nil {
			return fmt.Errorf("查找或创建购物车失败: %w", err)
		}
		if err := tx.Model(&Cart{}).Where("id = ?", c.Id).
			Update("utime", now).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", c.Id).Delete(&CartItem{}).Error; err != nil {
			return fmt.Errorf("清空旧购物车行失败: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].Id = 0
			items[i].CartId = c.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("写入购物车行失败: %w", err)
		}
		return nil
	})
}

func (g *GORMCartDAO) Clear(ctx context.Context, uid int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return clearCartTx(tx, uid)
	})
}

// clearCartTx 供创建订单事务复用
func clearCartTx(tx *gorm.DB, uid int64) error {
	var c Cart
	err := tx.Where("user_id = ?", uid).First(&c).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return tx.Where("cart_id = ?", c.Id).Delete(&CartItem{}).Error
}
