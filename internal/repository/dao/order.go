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

type OrderDAO interface {
	// CreateOrder 在一个事务内: 条件扣减库存、写入订单与订单项、
	// 创建支付主记录、清空买家已持久化的购物车。任一步失败整体回滚
	CreateOrder(ctx context.Context, o Order, items []OrderItem, pmt Payment) (Order, Payment, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID int64, status uint8) error
	UpdateStatus(ctx context.Context, orderID int64, status uint8) error
}

type Order struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN            string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_sn;comment:订单号"`
	BuyerId       int64  `gorm:"not null;index:idx_buyer_id;comment:买家ID"`
	AddressId     int64  `gorm:"not null;comment:收货地址ID"`
	SubtotalPrice int64  `gorm:"not null;comment:商品小计"`
	ShippingFee   int64  `gorm:"not null;comment:运费"`
	TotalPrice    int64  `gorm:"not null;comment:实付总价 = 小计 + 运费"`
	PaymentMethod string `gorm:"type:varchar(32);not null;comment:支付方式"`
	PickupMethod  uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:取货方式 1=配送 2=自提"`
	PaymentStatus uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态轴 1=待支付 2=已支付 3=支付失败"`
	Status        uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:履约状态轴 1=新订单 2=处理中 3=待发货 4=已完成 5=已取消"`
	Note          string `gorm:"type:varchar(255);comment:备注"`
	Ctime         int64
	Utime         int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	ItemId    int64  `gorm:"not null;index:idx_item_id;comment:商品自增ID"`
	ItemName  string `gorm:"type:varchar(255);not null;comment:商品名称快照"`
	Quantity  int64  `gorm:"not null;comment:购买数量"`
	UnitPrice int64  `gorm:"not null;comment:下单时单价快照"`
	Subtotal  int64  `gorm:"not null;comment:行小计"`
	Ctime     int64
	Utime     int64
}

type GORMOrderDAO struct {
	db *gorm.DB
}

func NewGORMOrderDAO(db *gorm.DB) OrderDAO {
	return &GORMOrderDAO{db: db}
}

func (g *GORMOrderDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem, pmt Payment) (Order, Payment, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		// 条件扣减库存, 写入时兜底 stock >= quantity
		for _, it := range items {
			res := tx.Model(&Item{}).
				Where("id = ? AND stock >= ?", it.ItemId, it.Quantity).
				Updates(map[string]any{
					"stock": gorm.Expr("stock - ?", it.Quantity),
					"utime": now,
				})
			if res.Error != nil {
				return fmt.Errorf("扣减库存失败: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: itemId=%d", ErrInsufficientStock, it.ItemId)
			}
		}

		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return fmt.Errorf("创建订单失败: %w", err)
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("创建订单项失败: %w", err)
		}

		pmt.OrderId = o.Id
		pmt.Ctime, pmt.Utime = now, now
		if err := tx.Create(&pmt).Error; err != nil {
			return fmt.Errorf("创建支付记录失败: %w", err)
		}

		if err := clearCartTx(tx, o.BuyerId); err != nil {
			return fmt.Errorf("清空购物车失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return Order{}, Payment{}, err
	}
	return o, pmt, nil
}

func (g *GORMOrderDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (g *GORMOrderDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&o).Error
	return o, err
}

func (g *GORMOrderDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var items []OrderItem
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (g *GORMOrderDAO) ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMOrderDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var total int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ?", buyerID).
		Count(&total).Error
	return total, err
}

func (g *GORMOrderDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMOrderDAO) UpdatePaymentStatus(ctx context.Context, orderID int64, status uint8) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"payment_status": status,
			"utime":          time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}

func (g *GORMOrderDAO) UpdateStatus(ctx context.Context, orderID int64, status uint8) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}
