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

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type ShipmentDAO interface {
	Insert(ctx context.Context, s Shipment) (int64, error)
	FindByID(ctx context.Context, id int64) (Shipment, error)
	FindByOrderID(ctx context.Context, orderID int64) (Shipment, error)
	List(ctx context.Context, offset, limit int) ([]Shipment, error)
	// UpdateTracking 录入运单号并同步迁移到已发货, 两者在本设计中是耦合的
	UpdateTracking(ctx context.Context, id int64, trackingNumber string, shippedAt int64) error
	// AdvanceStatus 条件前移: 仅当当前状态小于目标状态时生效
	AdvanceStatus(ctx context.Context, id int64, status uint8, deliveredAt int64) error
}

type Shipment struct {
	Id             int64  `gorm:"primaryKey;autoIncrement;comment:发货单自增ID"`
	OrderId        int64  `gorm:"not null;uniqueIndex:uniq_shipment_order_id;comment:订单自增ID"`
	AddressId      int64  `gorm:"not null;comment:收货地址ID"`
	CourierName    string `gorm:"type:varchar(128);not null;comment:承运快递"`
	TrackingNumber string `gorm:"type:varchar(128);comment:运单号, 发货时才有"`
	Status         uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:发货状态 1=待处理 2=打包中 3=已发货 4=已送达 5=已收货"`
	ShippedAt      int64  `gorm:"comment:发货时间"`
	DeliveredAt    int64  `gorm:"comment:送达时间"`
	Ctime          int64
	Utime          int64
}

type GORMShipmentDAO struct {
	db *gorm.DB
}

func NewGORMShipmentDAO(db *gorm.DB) ShipmentDAO {
	return &GORMShipmentDAO{db: db}
}

func (g *GORMShipmentDAO) Insert(ctx context.Context, s Shipment) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := g.db.WithContext(ctx).Create(&s).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErr uint16 = 1062
		if me.Number == uniqueIndexErr {
			return 0, ErrShipmentDuplicate
		}
	}
	if err != nil {
		return 0, err
	}
	return s.Id, nil
}

func (g *GORMShipmentDAO) FindByID(ctx context.Context, id int64) (Shipment, error) {
	var s Shipment
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (g *GORMShipmentDAO) FindByOrderID(ctx context.Context, orderID int64) (Shipment, error) {
	var s Shipment
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).First(&s).Error
	return s, err
}

func (g *GORMShipmentDAO) List(ctx context.Context, offset, limit int) ([]Shipment, error) {
	var res []Shipment
	err := g.db.WithContext(ctx).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMShipmentDAO) UpdateTracking(ctx context.Context, id int64, trackingNumber string, shippedAt int64) error {
	const statusShipped uint8 = 3
	res := g.db.WithContext(ctx).Model(&Shipment{}).
		Where("id = ? AND status < ?", id, statusShipped).
		Updates(map[string]any{
			"tracking_number": trackingNumber,
			"status":          statusShipped,
			"shipped_at":      shippedAt,
			"utime":           time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return g.conflictOrNotFound(ctx, id)
	}
	return nil
}

func (g *GORMShipmentDAO) AdvanceStatus(ctx context.Context, id int64, status uint8, deliveredAt int64) error {
	updates := map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}
	if deliveredAt > 0 {
		updates["delivered_at"] = deliveredAt
	}
	res := g.db.WithContext(ctx).Model(&Shipment{}).
		Where("id = ? AND status < ?", id, status).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return g.conflictOrNotFound(ctx, id)
	}
	return nil
}

func (g *GORMShipmentDAO) conflictOrNotFound(ctx context.Context, id int64) error {
	var s Shipment
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrDataNotFound
	}
	if err != nil {
		return err
	}
	return ErrStateConflict
}
