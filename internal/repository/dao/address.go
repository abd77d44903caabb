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
	"time"

	"gorm.io/gorm"
)

type AddressDAO interface {
	Insert(ctx context.Context, a Address) (int64, error)
	FindByID(ctx context.Context, id int64) (Address, error)
	ListByUserID(ctx context.Context, uid int64) ([]Address, error)
}

type Address struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:地址自增ID"`
	UserId        int64  `gorm:"not null;index:idx_address_user_id;comment:用户ID"`
	RecipientName string `gorm:"type:varchar(128);not null;comment:收件人"`
	FullAddress   string `gorm:"type:varchar(512);not null;comment:详细地址"`
	City          string `gorm:"type:varchar(128);comment:城市"`
	PostalCode    string `gorm:"type:varchar(16);comment:邮编"`
	Phone         string `gorm:"type:varchar(32);comment:联系电话"`
	Ctime         int64
	Utime         int64
}

type GORMAddressDAO struct {
	db *gorm.DB
}

func NewGORMAddressDAO(db *gorm.DB) AddressDAO {
	return &GORMAddressDAO{db: db}
}

func (g *GORMAddressDAO) Insert(ctx context.Context, a Address) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := g.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (g *GORMAddressDAO) FindByID(ctx context.Context, id int64) (Address, error) {
	var a Address
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (g *GORMAddressDAO) ListByUserID(ctx context.Context, uid int64) ([]Address, error) {
	var res []Address
	err := g.db.WithContext(ctx).Where("user_id = ?", uid).Find(&res).Error
	return res, err
}
