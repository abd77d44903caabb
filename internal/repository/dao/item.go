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

type ItemDAO interface {
	FindByID(ctx context.Context, id int64) (Item, error)
	ListByEligibility(ctx context.Context, eligibility uint8) ([]Item, error)
	// SearchPublished 买家目录检索, keyword 与 categoryID 为空时不参与过滤
	SearchPublished(ctx context.Context, keyword string, categoryID int64, eligibility uint8) ([]Item, error)
	CountByEligibility(ctx context.Context) (map[uint8]int64, error)
	UpdateEligibility(ctx context.Context, id int64, eligibility uint8, notes string, publish bool) error
}

type Item struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	CategoryId  int64  `gorm:"not null;index:idx_category_id;comment:分类ID"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Condition   string `gorm:"type:varchar(32);not null;comment:成色 NEW/USED_GOOD/USED_FAIR"`
	Description string `gorm:"comment:商品描述"`
	ImageUrl    string `gorm:"type:varchar(512);comment:商品图片"`
	Price       int64  `gorm:"not null;comment:售价, 最小货币单位"`
	Stock       int64  `gorm:"not null;comment:库存"`
	Eligibility uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_eligibility;comment:质检状态 1=待质检 2=可售 3=待返修"`
	Published   bool   `gorm:"not null;default:false;comment:是否上架"`
	QCNotes     string `gorm:"column:qc_notes;type:varchar(512);comment:质检备注"`
	Ctime       int64
	Utime       int64
}

type GORMItemDAO struct {
	db *gorm.DB
}

func NewGORMItemDAO(db *gorm.DB) ItemDAO {
	return &GORMItemDAO{db: db}
}

func (g *GORMItemDAO) FindByID(ctx context.Context, id int64) (Item, error) {
	var it Item
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&it).Error
	return it, err
}

func (g *GORMItemDAO) ListByEligibility(ctx context.Context, eligibility uint8) ([]Item, error) {
	var res []Item
	err := g.db.WithContext(ctx).
		Where("eligibility = ?", eligibility).
		Order("utime DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMItemDAO) SearchPublished(ctx context.Context, keyword string, categoryID int64, eligibility uint8) ([]Item, error) {
	query := g.db.WithContext(ctx).
		Where("published = ? AND eligibility = ?", true, eligibility)
	if keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	var res []Item
	err := query.Order("utime DESC").Find(&res).Error
	return res, err
}

func (g *GORMItemDAO) CountByEligibility(ctx context.Context) (map[uint8]int64, error) {
	var rows []struct {
		Eligibility uint8
		Total       int64
	}
	err := g.db.WithContext(ctx).Model(&Item{}).
		Select("eligibility, COUNT(*) AS total").
		Group("eligibility").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[uint8]int64, len(rows))
	for _, r := range rows {
		res[r.Eligibility] = r.Total
	}
	return res, nil
}

func (g *GORMItemDAO) UpdateEligibility(ctx context.Context, id int64, eligibility uint8, notes string, publish bool) error {
	updates := map[string]any{
		"eligibility": eligibility,
		"qc_notes":    notes,
		"utime":       time.Now().UnixMilli(),
	}
	// 质检通过时自动上架
	if publish {
		updates["published"] = true
	}
	res := g.db.WithContext(ctx).Model(&Item{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDataNotFound
	}
	return nil
}
