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

package repository

import (
	"context"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrItemNotFound      = dao.ErrDataNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
	ErrShipmentDuplicate = dao.ErrShipmentDuplicate
	ErrStateConflict     = dao.ErrStateConflict
)

type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Item, error)
	ListByEligibility(ctx context.Context, eligibility domain.ItemEligibility) ([]domain.Item, error)
	// SearchPublished 买家目录: 只返回已上架且判定可售的商品
	SearchPublished(ctx context.Context, keyword string, categoryID int64) ([]domain.Item, error)
	CountByEligibility(ctx context.Context) (map[domain.ItemEligibility]int64, error)
	// UpdateEligibility 质检结论落库, publish 为 true 时同步上架
	UpdateEligibility(ctx context.Context, id int64, eligibility domain.ItemEligibility, notes string, publish bool) error
}

func NewItemRepository(d dao.ItemDAO) ItemRepository {
	return &itemRepository{d: d}
}

type itemRepository struct {
	d dao.ItemDAO
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (domain.Item, error) {
	it, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	return r.toDomain(it), nil
}

func (r *itemRepository) ListByEligibility(ctx context.Context, eligibility domain.ItemEligibility) ([]domain.Item, error) {
	its, err := r.d.ListByEligibility(ctx, eligibility.ToUint8())
	if err != nil {
		return nil, err
	}
	return slice.Map(its, func(idx int, src dao.Item) domain.Item {
		return r.toDomain(src)
	}), nil
}

func (r *itemRepository) SearchPublished(ctx context.Context, keyword string, categoryID int64) ([]domain.Item, error) {
	its, err := r.d.SearchPublished(ctx, keyword, categoryID, domain.EligibilityEligible.ToUint8())
	if err != nil {
		return nil, err
	}
	return slice.Map(its, func(idx int, src dao.Item) domain.Item {
		return r.toDomain(src)
	}), nil
}

func (r *itemRepository) CountByEligibility(ctx context.Context) (map[domain.ItemEligibility]int64, error) {
	counts, err := r.d.CountByEligibility(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.ItemEligibility]int64, len(counts))
	for k, v := range counts {
		res[domain.ItemEligibility(k)] = v
	}
	return res, nil
}

func (r *itemRepository) UpdateEligibility(ctx context.Context, id int64, eligibility domain.ItemEligibility, notes string, publish bool) error {
	return r.d.UpdateEligibility(ctx, id, eligibility.ToUint8(), notes, publish)
}

func (r *itemRepository) toDomain(it dao.Item) domain.Item {
	return domain.Item{
		ID:          it.Id,
		CategoryID:  it.CategoryId,
		Name:        it.Name,
		Condition:   it.Condition,
		Description: it.Description,
		ImageURL:    it.ImageUrl,
		Price:       it.Price,
		Stock:       it.Stock,
		Eligibility: domain.ItemEligibility(it.Eligibility),
		Published:   it.Published,
		QCNotes:     it.QCNotes,
		Ctime:       it.Ctime,
		Utime:       it.Utime,
	}
}
