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
	"errors"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type CartRepository interface {
	// FindByUserID 购物车不存在时返回空购物车而非错误
	FindByUserID(ctx context.Context, uid int64) (domain.Cart, error)
	// Save 以内存中的购物车为准整体覆盖持久化内容
	Save(ctx context.Context, cart domain.Cart) error
	Clear(ctx context.Context, uid int64) error
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{d: d}
}

type cartRepository struct {
	d dao.CartDAO
}

func (r *cartRepository) FindByUserID(ctx context.Context, uid int64) (domain.Cart, error) {
	c, items, err := r.d.FindByUserID(ctx, uid)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Cart{UserID: uid}, nil
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{
		ID:     c.Id,
		UserID: c.UserId,
		Items: slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
			return domain.CartItem{
				ItemID:   src.ItemId,
				Name:     src.Name,
				Image:    src.Image,
				Price:    src.Price,
				Quantity: src.Quantity,
			}
		}),
	}, nil
}

func (r *cartRepository) Save(ctx context.Context, cart domain.Cart) error {
	items := slice.Map(cart.Items, func(idx int, src domain.CartItem) dao.CartItem {
		return dao.CartItem{
			ItemId:   src.ItemID,
			Name:     src.Name,
			Image:    src.Image,
			Price:    src.Price,
			Quantity: src.Quantity,
		}
	})
	return r.d.Save(ctx, cart.UserID, items)
}

func (r *cartRepository) Clear(ctx context.Context, uid int64) error {
	return r.d.Clear(ctx, uid)
}
