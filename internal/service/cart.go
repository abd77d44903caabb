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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository"
)

var (
	ErrItemNotSellable   = errors.New("商品未通过质检或未上架")
	ErrInsufficientStock = repository.ErrInsufficientStock
	ErrInvalidQuantity   = errors.New("数量必须大于0")
)

//go:generate mockgen -source=./cart.go -package=svcmocks -destination=./mocks/cart.mock.go
type CartService interface {
	FindCart(ctx context.Context, uid int64) (domain.Cart, error)
	// AddItem 校验售卖门禁后加入购物车, 同一商品合并数量
	AddItem(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error)
	// UpdateQuantity 覆盖数量, 只校验库存, 不重查售卖资格
	UpdateQuantity(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error)
	RemoveItem(ctx context.Context, uid, itemID int64) (domain.Cart, error)
	ClearCart(ctx context.Context, uid int64) error
}

func NewCartService(repo repository.CartRepository, itemRepo repository.ItemRepository) CartService {
	return &cartService{
		repo:     repo,
		itemRepo: itemRepo,
	}
}

type cartService struct {
	repo     repository.CartRepository
	itemRepo repository.ItemRepository
}

func (s *cartService) FindCart(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.repo.FindByUserID(ctx, uid)
}

func (s *cartService) AddItem(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, ErrInvalidQuantity
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return domain.Cart{}, err
	}
	cart, err := s.repo.FindByUserID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	// 门禁校验要算上已在购物车中的数量
	var existing int64
	if ci, ok := cart.FindItem(itemID); ok {
		existing = ci.Quantity
	}
	if !item.CanSell(existing + quantity) {
		if item.Eligibility != domain.EligibilityEligible || !item.Published {
			return domain.Cart{}, fmt.Errorf("%w: itemId=%d", ErrItemNotSellable, itemID)
		}
		return domain.Cart{}, fmt.Errorf("%w: itemId=%d", ErrInsufficientStock, itemID)
	}
	cart.AddItem(domain.CartItem{
		ItemID:   item.ID,
		Name:     item.Name,
		Image:    item.ImageURL,
		Price:    item.Price,
		Quantity: quantity,
	})
	return s.persist(ctx, cart)
}

func (s *cartService) UpdateQuantity(ctx context.Context, uid, itemID, quantity int64) (domain.Cart, error) {
	if quantity <= 0 {
		return domain.Cart{}, ErrInvalidQuantity
	}
	cart, err := s.repo.FindByUserID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	if _, ok := cart.FindItem(itemID); !ok {
		// 不在购物车里, 保持现状返回
		return cart, nil
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return domain.Cart{}, err
	}
	// 行已在购物车里, 改数量只看库存; 资格或上架状态变化留给下单门禁兜底
	if quantity > item.Stock {
		return domain.Cart{}, fmt.Errorf("%w: itemId=%d", ErrInsufficientStock, itemID)
	}
	cart.UpdateQuantity(itemID, quantity)
	return s.persist(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, uid, itemID int64) (domain.Cart, error) {
	cart, err := s.repo.FindByUserID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	cart.RemoveItem(itemID)
	return s.persist(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, uid int64) error {
	return s.repo.Clear(ctx, uid)
}

func (s *cartService) persist(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	if err := s.repo.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}
