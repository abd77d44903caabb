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
	"github.com/combiphar/remarket/internal/pkg/sequencenumber"
	"github.com/combiphar/remarket/internal/repository"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrCartEmpty       = errors.New("购物车为空")
	ErrUnknownCourier  = errors.New("不支持的快递选项")
	ErrAddressNotFound = errors.New("收货地址不存在")
)

// CheckoutRequest 结算入参, 自提时快递相关字段留空
type CheckoutRequest struct {
	BuyerID      int64
	AddressID    int64
	CourierName  string
	PickupMethod domain.PickupMethod
	Note         string
}

// OrderPreview 下单前的价格预览, 不落库
type OrderPreview struct {
	Items         []domain.CartItem
	SubtotalPrice int64
	ShippingFee   int64
	TotalPrice    int64
}

//go:generate mockgen -source=./checkout.go -package=svcmocks -destination=./mocks/checkout.mock.go
type CheckoutService interface {
	// Couriers 返回可选快递及运费
	Couriers(ctx context.Context) []domain.Courier
	// PreviewOrder 按当前购物车和快递选项试算订单金额
	PreviewOrder(ctx context.Context, buyerID int64, courierName string, pickupMethod domain.PickupMethod) (OrderPreview, error)
	// CreateOrder 原子结算: 校验门禁、扣库存、建订单和支付记录、清购物车
	CreateOrder(ctx context.Context, req CheckoutRequest) (domain.Order, domain.Payment, error)
}

func NewCheckoutService(
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
	addressRepo repository.AddressRepository,
	orderRepo repository.OrderRepository,
	snGenerator *sequencenumber.Generator,
	couriers []domain.Courier,
) CheckoutService {
	return &checkoutService{
		cartRepo:    cartRepo,
		itemRepo:    itemRepo,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
		snGenerator: snGenerator,
		couriers:    couriers,
	}
}

type checkoutService struct {
	cartRepo    repository.CartRepository
	itemRepo    repository.ItemRepository
	addressRepo repository.AddressRepository
	orderRepo   repository.OrderRepository
	snGenerator *sequencenumber.Generator
	couriers    []domain.Courier
}

func (s *checkoutService) Couriers(_ context.Context) []domain.Courier {
	return s.couriers
}

func (s *checkoutService) PreviewOrder(ctx context.Context, buyerID int64, courierName string, pickupMethod domain.PickupMethod) (OrderPreview, error) {
	cart, err := s.cartRepo.FindByUserID(ctx, buyerID)
	if err != nil {
		return OrderPreview{}, err
	}
	if cart.IsEmpty() {
		return OrderPreview{}, ErrCartEmpty
	}
	shippingFee, err := s.shippingFee(courierName, pickupMethod)
	if err != nil {
		return OrderPreview{}, err
	}
	subtotal := cart.TotalPrice()
	return OrderPreview{
		Items:         cart.Items,
		SubtotalPrice: subtotal,
		ShippingFee:   shippingFee,
		TotalPrice:    subtotal + shippingFee,
	}, nil
}

func (s *checkoutService) CreateOrder(ctx context.Context, req CheckoutRequest) (domain.Order, domain.Payment, error) {
	cart, err := s.cartRepo.FindByUserID(ctx, req.BuyerID)
	if err != nil {
		return domain.Order{}, domain.Payment{}, err
	}
	if cart.IsEmpty() {
		return domain.Order{}, domain.Payment{}, ErrCartEmpty
	}

	// 结算时重新校验每件商品的售卖门禁, 价格以购物车快照为准
	for _, ci := range cart.Items {
		item, er := s.itemRepo.FindByID(ctx, ci.ItemID)
		if er != nil {
			return domain.Order{}, domain.Payment{}, fmt.Errorf("查找商品失败: itemId=%d: %w", ci.ItemID, er)
		}
		if !item.CanSell(ci.Quantity) {
			if item.Eligibility != domain.EligibilityEligible || !item.Published {
				return domain.Order{}, domain.Payment{}, fmt.Errorf("%w: itemId=%d", ErrItemNotSellable, ci.ItemID)
			}
			return domain.Order{}, domain.Payment{}, fmt.Errorf("%w: itemId=%d", ErrInsufficientStock, ci.ItemID)
		}
	}

	shippingFee, err := s.shippingFee(req.CourierName, req.PickupMethod)
	if err != nil {
		return domain.Order{}, domain.Payment{}, err
	}

	if req.PickupMethod == domain.PickupMethodDelivery {
		addr, er := s.addressRepo.FindByID(ctx, req.AddressID)
		if errors.Is(er, repository.ErrItemNotFound) || (er == nil && addr.UserID != req.BuyerID) {
			return domain.Order{}, domain.Payment{}, fmt.Errorf("%w: addressId=%d", ErrAddressNotFound, req.AddressID)
		}
		if er != nil {
			return domain.Order{}, domain.Payment{}, er
		}
	}

	sn, err := s.snGenerator.Generate(req.BuyerID)
	if err != nil {
		return domain.Order{}, domain.Payment{}, fmt.Errorf("生成订单号失败: %w", err)
	}

	subtotal := cart.TotalPrice()
	order := domain.Order{
		SN:            sn,
		BuyerID:       req.BuyerID,
		AddressID:     req.AddressID,
		SubtotalPrice: subtotal,
		ShippingFee:   shippingFee,
		TotalPrice:    subtotal + shippingFee,
		PaymentMethod: domain.PaymentMethodTransfer,
		PickupMethod:  req.PickupMethod,
		PaymentStatus: domain.OrderPaymentStatusPending,
		Status:        domain.OrderStatusNew,
		Note:          req.Note,
		Items: slice.Map(cart.Items, func(idx int, src domain.CartItem) domain.OrderItem {
			return domain.OrderItem{
				ItemID:    src.ItemID,
				ItemName:  src.Name,
				Quantity:  src.Quantity,
				UnitPrice: src.Price,
				Subtotal:  src.Subtotal(),
			}
		}),
	}
	pmt := domain.Payment{
		Type:   domain.PaymentMethodTransfer,
		Amount: order.TotalPrice,
		Status: domain.PaymentStatusPending,
	}
	return s.orderRepo.CreateOrder(ctx, order, pmt)
}

// shippingFee 自提免运费, 配送按所选快递的固定费率
func (s *checkoutService) shippingFee(courierName string, pickupMethod domain.PickupMethod) (int64, error) {
	if pickupMethod == domain.PickupMethodSelf {
		return 0, nil
	}
	for _, c := range s.couriers {
		if c.Name == courierName {
			return c.Rate, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownCourier, courierName)
}
