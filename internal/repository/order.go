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
	"fmt"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type OrderRepository interface {
	// CreateOrder 扣库存、建订单、建支付记录、清购物车, 同一事务
	CreateOrder(ctx context.Context, order domain.Order, pmt domain.Payment) (domain.Order, domain.Payment, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error)
	TotalByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID int64, status domain.OrderPaymentStatus) error
	UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order, pmt domain.Payment) (domain.Order, domain.Payment, error) {
	o, p, err := r.d.CreateOrder(ctx,
		r.toOrderEntity(order),
		r.toOrderItemEntities(order.Items),
		dao.Payment{
			Type:   pmt.Type,
			Bank:   pmt.Bank,
			Amount: pmt.Amount,
			Status: pmt.Status.ToUint8(),
		})
	if err != nil {
		return domain.Order{}, domain.Payment{}, err
	}
	order.ID = o.Id
	order.Ctime, order.Utime = o.Ctime, o.Utime
	for i := range order.Items {
		order.Items[i].OrderID = o.Id
	}
	pmt.ID = p.Id
	pmt.OrderID = p.OrderId
	pmt.Ctime, pmt.Utime = p.Ctime, p.Utime
	return order, pmt, nil
}

func (r *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:            order.ID,
		SN:            order.SN,
		BuyerId:       order.BuyerID,
		AddressId:     order.AddressID,
		SubtotalPrice: order.SubtotalPrice,
		ShippingFee:   order.ShippingFee,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		PickupMethod:  order.PickupMethod.ToUint8(),
		PaymentStatus: order.PaymentStatus.ToUint8(),
		Status:        order.Status.ToUint8(),
		Note:          order.Note,
	}
}

func (r *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ItemId:    src.ItemID,
			ItemName:  src.ItemName,
			Quantity:  src.Quantity,
			UnitPrice: src.UnitPrice,
			Subtotal:  src.Subtotal,
		}
	})
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := r.d.FindItemsByOrderID(ctx, o.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单项失败: %w", err)
	}
	return r.toOrderDomain(o, items), nil
}

func (r *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := r.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := r.d.FindItemsByOrderID(ctx, o.Id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单项失败: %w", err)
	}
	return r.toOrderDomain(o, items), nil
}

func (r *orderRepository) ListByBuyerID(ctx context.Context, offset, limit int, buyerID int64) ([]domain.Order, error) {
	os, err := r.d.ListByBuyerID(ctx, offset, limit, buyerID)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, os)
}

func (r *orderRepository) TotalByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	return r.d.CountByBuyerID(ctx, buyerID)
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := r.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.attachItems(ctx, os)
}

func (r *orderRepository) attachItems(ctx context.Context, os []dao.Order) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(os))
	for _, o := range os {
		items, err := r.d.FindItemsByOrderID(ctx, o.Id)
		if err != nil {
			return nil, fmt.Errorf("查找订单项失败: orderId=%d: %w", o.Id, err)
		}
		res = append(res, r.toOrderDomain(o, items))
	}
	return res, nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, orderID int64, status domain.OrderPaymentStatus) error {
	return r.d.UpdatePaymentStatus(ctx, orderID, status.ToUint8())
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	return r.d.UpdateStatus(ctx, orderID, status.ToUint8())
}

func (r *orderRepository) toOrderDomain(o dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:            o.Id,
		SN:            o.SN,
		BuyerID:       o.BuyerId,
		AddressID:     o.AddressId,
		SubtotalPrice: o.SubtotalPrice,
		ShippingFee:   o.ShippingFee,
		TotalPrice:    o.TotalPrice,
		PaymentMethod: o.PaymentMethod,
		PickupMethod:  domain.PickupMethod(o.PickupMethod),
		PaymentStatus: domain.OrderPaymentStatus(o.PaymentStatus),
		Status:        domain.OrderStatus(o.Status),
		Note:          o.Note,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				OrderID:   src.OrderId,
				ItemID:    src.ItemId,
				ItemName:  src.ItemName,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice,
				Subtotal:  src.Subtotal,
			}
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}
