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
	"time"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/event"
	"github.com/combiphar/remarket/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// OrderHistoryEntry 订单历史的一行, 状态是支付与发货两轴推导出的综合态
type OrderHistoryEntry struct {
	Order    domain.Order
	Payment  domain.Payment
	Shipment *domain.Shipment
	State    domain.FulfillmentState
}

// FulfillmentService 是唯一允许跨实体写派生状态的组件:
// 支付验证结果、收货确认引发的订单状态级联全部经过这里
//
//go:generate mockgen -source=./fulfillment.go -package=svcmocks -destination=./mocks/fulfillment.mock.go
type FulfillmentService interface {
	// OnPaymentVerified 支付验证通过: 订单标记已支付并进入处理中;
	// 验证拒绝: 订单标记支付失败
	OnPaymentVerified(ctx context.Context, orderID int64, approved bool) error
	// OnShipmentReceived 买家确认收货: 订单闭环并发出完成事件
	OnShipmentReceived(ctx context.Context, orderID int64) error
	// DeriveState 推导单个订单的综合状态
	DeriveState(ctx context.Context, orderID int64) (domain.FulfillmentState, error)
	// OrderHistory 买家订单历史, 每行附带推导状态
	OrderHistory(ctx context.Context, buyerID int64, offset, limit int) ([]OrderHistoryEntry, int64, error)
	// OrderDetail 单个订单的完整视图
	OrderDetail(ctx context.Context, orderSN string, buyerID int64) (OrderHistoryEntry, error)
	// ListOrders 管理端全量订单列表, 不区分买家
	ListOrders(ctx context.Context, offset, limit int) ([]OrderHistoryEntry, error)
}

func NewFulfillmentService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	shipmentRepo repository.ShipmentRepository,
	producer event.OrderCompletedEventProducer,
) FulfillmentService {
	return &fulfillmentService{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		shipmentRepo: shipmentRepo,
		producer:     producer,
		logger:       elog.DefaultLogger,
	}
}

type fulfillmentService struct {
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	shipmentRepo repository.ShipmentRepository
	producer     event.OrderCompletedEventProducer
	logger       *elog.Component
}

func (s *fulfillmentService) OnPaymentVerified(ctx context.Context, orderID int64, approved bool) error {
	if !approved {
		return s.orderRepo.UpdatePaymentStatus(ctx, orderID, domain.OrderPaymentStatusFailed)
	}
	if err := s.orderRepo.UpdatePaymentStatus(ctx, orderID, domain.OrderPaymentStatusPaid); err != nil {
		return err
	}
	return s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusProcessing)
}

func (s *fulfillmentService) OnShipmentReceived(ctx context.Context, orderID int64) error {
	if err := s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusCompleted); err != nil {
		return err
	}
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	evt := event.OrderCompletedEvent{
		OrderSN:     order.SN,
		BuyerID:     order.BuyerID,
		TotalPrice:  order.TotalPrice,
		CompletedAt: time.Now().UnixMilli(),
	}
	// 事件发送失败不回滚订单闭环, 只记录
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送订单完成事件失败",
			elog.FieldErr(er),
			elog.String("order_sn", order.SN))
	}
	return nil
}

func (s *fulfillmentService) DeriveState(ctx context.Context, orderID int64) (domain.FulfillmentState, error) {
	pmt, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return 0, err
	}
	shipment, err := s.findShipment(ctx, orderID)
	if err != nil {
		return 0, err
	}
	return domain.DeriveFulfillmentState(pmt.Status, shipment), nil
}

func (s *fulfillmentService) OrderHistory(ctx context.Context, buyerID int64, offset, limit int) ([]OrderHistoryEntry, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.orderRepo.ListByBuyerID(ctx, offset, limit, buyerID)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.orderRepo.TotalByBuyerID(ctx, buyerID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	entries := make([]OrderHistoryEntry, 0, len(orders))
	for _, o := range orders {
		entry, err := s.buildEntry(ctx, o)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}

func (s *fulfillmentService) OrderDetail(ctx context.Context, orderSN string, buyerID int64) (OrderHistoryEntry, error) {
	order, err := s.orderRepo.FindBySN(ctx, orderSN)
	if err != nil {
		return OrderHistoryEntry{}, err
	}
	// 买家只能看自己的订单
	if order.BuyerID != buyerID {
		return OrderHistoryEntry{}, repository.ErrItemNotFound
	}
	return s.buildEntry(ctx, order)
}

func (s *fulfillmentService) ListOrders(ctx context.Context, offset, limit int) ([]OrderHistoryEntry, error) {
	orders, err := s.orderRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]OrderHistoryEntry, 0, len(orders))
	for _, o := range orders {
		entry, er := s.buildEntry(ctx, o)
		if er != nil {
			return nil, er
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *fulfillmentService) buildEntry(ctx context.Context, order domain.Order) (OrderHistoryEntry, error) {
	pmt, err := s.paymentRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return OrderHistoryEntry{}, err
	}
	shipment, err := s.findShipment(ctx, order.ID)
	if err != nil {
		return OrderHistoryEntry{}, err
	}
	return OrderHistoryEntry{
		Order:    order,
		Payment:  pmt,
		Shipment: shipment,
		State:    domain.DeriveFulfillmentState(pmt.Status, shipment),
	}, nil
}

// findShipment 未创建发货单不是错误, 返回 nil
func (s *fulfillmentService) findShipment(ctx context.Context, orderID int64) (*domain.Shipment, error) {
	shipment, err := s.shipmentRepo.FindByOrderID(ctx, orderID)
	if errors.Is(err, repository.ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}
