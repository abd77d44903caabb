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
	"time"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository"
)

var (
	ErrShipmentNotFound       = repository.ErrItemNotFound
	ErrShipmentDuplicate      = repository.ErrShipmentDuplicate
	ErrOrderNotPaid           = errors.New("订单未支付, 不能发货")
	ErrInvalidStateTransition = errors.New("非法的状态迁移")
	ErrTrackingNumberEmpty    = errors.New("运单号不能为空")
)

//go:generate mockgen -source=./shipment.go -package=svcmocks -destination=./mocks/shipment.mock.go
type ShipmentService interface {
	// CreateShipment 为已支付订单创建发货单, 每单至多一张
	CreateShipment(ctx context.Context, orderID int64, courierName string) (domain.Shipment, error)
	FindByID(ctx context.Context, id int64) (domain.Shipment, error)
	FindByOrderID(ctx context.Context, orderID int64) (domain.Shipment, error)
	List(ctx context.Context, offset, limit int) ([]domain.Shipment, error)
	// UpdateTrackingNumber 录入运单号, 发货单随之进入已发货
	UpdateTrackingNumber(ctx context.Context, id int64, trackingNumber string) error
	// UpdateStatus 推进发货状态, 只允许向前;
	// 买家确认收货时级联闭环订单
	UpdateStatus(ctx context.Context, id int64, status domain.ShipmentStatus) error
}

func NewShipmentService(
	repo repository.ShipmentRepository,
	orderRepo repository.OrderRepository,
	fulfillmentSvc FulfillmentService,
) ShipmentService {
	return &shipmentService{
		repo:           repo,
		orderRepo:      orderRepo,
		fulfillmentSvc: fulfillmentSvc,
	}
}

type shipmentService struct {
	repo           repository.ShipmentRepository
	orderRepo      repository.OrderRepository
	fulfillmentSvc FulfillmentService
}

func (s *shipmentService) CreateShipment(ctx context.Context, orderID int64, courierName string) (domain.Shipment, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Shipment{}, err
	}
	if order.PaymentStatus != domain.OrderPaymentStatusPaid {
		return domain.Shipment{}, fmt.Errorf("%w: orderId=%d", ErrOrderNotPaid, orderID)
	}
	shipment := domain.Shipment{
		OrderID:     order.ID,
		AddressID:   order.AddressID,
		CourierName: courierName,
		Status:      domain.ShipmentStatusPending,
	}
	id, err := s.repo.Create(ctx, shipment)
	if err != nil {
		return domain.Shipment{}, err
	}
	// 订单进入待发货
	if er := s.orderRepo.UpdateStatus(ctx, orderID, domain.OrderStatusReady); er != nil {
		return domain.Shipment{}, er
	}
	shipment.ID = id
	return shipment, nil
}

func (s *shipmentService) FindByID(ctx context.Context, id int64) (domain.Shipment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *shipmentService) FindByOrderID(ctx context.Context, orderID int64) (domain.Shipment, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *shipmentService) List(ctx context.Context, offset, limit int) ([]domain.Shipment, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *shipmentService) UpdateTrackingNumber(ctx context.Context, id int64, trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberEmpty
	}
	err := s.repo.UpdateTracking(ctx, id, trackingNumber, time.Now().UnixMilli())
	if errors.Is(err, repository.ErrStateConflict) {
		return fmt.Errorf("%w: 发货单已发出", ErrInvalidStateTransition)
	}
	return err
}

func (s *shipmentService) UpdateStatus(ctx context.Context, id int64, status domain.ShipmentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStateTransition, status)
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.Status.CanAdvanceTo(status) {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidStateTransition, current.Status, status)
	}
	// 发货必须有运单号
	if status >= domain.ShipmentStatusShipped && !current.HasTrackingNumber() {
		return ErrTrackingNumberEmpty
	}
	var deliveredAt int64
	if status == domain.ShipmentStatusDelivered {
		deliveredAt = time.Now().UnixMilli()
	}
	err = s.repo.AdvanceStatus(ctx, id, status, deliveredAt)
	if errors.Is(err, repository.ErrStateConflict) {
		return fmt.Errorf("%w: 状态已被并发推进", ErrInvalidStateTransition)
	}
	if err != nil {
		return err
	}
	if status == domain.ShipmentStatusReceived {
		return s.fulfillmentSvc.OnShipmentReceived(ctx, current.OrderID)
	}
	return nil
}
