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

type ShipmentRepository interface {
	Create(ctx context.Context, s domain.Shipment) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Shipment, error)
	FindByOrderID(ctx context.Context, orderID int64) (domain.Shipment, error)
	List(ctx context.Context, offset, limit int) ([]domain.Shipment, error)
	UpdateTracking(ctx context.Context, id int64, trackingNumber string, shippedAt int64) error
	AdvanceStatus(ctx context.Context, id int64, status domain.ShipmentStatus, deliveredAt int64) error
}

func NewShipmentRepository(d dao.ShipmentDAO) ShipmentRepository {
	return &shipmentRepository{d: d}
}

type shipmentRepository struct {
	d dao.ShipmentDAO
}

func (r *shipmentRepository) Create(ctx context.Context, s domain.Shipment) (int64, error) {
	return r.d.Insert(ctx, dao.Shipment{
		OrderId:     s.OrderID,
		AddressId:   s.AddressID,
		CourierName: s.CourierName,
		Status:      s.Status.ToUint8(),
	})
}

func (r *shipmentRepository) FindByID(ctx context.Context, id int64) (domain.Shipment, error) {
	s, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Shipment{}, err
	}
	return r.toDomain(s), nil
}

func (r *shipmentRepository) FindByOrderID(ctx context.Context, orderID int64) (domain.Shipment, error) {
	s, err := r.d.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.Shipment{}, err
	}
	return r.toDomain(s), nil
}

func (r *shipmentRepository) List(ctx context.Context, offset, limit int) ([]domain.Shipment, error) {
	ss, err := r.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.Shipment) domain.Shipment {
		return r.toDomain(src)
	}), nil
}

func (r *shipmentRepository) UpdateTracking(ctx context.Context, id int64, trackingNumber string, shippedAt int64) error {
	return r.d.UpdateTracking(ctx, id, trackingNumber, shippedAt)
}

func (r *shipmentRepository) AdvanceStatus(ctx context.Context, id int64, status domain.ShipmentStatus, deliveredAt int64) error {
	return r.d.AdvanceStatus(ctx, id, status.ToUint8(), deliveredAt)
}

func (r *shipmentRepository) toDomain(s dao.Shipment) domain.Shipment {
	return domain.Shipment{
		ID:             s.Id,
		OrderID:        s.OrderId,
		AddressID:      s.AddressId,
		CourierName:    s.CourierName,
		TrackingNumber: s.TrackingNumber,
		Status:         domain.ShipmentStatus(s.Status),
		ShippedAt:      s.ShippedAt,
		DeliveredAt:    s.DeliveredAt,
		Ctime:          s.Ctime,
		Utime:          s.Utime,
	}
}
