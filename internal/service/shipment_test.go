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

package service_test

import (
	"context"
	"testing"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository"
	repomocks "github.com/combiphar/remarket/internal/repository/mocks"
	"github.com/combiphar/remarket/internal/service"
	svcmocks "github.com/combiphar/remarket/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestShipmentService_CreateShipment(t *testing.T) {
	t.Parallel()
	const orderID = int64(1001)
	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) (repository.ShipmentRepository, repository.OrderRepository)
		courierName string
		want        domain.Shipment
		wantErr     error
	}{
		{
			name: "已支付订单创建发货单",
			mock: func(ctrl *gomock.Controller) (repository.ShipmentRepository, repository.OrderRepository) {
				orderRepo := repomocks.NewMockOrderRepository(ctrl)
				orderRepo.EXPECT().FindByID(gomock.Any(), orderID).Return(domain.Order{
					ID:            orderID,
					AddressID:     7,
					PaymentStatus: domain.OrderPaymentStatusPaid,
					Status:        domain.OrderStatusProcessing,
				}, nil)
				orderRepo.EXPECT().UpdateStatus(gomock.Any(), orderID,
					domain.OrderStatusReady).Return(nil)
				repo := repomocks.NewMockShipmentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Shipment{
					OrderID:     orderID,
					AddressID:   7,
					CourierName: "Premium",
					Status:      domain.ShipmentStatusPending,
				}).Return(int64(5001), nil)
				return repo, orderRepo
			},
			courierName: "Premium",
			want: domain.Shipment{
				ID:          5001,
				OrderID:     orderID,
				AddressID:   7,
				CourierName: "Premium",
				Status:      domain.ShipmentStatusPending,
			},
		},
		{
			name: "未支付订单不能发货",
			mock: func(ctrl *gomock.Controller) (repository.ShipmentRepository, repository.OrderRepository) {
				orderRepo := repomocks.NewMockOrderRepository(ctrl)
				orderRepo.EXPECT().FindByID(gomock.Any(), orderID).Return(domain.Order{
					ID:            orderID,
					PaymentStatus: domain.OrderPaymentStatusPending,
				}, nil)
				return repomocks.NewMockShipmentRepository(ctrl), orderRepo
			},
			courierName: "Premium",
			wantErr:     service.ErrOrderNotPaid,
		},
		{
			name: "同一订单重复创建",
			mock: func(ctrl *gomock.Controller) (repository.ShipmentRepository, repository.OrderRepository) {
				orderRepo := repomocks.NewMockOrderRepository(ctrl)
				orderRepo.EXPECT().FindByID(gomock.Any(), orderID).Return(domain.Order{
					ID:            orderID,
					PaymentStatus: domain.OrderPaymentStatusPaid,
				}, nil)
				repo := repomocks.NewMockShipmentRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrShipmentDuplicate)
				return repo, orderRepo
			},
			courierName: "Premium",
			wantErr:     service.ErrShipmentDuplicate,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, orderRepo := tc.mock(ctrl)
			svc := service.NewShipmentService(repo, orderRepo,
				svcmocks.NewMockFulfillmentService(ctrl))
			shipment, err := svc.CreateShipment(context.Background(), orderID, tc.courierName)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, shipment)
			}
		})
	}
}

func TestShipmentService_UpdateTrackingNumber(t *testing.T) {
	t.Parallel()
	const shipmentID = int64(5001)

	t.Run("录入运单号", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockShipmentRepository(ctrl)
		repo.EXPECT().UpdateTracking(gomock.Any(), shipmentID, "JNE123456", gomock.Any()).
			Return(nil)
		svc := service.NewShipmentService(repo, repomocks.NewMockOrderRepository(ctrl),
			svcmocks.NewMockFulfillmentService(ctrl))
		err := svc.UpdateTrackingNumber(context.Background(), shipmentID, "JNE123456")
		assert.NoError(t, err)
	})

	t.Run("运单号不能为空", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := service.NewShipmentService(repomocks.NewMockShipmentRepository(ctrl),
			repomocks.NewMockOrderRepository(ctrl),
			svcmocks.NewMockFulfillmentService(ctrl))
		err := svc.UpdateTrackingNumber(context.Background(), shipmentID, "")
		assert.ErrorIs(t, err, service.ErrTrackingNumberEmpty)
	})

	t.Run("发货后不可改运单号", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockShipmentRepository(ctrl)
		repo.EXPECT().UpdateTracking(gomock.Any(), shipmentID, "JNE123456", gomock.Any()).
			Return(repository.ErrStateConflict)
		svc := service.NewShipmentService(repo, repomocks.NewMockOrderRepository(ctrl),
			svcmocks.NewMockFulfillmentService(ctrl))
		err := svc.UpdateTrackingNumber(context.Background(), shipmentID, "JNE123456")
		assert.ErrorIs(t, err, service.ErrInvalidStateTransition)
	})
}

func TestShipmentService_UpdateStatus(t *testing.T) {
	t.Parallel()
	const (
		shipmentID = int64(5001)
		orderID    = int64(1001)
	)
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.ShipmentRepository, service.FulfillmentService)
		status  domain.ShipmentStatus
		wantErr error
	}{
		{
			name: "推进到已送达",
			mock: func(ctrl *gomock.Controller) (repository.ShipmentRepository, service.FulfillmentService) {
				repo := repomocks.NewMockShipmentRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), shipmentID).Return(domain.Shipment{
					ID:             shipmentID,
					OrderID:        orderID,
					TrackingNumber: "JNE123456",
					Status:         domain.ShipmentStatusShipped,
				}, nil)
				repo.EXPECT().AdvanceStatus(gomock.Any(), shipmentID,
					domain.ShipmentStatusDelivered, gomock.Any()).Return(nil)
				return repo, svcmocks.NewMockFulfillmentService(ctrl)
			},
			status: domain.ShipmentStatusDelivered,
		},
		{
			name: "确认收货级联闭环订单",
			mock: func(ctrl *gomock.Controller) (repository.ShipmentRepository, service.FulfillmentService) {
				repo := repomocks.NewMockShipmentRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), shipmentID).Return(domain.Shipment{
					ID:             shipmentID,
					OrderID:        orderID,
					TrackingNumber: "JNE123456",
					Status:         domain.ShipmentStatusDelivered,
				}, nil)
				repo.EXPECT().AdvanceStatus(gomock.Any(), shipmentID,
					domain.ShipmentStatusReceived, int64(0)).Return(nil)
				fulfillmentSvc := svcmocks.NewMockFulfillmentService(ctrl)
				fulfillmentSvc.EXPECT().OnShipmentReceived(gomock.Any(), orderID).Return(nil)
				return repo, fulfillmentSvc
			},
			status: domain.ShipmentStatusReceived,
		},
		{
			name: "不允许回退",
			mock: func(ctrl *gomock.Controller) (repository.ShipmentRepository, service.FulfillmentService) {
				repo := repomocks.NewMockShipmentRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), shipmentID).Return(domain.Shipment{
					ID:      shipmentID,
					OrderID: orderID,
					Status:  domain.ShipmentStatusShipped,
				}, nil)
				return repo, svcmocks.NewMockFulfillmentService(ctrl)
			},
			status:  domain.ShipmentStatusProcessing,
			wantErr: service.ErrInvalidStateTransition,
		},
		{
			name: "没有运单号不能发货",
			mock: func(ctrl *gomock.Controller) (repository.ShipmentRepository, service.FulfillmentService) {
				repo := repomocks.NewMockShipmentRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), shipmentID).Return(domain.Shipment{
					ID:      shipmentID,
					OrderID: orderID,
					Status:  domain.ShipmentStatusProcessing,
				}, nil)
				return repo, svcmocks.NewMockFulfillmentService(ctrl)
			},
			status:  domain.ShipmentStatusShipped,
			wantErr: service.ErrTrackingNumberEmpty,
		},
		{
			name: "目标状态非法",
			mock: func(ctrl *gomock.Controller) (repository.ShipmentRepository, service.FulfillmentService) {
				return repomocks.NewMockShipmentRepository(ctrl),
					svcmocks.NewMockFulfillmentService(ctrl)
			},
			status:  domain.ShipmentStatus(9),
			wantErr: service.ErrInvalidStateTransition,
		},
		{
			name: "状态被并发推进",
			mock: func(ctrl *gomock.Controller) (repository.ShipmentRepository, service.FulfillmentService) {
				repo := repomocks.NewMockShipmentRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), shipmentID).Return(domain.Shipment{
					ID:             shipmentID,
					OrderID:        orderID,
					TrackingNumber: "JNE123456",
					Status:         domain.ShipmentStatusShipped,
				}, nil)
				repo.EXPECT().AdvanceStatus(gomock.Any(), shipmentID,
					domain.ShipmentStatusDelivered, gomock.Any()).
					Return(repository.ErrStateConflict)
				return repo, svcmocks.NewMockFulfillmentService(ctrl)
			},
			status:  domain.ShipmentStatusDelivered,
			wantErr: service.ErrInvalidStateTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, fulfillmentSvc := tc.mock(ctrl)
			svc := service.NewShipmentService(repo,
				repomocks.NewMockOrderRepository(ctrl), fulfillmentSvc)
			err := svc.UpdateStatus(context.Background(), shipmentID, tc.status)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestShipmentService_FindByOrderID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockShipmentRepository(ctrl)
	repo.EXPECT().FindByOrderID(gomock.Any(), int64(1001)).Return(domain.Shipment{
		ID:      5001,
		OrderID: 1001,
	}, nil)
	svc := service.NewShipmentService(repo, repomocks.NewMockOrderRepository(ctrl),
		svcmocks.NewMockFulfillmentService(ctrl))
	shipment, err := svc.FindByOrderID(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(5001), shipment.ID)
}
