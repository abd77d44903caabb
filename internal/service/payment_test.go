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
	"strings"
	"testing"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/pkg/proofupload"
	"github.com/combiphar/remarket/internal/repository"
	repomocks "github.com/combiphar/remarket/internal/repository/mocks"
	"github.com/combiphar/remarket/internal/service"
	svcmocks "github.com/combiphar/remarket/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testBanks = []domain.BankAccount{
	{BankName: "BCA", AccountNumber: "1234567890", AccountHolder: "PT Remarket Indonesia"},
	{BankName: "Mandiri", AccountNumber: "9876543210", AccountHolder: "PT Remarket Indonesia"},
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	t.Parallel()
	const orderID = int64(1001)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.PaymentRepository, service.FulfillmentService)
		approved bool
		wantErr  error
	}{
		{
			name: "验证通过",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository, service.FulfillmentService) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().UpdateStatusIfPending(gomock.Any(), orderID,
					domain.PaymentStatusSuccess, gomock.Any()).Return(nil)
				fulfillmentSvc := svcmocks.NewMockFulfillmentService(ctrl)
				fulfillmentSvc.EXPECT().OnPaymentVerified(gomock.Any(), orderID, true).Return(nil)
				return repo, fulfillmentSvc
			},
			approved: true,
		},
		{
			name: "验证拒绝",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository, service.FulfillmentService) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().UpdateStatusIfPending(gomock.Any(), orderID,
					domain.PaymentStatusFailed, int64(0)).Return(nil)
				fulfillmentSvc := svcmocks.NewMockFulfillmentService(ctrl)
				fulfillmentSvc.EXPECT().OnPaymentVerified(gomock.Any(), orderID, false).Return(nil)
				return repo, fulfillmentSvc
			},
			approved: false,
		},
		{
			name: "终态重放不级联",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository, service.FulfillmentService) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().UpdateStatusIfPending(gomock.Any(), orderID,
					domain.PaymentStatusSuccess, gomock.Any()).
					Return(repository.ErrStateConflict)
				return repo, svcmocks.NewMockFulfillmentService(ctrl)
			},
			approved: true,
			wantErr:  service.ErrStateConflict,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, fulfillmentSvc := tc.mock(ctrl)
			svc := service.NewPaymentService(repo,
				repomocks.NewMockOrderRepository(ctrl),
				fulfillmentSvc, nil, testBanks)
			err := svc.VerifyPayment(context.Background(), orderID, tc.approved)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPaymentService_SubmitProof(t *testing.T) {
	t.Parallel()
	const (
		uid     = int64(100)
		orderID = int64(1001)
		orderSN = "ORD-17400000000000100KwSysDpxcBU"
	)
	order := domain.Order{ID: orderID, SN: orderSN, BuyerID: uid}

	t.Run("上传成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := repomocks.NewMockOrderRepository(ctrl)
		orderRepo.EXPECT().FindBySN(gomock.Any(), orderSN).Return(order, nil)
		repo := repomocks.NewMockPaymentRepository(ctrl)
		repo.EXPECT().UpdateProof(gomock.Any(), orderID, gomock.Any(), "BCA").Return(nil)
		repo.EXPECT().FindByOrderID(gomock.Any(), orderID).Return(domain.Payment{
			OrderID: orderID,
			Bank:    "BCA",
			Status:  domain.PaymentStatusPending,
		}, nil)
		svc := service.NewPaymentService(repo, orderRepo,
			svcmocks.NewMockFulfillmentService(ctrl),
			proofupload.NewLocalStore(t.TempDir()), testBanks)
		content := strings.NewReader("fake image bytes")
		pmt, err := svc.SubmitProof(context.Background(), orderSN, uid, service.ProofUpload{
			Filename:    "transfer.jpg",
			ContentType: "image/jpeg",
			Size:        content.Size(),
			Content:     content,
			Bank:        "BCA",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPending, pmt.Status)
		assert.Equal(t, "BCA", pmt.Bank)
	})

	t.Run("别人的订单不可见", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := repomocks.NewMockOrderRepository(ctrl)
		orderRepo.EXPECT().FindBySN(gomock.Any(), orderSN).Return(order, nil)
		svc := service.NewPaymentService(repomocks.NewMockPaymentRepository(ctrl),
			orderRepo, svcmocks.NewMockFulfillmentService(ctrl),
			proofupload.NewLocalStore(t.TempDir()), testBanks)
		_, err := svc.SubmitProof(context.Background(), orderSN, 999, service.ProofUpload{
			Filename:    "transfer.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, repository.ErrItemNotFound)
	})

	t.Run("不支持的文件类型", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := repomocks.NewMockOrderRepository(ctrl)
		orderRepo.EXPECT().FindBySN(gomock.Any(), orderSN).Return(order, nil)
		svc := service.NewPaymentService(repomocks.NewMockPaymentRepository(ctrl),
			orderRepo, svcmocks.NewMockFulfillmentService(ctrl),
			proofupload.NewLocalStore(t.TempDir()), testBanks)
		_, err := svc.SubmitProof(context.Background(), orderSN, uid, service.ProofUpload{
			Filename:    "virus.exe",
			ContentType: "application/octet-stream",
			Content:     strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, proofupload.ErrUnsupportedContent)
	})
}

func TestPaymentService_Banks(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := service.NewPaymentService(repomocks.NewMockPaymentRepository(ctrl),
		repomocks.NewMockOrderRepository(ctrl),
		svcmocks.NewMockFulfillmentService(ctrl), nil, testBanks)
	assert.Equal(t, testBanks, svc.Banks(context.Background()))
}
