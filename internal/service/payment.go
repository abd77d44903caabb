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
	"fmt"
	"io"
	"time"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/pkg/proofupload"
	"github.com/combiphar/remarket/internal/repository"
)

var (
	ErrPaymentNotFound = repository.ErrItemNotFound
	ErrStateConflict   = repository.ErrStateConflict
)

// ProofUpload 买家上传的转账凭证
type ProofUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
	Bank        string
}

//go:generate mockgen -source=./payment.go -package=svcmocks -destination=./mocks/payment.mock.go
type PaymentService interface {
	// Banks 返回收款银行账户列表
	Banks(ctx context.Context) []domain.BankAccount
	FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	// SubmitProof 保存转账凭证并挂到支付记录上
	SubmitProof(ctx context.Context, orderSN string, buyerID int64, proof ProofUpload) (domain.Payment, error)
	// VerifyPayment 管理员验证转账: 支付状态条件迁移,
	// 订单侧级联交给履约编排。终态重放返回 ErrStateConflict
	VerifyPayment(ctx context.Context, orderID int64, approved bool) error
}

func NewPaymentService(
	repo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	fulfillmentSvc FulfillmentService,
	proofStore proofupload.Store,
	banks []domain.BankAccount,
) PaymentService {
	return &paymentService{
		repo:           repo,
		orderRepo:      orderRepo,
		fulfillmentSvc: fulfillmentSvc,
		proofStore:     proofStore,
		banks:          banks,
	}
}

type paymentService struct {
	repo           repository.PaymentRepository
	orderRepo      repository.OrderRepository
	fulfillmentSvc FulfillmentService
	proofStore     proofupload.Store
	banks          []domain.BankAccount
}

func (s *paymentService) Banks(_ context.Context) []domain.BankAccount {
	return s.banks
}

func (s *paymentService) FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	return s.repo.FindByOrderID(ctx, orderID)
}

func (s *paymentService) SubmitProof(ctx context.Context, orderSN string, buyerID int64, proof ProofUpload) (domain.Payment, error) {
	order, err := s.orderRepo.FindBySN(ctx, orderSN)
	if err != nil {
		return domain.Payment{}, err
	}
	if order.BuyerID != buyerID {
		return domain.Payment{}, repository.ErrItemNotFound
	}
	path, err := s.proofStore.Save(order.SN, proof.Filename, proof.ContentType, proof.Size, proof.Content)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("保存凭证失败: %w", err)
	}
	if err = s.repo.UpdateProof(ctx, order.ID, path, proof.Bank); err != nil {
		return domain.Payment{}, err
	}
	return s.repo.FindByOrderID(ctx, order.ID)
}

func (s *paymentService) VerifyPayment(ctx context.Context, orderID int64, approved bool) error {
	status := domain.PaymentStatusSuccess
	var paidAt int64
	if approved {
		paidAt = time.Now().UnixMilli()
	} else {
		status = domain.PaymentStatusFailed
	}
	if err := s.repo.UpdateStatusIfPending(ctx, orderID, status, paidAt); err != nil {
		return err
	}
	return s.fulfillmentSvc.OnPaymentVerified(ctx, orderID, approved)
}
