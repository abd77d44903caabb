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
)

type PaymentRepository interface {
	FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error)
	UpdateProof(ctx context.Context, orderID int64, proofPath, bank string) error
	// UpdateStatusIfPending 终态重放返回 ErrStateConflict
	UpdateStatusIfPending(ctx context.Context, orderID int64, status domain.PaymentStatus, paidAt int64) error
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{d: d}
}

type paymentRepository struct {
	d dao.PaymentDAO
}

func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID int64) (domain.Payment, error) {
	p, err := r.d.FindByOrderID(ctx, orderID)
	if err != nil {
		return domain.Payment{}, err
	}
	return domain.Payment{
		ID:        p.Id,
		OrderID:   p.OrderId,
		Type:      p.Type,
		Bank:      p.Bank,
		Amount:    p.Amount,
		Status:    domain.PaymentStatus(p.Status),
		ProofPath: p.Proof,
		PaidAt:    p.PaidAt,
		Ctime:     p.Ctime,
		Utime:     p.Utime,
	}, nil
}

func (r *paymentRepository) UpdateProof(ctx context.Context, orderID int64, proofPath, bank string) error {
	return r.d.UpdateProof(ctx, orderID, proofPath, bank)
}

func (r *paymentRepository) UpdateStatusIfPending(ctx context.Context, orderID int64, status domain.PaymentStatus, paidAt int64) error {
	return r.d.UpdateStatusIfPending(ctx, orderID, status.ToUint8(), paidAt)
}
