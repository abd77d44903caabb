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

type AddressRepository interface {
	Create(ctx context.Context, addr domain.Address) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Address, error)
	ListByUserID(ctx context.Context, uid int64) ([]domain.Address, error)
}

func NewAddressRepository(d dao.AddressDAO) AddressRepository {
	return &addressRepository{d: d}
}

type addressRepository struct {
	d dao.AddressDAO
}

func (r *addressRepository) Create(ctx context.Context, addr domain.Address) (int64, error) {
	return r.d.Insert(ctx, dao.Address{
		UserId:        addr.UserID,
		RecipientName: addr.RecipientName,
		FullAddress:   addr.FullAddress,
		City:          addr.City,
		PostalCode:    addr.PostalCode,
		Phone:         addr.Phone,
	})
}

func (r *addressRepository) FindByID(ctx context.Context, id int64) (domain.Address, error) {
	a, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Address{}, err
	}
	return r.toDomain(a), nil
}

func (r *addressRepository) ListByUserID(ctx context.Context, uid int64) ([]domain.Address, error) {
	as, err := r.d.ListByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.Address) domain.Address {
		return r.toDomain(src)
	}), nil
}

func (r *addressRepository) toDomain(a dao.Address) domain.Address {
	return domain.Address{
		ID:            a.Id,
		UserID:        a.UserId,
		RecipientName: a.RecipientName,
		FullAddress:   a.FullAddress,
		City:          a.City,
		PostalCode:    a.PostalCode,
		Phone:         a.Phone,
	}
}
