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
	"strings"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository"
)

var ErrAddressInvalid = errors.New("收件人与详细地址不能为空")

//go:generate mockgen -source=./address.go -package=svcmocks -destination=./mocks/address.mock.go
type AddressService interface {
	List(ctx context.Context, uid int64) ([]domain.Address, error)
	// Create 新增收货地址, 返回地址ID
	Create(ctx context.Context, addr domain.Address) (int64, error)
}

func NewAddressService(repo repository.AddressRepository) AddressService {
	return &addressService{repo: repo}
}

type addressService struct {
	repo repository.AddressRepository
}

func (s *addressService) List(ctx context.Context, uid int64) ([]domain.Address, error) {
	return s.repo.ListByUserID(ctx, uid)
}

func (s *addressService) Create(ctx context.Context, addr domain.Address) (int64, error) {
	if strings.TrimSpace(addr.RecipientName) == "" ||
		strings.TrimSpace(addr.FullAddress) == "" {
		return 0, ErrAddressInvalid
	}
	return s.repo.Create(ctx, addr)
}
