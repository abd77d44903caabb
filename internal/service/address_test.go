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
	"testing"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository"
	repomocks "github.com/combiphar/remarket/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAddressService_Create(t *testing.T) {
	t.Parallel()
	const uid = int64(100)
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.AddressRepository
		addr    domain.Address
		wantID  int64
		wantErr error
	}{
		{
			name: "新增地址",
			mock: func(ctrl *gomock.Controller) repository.AddressRepository {
				repo := repomocks.NewMockAddressRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Address{
					UserID:        uid,
					RecipientName: "Budi",
					FullAddress:   "Jl. Sudirman No. 1",
					City:          "Jakarta",
					PostalCode:    "10110",
					Phone:         "081234567890",
				}).Return(int64(7), nil)
				return repo
			},
			addr: domain.Address{
				UserID:        uid,
				RecipientName: "Budi",
				FullAddress:   "Jl. Sudirman No. 1",
				City:          "Jakarta",
				PostalCode:    "10110",
				Phone:         "081234567890",
			},
			wantID: 7,
		},
		{
			name: "收件人为空",
			mock: func(ctrl *gomock.Controller) repository.AddressRepository {
				return repomocks.NewMockAddressRepository(ctrl)
			},
			addr: domain.Address{
				UserID:      uid,
				FullAddress: "Jl. Sudirman No. 1",
			},
			wantErr: ErrAddressInvalid,
		},
		{
			name: "详细地址为空白",
			mock: func(ctrl *gomock.Controller) repository.AddressRepository {
				return repomocks.NewMockAddressRepository(ctrl)
			},
			addr: domain.Address{
				UserID:        uid,
				RecipientName: "Budi",
				FullAddress:   "   ",
			},
			wantErr: ErrAddressInvalid,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewAddressService(tc.mock(ctrl))
			id, err := svc.Create(context.Background(), tc.addr)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestAddressService_List(t *testing.T) {
	t.Parallel()
	const uid = int64(100)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	addresses := []domain.Address{
		{ID: 7, UserID: uid, RecipientName: "Budi", FullAddress: "Jl. Sudirman No. 1"},
	}
	repo := repomocks.NewMockAddressRepository(ctrl)
	repo.EXPECT().ListByUserID(gomock.Any(), uid).Return(addresses, nil)
	svc := NewAddressService(repo)
	got, err := svc.List(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, addresses, got)
}
