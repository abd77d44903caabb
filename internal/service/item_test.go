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
	"testing"

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository"
	repomocks "github.com/combiphar/remarket/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestItemService_PerformQualityCheck(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) repository.ItemRepository
		id          int64
		eligibility domain.ItemEligibility
		notes       string
		wantErr     error
	}{
		{
			name: "判定可售自动上架",
			mock: func(ctrl *gomock.Controller) repository.ItemRepository {
				repo := repomocks.NewMockItemRepository(ctrl)
				repo.EXPECT().UpdateEligibility(gomock.Any(), int64(1),
					domain.EligibilityEligible, "成色良好", true).Return(nil)
				return repo
			},
			id:          1,
			eligibility: domain.EligibilityEligible,
			notes:       "成色良好",
		},
		{
			name: "判定返修不上架",
			mock: func(ctrl *gomock.Controller) repository.ItemRepository {
				repo := repomocks.NewMockItemRepository(ctrl)
				repo.EXPECT().UpdateEligibility(gomock.Any(), int64(2),
					domain.EligibilityNeedsRepair, "屏幕划痕", false).Return(nil)
				return repo
			},
			id:          2,
			eligibility: domain.EligibilityNeedsRepair,
			notes:       "屏幕划痕",
		},
		{
			name: "打回待质检不上架",
			mock: func(ctrl *gomock.Controller) repository.ItemRepository {
				repo := repomocks.NewMockItemRepository(ctrl)
				repo.EXPECT().UpdateEligibility(gomock.Any(), int64(3),
					domain.EligibilityNeedsQC, "", false).Return(nil)
				return repo
			},
			id:          3,
			eligibility: domain.EligibilityNeedsQC,
		},
		{
			name: "非法的质检状态",
			mock: func(ctrl *gomock.Controller) repository.ItemRepository {
				return repomocks.NewMockItemRepository(ctrl)
			},
			id:          4,
			eligibility: domain.ItemEligibility(9),
			wantErr:     ErrInvalidEligibility,
		},
		{
			name: "商品不存在",
			mock: func(ctrl *gomock.Controller) repository.ItemRepository {
				repo := repomocks.NewMockItemRepository(ctrl)
				repo.EXPECT().UpdateEligibility(gomock.Any(), int64(5),
					domain.EligibilityEligible, "", true).
					Return(repository.ErrItemNotFound)
				return repo
			},
			id:          5,
			eligibility: domain.EligibilityEligible,
			wantErr:     ErrItemNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewItemService(tc.mock(ctrl))
			err := svc.PerformQualityCheck(context.Background(), tc.id, tc.eligibility, tc.notes)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestItemService_SearchPublished(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	published := []domain.Item{
		{ID: 1, Name: "二手显示器", Price: 100000, Eligibility: domain.EligibilityEligible, Published: true},
	}
	repo := repomocks.NewMockItemRepository(ctrl)
	repo.EXPECT().SearchPublished(gomock.Any(), "显示器", int64(2)).Return(published, nil)
	svc := NewItemService(repo)
	items, err := svc.SearchPublished(context.Background(), "显示器", 2)
	assert.NoError(t, err)
	assert.Equal(t, published, items)
}

func TestItemService_FindPublishedByID(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ItemRepository
		id      int64
		wantErr error
	}{
		{
			name: "可售且已上架",
			mock: func(ctrl *gomock.Controller) repository.ItemRepository {
				repo := repomocks.NewMockItemRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Item{
					ID:          1,
					Eligibility: domain.EligibilityEligible,
					Published:   true,
				}, nil)
				return repo
			},
			id: 1,
		},
		{
			name: "未上架视同不存在",
			mock: func(ctrl *gomock.Controller) repository.ItemRepository {
				repo := repomocks.NewMockItemRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(domain.Item{
					ID:          2,
					Eligibility: domain.EligibilityEligible,
					Published:   false,
				}, nil)
				return repo
			},
			id:      2,
			wantErr: ErrItemNotFound,
		},
		{
			name: "待质检视同不存在",
			mock: func(ctrl *gomock.Controller) repository.ItemRepository {
				repo := repomocks.NewMockItemRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(domain.Item{
					ID:          3,
					Eligibility: domain.EligibilityNeedsQC,
					Published:   true,
				}, nil)
				return repo
			},
			id:      3,
			wantErr: ErrItemNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewItemService(tc.mock(ctrl))
			item, err := svc.FindPublishedByID(context.Background(), tc.id)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.id, item.ID)
			}
		})
	}
}

func TestItemService_Statistics(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockItemRepository(ctrl)
	repo.EXPECT().CountByEligibility(gomock.Any()).Return(map[domain.ItemEligibility]int64{
		domain.EligibilityNeedsQC:  3,
		domain.EligibilityEligible: 7,
	}, nil)
	svc := NewItemService(repo)
	stats, err := svc.Statistics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, QCStatistics{
		NeedsQC:     3,
		Eligible:    7,
		NeedsRepair: 0,
	}, stats)
}

func TestItemService_ListByEligibility(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockItemRepository(ctrl)
	svc := NewItemService(repo)
	_, err := svc.ListByEligibility(context.Background(), domain.ItemEligibility(0))
	assert.ErrorIs(t, err, ErrInvalidEligibility)
}

func TestItemService_BatchApprove(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockItemRepository(ctrl)
	repo.EXPECT().UpdateEligibility(gomock.Any(), int64(1),
		domain.EligibilityEligible, "批量质检", true).Return(nil)
	// 个别失败不中断整批
	repo.EXPECT().UpdateEligibility(gomock.Any(), int64(2),
		domain.EligibilityEligible, "批量质检", true).
		Return(errors.New("db error"))
	repo.EXPECT().UpdateEligibility(gomock.Any(), int64(3),
		domain.EligibilityEligible, "批量质检", true).Return(nil)
	svc := NewItemService(repo)
	succeeded, err := svc.BatchApprove(context.Background(), []int64{1, 2, 3}, "批量质检")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), succeeded)
}

func TestItemService_BatchReject(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockItemRepository(ctrl)
	repo.EXPECT().UpdateEligibility(gomock.Any(), int64(1),
		domain.EligibilityNeedsRepair, "外观破损", false).Return(nil)
	svc := NewItemService(repo)
	succeeded, err := svc.BatchReject(context.Background(), []int64{1}, "外观破损")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), succeeded)
}
