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

	"github.com/combiphar/remarket/internal/domain"
	"github.com/combiphar/remarket/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrItemNotFound       = repository.ErrItemNotFound
	ErrInvalidEligibility = errors.New("非法的质检状态")
)

// QCStatistics 质检工作台的汇总数字
type QCStatistics struct {
	NeedsQC     int64
	Eligible    int64
	NeedsRepair int64
}

//go:generate mockgen -source=./item.go -package=svcmocks -destination=./mocks/item.mock.go
type ItemService interface {
	FindByID(ctx context.Context, id int64) (domain.Item, error)
	// FindPublishedByID 买家目录详情, 未上架或未判定可售视同不存在
	FindPublishedByID(ctx context.Context, id int64) (domain.Item, error)
	// SearchPublished 买家目录检索, 关键字匹配名称, categoryID 为 0 表示全部分类
	SearchPublished(ctx context.Context, keyword string, categoryID int64) ([]domain.Item, error)
	ListByEligibility(ctx context.Context, eligibility domain.ItemEligibility) ([]domain.Item, error)
	Statistics(ctx context.Context) (QCStatistics, error)
	// PerformQualityCheck 录入单件质检结论, 判定可售时自动上架
	PerformQualityCheck(ctx context.Context, id int64, eligibility domain.ItemEligibility, notes string) error
	// BatchApprove 批量判定可售, 尽力而为, 返回成功数
	BatchApprove(ctx context.Context, ids []int64, notes string) (int64, error)
	// BatchReject 批量判定返修, 尽力而为, 返回成功数
	BatchReject(ctx context.Context, ids []int64, notes string) (int64, error)
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

type itemService struct {
	repo   repository.ItemRepository
	logger *elog.Component
}

func (s *itemService) FindByID(ctx context.Context, id int64) (domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *itemService) FindPublishedByID(ctx context.Context, id int64) (domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	if !item.Published || item.Eligibility != domain.EligibilityEligible {
		return domain.Item{}, fmt.Errorf("%w: itemId=%d", ErrItemNotFound, id)
	}
	return item, nil
}

func (s *itemService) SearchPublished(ctx context.Context, keyword string, categoryID int64) ([]domain.Item, error) {
	return s.repo.SearchPublished(ctx, keyword, categoryID)
}

func (s *itemService) ListByEligibility(ctx context.Context, eligibility domain.ItemEligibility) ([]domain.Item, error) {
	if !eligibility.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEligibility, eligibility)
	}
	return s.repo.ListByEligibility(ctx, eligibility)
}

func (s *itemService) Statistics(ctx context.Context) (QCStatistics, error) {
	counts, err := s.repo.CountByEligibility(ctx)
	if err != nil {
		return QCStatistics{}, err
	}
	return QCStatistics{
		NeedsQC:     counts[domain.EligibilityNeedsQC],
		Eligible:    counts[domain.EligibilityEligible],
		NeedsRepair: counts[domain.EligibilityNeedsRepair],
	}, nil
}

func (s *itemService) PerformQualityCheck(ctx context.Context, id int64, eligibility domain.ItemEligibility, notes string) error {
	if !eligibility.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidEligibility, eligibility)
	}
	publish := eligibility == domain.EligibilityEligible
	return s.repo.UpdateEligibility(ctx, id, eligibility, notes, publish)
}

func (s *itemService) BatchApprove(ctx context.Context, ids []int64, notes string) (int64, error) {
	return s.batch(ctx, ids, domain.EligibilityEligible, notes)
}

func (s *itemService) BatchReject(ctx context.Context, ids []int64, notes string) (int64, error) {
	return s.batch(ctx, ids, domain.EligibilityNeedsRepair, notes)
}

// batch 逐个处理, 个别失败不中断整批
func (s *itemService) batch(ctx context.Context, ids []int64, eligibility domain.ItemEligibility, notes string) (int64, error) {
	var succeeded int64
	for _, id := range ids {
		err := s.PerformQualityCheck(ctx, id, eligibility, notes)
		if err != nil {
			s.logger.Warn("批量质检失败",
				elog.FieldErr(err),
				elog.Int64("item_id", id),
				elog.Any("eligibility", eligibility))
			continue
		}
		succeeded++
	}
	return succeeded, nil
}
