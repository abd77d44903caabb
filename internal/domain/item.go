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

package domain

type ItemEligibility uint8

func (e ItemEligibility) ToUint8() uint8 {
	return uint8(e)
}

// Valid 判断是否为合法的质检状态
func (e ItemEligibility) Valid() bool {
	return e >= EligibilityNeedsQC && e <= EligibilityNeedsRepair
}

const (
	EligibilityNeedsQC     ItemEligibility = 1 // 待质检
	EligibilityEligible    ItemEligibility = 2 // 质检通过, 可售
	EligibilityNeedsRepair ItemEligibility = 3 // 需要返修
)

// 商品成色
const (
	ConditionNew      = "NEW"
	ConditionUsedGood = "USED_GOOD"
	ConditionUsedFair = "USED_FAIR"
)

type Item struct {
	ID         int64
	CategoryID int64
	Name       string
	// Condition 成色: NEW, USED_GOOD, USED_FAIR
	Condition   string
	Description string
	ImageURL    string
	Price       int64
	Stock       int64
	Eligibility ItemEligibility
	Published   bool
	QCNotes     string
	Ctime       int64
	Utime       int64
}

// CanSell 售卖门禁: 只有质检通过、已上架且库存足够的商品才能进入购物车或订单
func (i Item) CanSell(quantity int64) bool {
	return i.Eligibility == EligibilityEligible &&
		i.Published &&
		i.Stock >= quantity
}
