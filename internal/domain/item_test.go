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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_CanSell(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		item     Item
		quantity int64
		want     bool
	}{
		{
			name: "质检通过且已上架且库存充足",
			item: Item{
				Eligibility: EligibilityEligible,
				Published:   true,
				Stock:       10,
			},
			quantity: 3,
			want:     true,
		},
		{
			name: "库存刚好等于数量",
			item: Item{
				Eligibility: EligibilityEligible,
				Published:   true,
				Stock:       3,
			},
			quantity: 3,
			want:     true,
		},
		{
			name: "待质检不可售",
			item: Item{
				Eligibility: EligibilityNeedsQC,
				Published:   true,
				Stock:       10,
			},
			quantity: 1,
			want:     false,
		},
		{
			name: "需要返修不可售",
			item: Item{
				Eligibility: EligibilityNeedsRepair,
				Published:   true,
				Stock:       10,
			},
			quantity: 1,
			want:     false,
		},
		{
			name: "未上架不可售",
			item: Item{
				Eligibility: EligibilityEligible,
				Published:   false,
				Stock:       10,
			},
			quantity: 1,
			want:     false,
		},
		{
			name: "库存不足",
			item: Item{
				Eligibility: EligibilityEligible,
				Published:   true,
				Stock:       2,
			},
			quantity: 3,
			want:     false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.item.CanSell(tc.quantity))
		})
	}
}

func TestItemEligibility_Valid(t *testing.T) {
	t.Parallel()
	assert.True(t, EligibilityNeedsQC.Valid())
	assert.True(t, EligibilityEligible.Valid())
	assert.True(t, EligibilityNeedsRepair.Valid())
	assert.False(t, ItemEligibility(0).Valid())
	assert.False(t, ItemEligibility(4).Valid())
}
