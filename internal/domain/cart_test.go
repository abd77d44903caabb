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

func TestCart_AddItem(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		cart      Cart
		item      CartItem
		wantItems []CartItem
	}{
		{
			name: "新商品追加一行",
			cart: Cart{
				Items: []CartItem{
					{ItemID: 1, Price: 100, Quantity: 1},
				},
			},
			item: CartItem{ItemID: 2, Price: 200, Quantity: 2},
			wantItems: []CartItem{
				{ItemID: 1, Price: 100, Quantity: 1},
				{ItemID: 2, Price: 200, Quantity: 2},
			},
		},
		{
			name: "已存在的商品合并数量",
			cart: Cart{
				Items: []CartItem{
					{ItemID: 1, Price: 100, Quantity: 1},
				},
			},
			item: CartItem{ItemID: 1, Price: 100, Quantity: 3},
			wantItems: []CartItem{
				{ItemID: 1, Price: 100, Quantity: 4},
			},
		},
		{
			name:      "空购物车",
			cart:      Cart{},
			item:      CartItem{ItemID: 1, Price: 100, Quantity: 1},
			wantItems: []CartItem{{ItemID: 1, Price: 100, Quantity: 1}},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.cart.AddItem(tc.item)
			assert.Equal(t, tc.wantItems, tc.cart.Items)
		})
	}
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Parallel()
	cart := Cart{Items: []CartItem{{ItemID: 1, Quantity: 1}}}
	cart.UpdateQuantity(1, 5)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)

	// 商品不存在时不做任何事
	cart.UpdateQuantity(999, 3)
	assert.Equal(t, []CartItem{{ItemID: 1, Quantity: 5}}, cart.Items)
}

func TestCart_RemoveItem(t *testing.T) {
	t.Parallel()
	cart := Cart{Items: []CartItem{
		{ItemID: 1, Quantity: 1},
		{ItemID: 2, Quantity: 2},
	}}
	cart.RemoveItem(1)
	assert.Equal(t, []CartItem{{ItemID: 2, Quantity: 2}}, cart.Items)

	// 删除不存在的商品静默返回
	cart.RemoveItem(999)
	assert.Equal(t, []CartItem{{ItemID: 2, Quantity: 2}}, cart.Items)

	cart.RemoveItem(2)
	assert.True(t, cart.IsEmpty())
}

func TestCart_TotalPrice(t *testing.T) {
	t.Parallel()
	cart := Cart{Items: []CartItem{
		{ItemID: 1, Price: 100000, Quantity: 2},
		{ItemID: 2, Price: 15000, Quantity: 1},
	}}
	assert.Equal(t, int64(215000), cart.TotalPrice())

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.TotalPrice())
}

func TestCart_FindItem(t *testing.T) {
	t.Parallel()
	cart := Cart{Items: []CartItem{{ItemID: 1, Quantity: 2}}}
	it, ok := cart.FindItem(1)
	assert.True(t, ok)
	assert.Equal(t, int64(2), it.Quantity)

	_, ok = cart.FindItem(999)
	assert.False(t, ok)
}
