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

// CartItem 购物车中的一行, 价格和名称是加入时的快照
type CartItem struct {
	ItemID   int64
	Name     string
	Image    string
	Price    int64
	Quantity int64
}

func (ci CartItem) Subtotal() int64 {
	return ci.Price * ci.Quantity
}

// Cart 同一商品至多一行, 数量恒大于0
type Cart struct {
	ID     int64
	UserID int64
	Items  []CartItem
}

// AddItem 加入商品, 已存在则合并数量
func (c *Cart) AddItem(item CartItem) {
	for idx := range c.Items {
		if c.Items[idx].ItemID == item.ItemID {
			c.Items[idx].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity 覆盖数量, 商品不存在时不做任何事
func (c *Cart) UpdateQuantity(itemID int64, quantity int64) {
	for idx := range c.Items {
		if c.Items[idx].ItemID == itemID {
			c.Items[idx].Quantity = quantity
			return
		}
	}
}

// RemoveItem 删除商品, 不存在时静默返回
func (c *Cart) RemoveItem(itemID int64) {
	for idx := range c.Items {
		if c.Items[idx].ItemID == itemID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return
		}
	}
}

func (c *Cart) FindItem(itemID int64) (CartItem, bool) {
	for _, it := range c.Items {
		if it.ItemID == itemID {
			return it, true
		}
	}
	return CartItem{}, false
}

func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Subtotal()
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Clear() {
	c.Items = nil
}
