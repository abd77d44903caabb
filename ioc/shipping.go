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

package ioc

import (
	"github.com/combiphar/remarket/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/econf"
)

// InitCouriers 快递选项及运费来自配置, 不写死在代码里
func InitCouriers() []domain.Courier {
	type Courier struct {
		Name string `yaml:"name"`
		Rate int64  `yaml:"rate"`
	}
	var cfg []Courier
	if err := econf.UnmarshalKey("shipping.couriers", &cfg); err != nil {
		panic(err)
	}
	if len(cfg) == 0 {
		panic("未配置任何快递选项")
	}
	return slice.Map(cfg, func(idx int, src Courier) domain.Courier {
		return domain.Courier{Name: src.Name, Rate: src.Rate}
	})
}

// InitBanks 收款银行账户来自配置
func InitBanks() []domain.BankAccount {
	type Bank struct {
		BankName      string `yaml:"bankName"`
		AccountNumber string `yaml:"accountNumber"`
		AccountHolder string `yaml:"accountHolder"`
	}
	var cfg []Bank
	if err := econf.UnmarshalKey("payment.banks", &cfg); err != nil {
		panic(err)
	}
	if len(cfg) == 0 {
		panic("未配置任何收款银行账户")
	}
	return slice.Map(cfg, func(idx int, src Bank) domain.BankAccount {
		return domain.BankAccount{
			BankName:      src.BankName,
			AccountNumber: src.AccountNumber,
			AccountHolder: src.AccountHolder,
		}
	})
}
