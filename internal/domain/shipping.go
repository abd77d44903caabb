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

// Courier 快递选项及对应的固定运费, 从配置注入而非进程级常量
type Courier struct {
	Name string
	Rate int64
}

// BankAccount 收款银行账户, 同样来自配置
type BankAccount struct {
	BankName      string
	AccountNumber string
	AccountHolder string
}

// Address 收货地址, 本核心只做存在性校验
type Address struct {
	ID            int64
	UserID        int64
	RecipientName string
	FullAddress   string
	City          string
	PostalCode    string
	Phone         string
}
