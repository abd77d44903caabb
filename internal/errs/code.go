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

package errs

var (
	SystemError         = ErrorCode{Code: 601001, Msg: "系统错误"}
	InvalidInput        = ErrorCode{Code: 601002, Msg: "非法输入"}
	ItemNotFound        = ErrorCode{Code: 602001, Msg: "商品不存在"}
	ItemNotSellable     = ErrorCode{Code: 602002, Msg: "商品未通过质检或未上架"}
	InsufficientStock   = ErrorCode{Code: 602003, Msg: "库存不足"}
	CartEmpty           = ErrorCode{Code: 603001, Msg: "购物车为空"}
	OrderNotFound       = ErrorCode{Code: 604001, Msg: "订单不存在"}
	AddressNotFound     = ErrorCode{Code: 604002, Msg: "收货地址不存在"}
	CourierNotFound     = ErrorCode{Code: 604003, Msg: "不支持的快递选项"}
	PaymentNotFound     = ErrorCode{Code: 605001, Msg: "支付记录不存在"}
	StateConflict       = ErrorCode{Code: 605002, Msg: "状态已变更, 请刷新后重试"}
	ProofInvalid        = ErrorCode{Code: 605003, Msg: "凭证文件不合法"}
	ShipmentNotFound    = ErrorCode{Code: 606001, Msg: "发货单不存在"}
	ShipmentDuplicate   = ErrorCode{Code: 606002, Msg: "该订单已存在发货单"}
	OrderNotPaid        = ErrorCode{Code: 606003, Msg: "订单未支付, 不能发货"}
	InvalidTransition   = ErrorCode{Code: 606004, Msg: "非法的状态迁移"}
	TrackingNumberEmpty = ErrorCode{Code: 606005, Msg: "运单号不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
