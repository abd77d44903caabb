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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// 订单号固定前缀
const prefix = "ORD-"

// 订单号总长度, 含前缀
const snLength = 32

// TimestampGenerateFunc 生成毫秒时间戳
type TimestampGenerateFunc func(time.Time) int64

// ShortUUIDGenerateFunc 生成随机后缀
type ShortUUIDGenerateFunc func() string

// Generator 生成订单号: 前缀 + 毫秒时间戳 + 买家ID后四位 + 随机串,
// 截断到固定长度。时间戳保证可读可排序, 随机串保证同毫秒不碰撞
type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(
		func(t time.Time) int64 { return t.UnixMilli() },
		func() string { return shortuuid.New() })
}

// Generate 传入买家ID, 返回固定长度的订单号
func (s *Generator) Generate(buyerID int64) (string, error) {
	timestamp := s.timestampGenFunc(time.Now())
	lastFour := fmt.Sprintf("%04d", buyerID%10000)
	uuid := s.shortUUIDGenFunc()
	sn := fmt.Sprintf("%s%d%s%s", prefix, timestamp, lastFour, uuid)
	if len(sn) < snLength {
		return "", fmt.Errorf("订单号长度不足: %s", sn)
	}
	return sn[:snLength], nil
}
