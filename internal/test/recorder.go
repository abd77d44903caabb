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

package test

import (
	"github.com/ecodeclub/ekit/net/httpx/httptestx"
)

// NewJSONResponseRecorder 解析统一响应体 Result[T]
func NewJSONResponseRecorder[T any]() *httptestx.JSONResponseRecorder[Result[T]] {
	return httptestx.NewJSONResponseRecorder[Result[T]]()
}
