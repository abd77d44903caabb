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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// 质检台和发货台只对运营角色开放, 角色在登录时写进 session claims
const adminRole = "admin"

type CheckAdminMiddlewareBuilder struct {
	logger *elog.Component
	sp     session.Provider
}

func NewCheckAdminMiddlewareBuilder() *CheckAdminMiddlewareBuilder {
	return &CheckAdminMiddlewareBuilder{
		logger: elog.DefaultLogger,
	}
}

func (c *CheckAdminMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		role, _ := claims.Get("role").AsString()
		if role != adminRole {
			c.logger.Debug("非运营角色访问管理接口", elog.Int64("uid", claims.Uid))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}
