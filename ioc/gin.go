package ioc

import (
	"net/http"
	"strings"

	"github.com/combiphar/remarket/internal/pkg/middleware"
	"github.com/combiphar/remarket/internal/web"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	hdl *web.Handler,
	adminHdl *web.AdminHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "combiphar.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	hdl.PublicRoutes(res.Engine)
	adminHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	hdl.PrivateRoutes(res.Engine)
	// 管理接口在登录之上再校验运营角色
	res.Use(middleware.NewCheckAdminMiddlewareBuilder().Build())
	adminHdl.PrivateRoutes(res.Engine)
	return res
}
