//go:build wireinject

package ioc

import (
	"github.com/combiphar/remarket/internal/event"
	"github.com/combiphar/remarket/internal/pkg/sequencenumber"
	"github.com/combiphar/remarket/internal/repository"
	"github.com/combiphar/remarket/internal/repository/dao"
	"github.com/combiphar/remarket/internal/service"
	"github.com/combiphar/remarket/internal/web"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(
	InitDB, InitRedis, InitCache, InitMQ,
	InitSession, InitCouriers, InitBanks, InitProofStore)

var DAOSet = wire.NewSet(
	dao.NewGORMItemDAO,
	dao.NewGORMCartDAO,
	dao.NewGORMOrderDAO,
	dao.NewGORMPaymentDAO,
	dao.NewGORMShipmentDAO,
	dao.NewGORMAddressDAO)

var RepositorySet = wire.NewSet(
	repository.NewItemRepository,
	repository.NewCartRepository,
	repository.NewOrderRepository,
	repository.NewPaymentRepository,
	repository.NewShipmentRepository,
	repository.NewAddressRepository)

var ServiceSet = wire.NewSet(
	sequencenumber.NewGenerator,
	event.NewOrderCompletedEventProducer,
	service.NewItemService,
	service.NewAddressService,
	service.NewCartService,
	service.NewCheckoutService,
	service.NewFulfillmentService,
	service.NewPaymentService,
	service.NewShipmentService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		DAOSet,
		RepositorySet,
		ServiceSet,
		web.NewHandler,
		web.NewAdminHandler,
		initGinxServer)
	return new(App), nil
}
