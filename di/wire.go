//go:build wireinject
// +build wireinject

package di

import (
	"forest/config"
	"forest/infras/jwt"
	"forest/infras/kafka"
	"forest/infras/otel"
	"forest/infras/postgres"
	"forest/infras/push"
	"forest/infras/redis"
	"forest/infras/s3"
	"forest/infras/sms"
	"forest/permissions"
	"forest/shared/cache"
	"forest/transport/http"
	"forest/transport/http/middleware"
	"forest/transport/http/router"
	kafkaTransport "forest/transport/kafka"

	availabilityService "forest/internal/domains/availability/service"
	cartRepository "forest/internal/domains/cart/repository"
	cartService "forest/internal/domains/cart/service"
	notificationRepository "forest/internal/domains/notification/repository"
	notificationService "forest/internal/domains/notification/service"
	orderRepository "forest/internal/domains/order/repository"
	orderService "forest/internal/domains/order/service"
	pricingService "forest/internal/domains/pricing/service"
	productRepository "forest/internal/domains/product/repository"
	productService "forest/internal/domains/product/service"
	productFileRepository "forest/internal/domains/productfile/repository"
	productFileService "forest/internal/domains/productfile/service"
	specialIntervalRepository "forest/internal/domains/specialinterval/repository"
	specialIntervalService "forest/internal/domains/specialinterval/service"

	cartHandler "forest/internal/handlers/cart"
	notificationHandler "forest/internal/handlers/notification"
	orderHandler "forest/internal/handlers/order"
	productHandler "forest/internal/handlers/product"
	productFileHandler "forest/internal/handlers/productfile"
	specialIntervalHandler "forest/internal/handlers/specialinterval"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransaction,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var deliveries = wire.NewSet(
	sms.New,
	push.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogueDomain = wire.NewSet(
	productRepository.New,
	productService.New,
	specialIntervalRepository.New,
	specialIntervalService.New,
	productFileRepository.New,
	productFileService.New,
)

var bookingDomain = wire.NewSet(
	availabilityService.New,
	pricingService.New,
	cartRepository.New,
	cartRepository.NewItem,
	cartService.New,
	orderRepository.New,
	orderRepository.NewItem,
	orderService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
	notificationService.NewDispatcher,
)

var domains = wire.NewSet(
	catalogueDomain,
	bookingDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	productHandler.New,
	specialIntervalHandler.New,
	productFileHandler.New,
	cartHandler.New,
	orderHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *kafkaTransport.Worker {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		deliveries,
		notificationRepository.New,
		notificationService.NewDeliverer,
		kafkaTransport.New,
	)

	return &kafkaTransport.Worker{}
}
