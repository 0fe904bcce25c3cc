//go:build wireinject
// +build wireinject

package di

import (
	"kidstrainer/config"
	"kidstrainer/infras/database"
	"kidstrainer/infras/otel"
	"kidstrainer/infras/redis"
	"kidstrainer/shared/cache"
	"kidstrainer/transport/http"
	"kidstrainer/transport/http/middleware"
	"kidstrainer/transport/http/router"
	"kidstrainer/web"

	bookingRepository "kidstrainer/internal/domains/booking/repository"
	bookingService "kidstrainer/internal/domains/booking/service"
	parentRepository "kidstrainer/internal/domains/parent/repository"
	parentService "kidstrainer/internal/domains/parent/service"
	trainerRepository "kidstrainer/internal/domains/trainer/repository"
	trainerService "kidstrainer/internal/domains/trainer/service"

	"github.com/google/wire"

	bookingHandler "kidstrainer/internal/handlers/booking"
	pageHandler "kidstrainer/internal/handlers/page"
	trainerHandler "kidstrainer/internal/handlers/trainer"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	web.NewRenderer,
)

var trainerDomain = wire.NewSet(
	trainerRepository.New,
	trainerService.New,
)

var parentDomain = wire.NewSet(
	parentRepository.New,
	parentService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	trainerDomain,
	parentDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pageHandler.New,
	trainerHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
