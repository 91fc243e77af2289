//go:build wireinject
// +build wireinject

package di

import (
	"tasker/config"
	"tasker/infras/jwt"
	"tasker/infras/otel"
	"tasker/infras/postgres"
	"tasker/infras/redis"
	taskHandler "tasker/internal/handlers/task"
	"tasker/shared/cache"
	"tasker/transport/http"
	"tasker/transport/http/middleware"
	"tasker/transport/http/router"

	taskRepository "tasker/internal/domains/task/repository"
	taskService "tasker/internal/domains/task/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var taskDomain = wire.NewSet(
	taskRepository.New,
	taskService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	taskHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		taskDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
