//go:build wireinject
// +build wireinject

package di

import (
	"choreboard/config"
	"choreboard/infras/jwt"
	"choreboard/infras/otel"
	"choreboard/infras/postgres"
	"choreboard/infras/redis"
	"choreboard/permissions"
	"choreboard/shared/cache"
	"choreboard/transport/http"
	"choreboard/transport/http/middleware"
	"choreboard/transport/http/router"
	"choreboard/transport/http/view"

	authService "choreboard/internal/domains/auth/service"
	choreRepository "choreboard/internal/domains/chore/repository"
	choreService "choreboard/internal/domains/chore/service"
	choreTypeRepository "choreboard/internal/domains/choretype/repository"
	choreTypeService "choreboard/internal/domains/choretype/service"
	listRepository "choreboard/internal/domains/list/repository"
	listService "choreboard/internal/domains/list/service"
	userRepository "choreboard/internal/domains/user/repository"
	userService "choreboard/internal/domains/user/service"

	authHandler "choreboard/internal/handlers/auth"
	choreHandler "choreboard/internal/handlers/chore"
	choreTypeHandler "choreboard/internal/handlers/choretype"
	dashboardHandler "choreboard/internal/handlers/dashboard"
	listHandler "choreboard/internal/handlers/list"
	userHandler "choreboard/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	view.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var choreDomain = wire.NewSet(
	choreRepository.New,
	choreService.New,
)

var listDomain = wire.NewSet(
	listRepository.New,
	listService.New,
)

var choreTypeDomain = wire.NewSet(
	choreTypeRepository.New,
	choreTypeService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	choreDomain,
	listDomain,
	choreTypeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	choreHandler.New,
	listHandler.New,
	choreTypeHandler.New,
	dashboardHandler.New,
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
