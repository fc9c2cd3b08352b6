package routes

import (
	"team-align/internal/database"
	"team-align/internal/delivery/http/handler"
	"team-align/internal/infrastructure/cache"
	"team-align/internal/infrastructure/metrics"
	"team-align/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

type Deps struct {
	DB              database.DB
	Cache           *cache.Redis
	Metrics         *metrics.Metrics
	Recommendations usecase.RecommendationUsecase
	Balance         usecase.BalanceUsecase
	Forecast        usecase.ForecastUsecase
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(deps.DB, deps.Cache),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(r.deps.Metrics.Handler()))

	api := app.Group("/api")
	registerV1(api.Group("/v1"), r.deps)
}
