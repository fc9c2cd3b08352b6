package routes

import (
	"team-align/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func registerV1(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	handler.NewRecommendationHandler(deps.Recommendations).RegisterRoutes(r)
	handler.NewBalanceHandler(deps.Balance).RegisterRoutes(r)
	handler.NewForecastHandler(deps.Forecast).RegisterRoutes(r)
}
