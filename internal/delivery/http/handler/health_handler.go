package handler

import (
	"context"
	"time"

	"team-align/internal/database"
	"team-align/internal/infrastructure/cache"
	"team-align/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, c *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.GetHealth)
}

// GetHealth reports per-dependency status. A degraded cache does not fail the
// check since lookups fall through to the database.
func (h *HealthHandler) GetHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}
	status := fiber.StatusOK

	if h.db == nil {
		checks["database"] = "not configured"
	} else if err := h.db.Ping(ctx); err != nil {
		checks["database"] = "unreachable"
		status = fiber.StatusInternalServerError
	}

	if h.cache == nil {
		checks["cache"] = "not configured"
	} else if err := h.cache.Ping(ctx); err != nil {
		checks["cache"] = "degraded"
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, response.MessageError, checks)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, checks)
}
