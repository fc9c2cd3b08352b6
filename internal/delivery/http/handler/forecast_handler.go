package handler

import (
	"errors"

	"team-align/internal/delivery/http/dto"
	"team-align/internal/delivery/http/middleware"
	"team-align/internal/pkg/response"
	"team-align/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ForecastHandler struct {
	uc usecase.ForecastUsecase
}

func NewForecastHandler(uc usecase.ForecastUsecase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

func (h *ForecastHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/teams")
	grp.Get("/:team_id/forecast", h.GetForecast)
}

func (h *ForecastHandler) GetForecast(c fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("team_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid team id", nil, err)
	}

	params := usecase.ForecastParams{
		Horizon:     c.Query("horizon"),
		Attribution: c.Query("attribution"),
	}

	res, err := h.uc.ForecastCapacity(c.Context(), teamID, params)
	if err != nil {
		return mapForecastUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCapacityForecast(res))
}

func mapForecastUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrTeamNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Team not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
