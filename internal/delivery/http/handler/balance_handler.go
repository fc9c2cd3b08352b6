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

type BalanceHandler struct {
	uc usecase.BalanceUsecase
}

func NewBalanceHandler(uc usecase.BalanceUsecase) *BalanceHandler {
	return &BalanceHandler{uc: uc}
}

func (h *BalanceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/teams")
	grp.Get("/:team_id/balance", h.GetBalance)
}

func (h *BalanceHandler) GetBalance(c fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("team_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid team id", nil, err)
	}

	maxUtil, err := parseQueryFloatStrict(c, "max_utilization", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid max_utilization", nil, err)
	}

	res, err := h.uc.BalanceTeam(c.Context(), teamID, usecase.BalanceParams{MaxUtilizationPct: maxUtil})
	if err != nil {
		return mapBalanceUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromBalanceResult(res))
}

func mapBalanceUsecaseError(err error) error {
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
