package handler

import (
	"errors"
	"strconv"

	"team-align/internal/delivery/http/dto"
	"team-align/internal/delivery/http/middleware"
	"team-align/internal/pkg/response"
	"team-align/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/work-items")
	grp.Get("/:work_item_id/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	workItemID, err := uuid.Parse(c.Params("work_item_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid work item id", nil, err)
	}

	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil || topN < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid top_n", nil, err)
	}

	res, err := h.uc.RecommendAssignees(c.Context(), workItemID, usecase.RecommendationParams{TopN: topN})
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRankResult(res))
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrWorkItemNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Work item not found", nil, err)
	case errors.Is(err, usecase.ErrNoCandidates):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "No active members to score", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseQueryFloatStrict(c fiber.Ctx, key string, defaultVal float64) (float64, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
