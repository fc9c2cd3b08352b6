package usecase

import (
	"context"
	"time"

	"team-align/internal/domain/allocation"
	"team-align/internal/infrastructure/metrics"
	"team-align/internal/repository"

	"github.com/google/uuid"
)

type ForecastParams struct {
	// Horizon is one of week, month, quarter; empty means month.
	Horizon string
	// Attribution is "skill" (default) or "legacy" for the
	// all-demand-on-developer compatibility mode.
	Attribution string
}

type ForecastUsecase interface {
	ForecastCapacity(ctx context.Context, teamID uuid.UUID, params ForecastParams) (allocation.CapacityForecast, error)
}

type Forecast struct {
	members repository.MemberRepository
	items   repository.WorkItemRepository
	metrics *metrics.Metrics
}

func NewForecastUsecase(
	members repository.MemberRepository,
	items repository.WorkItemRepository,
	m *metrics.Metrics,
) *Forecast {
	return &Forecast{members: members, items: items, metrics: m}
}

func (u *Forecast) ForecastCapacity(ctx context.Context, teamID uuid.UUID, params ForecastParams) (allocation.CapacityForecast, error) {
	if teamID == uuid.Nil {
		return allocation.CapacityForecast{}, ErrInvalidInput
	}

	horizon, attribution, err := resolveForecastParams(params)
	if err != nil {
		return allocation.CapacityForecast{}, err
	}

	u.metrics.IncForecastRequests()

	exists, err := u.members.TeamExists(ctx, teamID)
	if err != nil {
		return allocation.CapacityForecast{}, ErrInternal
	}
	if !exists {
		return allocation.CapacityForecast{}, ErrTeamNotFound
	}

	memberRows, err := u.members.ListActiveByTeam(ctx, teamID)
	if err != nil {
		return allocation.CapacityForecast{}, ErrInternal
	}

	now := time.Now().UTC()
	in := allocation.PlanInput{Now: now}
	for _, m := range memberRows {
		in.Members = append(in.Members, toAllocationMember(m, nil))
	}

	periodEnd := now.Add(time.Duration(horizonWeeks(horizon)) * 7 * 24 * time.Hour)
	upcoming, err := u.items.ListUpcomingByTeam(ctx, teamID, now, periodEnd)
	if err != nil {
		return allocation.CapacityForecast{}, ErrInternal
	}
	in.Upcoming = toAllocationWorkItems(upcoming)

	fc := allocation.Plan(in, allocation.PlanOptions{Horizon: horizon, Attribution: attribution})
	return fc, nil
}

func resolveForecastParams(params ForecastParams) (allocation.Horizon, allocation.AttributionMode, error) {
	horizon := allocation.HorizonMonth
	if params.Horizon != "" {
		horizon = allocation.Horizon(params.Horizon)
		if !horizon.Valid() {
			return "", "", ErrInvalidInput
		}
	}

	attribution := allocation.AttributionBySkill
	switch params.Attribution {
	case "", "skill":
	case "legacy":
		attribution = allocation.AttributionLegacyDeveloper
	default:
		return "", "", ErrInvalidInput
	}

	return horizon, attribution, nil
}

func horizonWeeks(h allocation.Horizon) int {
	switch h {
	case allocation.HorizonWeek:
		return 1
	case allocation.HorizonQuarter:
		return 12
	default:
		return 4
	}
}
