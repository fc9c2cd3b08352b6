package usecase

import (
	"context"
	"errors"
	"testing"

	"team-align/internal/domain/allocation"
	"team-align/internal/repository"

	"github.com/google/uuid"
)

func TestForecastCapacity_InvalidHorizon(t *testing.T) {
	uc := NewForecastUsecase(mockMemberRepo{exists: true}, mockWorkItemRepo{}, nil)
	_, err := uc.ForecastCapacity(context.Background(), uuid.New(), ForecastParams{Horizon: "decade"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestForecastCapacity_InvalidAttribution(t *testing.T) {
	uc := NewForecastUsecase(mockMemberRepo{exists: true}, mockWorkItemRepo{}, nil)
	_, err := uc.ForecastCapacity(context.Background(), uuid.New(), ForecastParams{Attribution: "psychic"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestForecastCapacity_TeamNotFound(t *testing.T) {
	uc := NewForecastUsecase(mockMemberRepo{exists: false}, mockWorkItemRepo{}, nil)
	_, err := uc.ForecastCapacity(context.Background(), uuid.New(), ForecastParams{})
	if !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestForecastCapacity_MonthTotals(t *testing.T) {
	teamID := uuid.New()
	uc := NewForecastUsecase(
		mockMemberRepo{exists: true, members: []repository.Member{
			seedMemberRow(teamID, 50),
			seedMemberRow(teamID, 30),
		}},
		mockWorkItemRepo{},
		nil,
	)

	fc, err := uc.ForecastCapacity(context.Background(), teamID, ForecastParams{Horizon: "month"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if fc.Horizon != allocation.HorizonMonth {
		t.Fatalf("expected month horizon, got %s", fc.Horizon)
	}
	// 2 members x 40h x 4 weeks.
	if fc.TotalAvailableHours != 320 {
		t.Fatalf("expected 320 available hours, got %v", fc.TotalAvailableHours)
	}
}

func TestForecastCapacity_LegacyAttribution(t *testing.T) {
	teamID := uuid.New()
	est := 20.0
	designItem := repository.WorkItem{
		ID:             uuid.New(),
		TeamID:         teamID,
		RequiredSkills: []string{"ui design"},
		EstimatedHours: &est,
		Priority:       "medium",
		Status:         "not_started",
	}
	designer := seedMemberRow(teamID, 0)
	designer.Role = "designer"

	uc := NewForecastUsecase(
		mockMemberRepo{exists: true, members: []repository.Member{seedMemberRow(teamID, 0), designer}},
		mockWorkItemRepo{upcoming: []repository.WorkItem{designItem}},
		nil,
	)

	fc, err := uc.ForecastCapacity(context.Background(), teamID, ForecastParams{Horizon: "week", Attribution: "legacy"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, gap := range fc.RoleGaps {
		if gap.Role == allocation.RoleDeveloper && gap.DemandHours != 20 {
			t.Fatalf("legacy mode must attribute all demand to developer, got %v", gap.DemandHours)
		}
	}
}
