package usecase

import (
	"context"

	"team-align/internal/domain/allocation"
	"team-align/internal/infrastructure/metrics"
	"team-align/internal/repository"

	"github.com/google/uuid"
)

const unassignedFetchLimit = 20

type BalanceParams struct {
	MaxUtilizationPct float64
}

type BalanceUsecase interface {
	BalanceTeam(ctx context.Context, teamID uuid.UUID, params BalanceParams) (allocation.BalanceResult, error)
}

type Balance struct {
	members repository.MemberRepository
	items   repository.WorkItemRepository
	metrics *metrics.Metrics
}

func NewBalanceUsecase(
	members repository.MemberRepository,
	items repository.WorkItemRepository,
	m *metrics.Metrics,
) *Balance {
	return &Balance{members: members, items: items, metrics: m}
}

// BalanceTeam resolves the team snapshot, every active member's task list and
// the unassigned backlog up front so the balancer runs without lookups.
func (u *Balance) BalanceTeam(ctx context.Context, teamID uuid.UUID, params BalanceParams) (allocation.BalanceResult, error) {
	if teamID == uuid.Nil {
		return allocation.BalanceResult{}, ErrInvalidInput
	}
	if params.MaxUtilizationPct < 0 || params.MaxUtilizationPct > 100 {
		return allocation.BalanceResult{}, ErrInvalidInput
	}

	u.metrics.IncBalanceRequests()

	exists, err := u.members.TeamExists(ctx, teamID)
	if err != nil {
		return allocation.BalanceResult{}, ErrInternal
	}
	if !exists {
		return allocation.BalanceResult{}, ErrTeamNotFound
	}

	memberRows, err := u.members.ListActiveByTeam(ctx, teamID)
	if err != nil {
		return allocation.BalanceResult{}, ErrInternal
	}

	memberIDs := make([]uuid.UUID, 0, len(memberRows))
	for _, m := range memberRows {
		memberIDs = append(memberIDs, m.ID)
	}

	tasksByMember, err := u.items.ListActiveByAssignees(ctx, memberIDs)
	if err != nil {
		return allocation.BalanceResult{}, ErrInternal
	}

	unassigned, err := u.items.ListUnassignedByTeam(ctx, teamID, unassignedFetchLimit)
	if err != nil {
		return allocation.BalanceResult{}, ErrInternal
	}

	members := make([]allocation.Member, 0, len(memberRows))
	for _, m := range memberRows {
		members = append(members, toAllocationMember(m, nil))
	}

	activeTasks := make(map[uuid.UUID][]allocation.WorkItem, len(tasksByMember))
	for id, tasks := range tasksByMember {
		activeTasks[id] = toAllocationWorkItems(tasks)
	}

	res := allocation.Balance(allocation.BalanceInput{
		Members:     members,
		ActiveTasks: activeTasks,
		Unassigned:  toAllocationWorkItems(unassigned),
	}, allocation.BalanceOptions{MaxUtilizationPct: params.MaxUtilizationPct})

	return res, nil
}
