package usecase

import (
	"context"
	"errors"
	"time"

	"team-align/internal/domain/allocation"
	"team-align/internal/infrastructure/metrics"
	"team-align/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrWorkItemNotFound = errors.New("work item not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrNoCandidates     = errors.New("no candidates available")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
)

const recommendationCacheTTL = 5 * time.Minute

type RecommendationParams struct {
	TopN int
}

type RecommendationUsecase interface {
	RecommendAssignees(ctx context.Context, workItemID uuid.UUID, params RecommendationParams) (allocation.RankResult, error)
}

type Recommendation struct {
	items   repository.WorkItemRepository
	members repository.MemberRepository
	cache   ResultCache
	metrics *metrics.Metrics
}

func NewRecommendationUsecase(
	items repository.WorkItemRepository,
	members repository.MemberRepository,
	cache ResultCache,
	m *metrics.Metrics,
) *Recommendation {
	return &Recommendation{items: items, members: members, cache: cache, metrics: m}
}

// RecommendAssignees assembles the candidate and work-item snapshots, runs
// the ranker over them and caches the outcome briefly.
func (u *Recommendation) RecommendAssignees(ctx context.Context, workItemID uuid.UUID, params RecommendationParams) (allocation.RankResult, error) {
	if workItemID == uuid.Nil {
		return allocation.RankResult{}, ErrInvalidInput
	}
	if params.TopN < 0 {
		return allocation.RankResult{}, ErrInvalidInput
	}

	u.metrics.IncRecommendationRequests()

	key := recommendationCacheKey(workItemID, params.TopN)
	if u.cache != nil {
		var cached allocation.RankResult
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			u.metrics.IncCacheHits()
			return cached, nil
		}
	}

	item, err := u.items.FindByID(ctx, workItemID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkItemNotFound) {
			return allocation.RankResult{}, ErrWorkItemNotFound
		}
		return allocation.RankResult{}, ErrInternal
	}

	memberRows, err := u.members.ListActiveByTeam(ctx, item.TeamID)
	if err != nil {
		return allocation.RankResult{}, ErrInternal
	}
	if len(memberRows) == 0 {
		return allocation.RankResult{}, ErrNoCandidates
	}

	memberIDs := make([]uuid.UUID, 0, len(memberRows))
	for _, m := range memberRows {
		memberIDs = append(memberIDs, m.ID)
	}
	skillsByMember, err := u.members.ListSkillsByMemberIDs(ctx, memberIDs)
	if err != nil {
		return allocation.RankResult{}, ErrInternal
	}

	candidates := make([]allocation.Member, 0, len(memberRows))
	for _, m := range memberRows {
		candidates = append(candidates, toAllocationMember(m, skillsByMember[m.ID]))
	}

	res := allocation.Rank(candidates, toAllocationWorkItem(item), allocation.RankOptions{TopN: params.TopN})

	u.metrics.AddScoredCandidates(len(memberRows) - len(res.Excluded))
	u.metrics.AddExcludedCandidates(len(res.Excluded))

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, res, recommendationCacheTTL)
	}

	return res, nil
}
