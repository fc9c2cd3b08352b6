package allocation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// ErrUnscoredCandidate is the core's only error kind: a member record too
// malformed to produce a score. It is reported per member, never returned
// for the whole batch.
var ErrUnscoredCandidate = errors.New("unscored candidate")

const (
	defaultTopN          = 10
	maxTopN              = 50
	urgentPenalty        = 10.0
	urgentPenaltyUtilPct = 90.0
)

type RankOptions struct {
	// TopN bounds the returned list; 0 means the default of 10.
	TopN int
}

func resolveTopN(opts RankOptions) int {
	n := opts.TopN
	if n <= 0 {
		return defaultTopN
	}
	if n > maxTopN {
		return maxTopN
	}
	return n
}

// Rank scores every member against the work item, sorts by descending
// composite score (stable, input order breaks ties) and truncates to TopN.
// The tier summary counts the full scored set. Unscoreable members are
// excluded and reported.
func Rank(members []Member, item WorkItem, opts RankOptions) RankResult {
	res := RankResult{
		Recommendations: make([]Recommendation, 0, len(members)),
		Excluded:        make([]ExcludedMember, 0),
	}

	for _, m := range members {
		if reason := validateMember(m); reason != "" {
			res.Excluded = append(res.Excluded, ExcludedMember{
				MemberID: m.ID,
				Reason:   fmt.Sprintf("%v: %s", ErrUnscoredCandidate, reason),
			})
			continue
		}

		rec := scoreMember(m, item)
		countTier(&res.Summary, rec.Tier)
		res.Recommendations = append(res.Recommendations, rec)
	}

	sort.SliceStable(res.Recommendations, func(i, j int) bool {
		return res.Recommendations[i].Score > res.Recommendations[j].Score
	})

	if topN := resolveTopN(opts); len(res.Recommendations) > topN {
		res.Recommendations = res.Recommendations[:topN]
	}

	return res
}

func scoreMember(m Member, item WorkItem) Recommendation {
	breakdown := []ScoreFactor{
		MatchSkills(m, item),
		ScoreAvailability(m),
		ScoreCapacity(m, item),
		ScorePerformance(m),
	}

	score := 0.0
	for _, f := range breakdown {
		score += f.Points
	}

	if item.Priority == PriorityUrgent && m.UtilizationPct > urgentPenaltyUtilPct {
		score -= urgentPenalty
		breakdown = append(breakdown, ScoreFactor{
			Factor: factorPriorityAdj,
			Points: -urgentPenalty,
			Reason: fmt.Sprintf("urgent work item but utilization above %.0f%%", urgentPenaltyUtilPct),
		})
	}

	// Adjusted score is clamped to [0,100] before tier assignment.
	score = clampScore(score)

	return Recommendation{
		MemberID:  m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Score:     score,
		Tier:      tierFor(score),
		Breakdown: breakdown,
	}
}

func tierFor(score float64) Tier {
	switch {
	case score >= 70:
		return TierHighlyRecommended
	case score >= 50:
		return TierRecommended
	case score >= 30:
		return TierPossible
	default:
		return TierNotRecommended
	}
}

func countTier(s *TierSummary, t Tier) {
	switch t {
	case TierHighlyRecommended:
		s.HighlyRecommended++
	case TierRecommended:
		s.Recommended++
	case TierPossible:
		s.Possible++
	default:
		s.NotRecommended++
	}
}

func validateMember(m Member) string {
	if m.ID == uuid.Nil {
		return "missing member id"
	}
	if resolveWeeklyCapacity(m) <= 0 {
		return "non-positive weekly capacity"
	}
	if m.UtilizationPct < 0 || m.UtilizationPct > 100 {
		return fmt.Sprintf("utilization %.1f outside 0-100", m.UtilizationPct)
	}
	return ""
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
