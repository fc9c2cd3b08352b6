package dto

import (
	"github.com/google/uuid"

	"team-align/internal/domain/allocation"
)

type ScoreFactorResponse struct {
	Factor string  `json:"factor"`
	Points float64 `json:"points"`
	Reason string  `json:"reason"`
}

type RecommendationResponse struct {
	MemberID  uuid.UUID             `json:"member_id"`
	Name      string                `json:"name"`
	Role      string                `json:"role"`
	Score     float64               `json:"score"`
	Tier      string                `json:"tier"`
	Breakdown []ScoreFactorResponse `json:"breakdown"`
}

type TierSummaryResponse struct {
	HighlyRecommended int `json:"highly_recommended"`
	Recommended       int `json:"recommended"`
	Possible          int `json:"possible"`
	NotRecommended    int `json:"not_recommended"`
}

type ExcludedMemberResponse struct {
	MemberID uuid.UUID `json:"member_id"`
	Reason   string    `json:"reason"`
}

type RankResultResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Summary         TierSummaryResponse      `json:"summary"`
	Excluded        []ExcludedMemberResponse `json:"excluded"`
}

func FromRankResult(res allocation.RankResult) RankResultResponse {
	out := RankResultResponse{
		Recommendations: make([]RecommendationResponse, 0, len(res.Recommendations)),
		Summary: TierSummaryResponse{
			HighlyRecommended: res.Summary.HighlyRecommended,
			Recommended:       res.Summary.Recommended,
			Possible:          res.Summary.Possible,
			NotRecommended:    res.Summary.NotRecommended,
		},
		Excluded: make([]ExcludedMemberResponse, 0, len(res.Excluded)),
	}

	for _, rec := range res.Recommendations {
		breakdown := make([]ScoreFactorResponse, 0, len(rec.Breakdown))
		for _, f := range rec.Breakdown {
			breakdown = append(breakdown, ScoreFactorResponse{Factor: f.Factor, Points: f.Points, Reason: f.Reason})
		}
		out.Recommendations = append(out.Recommendations, RecommendationResponse{
			MemberID:  rec.MemberID,
			Name:      rec.Name,
			Role:      string(rec.Role),
			Score:     rec.Score,
			Tier:      string(rec.Tier),
			Breakdown: breakdown,
		})
	}

	for _, ex := range res.Excluded {
		out.Excluded = append(out.Excluded, ExcludedMemberResponse{MemberID: ex.MemberID, Reason: ex.Reason})
	}

	return out
}
