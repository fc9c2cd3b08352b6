package dto

import (
	"time"

	"team-align/internal/domain/allocation"
)

type RoleGapResponse struct {
	Role           string  `json:"role"`
	AvailableHours float64 `json:"available_hours"`
	AllocatedHours float64 `json:"allocated_hours"`
	DemandHours    float64 `json:"demand_hours"`
	GapHours       float64 `json:"gap_hours"`
}

type ShortageResponse struct {
	DemandHours    float64 `json:"demand_hours"`
	RemainingHours float64 `json:"remaining_hours"`
	ShortfallHours float64 `json:"shortfall_hours"`
	Severity       string  `json:"severity"`
}

type PlanRecommendationResponse struct {
	Action             string `json:"action"`
	Role               string `json:"role"`
	SuggestedHeadcount int    `json:"suggested_headcount,omitempty"`
	Reason             string `json:"reason"`
}

type CapacityForecastResponse struct {
	Horizon             string                       `json:"horizon"`
	PeriodStart         time.Time                    `json:"period_start"`
	PeriodEnd           time.Time                    `json:"period_end"`
	TotalAvailableHours float64                      `json:"total_available_hours"`
	TotalAllocatedHours float64                      `json:"total_allocated_hours"`
	UtilizationPct      float64                      `json:"utilization_pct"`
	DemandHours         float64                      `json:"demand_hours"`
	Shortage            *ShortageResponse            `json:"shortage,omitempty"`
	RoleGaps            []RoleGapResponse            `json:"role_gaps"`
	Recommendations     []PlanRecommendationResponse `json:"recommendations"`
}

func FromCapacityForecast(fc allocation.CapacityForecast) CapacityForecastResponse {
	out := CapacityForecastResponse{
		Horizon:             string(fc.Horizon),
		PeriodStart:         fc.PeriodStart,
		PeriodEnd:           fc.PeriodEnd,
		TotalAvailableHours: fc.TotalAvailableHours,
		TotalAllocatedHours: fc.TotalAllocatedHours,
		UtilizationPct:      fc.UtilizationPct,
		DemandHours:         fc.DemandHours,
		RoleGaps:            make([]RoleGapResponse, 0, len(fc.RoleGaps)),
		Recommendations:     make([]PlanRecommendationResponse, 0, len(fc.Recommendations)),
	}

	if fc.Shortage != nil {
		out.Shortage = &ShortageResponse{
			DemandHours:    fc.Shortage.DemandHours,
			RemainingHours: fc.Shortage.RemainingHours,
			ShortfallHours: fc.Shortage.ShortfallHours,
			Severity:       string(fc.Shortage.Severity),
		}
	}

	for _, gap := range fc.RoleGaps {
		out.RoleGaps = append(out.RoleGaps, RoleGapResponse{
			Role:           string(gap.Role),
			AvailableHours: gap.AvailableHours,
			AllocatedHours: gap.AllocatedHours,
			DemandHours:    gap.DemandHours,
			GapHours:       gap.GapHours,
		})
	}

	for _, rec := range fc.Recommendations {
		out.Recommendations = append(out.Recommendations, PlanRecommendationResponse{
			Action:             string(rec.Action),
			Role:               string(rec.Role),
			SuggestedHeadcount: rec.SuggestedHeadcount,
			Reason:             rec.Reason,
		})
	}

	return out
}
