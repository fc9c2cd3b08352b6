package dto

import (
	"github.com/google/uuid"

	"team-align/internal/domain/allocation"
)

type BucketedMemberResponse struct {
	MemberID       uuid.UUID `json:"member_id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	UtilizationPct float64   `json:"utilization_pct"`
}

type ReassignmentTargetResponse struct {
	MemberID                uuid.UUID `json:"member_id"`
	Name                    string    `json:"name"`
	Role                    string    `json:"role"`
	UtilizationPct          float64   `json:"utilization_pct"`
	ProjectedUtilizationPct float64   `json:"projected_utilization_pct"`
}

type ReassignmentSuggestionResponse struct {
	FromMemberID uuid.UUID                    `json:"from_member_id"`
	WorkItemID   uuid.UUID                    `json:"work_item_id"`
	Title        string                       `json:"title"`
	Priority     string                       `json:"priority"`
	Targets      []ReassignmentTargetResponse `json:"targets"`
}

type AssignmentTargetResponse struct {
	MemberID       uuid.UUID `json:"member_id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	UtilizationPct float64   `json:"utilization_pct"`
}

type AssignmentSuggestionResponse struct {
	WorkItemID uuid.UUID                  `json:"work_item_id"`
	Title      string                     `json:"title"`
	Priority   string                     `json:"priority"`
	Targets    []AssignmentTargetResponse `json:"targets"`
}

type BalanceResultResponse struct {
	MaxUtilizationPct float64                          `json:"max_utilization_pct"`
	Overutilized      []BucketedMemberResponse         `json:"overutilized"`
	Optimal           []BucketedMemberResponse         `json:"optimal"`
	Underutilized     []BucketedMemberResponse         `json:"underutilized"`
	Reassignments     []ReassignmentSuggestionResponse `json:"reassignments"`
	Assignments       []AssignmentSuggestionResponse   `json:"assignments"`
}

func FromBalanceResult(res allocation.BalanceResult) BalanceResultResponse {
	out := BalanceResultResponse{
		MaxUtilizationPct: res.MaxUtilizationPct,
		Overutilized:      bucketResponses(res.Overutilized),
		Optimal:           bucketResponses(res.Optimal),
		Underutilized:     bucketResponses(res.Underutilized),
		Reassignments:     make([]ReassignmentSuggestionResponse, 0, len(res.Reassignments)),
		Assignments:       make([]AssignmentSuggestionResponse, 0, len(res.Assignments)),
	}

	for _, sug := range res.Reassignments {
		targets := make([]ReassignmentTargetResponse, 0, len(sug.Targets))
		for _, tgt := range sug.Targets {
			targets = append(targets, ReassignmentTargetResponse{
				MemberID:                tgt.MemberID,
				Name:                    tgt.Name,
				Role:                    string(tgt.Role),
				UtilizationPct:          tgt.UtilizationPct,
				ProjectedUtilizationPct: tgt.ProjectedUtilizationPct,
			})
		}
		out.Reassignments = append(out.Reassignments, ReassignmentSuggestionResponse{
			FromMemberID: sug.FromMemberID,
			WorkItemID:   sug.WorkItemID,
			Title:        sug.Title,
			Priority:     string(sug.Priority),
			Targets:      targets,
		})
	}

	for _, sug := range res.Assignments {
		targets := make([]AssignmentTargetResponse, 0, len(sug.Targets))
		for _, tgt := range sug.Targets {
			targets = append(targets, AssignmentTargetResponse{
				MemberID:       tgt.MemberID,
				Name:           tgt.Name,
				Role:           string(tgt.Role),
				UtilizationPct: tgt.UtilizationPct,
			})
		}
		out.Assignments = append(out.Assignments, AssignmentSuggestionResponse{
			WorkItemID: sug.WorkItemID,
			Title:      sug.Title,
			Priority:   string(sug.Priority),
			Targets:    targets,
		})
	}

	return out
}

func bucketResponses(members []allocation.BucketedMember) []BucketedMemberResponse {
	out := make([]BucketedMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, BucketedMemberResponse{
			MemberID:       m.MemberID,
			Name:           m.Name,
			Role:           string(m.Role),
			UtilizationPct: m.UtilizationPct,
		})
	}
	return out
}
