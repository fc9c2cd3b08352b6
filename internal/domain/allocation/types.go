package allocation

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleDeveloper  Role = "developer"
	RoleDesigner   Role = "designer"
	RoleQAEngineer Role = "qa_engineer"
	RoleManager    Role = "manager"
)

type MemberStatus string

const (
	StatusActive   MemberStatus = "active"
	StatusInactive MemberStatus = "inactive"
	StatusOnLeave  MemberStatus = "on_leave"
)

type ExpertiseLevel string

const (
	ExpertiseBeginner     ExpertiseLevel = "beginner"
	ExpertiseIntermediate ExpertiseLevel = "intermediate"
	ExpertiseAdvanced     ExpertiseLevel = "advanced"
	ExpertiseExpert       ExpertiseLevel = "expert"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type WorkItemStatus string

const (
	WorkItemNotStarted WorkItemStatus = "not_started"
	WorkItemInProgress WorkItemStatus = "in_progress"
	WorkItemBlocked    WorkItemStatus = "blocked"
	WorkItemDone       WorkItemStatus = "done"
)

const (
	DefaultWeeklyCapacityHours = 40.0
	DefaultOnTimeDeliveryRate  = 80.0
	DefaultEstimatedHours      = 8.0
)

// Member is an immutable snapshot of one worker, assembled by the caller.
// Optional fields are pointers; absent values fall back to the documented
// defaults via the resolve helpers.
type Member struct {
	ID                  uuid.UUID
	Name                string
	Role                Role
	Status              MemberStatus
	Skills              []string
	Expertise           map[string]ExpertiseLevel
	UtilizationPct      float64
	WeeklyCapacityHours *float64
	AllocatedHours      float64
	OnTimeDeliveryRate  *float64
}

// WorkItem is an immutable snapshot of one unit of work.
type WorkItem struct {
	ID             uuid.UUID
	Title          string
	RequiredSkills []string
	EstimatedHours *float64
	Priority       Priority
	Status         WorkItemStatus
	DueDate        *time.Time
	AssigneeID     *uuid.UUID
}

// ScoreFactor is one entry of a recommendation's breakdown.
type ScoreFactor struct {
	Factor string
	Points float64
	Reason string
}

type Tier string

const (
	TierHighlyRecommended Tier = "highly_recommended"
	TierRecommended       Tier = "recommended"
	TierPossible          Tier = "possible"
	TierNotRecommended    Tier = "not_recommended"
)

type Recommendation struct {
	MemberID  uuid.UUID
	Name      string
	Role      Role
	Score     float64
	Tier      Tier
	Breakdown []ScoreFactor
}

// TierSummary counts tiers across the full scored set, not the truncated list.
type TierSummary struct {
	HighlyRecommended int
	Recommended       int
	Possible          int
	NotRecommended    int
}

// ExcludedMember reports a candidate that could not be scored. Exclusions
// never abort the batch.
type ExcludedMember struct {
	MemberID uuid.UUID
	Reason   string
}

type RankResult struct {
	Recommendations []Recommendation
	Summary         TierSummary
	Excluded        []ExcludedMember
}

func resolveWeeklyCapacity(m Member) float64 {
	if m.WeeklyCapacityHours != nil {
		return *m.WeeklyCapacityHours
	}
	return DefaultWeeklyCapacityHours
}

func resolveOnTimeRate(m Member) float64 {
	if m.OnTimeDeliveryRate != nil {
		return *m.OnTimeDeliveryRate
	}
	return DefaultOnTimeDeliveryRate
}

func resolveEstimatedHours(w WorkItem) float64 {
	if w.EstimatedHours != nil && *w.EstimatedHours > 0 {
		return *w.EstimatedHours
	}
	return DefaultEstimatedHours
}

var priorityRank = map[Priority]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

func rankPriority(p Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}
