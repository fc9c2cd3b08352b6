package allocation

import (
	"sort"

	"github.com/google/uuid"
)

const (
	DefaultMaxUtilizationPct = 90.0

	optimalFloorPct        = 60.0
	assignableOptimalPct   = 80.0
	maxTasksPerOverloaded  = 3
	maxReassignmentTargets = 2
	maxUnassignedItems     = 10
	maxAssignmentTargets   = 3
)

// compatibleRoles may receive reassignments across role boundaries.
var compatibleRoles = map[Role]bool{
	RoleDeveloper:  true,
	RoleQAEngineer: true,
}

type Bucket string

const (
	BucketOverutilized  Bucket = "overutilized"
	BucketOptimal       Bucket = "optimal"
	BucketUnderutilized Bucket = "underutilized"
)

// BalanceInput is a pre-resolved team snapshot. ActiveTasks maps each member
// to their current task list so Balance never performs lookups mid-computation.
type BalanceInput struct {
	Members     []Member
	ActiveTasks map[uuid.UUID][]WorkItem
	Unassigned  []WorkItem
}

type BalanceOptions struct {
	// MaxUtilizationPct is the overutilization threshold; 0 means 90.
	MaxUtilizationPct float64
}

type BucketedMember struct {
	MemberID       uuid.UUID
	Name           string
	Role           Role
	UtilizationPct float64
}

type ReassignmentTarget struct {
	MemberID                uuid.UUID
	Name                    string
	Role                    Role
	UtilizationPct          float64
	ProjectedUtilizationPct float64
}

type ReassignmentSuggestion struct {
	FromMemberID uuid.UUID
	WorkItemID   uuid.UUID
	Title        string
	Priority     Priority
	Targets      []ReassignmentTarget
}

type AssignmentSuggestion struct {
	WorkItemID uuid.UUID
	Title      string
	Priority   Priority
	Targets    []BucketedMember
}

type BalanceResult struct {
	MaxUtilizationPct float64
	Overutilized      []BucketedMember
	Optimal           []BucketedMember
	Underutilized     []BucketedMember
	Reassignments     []ReassignmentSuggestion
	Assignments       []AssignmentSuggestion
}

// Balance partitions the active members of a team snapshot into utilization
// buckets and proposes reassignments from overutilized members plus best-fit
// targets for unassigned work. The partition is total and exclusive.
func Balance(in BalanceInput, opts BalanceOptions) BalanceResult {
	maxUtil := opts.MaxUtilizationPct
	if maxUtil <= 0 {
		maxUtil = DefaultMaxUtilizationPct
	}

	res := BalanceResult{
		MaxUtilizationPct: maxUtil,
		Overutilized:      make([]BucketedMember, 0),
		Optimal:           make([]BucketedMember, 0),
		Underutilized:     make([]BucketedMember, 0),
		Reassignments:     make([]ReassignmentSuggestion, 0),
		Assignments:       make([]AssignmentSuggestion, 0),
	}

	active := make([]Member, 0, len(in.Members))
	for _, m := range in.Members {
		if m.Status != StatusActive {
			continue
		}
		active = append(active, m)

		entry := BucketedMember{MemberID: m.ID, Name: m.Name, Role: m.Role, UtilizationPct: m.UtilizationPct}
		switch classifyUtilization(m.UtilizationPct, maxUtil) {
		case BucketOverutilized:
			res.Overutilized = append(res.Overutilized, entry)
		case BucketOptimal:
			res.Optimal = append(res.Optimal, entry)
		default:
			res.Underutilized = append(res.Underutilized, entry)
		}
	}

	memberByID := make(map[uuid.UUID]Member, len(active))
	for _, m := range active {
		memberByID[m.ID] = m
	}

	res.Reassignments = proposeReassignments(res.Overutilized, res.Underutilized, memberByID, in.ActiveTasks)
	res.Assignments = proposeAssignments(res.Underutilized, res.Optimal, in.Unassigned)

	return res
}

func classifyUtilization(util, maxUtil float64) Bucket {
	switch {
	case util > maxUtil:
		return BucketOverutilized
	case util >= optimalFloorPct:
		return BucketOptimal
	default:
		return BucketUnderutilized
	}
}

func proposeReassignments(
	over, under []BucketedMember,
	memberByID map[uuid.UUID]Member,
	activeTasks map[uuid.UUID][]WorkItem,
) []ReassignmentSuggestion {
	out := make([]ReassignmentSuggestion, 0)

	for _, o := range over {
		tasks := movableTasks(activeTasks[o.MemberID])
		if len(tasks) > maxTasksPerOverloaded {
			tasks = tasks[:maxTasksPerOverloaded]
		}

		for _, task := range tasks {
			targets := make([]ReassignmentTarget, 0, maxReassignmentTargets)
			for _, u := range under {
				if u.Role != o.Role && !compatibleRoles[u.Role] {
					continue
				}
				cand, ok := memberByID[u.MemberID]
				if !ok {
					continue
				}
				projected := u.UtilizationPct + resolveEstimatedHours(task)/resolveWeeklyCapacity(cand)*100
				targets = append(targets, ReassignmentTarget{
					MemberID:                u.MemberID,
					Name:                    u.Name,
					Role:                    u.Role,
					UtilizationPct:          u.UtilizationPct,
					ProjectedUtilizationPct: projected,
				})
				if len(targets) == maxReassignmentTargets {
					break
				}
			}
			if len(targets) == 0 {
				continue
			}
			out = append(out, ReassignmentSuggestion{
				FromMemberID: o.MemberID,
				WorkItemID:   task.ID,
				Title:        task.Title,
				Priority:     task.Priority,
				Targets:      targets,
			})
		}
	}

	return out
}

// movableTasks keeps active and not-started tasks, ordered by priority then
// due date ascending with undated tasks last.
func movableTasks(tasks []WorkItem) []WorkItem {
	out := make([]WorkItem, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == WorkItemNotStarted || t.Status == WorkItemInProgress {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := rankPriority(out[i].Priority), rankPriority(out[j].Priority)
		if pi != pj {
			return pi < pj
		}
		di, dj := out[i].DueDate, out[j].DueDate
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})

	return out
}

func proposeAssignments(under, optimal []BucketedMember, unassigned []WorkItem) []AssignmentSuggestion {
	pool := make([]BucketedMember, 0, len(under)+len(optimal))
	pool = append(pool, under...)
	for _, m := range optimal {
		if m.UtilizationPct < assignableOptimalPct {
			pool = append(pool, m)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].UtilizationPct < pool[j].UtilizationPct
	})

	out := make([]AssignmentSuggestion, 0)
	for _, item := range unassigned {
		if len(out) == maxUnassignedItems {
			break
		}
		if item.AssigneeID != nil {
			continue
		}
		if item.Status != WorkItemNotStarted && item.Status != WorkItemInProgress {
			continue
		}

		targets := pool
		if len(targets) > maxAssignmentTargets {
			targets = targets[:maxAssignmentTargets]
		}
		if len(targets) == 0 {
			continue
		}

		out = append(out, AssignmentSuggestion{
			WorkItemID: item.ID,
			Title:      item.Title,
			Priority:   item.Priority,
			Targets:    append([]BucketedMember(nil), targets...),
		})
	}

	return out
}
