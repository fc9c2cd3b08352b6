package allocation

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func balancerMember(role Role, util float64) Member {
	return Member{
		ID:                  uuid.New(),
		Role:                role,
		Status:              StatusActive,
		UtilizationPct:      util,
		WeeklyCapacityHours: fptr(40),
	}
}

func TestBalance_PartitionExhaustiveAndExclusive(t *testing.T) {
	members := []Member{
		balancerMember(RoleDeveloper, 95),
		balancerMember(RoleDeveloper, 90),
		balancerMember(RoleDesigner, 60),
		balancerMember(RoleQAEngineer, 59.9),
		balancerMember(RoleManager, 0),
	}
	inactive := balancerMember(RoleDeveloper, 50)
	inactive.Status = StatusOnLeave

	res := Balance(BalanceInput{Members: append(members, inactive)}, BalanceOptions{})

	total := len(res.Overutilized) + len(res.Optimal) + len(res.Underutilized)
	if total != len(members) {
		t.Fatalf("expected %d bucketed active members, got %d", len(members), total)
	}

	seen := make(map[uuid.UUID]int)
	for _, bucket := range [][]BucketedMember{res.Overutilized, res.Optimal, res.Underutilized} {
		for _, m := range bucket {
			seen[m.MemberID]++
		}
	}
	for _, m := range members {
		if seen[m.ID] != 1 {
			t.Fatalf("member %s appears in %d buckets", m.ID, seen[m.ID])
		}
	}
	if seen[inactive.ID] != 0 {
		t.Fatalf("inactive member must not be bucketed")
	}

	// 90 is not above the default threshold; 60 sits in optimal.
	if len(res.Overutilized) != 1 || len(res.Optimal) != 2 || len(res.Underutilized) != 2 {
		t.Fatalf("unexpected partition: over=%d optimal=%d under=%d",
			len(res.Overutilized), len(res.Optimal), len(res.Underutilized))
	}
}

func TestBalance_ReferenceReassignmentScenario(t *testing.T) {
	over := balancerMember(RoleDeveloper, 95)
	under := balancerMember(RoleDeveloper, 20)
	task := WorkItem{
		ID:             uuid.New(),
		Title:          "api migration",
		EstimatedHours: fptr(10),
		Priority:       PriorityHigh,
		Status:         WorkItemInProgress,
	}

	res := Balance(BalanceInput{
		Members:     []Member{over, under},
		ActiveTasks: map[uuid.UUID][]WorkItem{over.ID: {task}},
	}, BalanceOptions{})

	if len(res.Reassignments) != 1 {
		t.Fatalf("expected exactly 1 reassignment suggestion, got %d", len(res.Reassignments))
	}
	sug := res.Reassignments[0]
	if sug.FromMemberID != over.ID || sug.WorkItemID != task.ID {
		t.Fatalf("suggestion references wrong member or task: %+v", sug)
	}
	if len(sug.Targets) != 1 {
		t.Fatalf("expected 1 target, got %d", len(sug.Targets))
	}
	// 20 + 10/40*100 = 45.
	if got := sug.Targets[0].ProjectedUtilizationPct; got != 45 {
		t.Fatalf("expected projected utilization 45, got %v", got)
	}
}

func TestBalance_ReassignmentRoleCompatibility(t *testing.T) {
	over := balancerMember(RoleDesigner, 95)
	sameRole := balancerMember(RoleDesigner, 30)
	compatible := balancerMember(RoleQAEngineer, 10)
	incompatible := balancerMember(RoleManager, 5)
	task := WorkItem{ID: uuid.New(), Status: WorkItemNotStarted, Priority: PriorityMedium}

	res := Balance(BalanceInput{
		Members:     []Member{over, sameRole, compatible, incompatible},
		ActiveTasks: map[uuid.UUID][]WorkItem{over.ID: {task}},
	}, BalanceOptions{})

	if len(res.Reassignments) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(res.Reassignments))
	}
	for _, target := range res.Reassignments[0].Targets {
		if target.MemberID == incompatible.ID {
			t.Fatalf("manager must not receive designer work")
		}
	}
	if len(res.Reassignments[0].Targets) != 2 {
		t.Fatalf("expected same-role and compatible-role targets, got %d", len(res.Reassignments[0].Targets))
	}
}

func TestBalance_TaskOrderingAndLimits(t *testing.T) {
	over := balancerMember(RoleDeveloper, 95)
	under := balancerMember(RoleDeveloper, 10)

	soon := time.Now().Add(24 * time.Hour)
	later := time.Now().Add(72 * time.Hour)
	tasks := []WorkItem{
		{ID: uuid.New(), Priority: PriorityLow, Status: WorkItemNotStarted},
		{ID: uuid.New(), Priority: PriorityUrgent, Status: WorkItemInProgress, DueDate: &later},
		{ID: uuid.New(), Priority: PriorityUrgent, Status: WorkItemInProgress, DueDate: &soon},
		{ID: uuid.New(), Priority: PriorityHigh, Status: WorkItemNotStarted},
		{ID: uuid.New(), Priority: PriorityMedium, Status: WorkItemDone},
	}

	res := Balance(BalanceInput{
		Members:     []Member{over, under},
		ActiveTasks: map[uuid.UUID][]WorkItem{over.ID: tasks},
	}, BalanceOptions{})

	if len(res.Reassignments) != maxTasksPerOverloaded {
		t.Fatalf("expected %d suggestions, got %d", maxTasksPerOverloaded, len(res.Reassignments))
	}
	if res.Reassignments[0].WorkItemID != tasks[2].ID {
		t.Fatalf("expected urgent task with earliest due date first")
	}
	if res.Reassignments[1].WorkItemID != tasks[1].ID {
		t.Fatalf("expected later urgent task second")
	}
	if res.Reassignments[2].WorkItemID != tasks[3].ID {
		t.Fatalf("expected high-priority task third")
	}
}

func TestBalance_UnassignedSuggestions(t *testing.T) {
	under := balancerMember(RoleDeveloper, 10)
	optimalLow := balancerMember(RoleDeveloper, 70)
	optimalHigh := balancerMember(RoleDeveloper, 85)

	assignee := uuid.New()
	unassigned := []WorkItem{
		{ID: uuid.New(), Status: WorkItemNotStarted, Priority: PriorityHigh},
		{ID: uuid.New(), Status: WorkItemInProgress, Priority: PriorityMedium},
		{ID: uuid.New(), Status: WorkItemDone, Priority: PriorityLow},
		{ID: uuid.New(), Status: WorkItemNotStarted, AssigneeID: &assignee},
	}

	res := Balance(BalanceInput{
		Members:    []Member{under, optimalLow, optimalHigh},
		Unassigned: unassigned,
	}, BalanceOptions{})

	if len(res.Assignments) != 2 {
		t.Fatalf("expected suggestions for the 2 assignable items, got %d", len(res.Assignments))
	}
	for _, sug := range res.Assignments {
		if len(sug.Targets) != 2 {
			t.Fatalf("expected underutilized + sub-80 optimal targets, got %d", len(sug.Targets))
		}
		if sug.Targets[0].MemberID != under.ID {
			t.Fatalf("targets must be sorted by ascending utilization")
		}
		for _, target := range sug.Targets {
			if target.MemberID == optimalHigh.ID {
				t.Fatalf("optimal member at 85%% must not be suggested")
			}
		}
	}
}

func TestBalance_CustomThreshold(t *testing.T) {
	m := balancerMember(RoleDeveloper, 85)

	res := Balance(BalanceInput{Members: []Member{m}}, BalanceOptions{MaxUtilizationPct: 80})
	if len(res.Overutilized) != 1 {
		t.Fatalf("expected member above custom threshold to be overutilized")
	}
}
