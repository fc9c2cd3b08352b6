package allocation

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var planNow = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func plannerMember(role Role, allocated float64) Member {
	return Member{
		ID:                  uuid.New(),
		Role:                role,
		Status:              StatusActive,
		WeeklyCapacityHours: fptr(40),
		AllocatedHours:      allocated,
	}
}

func dueIn(days int) *time.Time {
	d := planNow.Add(time.Duration(days) * 24 * time.Hour)
	return &d
}

func TestPlan_MonthTotals(t *testing.T) {
	in := PlanInput{
		Members: []Member{
			plannerMember(RoleDeveloper, 30),
			plannerMember(RoleDeveloper, 50),
		},
		Now: planNow,
	}

	fc := Plan(in, PlanOptions{Horizon: HorizonMonth})
	// 2 active members x 40h x 4 weeks.
	if fc.TotalAvailableHours != 320 {
		t.Fatalf("expected 320 available hours, got %v", fc.TotalAvailableHours)
	}
	if fc.TotalAllocatedHours != 80 {
		t.Fatalf("expected 80 allocated hours, got %v", fc.TotalAllocatedHours)
	}
	if fc.UtilizationPct != 25 {
		t.Fatalf("expected 25%% utilization, got %v", fc.UtilizationPct)
	}
	if !fc.PeriodEnd.Equal(planNow.Add(4 * 7 * 24 * time.Hour)) {
		t.Fatalf("unexpected period end %v", fc.PeriodEnd)
	}
}

func TestPlan_HorizonMultipliers(t *testing.T) {
	in := PlanInput{Members: []Member{plannerMember(RoleDeveloper, 0)}, Now: planNow}

	cases := []struct {
		horizon Horizon
		want    float64
	}{
		{HorizonWeek, 40},
		{HorizonMonth, 160},
		{HorizonQuarter, 480},
	}
	for _, tc := range cases {
		fc := Plan(in, PlanOptions{Horizon: tc.horizon})
		if fc.TotalAvailableHours != tc.want {
			t.Fatalf("horizon %s: expected %v available hours, got %v", tc.horizon, tc.want, fc.TotalAvailableHours)
		}
	}
}

func TestPlan_EmptyTeamYieldsZeroes(t *testing.T) {
	fc := Plan(PlanInput{Now: planNow}, PlanOptions{Horizon: HorizonWeek})
	if fc.TotalAvailableHours != 0 || fc.UtilizationPct != 0 {
		t.Fatalf("expected zero totals for empty team, got %+v", fc)
	}
}

func TestPlan_DemandWindowFilter(t *testing.T) {
	in := PlanInput{
		Members: []Member{plannerMember(RoleDeveloper, 0)},
		Upcoming: []WorkItem{
			{ID: uuid.New(), EstimatedHours: fptr(10), DueDate: dueIn(3)},
			{ID: uuid.New(), EstimatedHours: fptr(10), DueDate: dueIn(30)}, // past a week horizon
			{ID: uuid.New()}, // undated, default 8h
		},
		Now: planNow,
	}

	fc := Plan(in, PlanOptions{Horizon: HorizonWeek})
	if fc.DemandHours != 18 {
		t.Fatalf("expected 18 demand hours (10 due + 8 undated default), got %v", fc.DemandHours)
	}
}

func TestPlan_ShortageSeverity(t *testing.T) {
	member := plannerMember(RoleDeveloper, 30) // 10h remaining on a week horizon

	medium := Plan(PlanInput{
		Members:  []Member{member},
		Upcoming: []WorkItem{{ID: uuid.New(), EstimatedHours: fptr(12), DueDate: dueIn(2)}},
		Now:      planNow,
	}, PlanOptions{Horizon: HorizonWeek})
	if medium.Shortage == nil || medium.Shortage.Severity != SeverityMedium {
		t.Fatalf("expected medium shortage, got %+v", medium.Shortage)
	}

	high := Plan(PlanInput{
		Members:  []Member{member},
		Upcoming: []WorkItem{{ID: uuid.New(), EstimatedHours: fptr(16), DueDate: dueIn(2)}},
		Now:      planNow,
	}, PlanOptions{Horizon: HorizonWeek})
	if high.Shortage == nil || high.Shortage.Severity != SeverityHigh {
		t.Fatalf("expected high shortage, got %+v", high.Shortage)
	}

	none := Plan(PlanInput{
		Members:  []Member{member},
		Upcoming: []WorkItem{{ID: uuid.New(), EstimatedHours: fptr(5), DueDate: dueIn(2)}},
		Now:      planNow,
	}, PlanOptions{Horizon: HorizonWeek})
	if none.Shortage != nil {
		t.Fatalf("expected no shortage, got %+v", none.Shortage)
	}
}

func TestPlan_AttributionBySkill(t *testing.T) {
	in := PlanInput{
		Members: []Member{
			plannerMember(RoleDeveloper, 40),
			plannerMember(RoleDesigner, 0),
		},
		Upcoming: []WorkItem{
			{ID: uuid.New(), EstimatedHours: fptr(20), RequiredSkills: []string{"go", "ui design"}, DueDate: dueIn(2)},
			{ID: uuid.New(), EstimatedHours: fptr(10), DueDate: dueIn(3)}, // no skills: developer
		},
		Now: planNow,
	}

	fc := Plan(in, PlanOptions{Horizon: HorizonWeek})
	gaps := make(map[Role]RoleGap, len(fc.RoleGaps))
	for _, g := range fc.RoleGaps {
		gaps[g.Role] = g
	}

	// Mixed item splits 20h evenly between developer and designer.
	if got := gaps[RoleDeveloper].DemandHours; got != 20 {
		t.Fatalf("expected 20 developer demand hours, got %v", got)
	}
	if got := gaps[RoleDesigner].DemandHours; got != 10 {
		t.Fatalf("expected 10 designer demand hours, got %v", got)
	}
}

func TestPlan_AttributionLegacyDeveloper(t *testing.T) {
	in := PlanInput{
		Members: []Member{
			plannerMember(RoleDeveloper, 0),
			plannerMember(RoleDesigner, 0),
		},
		Upcoming: []WorkItem{
			{ID: uuid.New(), EstimatedHours: fptr(20), RequiredSkills: []string{"ui design"}, DueDate: dueIn(2)},
		},
		Now: planNow,
	}

	fc := Plan(in, PlanOptions{Horizon: HorizonWeek, Attribution: AttributionLegacyDeveloper})
	for _, g := range fc.RoleGaps {
		switch g.Role {
		case RoleDeveloper:
			if g.DemandHours != 20 {
				t.Fatalf("legacy mode must put all demand on developer, got %v", g.DemandHours)
			}
		case RoleDesigner:
			if g.DemandHours != 0 {
				t.Fatalf("legacy mode must leave designer demand at 0, got %v", g.DemandHours)
			}
		}
	}
}

func TestPlan_HireHeadcount(t *testing.T) {
	in := PlanInput{
		Members: []Member{plannerMember(RoleDeveloper, 40)}, // 0h remaining on a week horizon
		Upcoming: []WorkItem{
			{ID: uuid.New(), EstimatedHours: fptr(50), RequiredSkills: []string{"go"}, DueDate: dueIn(2)},
		},
		Now: planNow,
	}

	fc := Plan(in, PlanOptions{Horizon: HorizonWeek})
	var hire *PlanRecommendation
	for i := range fc.Recommendations {
		if fc.Recommendations[i].Action == ActionHire && fc.Recommendations[i].Role == RoleDeveloper {
			hire = &fc.Recommendations[i]
		}
	}
	if hire == nil {
		t.Fatalf("expected a hire recommendation, got %+v", fc.Recommendations)
	}
	// ceil(50 / 40) = 2.
	if hire.SuggestedHeadcount != 2 {
		t.Fatalf("expected headcount 2, got %d", hire.SuggestedHeadcount)
	}
}

func TestPlan_RedistributeWhenSlack(t *testing.T) {
	in := PlanInput{
		Members: []Member{plannerMember(RoleQAEngineer, 0)},
		Upcoming: []WorkItem{
			{ID: uuid.New(), EstimatedHours: fptr(10), RequiredSkills: []string{"test automation"}, DueDate: dueIn(2)},
		},
		Now: planNow,
	}

	fc := Plan(in, PlanOptions{Horizon: HorizonWeek})
	found := false
	for _, rec := range fc.Recommendations {
		if rec.Action == ActionRedistribute && rec.Role == RoleQAEngineer {
			found = true
		}
	}
	// 40h remaining > 10h demand x 1.5.
	if !found {
		t.Fatalf("expected a redistribute recommendation, got %+v", fc.Recommendations)
	}
}

func TestPlan_IgnoresInactiveMembers(t *testing.T) {
	onLeave := plannerMember(RoleDeveloper, 40)
	onLeave.Status = StatusOnLeave

	fc := Plan(PlanInput{
		Members: []Member{plannerMember(RoleDeveloper, 0), onLeave},
		Now:     planNow,
	}, PlanOptions{Horizon: HorizonWeek})
	if fc.TotalAvailableHours != 40 {
		t.Fatalf("on-leave member counted toward capacity: %v", fc.TotalAvailableHours)
	}
}
