package allocation

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

type Horizon string

const (
	HorizonWeek    Horizon = "week"
	HorizonMonth   Horizon = "month"
	HorizonQuarter Horizon = "quarter"
)

// weeks returns the number of weekly-capacity multiples covered by the
// horizon; unknown horizons fall back to a month.
func (h Horizon) weeks() float64 {
	switch h {
	case HorizonWeek:
		return 1
	case HorizonQuarter:
		return 12
	default:
		return 4
	}
}

func (h Horizon) Valid() bool {
	switch h {
	case HorizonWeek, HorizonMonth, HorizonQuarter:
		return true
	}
	return false
}

// AttributionMode selects how demand hours are attributed to roles.
type AttributionMode string

const (
	// AttributionBySkill infers each item's roles from its required skills
	// and splits the item's hours evenly across them.
	AttributionBySkill AttributionMode = "skill"
	// AttributionLegacyDeveloper attributes all demand to the developer
	// role, matching the original heuristic. Kept for compatibility only.
	AttributionLegacyDeveloper AttributionMode = "legacy_developer"
)

// DefaultSkillRoles maps required-skill fragments to the role expected to
// cover them. Lookup is case-insensitive on substring; unmatched skills fall
// through to developer.
var DefaultSkillRoles = map[string]Role{
	"design":     RoleDesigner,
	"ui":         RoleDesigner,
	"ux":         RoleDesigner,
	"qa":         RoleQAEngineer,
	"test":       RoleQAEngineer,
	"management": RoleManager,
	"planning":   RoleManager,
}

type GapSeverity string

const (
	SeverityMedium GapSeverity = "medium"
	SeverityHigh   GapSeverity = "high"
)

type PlanAction string

const (
	ActionHire         PlanAction = "hire"
	ActionRedistribute PlanAction = "redistribute"
)

type PlanInput struct {
	Members  []Member
	Upcoming []WorkItem
	// Now anchors the planning window; the zero value means time.Now().UTC().
	Now time.Time
}

type PlanOptions struct {
	Horizon     Horizon
	Attribution AttributionMode
	// SkillRoles overrides DefaultSkillRoles for by-skill attribution.
	SkillRoles map[string]Role
}

type RoleGap struct {
	Role           Role
	AvailableHours float64
	AllocatedHours float64
	DemandHours    float64
	GapHours       float64
}

type ShortageRecord struct {
	DemandHours    float64
	RemainingHours float64
	ShortfallHours float64
	Severity       GapSeverity
}

type PlanRecommendation struct {
	Action             PlanAction
	Role               Role
	SuggestedHeadcount int
	Reason             string
}

type CapacityForecast struct {
	Horizon             Horizon
	PeriodStart         time.Time
	PeriodEnd           time.Time
	TotalAvailableHours float64
	TotalAllocatedHours float64
	UtilizationPct      float64
	DemandHours         float64
	Shortage            *ShortageRecord
	RoleGaps            []RoleGap
	Recommendations     []PlanRecommendation
}

// Plan projects supply versus demand over the horizon and emits per-role gaps
// with hire/redistribute recommendations.
func Plan(in PlanInput, opts PlanOptions) CapacityForecast {
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	horizon := opts.Horizon
	if !horizon.Valid() {
		horizon = HorizonMonth
	}
	mult := horizon.weeks()
	periodEnd := now.Add(time.Duration(mult) * 7 * 24 * time.Hour)

	fc := CapacityForecast{
		Horizon:         horizon,
		PeriodStart:     now,
		PeriodEnd:       periodEnd,
		RoleGaps:        make([]RoleGap, 0),
		Recommendations: make([]PlanRecommendation, 0),
	}

	type roleTotals struct {
		available float64
		allocated float64
		demand    float64
	}
	byRole := make(map[Role]*roleTotals)

	for _, m := range in.Members {
		if m.Status != StatusActive {
			continue
		}
		fc.TotalAvailableHours += resolveWeeklyCapacity(m) * mult
		fc.TotalAllocatedHours += m.AllocatedHours

		rt, ok := byRole[m.Role]
		if !ok {
			rt = &roleTotals{}
			byRole[m.Role] = rt
		}
		rt.available += resolveWeeklyCapacity(m) * mult
		rt.allocated += m.AllocatedHours
	}

	if fc.TotalAvailableHours > 0 {
		fc.UtilizationPct = math.Round(fc.TotalAllocatedHours / fc.TotalAvailableHours * 100)
	}

	for _, item := range in.Upcoming {
		if !dueWithin(item, now, periodEnd) {
			continue
		}
		hours := resolveEstimatedHours(item)
		fc.DemandHours += hours

		for role, share := range attributeDemand(item, hours, opts) {
			rt, ok := byRole[role]
			if !ok {
				rt = &roleTotals{}
				byRole[role] = rt
			}
			rt.demand += share
		}
	}

	remaining := fc.TotalAvailableHours - fc.TotalAllocatedHours
	if fc.DemandHours > remaining {
		severity := SeverityMedium
		if fc.DemandHours > 1.5*remaining {
			severity = SeverityHigh
		}
		fc.Shortage = &ShortageRecord{
			DemandHours:    fc.DemandHours,
			RemainingHours: remaining,
			ShortfallHours: fc.DemandHours - remaining,
			Severity:       severity,
		}
	}

	roles := make([]Role, 0, len(byRole))
	for role := range byRole {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	for _, role := range roles {
		rt := byRole[role]
		roleRemaining := rt.available - rt.allocated

		fc.RoleGaps = append(fc.RoleGaps, RoleGap{
			Role:           role,
			AvailableHours: rt.available,
			AllocatedHours: rt.allocated,
			DemandHours:    rt.demand,
			GapHours:       rt.demand - roleRemaining,
		})

		if rt.demand > roleRemaining {
			shortfall := rt.demand - roleRemaining
			headcount := int(math.Ceil(shortfall / DefaultWeeklyCapacityHours))
			fc.Recommendations = append(fc.Recommendations, PlanRecommendation{
				Action:             ActionHire,
				Role:               role,
				SuggestedHeadcount: headcount,
				Reason:             fmt.Sprintf("demand exceeds remaining %s capacity by %.1fh", role, shortfall),
			})
		} else if roleRemaining > rt.demand*1.5 {
			fc.Recommendations = append(fc.Recommendations, PlanRecommendation{
				Action: ActionRedistribute,
				Role:   role,
				Reason: fmt.Sprintf("%s capacity well above forecast demand (%.1fh spare)", role, roleRemaining-rt.demand),
			})
		}
	}

	return fc
}

// dueWithin includes undated items: the upcoming list is already bounded to
// the planning window by the caller.
func dueWithin(item WorkItem, from, to time.Time) bool {
	if item.DueDate == nil {
		return true
	}
	d := *item.DueDate
	return !d.Before(from) && !d.After(to)
}

func attributeDemand(item WorkItem, hours float64, opts PlanOptions) map[Role]float64 {
	if opts.Attribution == AttributionLegacyDeveloper {
		return map[Role]float64{RoleDeveloper: hours}
	}

	table := opts.SkillRoles
	if table == nil {
		table = DefaultSkillRoles
	}

	seen := make(map[Role]bool)
	roles := make([]Role, 0, 2)
	for _, skill := range item.RequiredSkills {
		role := roleForSkill(skill, table)
		if !seen[role] {
			seen[role] = true
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		roles = append(roles, RoleDeveloper)
	}

	share := hours / float64(len(roles))
	out := make(map[Role]float64, len(roles))
	for _, role := range roles {
		out[role] += share
	}
	return out
}

func roleForSkill(skill string, table map[string]Role) Role {
	s := strings.ToLower(strings.TrimSpace(skill))
	if s == "" {
		return RoleDeveloper
	}
	if role, ok := table[s]; ok {
		return role
	}

	// Fragments are checked in sorted order so a skill matching several
	// entries always resolves the same way.
	fragments := make([]string, 0, len(table))
	for fragment := range table {
		fragments = append(fragments, fragment)
	}
	sort.Strings(fragments)
	for _, fragment := range fragments {
		if strings.Contains(s, strings.ToLower(fragment)) {
			return table[fragment]
		}
	}
	return RoleDeveloper
}
