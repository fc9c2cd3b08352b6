package allocation

import (
	"fmt"
	"strings"
)

const (
	skillScoreCap       = 40.0
	skillBaseScore      = 20.0
	skillMatchPoints    = 10.0
	factorSkillMatch    = "skill_match"
	factorAvailability  = "availability"
	factorCapacity      = "capacity"
	factorPerformance   = "performance"
	factorPriorityAdj   = "priority_adjustment"
)

var expertiseBonus = map[ExpertiseLevel]float64{
	ExpertiseExpert:       5,
	ExpertiseAdvanced:     3,
	ExpertiseIntermediate: 2,
	ExpertiseBeginner:     1,
}

// MatchSkills scores skill overlap between a member and a work item on a
// 40-point scale. A required skill matches when any member skill contains it
// as a case-insensitive substring; a matching expertise entry adds a level
// bonus on top of the flat match points.
func MatchSkills(m Member, item WorkItem) ScoreFactor {
	if len(item.RequiredSkills) == 0 {
		return ScoreFactor{
			Factor: factorSkillMatch,
			Points: skillBaseScore,
			Reason: "no specific skills required",
		}
	}

	total := 0.0
	notes := make([]string, 0, len(item.RequiredSkills))

	for _, required := range item.RequiredSkills {
		req := strings.ToLower(strings.TrimSpace(required))
		if req == "" {
			continue
		}

		matched := ""
		for _, have := range m.Skills {
			if strings.Contains(strings.ToLower(have), req) {
				matched = have
				break
			}
		}
		if matched == "" {
			continue
		}

		total += skillMatchPoints
		if level, ok := lookupExpertise(m.Expertise, req); ok {
			bonus := expertiseBonus[level]
			total += bonus
			notes = append(notes, fmt.Sprintf("%s (+%.0f, %s +%.0f)", matched, skillMatchPoints, level, bonus))
			continue
		}
		notes = append(notes, fmt.Sprintf("%s (+%.0f)", matched, skillMatchPoints))
	}

	if total > skillScoreCap {
		total = skillScoreCap
	}

	reason := "no required skills matched"
	if len(notes) > 0 {
		reason = "matched " + strings.Join(notes, ", ")
	}
	return ScoreFactor{Factor: factorSkillMatch, Points: total, Reason: reason}
}

func lookupExpertise(expertise map[string]ExpertiseLevel, skill string) (ExpertiseLevel, bool) {
	for name, level := range expertise {
		if strings.EqualFold(strings.TrimSpace(name), skill) {
			return level, true
		}
	}
	return "", false
}
