package usecase

import (
	"team-align/internal/domain/allocation"
	"team-align/internal/repository"
)

// toAllocationMember converts a repository row plus its skill rows into the
// immutable snapshot the core consumes.
func toAllocationMember(m repository.Member, skills []repository.MemberSkill) allocation.Member {
	names := make([]string, 0, len(skills))
	expertise := make(map[string]allocation.ExpertiseLevel, len(skills))
	for _, s := range skills {
		names = append(names, s.SkillName)
		if s.Expertise != nil && *s.Expertise != "" {
			expertise[s.SkillName] = allocation.ExpertiseLevel(*s.Expertise)
		}
	}

	return allocation.Member{
		ID:                  m.ID,
		Name:                m.Name,
		Role:                allocation.Role(m.Role),
		Status:              allocation.MemberStatus(m.Status),
		Skills:              names,
		Expertise:           expertise,
		UtilizationPct:      m.UtilizationPct,
		WeeklyCapacityHours: m.WeeklyCapacityHours,
		AllocatedHours:      m.AllocatedHours,
		OnTimeDeliveryRate:  m.OnTimeDeliveryRate,
	}
}

func toAllocationWorkItem(w repository.WorkItem) allocation.WorkItem {
	return allocation.WorkItem{
		ID:             w.ID,
		Title:          w.Title,
		RequiredSkills: w.RequiredSkills,
		EstimatedHours: w.EstimatedHours,
		Priority:       allocation.Priority(w.Priority),
		Status:         allocation.WorkItemStatus(w.Status),
		DueDate:        w.DueDate,
		AssigneeID:     w.AssigneeID,
	}
}

func toAllocationWorkItems(items []repository.WorkItem) []allocation.WorkItem {
	out := make([]allocation.WorkItem, 0, len(items))
	for _, w := range items {
		out = append(out, toAllocationWorkItem(w))
	}
	return out
}
