package allocation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func testMember(util float64) Member {
	return Member{
		ID:             uuid.New(),
		Role:           RoleDeveloper,
		Status:         StatusActive,
		UtilizationPct: util,
	}
}

func fptr(v float64) *float64 { return &v }

func TestMatchSkills_NoRequiredSkills(t *testing.T) {
	m := testMember(50)
	m.Skills = []string{"go", "react"}

	f := MatchSkills(m, WorkItem{ID: uuid.New()})
	if f.Points != skillBaseScore {
		t.Fatalf("expected base score %v, got %v", skillBaseScore, f.Points)
	}
}

func TestMatchSkills_MatchWithExpertiseBonus(t *testing.T) {
	m := testMember(50)
	m.Skills = []string{"ReactJS", "Go"}
	m.Expertise = map[string]ExpertiseLevel{"react": ExpertiseExpert}

	f := MatchSkills(m, WorkItem{ID: uuid.New(), RequiredSkills: []string{"react"}})
	if f.Points != 15 {
		t.Fatalf("expected 10 match + 5 expert bonus, got %v", f.Points)
	}
	if !strings.Contains(f.Reason, "ReactJS") {
		t.Fatalf("expected reason to name the matched skill, got %q", f.Reason)
	}
}

func TestMatchSkills_CaseInsensitiveSubstring(t *testing.T) {
	m := testMember(50)
	m.Skills = []string{"PostgreSQL administration"}

	f := MatchSkills(m, WorkItem{ID: uuid.New(), RequiredSkills: []string{"postgresql"}})
	if f.Points != 10 {
		t.Fatalf("expected 10 for substring match, got %v", f.Points)
	}
}

func TestMatchSkills_NoMatch(t *testing.T) {
	m := testMember(50)
	m.Skills = []string{"go"}

	f := MatchSkills(m, WorkItem{ID: uuid.New(), RequiredSkills: []string{"figma"}})
	if f.Points != 0 {
		t.Fatalf("expected 0 for no match, got %v", f.Points)
	}
}

func TestMatchSkills_CappedAt40(t *testing.T) {
	m := testMember(50)
	required := []string{"go", "react", "sql", "docker", "kubernetes", "terraform"}
	m.Skills = append([]string(nil), required...)
	m.Expertise = make(map[string]ExpertiseLevel, len(required))
	for _, s := range required {
		m.Expertise[s] = ExpertiseExpert
	}

	f := MatchSkills(m, WorkItem{ID: uuid.New(), RequiredSkills: required})
	if f.Points != skillScoreCap {
		t.Fatalf("expected cap %v, got %v", skillScoreCap, f.Points)
	}
}

func TestMatchSkills_AlwaysWithinBounds(t *testing.T) {
	members := []Member{
		testMember(0),
		func() Member {
			m := testMember(50)
			m.Skills = []string{"go", "react", "vue", "sql"}
			m.Expertise = map[string]ExpertiseLevel{"go": ExpertiseAdvanced, "vue": ExpertiseBeginner}
			return m
		}(),
	}
	items := []WorkItem{
		{ID: uuid.New()},
		{ID: uuid.New(), RequiredSkills: []string{"go"}},
		{ID: uuid.New(), RequiredSkills: []string{"go", "react", "vue", "sql", "docker"}},
	}

	for _, m := range members {
		for _, item := range items {
			f := MatchSkills(m, item)
			if f.Points < 0 || f.Points > skillScoreCap {
				t.Fatalf("skill score %v outside [0,%v]", f.Points, skillScoreCap)
			}
		}
	}
}
