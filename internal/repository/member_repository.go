package repository

import (
	"context"
	"errors"

	"team-align/internal/database"

	"github.com/google/uuid"
)

var ErrTeamNotFound = errors.New("team not found")

// Member is a row-level snapshot of one team member; nullable columns stay
// pointers so the core can apply its documented defaults.
type Member struct {
	ID                  uuid.UUID
	TeamID              uuid.UUID
	Name                string
	Role                string
	Status              string
	UtilizationPct      float64
	WeeklyCapacityHours *float64
	AllocatedHours      float64
	OnTimeDeliveryRate  *float64
}

type MemberSkill struct {
	MemberID  uuid.UUID
	SkillName string
	Expertise *string
}

type MemberRepository interface {
	TeamExists(ctx context.Context, teamID uuid.UUID) (bool, error)
	ListActiveByTeam(ctx context.Context, teamID uuid.UUID) ([]Member, error)
	ListSkillsByMemberIDs(ctx context.Context, memberIDs []uuid.UUID) (map[uuid.UUID][]MemberSkill, error)
}

type PostgresMemberRepository struct {
	db database.DB
}

func NewPostgresMemberRepository(db database.DB) *PostgresMemberRepository {
	return &PostgresMemberRepository{db: db}
}

func (r *PostgresMemberRepository) TeamExists(ctx context.Context, teamID uuid.UUID) (bool, error) {
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)`, teamID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresMemberRepository) ListActiveByTeam(ctx context.Context, teamID uuid.UUID) ([]Member, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.id, m.team_id, m.name, m.role, m.status,
		        COALESCE(m.utilization_pct, 0), m.weekly_capacity_hours,
		        COALESCE(m.allocated_hours, 0), m.on_time_delivery_rate
		 FROM team_members m
		 WHERE m.team_id = $1 AND m.status = 'active'
		 ORDER BY m.name ASC`,
		teamID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Member, 0)
	for rows.Next() {
		var m Member
		if err := rows.Scan(
			&m.ID, &m.TeamID, &m.Name, &m.Role, &m.Status,
			&m.UtilizationPct, &m.WeeklyCapacityHours,
			&m.AllocatedHours, &m.OnTimeDeliveryRate,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMemberRepository) ListSkillsByMemberIDs(ctx context.Context, memberIDs []uuid.UUID) (map[uuid.UUID][]MemberSkill, error) {
	out := make(map[uuid.UUID][]MemberSkill, len(memberIDs))
	if len(memberIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT ms.member_id, s.name, ms.expertise_level
		 FROM member_skills ms
		 JOIN skills s ON s.id = ms.skill_id
		 WHERE ms.member_id = ANY($1)
		 ORDER BY s.name ASC`,
		memberIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ms MemberSkill
		if err := rows.Scan(&ms.MemberID, &ms.SkillName, &ms.Expertise); err != nil {
			return nil, err
		}
		out[ms.MemberID] = append(out[ms.MemberID], ms)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
