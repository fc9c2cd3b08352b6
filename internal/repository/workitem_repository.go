package repository

import (
	"context"
	"errors"
	"time"

	"team-align/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrWorkItemNotFound = errors.New("work item not found")

type WorkItem struct {
	ID             uuid.UUID
	TeamID         uuid.UUID
	Title          string
	RequiredSkills []string
	EstimatedHours *float64
	Priority       string
	Status         string
	DueDate        *time.Time
	AssigneeID     *uuid.UUID
}

type WorkItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (WorkItem, error)
	ListUnassignedByTeam(ctx context.Context, teamID uuid.UUID, limit int) ([]WorkItem, error)
	ListActiveByAssignees(ctx context.Context, memberIDs []uuid.UUID) (map[uuid.UUID][]WorkItem, error)
	ListUpcomingByTeam(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]WorkItem, error)
}

type PostgresWorkItemRepository struct {
	db database.DB
}

func NewPostgresWorkItemRepository(db database.DB) *PostgresWorkItemRepository {
	return &PostgresWorkItemRepository{db: db}
}

const workItemColumns = `w.id, w.team_id, w.title,
	COALESCE(array_agg(s.name) FILTER (WHERE s.name IS NOT NULL), '{}'),
	w.estimated_hours, w.priority, w.status, w.due_date, w.assignee_id`

const workItemJoins = `
	FROM work_items w
	LEFT JOIN work_item_skills ws ON ws.work_item_id = w.id
	LEFT JOIN skills s ON s.id = ws.skill_id`

func scanWorkItem(row database.Row) (WorkItem, error) {
	var w WorkItem
	err := row.Scan(
		&w.ID, &w.TeamID, &w.Title, &w.RequiredSkills,
		&w.EstimatedHours, &w.Priority, &w.Status, &w.DueDate, &w.AssigneeID,
	)
	return w, err
}

func (r *PostgresWorkItemRepository) FindByID(ctx context.Context, id uuid.UUID) (WorkItem, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+workItemColumns+workItemJoins+`
		 WHERE w.id = $1
		 GROUP BY w.id`,
		id,
	)

	w, err := scanWorkItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return WorkItem{}, ErrWorkItemNotFound
		}
		return WorkItem{}, err
	}
	return w, nil
}

func (r *PostgresWorkItemRepository) ListUnassignedByTeam(ctx context.Context, teamID uuid.UUID, limit int) ([]WorkItem, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+workItemColumns+workItemJoins+`
		 WHERE w.team_id = $1
		   AND w.assignee_id IS NULL
		   AND w.status IN ('not_started', 'in_progress')
		 GROUP BY w.id
		 ORDER BY w.due_date ASC NULLS LAST, w.created_at ASC
		 LIMIT $2`,
		teamID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkItems(rows)
}

func (r *PostgresWorkItemRepository) ListActiveByAssignees(ctx context.Context, memberIDs []uuid.UUID) (map[uuid.UUID][]WorkItem, error) {
	out := make(map[uuid.UUID][]WorkItem, len(memberIDs))
	if len(memberIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+workItemColumns+workItemJoins+`
		 WHERE w.assignee_id = ANY($1)
		   AND w.status IN ('not_started', 'in_progress')
		 GROUP BY w.id
		 ORDER BY w.due_date ASC NULLS LAST`,
		memberIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := collectWorkItems(rows)
	if err != nil {
		return nil, err
	}
	for _, w := range items {
		if w.AssigneeID == nil {
			continue
		}
		out[*w.AssigneeID] = append(out[*w.AssigneeID], w)
	}
	return out, nil
}

func (r *PostgresWorkItemRepository) ListUpcomingByTeam(ctx context.Context, teamID uuid.UUID, from, to time.Time) ([]WorkItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+workItemColumns+workItemJoins+`
		 WHERE w.team_id = $1
		   AND w.status IN ('not_started', 'in_progress', 'blocked')
		   AND (w.due_date IS NULL OR w.due_date BETWEEN $2 AND $3)
		 GROUP BY w.id
		 ORDER BY w.due_date ASC NULLS LAST`,
		teamID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectWorkItems(rows)
}

func collectWorkItems(rows database.Rows) ([]WorkItem, error) {
	out := make([]WorkItem, 0)
	for rows.Next() {
		var w WorkItem
		if err := rows.Scan(
			&w.ID, &w.TeamID, &w.Title, &w.RequiredSkills,
			&w.EstimatedHours, &w.Priority, &w.Status, &w.DueDate, &w.AssigneeID,
		); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
