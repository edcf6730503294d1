package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/numeric"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `
	id, name, client, category, status, project_cost, deadline, milestone,
	team_members, created_at, updated_at
`

func scanProject(row pgx.Row) (project.Project, error) {
	var (
		p    project.Project
		team []byte
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Client, &p.Category, &p.Status, &p.ProjectCost, &p.Deadline, &p.Milestone,
		&team, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return project.Project{}, err
	}

	p.TeamMembers = project.TeamMembers{}
	if len(team) > 0 {
		if err := json.Unmarshal(team, &p.TeamMembers); err != nil {
			return project.Project{}, fmt.Errorf("failed to decode team members: %w", err)
		}
	}
	return p, nil
}

func (r *projectRepository) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to generate project id: %w", err)
	}
	newProject.ID = id.String()

	team, err := encodeTeam(newProject.TeamMembers)
	if err != nil {
		return project.Project{}, err
	}

	query := `
		INSERT INTO projects (id, name, client, category, status, project_cost, deadline, milestone, team_members)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`
	err = q.QueryRow(ctx, query,
		newProject.ID, newProject.Name, newProject.Client, newProject.Category, newProject.Status,
		newProject.ProjectCost, newProject.Deadline, newProject.Milestone, team,
	).Scan(&newProject.CreatedAt, &newProject.UpdatedAt)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	if err := r.replacePayments(ctx, q, newProject.ID, newProject.MilestonePayments); err != nil {
		return project.Project{}, err
	}

	return newProject, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}

	payments, err := r.listPayments(ctx, q, []string{p.ID})
	if err != nil {
		return project.Project{}, err
	}
	p.MilestonePayments = orEmpty(payments[p.ID])

	return p, nil
}

func (r *projectRepository) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	ids := make([]string, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	if len(ids) == 0 {
		return projects, nil
	}

	payments, err := r.listPayments(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].MilestonePayments = orEmpty(payments[projects[i].ID])
	}

	return projects, nil
}

// Update must run inside WithTransaction so the project row and its
// milestone rows change together.
func (r *projectRepository) Update(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	team, err := encodeTeam(p.TeamMembers)
	if err != nil {
		return project.Project{}, err
	}

	query := `
		UPDATE projects
		SET name = $2, client = $3, category = $4, status = $5, project_cost = $6,
			deadline = $7, milestone = $8, team_members = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = q.QueryRow(ctx, query,
		p.ID, p.Name, p.Client, p.Category, p.Status, p.ProjectCost,
		p.Deadline, p.Milestone, team,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	if err := r.replacePayments(ctx, q, p.ID, p.MilestonePayments); err != nil {
		return project.Project{}, err
	}

	return p, nil
}

func (r *projectRepository) UpdateStatus(ctx context.Context, id string, status project.Status) error {
	q := GetQuerier(ctx, r.db)

	cmd, err := q.Exec(ctx, `UPDATE projects SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update project status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// Delete removes the project; milestone rows go with it via ON DELETE CASCADE
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	cmd, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) replacePayments(ctx context.Context, q database.Querier, projectID string, payments []project.MilestonePayment) error {
	if _, err := q.Exec(ctx, `DELETE FROM project_milestone_payments WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to clear milestone payments: %w", err)
	}

	query := `
		INSERT INTO project_milestone_payments (project_id, position, amount, description, payment_mode, paid)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i, m := range payments {
		amount := decimal.NullDecimal{Decimal: m.Amount.Value, Valid: m.Amount.Valid}
		if _, err := q.Exec(ctx, query, projectID, i, amount, m.Description, m.PaymentMode, m.Paid); err != nil {
			return fmt.Errorf("failed to insert milestone payment %d: %w", i, err)
		}
	}
	return nil
}

func (r *projectRepository) listPayments(ctx context.Context, q database.Querier, projectIDs []string) (map[string][]project.MilestonePayment, error) {
	query := `
		SELECT project_id, amount, description, payment_mode, paid
		FROM project_milestone_payments
		WHERE project_id = ANY($1)
		ORDER BY project_id, position
	`
	rows, err := q.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestone payments: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]project.MilestonePayment, len(projectIDs))
	for rows.Next() {
		var (
			projectID string
			amount    decimal.NullDecimal
			m         project.MilestonePayment
		)
		if err := rows.Scan(&projectID, &amount, &m.Description, &m.PaymentMode, &m.Paid); err != nil {
			return nil, fmt.Errorf("failed to scan milestone payment: %w", err)
		}
		if amount.Valid {
			m.Amount = numeric.From(amount.Decimal)
		}
		out[projectID] = append(out[projectID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate milestone payments: %w", err)
	}

	return out, nil
}

func encodeTeam(team project.TeamMembers) ([]byte, error) {
	if team == nil {
		team = project.TeamMembers{}
	}
	b, err := json.Marshal(team)
	if err != nil {
		return nil, fmt.Errorf("failed to encode team members: %w", err)
	}
	return b, nil
}

func orEmpty(payments []project.MilestonePayment) []project.MilestonePayment {
	if payments == nil {
		return []project.MilestonePayment{}
	}
	return payments
}
