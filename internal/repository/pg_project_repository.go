package repository

import (
	"context"
	"fmt"

	"github.com/ideahub/backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// ProjectRepository is the persistence interface for project ideas.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.ProjectIdea) error
	List(ctx context.Context) ([]*model.ProjectSummary, error)
}

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	db *sqlx.DB
}

// NewPgProjectRepository creates a PgProjectRepository.
func NewPgProjectRepository(db *sqlx.DB) *PgProjectRepository {
	return &PgProjectRepository{db: db}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

// Create inserts a projects row and fills p.ID and p.CreatedAt.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.ProjectIdea) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO projects (team_name, team_size, rep_name, rep_id, rep_email, other_members,
		                       course_code, category, project_type, project_name, description, tools)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at`,
		p.TeamName, p.TeamSize, p.RepName, p.RepID, p.RepEmail, p.OtherMembers,
		p.CourseCode, p.Category, p.ProjectType, p.ProjectName, p.Description, p.Tools,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// List returns every project, newest (highest id) first. The result is never nil.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.ProjectSummary, error) {
	projects := []*model.ProjectSummary{}
	err := r.db.SelectContext(ctx, &projects,
		`SELECT id, team_name, team_size, course_code, category, project_type, project_name,
		        rep_name, description, other_members, tools, created_at
		 FROM projects ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
