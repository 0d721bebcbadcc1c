package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"focalflow/internal/model"
	"focalflow/pkg/metrics"
)

type ProjectRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectRepository(db *pgxpool.Pool, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		logger: logger,
	}
}

const projectColumns = `
    id, user_id, title, type, client_name, price, quantity,
    link, source_link, notes, status, video_steps, thumbnail_steps,
    start_date, deadline, delay_days, created_at, updated_at
`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Type,
		&p.ClientName,
		&p.Price,
		&p.Quantity,
		&p.Link,
		&p.SourceLink,
		&p.Notes,
		&p.Status,
		&p.VideoSteps,
		&p.ThumbnailSteps,
		&p.StartDate,
		&p.Deadline,
		&p.DelayDays,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert stores a new project.
func (r *ProjectRepository) Insert(ctx context.Context, p *model.Project) error {
	r.logger.Debug("Inserting project",
		zap.String("user_id", p.UserID),
		zap.String("title", p.Title),
	)

	query := `
        INSERT INTO projects (
            id, user_id, title, type, client_name, price, quantity,
            link, source_link, notes, status, video_steps, thumbnail_steps,
            start_date, deadline, delay_days, created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
    `
	_, err := r.db.Exec(ctx, query,
		p.ID,
		p.UserID,
		p.Title,
		p.Type,
		p.ClientName,
		p.Price,
		p.Quantity,
		p.Link,
		p.SourceLink,
		p.Notes,
		p.Status,
		p.VideoSteps,
		p.ThumbnailSteps,
		p.StartDate,
		p.Deadline,
		p.DelayDays,
	)
	if err != nil {
		r.logger.Error("Failed to insert project", zap.Error(err))
		return err
	}

	r.logger.Info("Project inserted successfully",
		zap.String("id", p.ID),
		zap.String("user_id", p.UserID),
	)
	return nil
}

// FindByID returns one project owned by the user.
func (r *ProjectRepository) FindByID(ctx context.Context, id, userID string) (*model.Project, error) {
	start := time.Now()
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND user_id = $2`
	p, err := scanProject(r.db.QueryRow(ctx, query, id, userID))
	metrics.RecordDBQueryDuration("select", "projects", time.Since(start))
	return p, err
}

// ListByUser returns the user's projects, newest first.
func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC`

	start := time.Now()
	defer func() {
		metrics.RecordDBQueryDuration("select", "projects", time.Since(start))
	}()

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// Update replaces the editable fields of a project.
func (r *ProjectRepository) Update(ctx context.Context, p *model.Project) error {
	query := `
        UPDATE projects
        SET title = $3, type = $4, client_name = $5, price = $6, quantity = $7,
            link = $8, source_link = $9, notes = $10, status = $11,
            video_steps = $12, thumbnail_steps = $13,
            start_date = $14, deadline = $15, delay_days = $16, updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query,
		p.ID,
		p.UserID,
		p.Title,
		p.Type,
		p.ClientName,
		p.Price,
		p.Quantity,
		p.Link,
		p.SourceLink,
		p.Notes,
		p.Status,
		p.VideoSteps,
		p.ThumbnailSteps,
		p.StartDate,
		p.Deadline,
		p.DelayDays,
	)
	if err != nil {
		r.logger.Error("Failed to update project", zap.String("id", p.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateStatus sets the lifecycle status only.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id, userID string, status model.ProjectStatus) error {
	query := `
        UPDATE projects
        SET status = $3, updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, userID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// UpdateSteps replaces the step-completion map for the project's type.
func (r *ProjectRepository) UpdateSteps(ctx context.Context, p *model.Project) error {
	query := `
        UPDATE projects
        SET video_steps = $3, thumbnail_steps = $4, updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, p.ID, p.UserID, p.VideoSteps, p.ThumbnailSteps)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a project. Hard delete, no soft-delete flag.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
