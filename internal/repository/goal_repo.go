package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"focalflow/internal/model"
)

type GoalRepository struct {
	db *pgxpool.Pool
}

func NewGoalRepository(db *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{db: db}
}

const goalColumns = `
    id, user_id, title, target_amount, current_amount, deadline, icon,
    created_at, updated_at
`

func scanGoal(row pgx.Row) (*model.Goal, error) {
	var g model.Goal
	err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.Title,
		&g.TargetAmount,
		&g.CurrentAmount,
		&g.Deadline,
		&g.Icon,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GoalRepository) Insert(ctx context.Context, g *model.Goal) error {
	query := `
        INSERT INTO goals (id, user_id, title, target_amount, current_amount,
            deadline, icon, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
    `
	_, err := r.db.Exec(ctx, query,
		g.ID, g.UserID, g.Title, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Icon,
	)
	return err
}

func (r *GoalRepository) FindByID(ctx context.Context, id, userID string) (*model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`
	return scanGoal(r.db.QueryRow(ctx, query, id, userID))
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID string) ([]model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []model.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) Update(ctx context.Context, g *model.Goal) error {
	query := `
        UPDATE goals
        SET title = $3, target_amount = $4, current_amount = $5,
            deadline = $6, icon = $7, updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query,
		g.ID, g.UserID, g.Title, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Icon,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AddProgress increments current_amount and returns the updated goal.
func (r *GoalRepository) AddProgress(ctx context.Context, id, userID string, amount float64) (*model.Goal, error) {
	query := `
        UPDATE goals
        SET current_amount = current_amount + $3, updated_at = NOW()
        WHERE id = $1 AND user_id = $2
        RETURNING ` + goalColumns
	return scanGoal(r.db.QueryRow(ctx, query, id, userID, amount))
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
