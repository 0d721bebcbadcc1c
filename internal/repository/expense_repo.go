package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"focalflow/internal/model"
)

type ExpenseRepository struct {
	db *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `
    id, user_id, title, amount, category, date, notes, created_at, updated_at
`

func scanExpense(row pgx.Row) (*model.Expense, error) {
	var e model.Expense
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Title,
		&e.Amount,
		&e.Category,
		&e.Date,
		&e.Notes,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) Insert(ctx context.Context, e *model.Expense) error {
	query := `
        INSERT INTO expenses (id, user_id, title, amount, category, date, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
    `
	_, err := r.db.Exec(ctx, query, e.ID, e.UserID, e.Title, e.Amount, e.Category, e.Date, e.Notes)
	return err
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id, userID string) (*model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND user_id = $2`
	return scanExpense(r.db.QueryRow(ctx, query, id, userID))
}

// ListByUser returns the user's expenses, most recent date first.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID string) ([]model.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, e *model.Expense) error {
	query := `
        UPDATE expenses
        SET title = $3, amount = $4, category = $5, date = $6, notes = $7, updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, e.ID, e.UserID, e.Title, e.Amount, e.Category, e.Date, e.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
