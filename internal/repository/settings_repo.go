package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"focalflow/internal/model"
)

type SettingsRepository struct {
	db *pgxpool.Pool
}

func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the user's saved preferences, or the defaults when none exist.
func (r *SettingsRepository) Get(ctx context.Context, userID string) (*model.Settings, error) {
	query := `
        SELECT user_id, theme, currency, week_start, updated_at
        FROM user_settings
        WHERE user_id = $1
    `
	var s model.Settings
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID, &s.Theme, &s.Currency, &s.WeekStart, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.DefaultSettings(userID), nil
		}
		return nil, err
	}
	return &s, nil
}

// Put upserts the user's preferences.
func (r *SettingsRepository) Put(ctx context.Context, s *model.Settings) error {
	query := `
        INSERT INTO user_settings (user_id, theme, currency, week_start, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (user_id)
        DO UPDATE SET theme = $2, currency = $3, week_start = $4, updated_at = NOW()
    `
	_, err := r.db.Exec(ctx, query, s.UserID, s.Theme, s.Currency, s.WeekStart)
	return err
}
