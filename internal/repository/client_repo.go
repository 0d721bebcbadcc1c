package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"focalflow/internal/model"
)

type ClientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `
    id, user_id, name, email, phone, company, youtube_url, instagram_url,
    notes, created_at, updated_at
`

func scanClient(row pgx.Row) (*model.Client, error) {
	var c model.Client
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Company,
		&c.YoutubeURL,
		&c.InstagramURL,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Insert(ctx context.Context, c *model.Client) error {
	query := `
        INSERT INTO clients (id, user_id, name, email, phone, company,
            youtube_url, instagram_url, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
    `
	_, err := r.db.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.Email, c.Phone, c.Company,
		c.YoutubeURL, c.InstagramURL, c.Notes,
	)
	return err
}

func (r *ClientRepository) FindByID(ctx context.Context, id, userID string) (*model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND user_id = $2`
	return scanClient(r.db.QueryRow(ctx, query, id, userID))
}

func (r *ClientRepository) ListByUser(ctx context.Context, userID string) ([]model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, c *model.Client) error {
	query := `
        UPDATE clients
        SET name = $3, email = $4, phone = $5, company = $6,
            youtube_url = $7, instagram_url = $8, notes = $9, updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.Email, c.Phone, c.Company,
		c.YoutubeURL, c.InstagramURL, c.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
