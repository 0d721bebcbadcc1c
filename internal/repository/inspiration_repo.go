package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"focalflow/internal/model"
)

type InspirationRepository struct {
	db *pgxpool.Pool
}

func NewInspirationRepository(db *pgxpool.Pool) *InspirationRepository {
	return &InspirationRepository{db: db}
}

func (r *InspirationRepository) InsertFolder(ctx context.Context, f *model.InspirationFolder) error {
	query := `
        INSERT INTO inspiration_folders (id, user_id, name, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
    `
	_, err := r.db.Exec(ctx, query, f.ID, f.UserID, f.Name, f.Description)
	return err
}

func (r *InspirationRepository) FindFolderByID(ctx context.Context, id, userID string) (*model.InspirationFolder, error) {
	query := `
        SELECT id, user_id, name, description, created_at, updated_at
        FROM inspiration_folders
        WHERE id = $1 AND user_id = $2
    `
	var f model.InspirationFolder
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&f.ID, &f.UserID, &f.Name, &f.Description, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *InspirationRepository) ListFolders(ctx context.Context, userID string) ([]model.InspirationFolder, error) {
	query := `
        SELECT id, user_id, name, description, created_at, updated_at
        FROM inspiration_folders
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var folders []model.InspirationFolder
	for rows.Next() {
		var f model.InspirationFolder
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Description, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func (r *InspirationRepository) UpdateFolder(ctx context.Context, f *model.InspirationFolder) error {
	query := `
        UPDATE inspiration_folders
        SET name = $3, description = $4, updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, f.ID, f.UserID, f.Name, f.Description)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteFolder removes a folder and its items.
func (r *InspirationRepository) DeleteFolder(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM inspiration_folders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *InspirationRepository) InsertItem(ctx context.Context, it *model.InspirationItem) error {
	query := `
        INSERT INTO inspiration_items (id, folder_id, user_id, title, url, image_url, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
    `
	_, err := r.db.Exec(ctx, query, it.ID, it.FolderID, it.UserID, it.Title, it.URL, it.ImageURL, it.Notes)
	return err
}

func (r *InspirationRepository) ListItems(ctx context.Context, folderID, userID string) ([]model.InspirationItem, error) {
	query := `
        SELECT id, folder_id, user_id, title, url, image_url, notes, created_at, updated_at
        FROM inspiration_items
        WHERE folder_id = $1 AND user_id = $2
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, folderID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.InspirationItem
	for rows.Next() {
		var it model.InspirationItem
		if err := rows.Scan(&it.ID, &it.FolderID, &it.UserID, &it.Title, &it.URL, &it.ImageURL, &it.Notes, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *InspirationRepository) UpdateItem(ctx context.Context, it *model.InspirationItem) error {
	query := `
        UPDATE inspiration_items
        SET title = $3, url = $4, image_url = $5, notes = $6, updated_at = NOW()
        WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, it.ID, it.UserID, it.Title, it.URL, it.ImageURL, it.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *InspirationRepository) DeleteItem(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM inspiration_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
