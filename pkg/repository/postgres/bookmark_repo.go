package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkuznecov/bookmarkd/pkg/bookmark"
)

// BookmarkRepository stores bookmarks scoped to their owner. Ownership is
// part of every WHERE clause, so a bookmark belonging to someone else is
// indistinguishable from one that does not exist.
type BookmarkRepository struct {
	pool *pgxpool.Pool
}

func NewBookmarkRepository(pool *pgxpool.Pool) (*BookmarkRepository, error) {
	r := &BookmarkRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *BookmarkRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS bookmarks (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			link TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_bookmarks_owner ON bookmarks(owner_id);
	`)
	return err
}

func (r *BookmarkRepository) Create(ctx context.Context, b bookmark.Bookmark) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookmarks (id, owner_id, title, link, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, b.ID, b.OwnerID, b.Title, b.Link, b.Description, b.CreatedAt, b.UpdatedAt)
	return err
}

func (r *BookmarkRepository) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (bookmark.Bookmark, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, title, link, description, created_at, updated_at
		FROM bookmarks WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	var b bookmark.Bookmark
	err := row.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bookmark.Bookmark{}, bookmark.ErrNotFound
		}
		return bookmark.Bookmark{}, err
	}
	return b, nil
}

func (r *BookmarkRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]bookmark.Bookmark, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, title, link, description, created_at, updated_at
		FROM bookmarks WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bookmark.Bookmark
	for rows.Next() {
		var b bookmark.Bookmark
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Title, &b.Link, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BookmarkRepository) UpdateForOwner(ctx context.Context, b bookmark.Bookmark) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookmarks
		SET title = $3, link = $4, description = $5, updated_at = $6
		WHERE owner_id = $1 AND id = $2
	`, b.OwnerID, b.ID, b.Title, b.Link, b.Description, b.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return bookmark.ErrNotFound
	}
	return nil
}

func (r *BookmarkRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM bookmarks WHERE owner_id = $1 AND id = $2
	`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return bookmark.ErrNotFound
	}
	return nil
}
