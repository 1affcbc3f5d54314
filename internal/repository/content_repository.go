package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/vitaltrack/wellness-platform/internal/model"
)

const contentColumns = "id,title,content_type,description,content_url,thumbnail_url,published,created_at,updated_at"

type ContentRepo struct{ DB *sql.DB }

func NewContentRepo(db *sql.DB) *ContentRepo { return &ContentRepo{DB: db} }

func scanContent(s interface {
	Scan(dest ...any) error
}) (model.EducationalContent, error) {
	var c model.EducationalContent
	err := s.Scan(&c.ID, &c.Title, &c.ContentType, &c.Description,
		&c.ContentURL, &c.ThumbnailURL, &c.Published, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Create inserts an educational content row.
func (r *ContentRepo) Create(ctx context.Context, c *model.EducationalContent) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO educational_contents (title, content_type, description, content_url, thumbnail_url, published) VALUES (?,?,?,?,?,?)",
		c.Title, c.ContentType, c.Description, c.ContentURL, c.ThumbnailURL, c.Published)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// ListAll returns every content row, newest first.
func (r *ContentRepo) ListAll(ctx context.Context) ([]model.EducationalContent, error) {
	return r.list(ctx, "SELECT "+contentColumns+" FROM educational_contents ORDER BY created_at DESC")
}

// ListPublished returns only published contents, newest first.
func (r *ContentRepo) ListPublished(ctx context.Context) ([]model.EducationalContent, error) {
	return r.list(ctx, "SELECT "+contentColumns+" FROM educational_contents WHERE published=1 ORDER BY created_at DESC")
}

func (r *ContentRepo) list(ctx context.Context, query string) ([]model.EducationalContent, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.EducationalContent
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ContentUpdate carries the optional fields of a partial content update.
// Nil fields are left untouched.
type ContentUpdate struct {
	Title        *string
	ContentType  *string
	Description  *string
	ContentURL   *string
	ThumbnailURL *string
	Published    *bool
}

// Update applies a partial update. Returns ErrNotFound when the content row
// does not exist and nil without touching the DB when no field is set.
func (r *ContentRepo) Update(ctx context.Context, id uint64, upd ContentUpdate) error {
	var (
		sets []string
		args []any
	)
	if upd.Title != nil {
		sets, args = append(sets, "title=?"), append(args, *upd.Title)
	}
	if upd.ContentType != nil {
		sets, args = append(sets, "content_type=?"), append(args, *upd.ContentType)
	}
	if upd.Description != nil {
		sets, args = append(sets, "description=?"), append(args, *upd.Description)
	}
	if upd.ContentURL != nil {
		sets, args = append(sets, "content_url=?"), append(args, *upd.ContentURL)
	}
	if upd.ThumbnailURL != nil {
		sets, args = append(sets, "thumbnail_url=?"), append(args, *upd.ThumbnailURL)
	}
	if upd.Published != nil {
		sets, args = append(sets, "published=?"), append(args, *upd.Published)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx,
		"UPDATE educational_contents SET "+strings.Join(sets, ", ")+" WHERE id=?", args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.DB.QueryRowContext(ctx,
			"SELECT 1 FROM educational_contents WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a content row. Missing rows return ErrNotFound.
func (r *ContentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM educational_contents WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
