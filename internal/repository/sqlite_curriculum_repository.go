package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/stemsi/curriforge/internal/model"
)

// SQLiteCurriculumRepository stores curricula in a single SQLite file.
// created_at is kept as unix milliseconds.
type SQLiteCurriculumRepository struct {
	db *sql.DB
}

func NewSQLiteCurriculumRepository(db *sql.DB) *SQLiteCurriculumRepository {
	return &SQLiteCurriculumRepository{db: db}
}

func (r *SQLiteCurriculumRepository) List(ctx context.Context) ([]model.Curriculum, error) {
	rows, err := r.db.QueryContext(ctx, selectCurricula)
	if err != nil {
		return nil, storageErr("list curricula", err)
	}
	defer rows.Close()

	curricula := []model.Curriculum{}
	for rows.Next() {
		var (
			c         model.Curriculum
			createdAt int64
		)
		if err := rows.Scan(&c.ID, &c.Title, &c.Subject, &c.Audience, &c.Duration, &c.Content, &createdAt); err != nil {
			return nil, storageErr("scan curriculum", err)
		}
		c.CreatedAt = fromMillis(createdAt)
		curricula = append(curricula, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list curricula", err)
	}
	return curricula, nil
}

func (r *SQLiteCurriculumRepository) Create(ctx context.Context, c *model.Curriculum) error {
	var createdAt int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO curricula (title, subject, audience, duration, content)
		 VALUES (?, ?, ?, ?, ?) RETURNING id, created_at`,
		c.Title, c.Subject, c.Audience, c.Duration, c.Content,
	).Scan(&c.ID, &createdAt)
	if err != nil {
		return storageErr("create curriculum", err)
	}
	c.CreatedAt = fromMillis(createdAt)
	return nil
}

func (r *SQLiteCurriculumRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM curricula WHERE id = ?`, id)
	return storageErr("delete curriculum", err)
}

func (r *SQLiteCurriculumRepository) Ping(ctx context.Context) error {
	return storageErr("ping", r.db.PingContext(ctx))
}

func (r *SQLiteCurriculumRepository) Close() error {
	return storageErr("close", r.db.Close())
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}
