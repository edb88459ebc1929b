package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/curriforge/internal/model"
)

// PostgresCurriculumRepository stores curricula in PostgreSQL. Ids come from
// a BIGSERIAL sequence, so concurrent inserts from the pool stay unique.
type PostgresCurriculumRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCurriculumRepository(pool *pgxpool.Pool) *PostgresCurriculumRepository {
	return &PostgresCurriculumRepository{pool: pool}
}

func (r *PostgresCurriculumRepository) List(ctx context.Context) ([]model.Curriculum, error) {
	rows, err := r.pool.Query(ctx, selectCurricula)
	if err != nil {
		return nil, storageErr("list curricula", err)
	}
	defer rows.Close()

	curricula := []model.Curriculum{}
	for rows.Next() {
		var c model.Curriculum
		if err := rows.Scan(&c.ID, &c.Title, &c.Subject, &c.Audience, &c.Duration, &c.Content, &c.CreatedAt); err != nil {
			return nil, storageErr("scan curriculum", err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		curricula = append(curricula, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list curricula", err)
	}
	return curricula, nil
}

func (r *PostgresCurriculumRepository) Create(ctx context.Context, c *model.Curriculum) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO curricula (title, subject, audience, duration, content)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		c.Title, c.Subject, c.Audience, c.Duration, c.Content,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return storageErr("create curriculum", err)
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return nil
}

func (r *PostgresCurriculumRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM curricula WHERE id = $1`, id)
	return storageErr("delete curriculum", err)
}

func (r *PostgresCurriculumRepository) Ping(ctx context.Context) error {
	return storageErr("ping", r.pool.Ping(ctx))
}

func (r *PostgresCurriculumRepository) Close() error {
	r.pool.Close()
	return nil
}
