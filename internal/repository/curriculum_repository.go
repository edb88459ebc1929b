package repository

import (
	"context"
	"fmt"

	"github.com/stemsi/curriforge/internal/model"
)

// CurriculumRepository persists curricula. Implementations return
// *StorageError for every database failure.
type CurriculumRepository interface {
	// List returns every curriculum, newest first.
	List(ctx context.Context) ([]model.Curriculum, error)
	// Create inserts c and fills in its ID and CreatedAt.
	Create(ctx context.Context, c *model.Curriculum) error
	// Delete removes the curriculum with id. Unknown ids are not an error.
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
	Close() error
}

// StorageError wraps any failure of the underlying database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

const (
	selectCurricula = `SELECT id, title, subject, audience, duration, content, created_at
		FROM curricula ORDER BY created_at DESC, id DESC`
)
