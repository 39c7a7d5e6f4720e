package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// CRUD is the document-store contract every entity repository offers.
type CRUD[T any] interface {
	Create(ctx context.Context, v *T) error
	Update(ctx context.Context, v *T, columns ...string) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*T, error)
	First(ctx context.Context, q Query) (*T, error)
	List(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, q Query) (int64, error)
}

// Table is a GORM-backed CRUD over one model keyed by a string "id" column.
type Table[T any] struct {
	db     *gorm.DB
	scopes []func(*gorm.DB) *gorm.DB
}

// Ensure Table implements CRUD
var _ CRUD[struct{}] = (*Table[struct{}])(nil)

// NewTable creates a table. scopes run on every read (preloads, for example).
func NewTable[T any](db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) *Table[T] {
	return &Table[T]{db: db, scopes: scopes}
}

func (t *Table[T]) read(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Scopes(t.scopes...)
}

// Create inserts v.
func (t *Table[T]) Create(ctx context.Context, v *T) error {
	return translate(t.db.WithContext(ctx).Create(v).Error)
}

// Update writes the named columns of v, keyed by its primary key. Columns not
// named are left untouched, including zero-valued ones.
func (t *Table[T]) Update(ctx context.Context, v *T, columns ...string) error {
	if len(columns) == 0 {
		return nil
	}
	return translate(t.db.WithContext(ctx).Model(v).Select(columns).Updates(v).Error)
}

// Delete removes the row with id. Deleting a missing row is not an error.
func (t *Table[T]) Delete(ctx context.Context, id string) error {
	return translate(t.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error)
}

// FindByID returns the row with id or ErrNotFound.
func (t *Table[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var v T
	if err := t.read(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// First returns the first row matching q or ErrNotFound.
func (t *Table[T]) First(ctx context.Context, q Query) (*T, error) {
	q.Limit = 1
	var rows []T
	if err := t.read(ctx).Scopes(q.scope).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

// List returns the rows matching q in q's order.
func (t *Table[T]) List(ctx context.Context, q Query) ([]T, error) {
	rows := make([]T, 0)
	if err := t.read(ctx).Scopes(q.scope).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// Count returns how many rows match q's filters.
func (t *Table[T]) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	if err := t.db.WithContext(ctx).Model(new(T)).Scopes(q.filterScope).Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
