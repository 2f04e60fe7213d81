package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Query narrows a Find. Where values that are slices become IN clauses.
type Query struct {
	Where  map[string]any
	Order  string
	Limit  int
	Offset int
}

// Repository is the generic create/find/update surface shared by every collection.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

func (r *Repository[T]) Create(ctx context.Context, v *T) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *Repository[T]) Update(ctx context.Context, v *T) error {
	return translate(r.db.WithContext(ctx).Save(v).Error)
}

func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var v T
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *Repository[T]) FindOne(ctx context.Context, q Query) (*T, error) {
	var v T
	if err := r.scope(ctx, q).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *Repository[T]) Find(ctx context.Context, q Query) ([]T, error) {
	var list []T
	if err := r.scope(ctx, q).Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *Repository[T]) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	var v T
	tx := r.db.WithContext(ctx).Model(&v)
	if len(q.Where) > 0 {
		tx = tx.Where(q.Where)
	}
	if err := tx.Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (r *Repository[T]) scope(ctx context.Context, q Query) *gorm.DB {
	tx := r.db.WithContext(ctx)
	if len(q.Where) > 0 {
		tx = tx.Where(q.Where)
	}
	if q.Order != "" {
		tx = tx.Order(q.Order)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	return tx
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
