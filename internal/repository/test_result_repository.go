package repository

import (
	"context"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestResultRepository struct {
	*Repository[model.TestResult]
}

func NewTestResultRepository(db *gorm.DB) *TestResultRepository {
	return &TestResultRepository{NewRepository[model.TestResult](db)}
}

func (r *TestResultRepository) ListByTestIDs(ctx context.Context, testIDs []uuid.UUID) ([]model.TestResult, error) {
	if len(testIDs) == 0 {
		return nil, nil
	}
	return r.Find(ctx, Query{
		Where: map[string]any{"test_id": testIDs},
		Order: "created_at asc",
	})
}

func (r *TestResultRepository) ListByUser(ctx context.Context, userID string) ([]model.TestResult, error) {
	return r.Find(ctx, Query{
		Where: map[string]any{"user_id": userID},
		Order: "created_at desc",
	})
}
