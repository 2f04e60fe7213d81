package repository

import (
	"context"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TestRepository struct {
	*Repository[model.Test]
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{NewRepository[model.Test](db)}
}

// FindActiveByJob returns the newest active test for a job.
func (r *TestRepository) FindActiveByJob(ctx context.Context, jobID string) (*model.Test, error) {
	return r.FindOne(ctx, Query{
		Where: map[string]any{"job_id": jobID, "is_active": true},
		Order: "created_at desc",
	})
}

func (r *TestRepository) ListByCompany(ctx context.Context, companyID string) ([]model.Test, error) {
	return r.Find(ctx, Query{
		Where: map[string]any{"company_id": companyID},
		Order: "created_at desc",
	})
}

func (r *TestRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
