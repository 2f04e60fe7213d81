package repository

import (
	"context"
	"time"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QualificationRepository struct {
	*Repository[model.QualificationTask]
}

func NewQualificationRepository(db *gorm.DB) *QualificationRepository {
	return &QualificationRepository{NewRepository[model.QualificationTask](db)}
}

func (r *QualificationRepository) FindByResult(ctx context.Context, resultID uuid.UUID) (*model.QualificationTask, error) {
	return r.FindOne(ctx, Query{Where: map[string]any{"result_id": resultID}})
}

// Claim moves a pending task to running. It reports false when another worker
// already claimed it, which keeps processing at most once.
func (r *QualificationRepository) Claim(ctx context.Context, id uuid.UUID) (bool, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&model.QualificationTask{}).
		Where("id = ? AND status = ?", id, model.QualificationPending).
		Updates(map[string]any{"status": model.QualificationRunning, "attempted_at": now})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *QualificationRepository) Finish(ctx context.Context, id uuid.UUID, status model.QualificationStatus, detail string) error {
	return translate(r.db.WithContext(ctx).Model(&model.QualificationTask{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "detail": detail}).Error)
}
