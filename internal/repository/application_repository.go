package repository

import (
	"context"

	"github.com/fadilmartias/rozgar/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	*Repository[model.Application]
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{NewRepository[model.Application](db)}
}

func (r *ApplicationRepository) ListByEmail(ctx context.Context, email string) ([]model.Application, error) {
	return r.Find(ctx, Query{
		Where: map[string]any{"applicant_email": email},
		Order: "created_at desc",
	})
}

func (r *ApplicationRepository) ListByJobs(ctx context.Context, jobIDs []string) ([]model.Application, error) {
	return r.Find(ctx, Query{
		Where: map[string]any{"job_id": jobIDs},
		Order: "created_at desc",
	})
}

func (r *ApplicationRepository) SetResumeText(ctx context.Context, app *model.Application, text string) error {
	app.ResumeText = text
	return translate(r.db.WithContext(ctx).Model(app).Update("resume_text", text).Error)
}
