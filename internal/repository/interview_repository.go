package repository

import (
	"context"

	"github.com/fadilmartias/rozgar/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	*Repository[model.Interview]
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{NewRepository[model.Interview](db)}
}

func (r *InterviewRepository) FindByJob(ctx context.Context, jobID string) (*model.Interview, error) {
	return r.FindOne(ctx, Query{
		Where: map[string]any{"job_id": jobID},
		Order: "created_at asc",
	})
}

func (r *InterviewRepository) ListByCandidate(ctx context.Context, email string) ([]model.Interview, error) {
	return r.Find(ctx, Query{
		Where: map[string]any{"candidate_email": email},
		Order: "scheduled_at asc",
	})
}

func (r *InterviewRepository) ListByCompany(ctx context.Context, companyID string) ([]model.Interview, error) {
	return r.Find(ctx, Query{
		Where: map[string]any{"company_id": companyID},
		Order: "scheduled_at asc",
	})
}

// ListAcceptedBy returns interviews accepted by a user id or email.
func (r *InterviewRepository) ListAcceptedBy(ctx context.Context, identity string) ([]model.Interview, error) {
	var list []model.Interview
	err := r.db.WithContext(ctx).
		Where("accepted_by_user_id = ? OR accepted_by_email = ? OR candidate_email = ?", identity, identity, identity).
		Order("scheduled_at asc").
		Find(&list).Error
	return list, translate(err)
}
