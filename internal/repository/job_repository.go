package repository

import (
	"context"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type JobRepository struct {
	*Repository[model.Job]
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{NewRepository[model.Job](db)}
}

// SearchJobs orders embedded jobs by cosine distance to the query vector.
func (r *JobRepository) SearchJobs(ctx context.Context, embedding pgvector.Vector, topK int) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).Raw(`
        SELECT *
        FROM jobs
        WHERE embedding IS NOT NULL
        ORDER BY embedding <=> ?
        LIMIT ?
    `, embedding, topK).Scan(&jobs).Error
	return jobs, translate(err)
}

func (r *JobRepository) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding pgvector.Vector) error {
	return translate(r.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).Update("embedding", embedding).Error)
}

// ListJobs returns a page of jobs, newest first, with the total count.
func (r *JobRepository) ListJobs(ctx context.Context, limit, offset int) ([]model.Job, int64, error) {
	total, err := r.Count(ctx, Query{})
	if err != nil {
		return nil, 0, err
	}
	jobs, err := r.Find(ctx, Query{Order: "created_at desc", Limit: limit, Offset: offset})
	return jobs, total, err
}
