package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/rozgar/internal/dto"
	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/response"
	"github.com/fadilmartias/rozgar/internal/service"
	"github.com/fadilmartias/rozgar/internal/util"
	"github.com/pgvector/pgvector-go"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
	DefaultSimilarK = 5
)

type JobUsecase struct {
	jobs     JobStore
	embedder service.Embedder
}

// NewJobUsecase builds the job catalogue. embedder may be nil, which turns
// off similarity search.
func NewJobUsecase(jobs JobStore, embedder service.Embedder) *JobUsecase {
	return &JobUsecase{jobs: jobs, embedder: embedder}
}

func (uc *JobUsecase) CreateJob(ctx context.Context, req dto.CreateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	job := &model.Job{
		Title:         req.Title,
		Company:       req.Company,
		Location:      req.Location,
		Salary:        req.Salary,
		Type:          req.Type,
		Description:   req.Description,
		PostedByEmail: dto.NormalizeEmail(req.PostedByEmail),
	}
	if err := uc.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	if uc.embedder != nil {
		go uc.embedJob(*job)
	}
	return job, nil
}

// embedJob stores the job's embedding. Failures only cost search recall.
func (uc *JobUsecase) embedJob(job model.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	text := fmt.Sprintf("%s at %s (%s, %s)\n%s", job.Title, job.Company, job.Location, job.Type, job.Description)
	emb, err := uc.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		log.Printf("embedding for job %s: %v", job.ID, err)
		return
	}
	if err := uc.jobs.UpdateEmbedding(ctx, job.ID, pgvector.NewVector(emb)); err != nil {
		log.Printf("store embedding for job %s: %v", job.ID, err)
	}
}

func (uc *JobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]model.Job, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	jobs, total, err := uc.jobs.ListJobs(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, response.NewPagination(page, pageSize, total, len(jobs)), nil
}

func (uc *JobUsecase) GetJob(ctx context.Context, id string) (*model.Job, error) {
	job, err := uc.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrJobNotFound)
	}
	return job, nil
}

// SimilarJobs ranks embedded jobs by closeness to free text.
func (uc *JobUsecase) SimilarJobs(ctx context.Context, query string, k int) ([]model.Job, error) {
	if uc.embedder == nil {
		return nil, ErrEmbeddingUnavailable
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, util.NewFormError("q is required", nil)
	}
	if k < 1 || k > MaxPageSize {
		k = DefaultSimilarK
	}

	emb, err := uc.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return uc.jobs.SearchJobs(ctx, pgvector.NewVector(emb), k)
}
